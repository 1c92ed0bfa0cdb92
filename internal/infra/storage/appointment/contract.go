package appointment

import "github.com/rmarins/MEI-AgendaService/pkg/dbmetrics"

// DBExecutor is the database handle used by the repository. Satisfied by
// *sql.DB, *sql.Tx and the metrics-wrapped DB.
type DBExecutor = dbmetrics.DBExecutor
