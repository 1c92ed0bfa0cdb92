package cashflow

import "github.com/rmarins/MEI-AgendaService/pkg/dbmetrics"

// DBExecutor is the database handle used by the repository.
type DBExecutor = dbmetrics.DBExecutor
