package settings

import "errors"

var (
	// ErrScheduleNotFound is returned when no work schedule was saved yet
	ErrScheduleNotFound = errors.New("settings.repository: work schedule not found")

	// ErrProfileNotFound is returned when no profile was saved yet
	ErrProfileNotFound = errors.New("settings.repository: profile not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
