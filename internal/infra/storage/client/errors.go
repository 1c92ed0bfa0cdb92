package client

import "errors"

var (
	// ErrClientNotFound is returned when the client does not exist
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrClientReferenced is returned when deletion violates a foreign key
	ErrClientReferenced = errors.New("client.repository: client is referenced")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
