package domain

// QueryState is the lifecycle state of an analytical query execution as
// reported by the query service.
type QueryState string

// Query execution lifecycle states.
const (
	QueryStateQueued    QueryState = "QUEUED"
	QueryStateRunning   QueryState = "RUNNING"
	QueryStateSucceeded QueryState = "SUCCEEDED"
	QueryStateFailed    QueryState = "FAILED"
	QueryStateCancelled QueryState = "CANCELLED"
)

// Terminal reports whether the state ends polling: the query either produced
// a result or will never produce one.
func (s QueryState) Terminal() bool {
	switch s {
	case QueryStateSucceeded, QueryStateFailed, QueryStateCancelled:
		return true
	default:
		return false
	}
}
