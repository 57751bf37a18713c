package reconcile

// Outcome is the result of a reconcile call.
type Outcome int

const (
	// Created means no distribution carried the name and one was created.
	Created Outcome = iota + 1
	// Updated means the live distribution drifted and was rewritten.
	Updated
	// Unchanged means the live distribution already matched.
	Unchanged
)

// String returns the lower-case outcome name used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Unchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}
