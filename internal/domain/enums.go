package domain

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCanceled  SessionStatus = "canceled"
)

// ValidSessionStatuses is the canonical set of accepted session status strings.
var ValidSessionStatuses = map[string]bool{
	"scheduled": true, "completed": true, "canceled": true,
}

type ContactMethod string

const (
	ContactPhone     ContactMethod = "phone"
	ContactEmail     ContactMethod = "email"
	ContactMessenger ContactMethod = "messenger"
)
