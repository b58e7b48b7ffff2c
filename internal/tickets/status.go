// Package tickets holds the repair ticket workflow helpers: the status
// list, the progress timeline and the staff edit buffer.
package tickets

const (
	StatusAwaitingDiagnosis = "Awaiting diagnosis"
	StatusAwaitingPart      = "Awaiting part"
	StatusPartReceived      = "Part received"
	StatusAwaitingApproval  = "Awaiting client approval"
	StatusInProgress        = "Repair in progress"
	StatusComplete          = "Repair complete"
	StatusReturned          = "Returned to client"
	StatusClosed            = "Closed"
)

// Statuses is the ordered workflow. The backend stores these labels as is.
var Statuses = []string{
	StatusAwaitingDiagnosis,
	StatusAwaitingPart,
	StatusPartReceived,
	StatusAwaitingApproval,
	StatusInProgress,
	StatusComplete,
	StatusReturned,
	StatusClosed,
}

// TimelineStatuses are the statuses shown on the tracking timeline.
var TimelineStatuses = Statuses[:7:7]

func IsValidStatus(s string) bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}
