package invoices

// Invoice lifecycle statuses. The set is closed; anything else is
// rejected at the API boundary.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

var statuses = map[string]bool{
	StatusPending:   true,
	StatusPaid:      true,
	StatusOverdue:   true,
	StatusCancelled: true,
}

func ValidStatus(s string) bool {
	return statuses[s]
}

// CanTransition reports whether an invoice may move between statuses.
// Paid and cancelled are terminal. Overdue invoices can still be
// settled or written off.
func CanTransition(from, to string) bool {
	if !statuses[from] || !statuses[to] || from == to {
		return false
	}
	switch from {
	case StatusPending:
		return true
	case StatusOverdue:
		return to == StatusPaid || to == StatusCancelled
	default:
		return false
	}
}
