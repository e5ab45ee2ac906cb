package models

// OrderStatus moves strictly forward:
//
//	pending -> preparing -> completed
//
// with cancellation allowed from pending or preparing. Completed and
// cancelled are terminal.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Next returns the single forward transition out of s. Terminal states
// have none.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusCompleted, true
	}
	return "", false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s OrderStatus) CanCancel() bool {
	return s == StatusPending || s == StatusPreparing
}

// CanTransition reports whether moving from s to to follows the map
// above. Skipping a state or leaving a terminal state is never allowed.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if next, ok := s.Next(); ok && to == next {
		return true
	}
	return to == StatusCancelled && s.CanCancel()
}

// Label returns the display name used across the UI.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "受付中"
	case StatusPreparing:
		return "調理中"
	case StatusCompleted:
		return "提供済み"
	case StatusCancelled:
		return "キャンセル"
	}
	return string(s)
}
