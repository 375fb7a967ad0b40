package enum

// POStatus represents the lifecycle state of a purchase order
type POStatus string

const (
	POStatusPending   POStatus = "pending"
	POStatusCompleted POStatus = "completed"
	POStatusCanceled  POStatus = "canceled"
)

// IsValid reports whether s is one of the known statuses
func (s POStatus) IsValid() bool {
	switch s {
	case POStatusPending, POStatusCompleted, POStatusCanceled:
		return true
	}
	return false
}

func (s POStatus) String() string {
	return string(s)
}
