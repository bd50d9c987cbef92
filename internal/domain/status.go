package domain

type ClaimStatus string

const (
	StatusPending   ClaimStatus = "Pending"
	StatusCompleted ClaimStatus = "Completed"
	StatusCancelled ClaimStatus = "Cancelled"
)

// ClaimStatuses lists the accepted values in display order.
var ClaimStatuses = []ClaimStatus{StatusPending, StatusCompleted, StatusCancelled}

func (s ClaimStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
