package domain

// Role represents user role in the system
type Role string

const (
	RoleOfficer Role = "officer"
	RoleAdmin   Role = "admin"
)

// Status represents the lifecycle state of a violation
type Status string

const (
	StatusPending     Status = "Pending"
	StatusPaid        Status = "Paid"
	StatusCancelled   Status = "Cancelled"
	StatusUnderReview Status = "Under Review"
)

// Statuses lists all valid violation statuses, in display order
var Statuses = []Status{
	StatusPending,
	StatusPaid,
	StatusCancelled,
	StatusUnderReview,
}

// IsValidStatus reports whether s is one of the known statuses
func IsValidStatus(s string) bool {
	for _, st := range Statuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Statistics represents an aggregate snapshot over all violations
type Statistics struct {
	Total         int64
	Pending       int64
	Paid          int64
	Cancelled     int64
	UnderReview   int64
	Revenue       float64
	TopViolations []TypeCount
	TopViolators  []PlateCount
}

// TypeCount is a violation type with its occurrence count
type TypeCount struct {
	ViolationType string
	Count         int64
}

// PlateCount is a plate number with its occurrence count
type PlateCount struct {
	PlateNumber string
	Count       int64
}
