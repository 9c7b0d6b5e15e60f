package employee

import (
	"time"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Employee is the HR-owned profile. EmployeeID is the badge code assigned by
// HR and doubles as the natural key the attendance records point at.
type Employee struct {
	EmployeeID    string
	Name          string
	MobilePhone   *string
	DateOfBirth   *time.Time
	Status        string
	FaceEmbedding *string
	FingerprintID *string
	Image         []byte
	ImageMime     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
