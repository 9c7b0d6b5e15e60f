package employee

import (
	"time"

	"github.com/kennarhq/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	MobilePhone   *string `json:"mobile_phone"`
	DateOfBirth   *string `json:"date_of_birth"`
	Status        *string `json:"status"`
	FaceEmbedding *string `json:"face_embedding"`
	FingerprintID *string `json:"fingerprint_id"`

	// Populated from the multipart upload, not the JSON body.
	Image     []byte  `json:"-"`
	ImageMime *string `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be alphanumeric"})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	EmployeeID    string  `json:"-"`
	Name          string  `json:"name"`
	MobilePhone   *string `json:"mobile_phone"`
	DateOfBirth   *string `json:"date_of_birth"`
	Status        *string `json:"status"`
	FaceEmbedding *string `json:"face_embedding"`
	FingerprintID *string `json:"fingerprint_id"`

	Image     []byte  `json:"-"`
	ImageMime *string `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	MobilePhone   *string `json:"mobile_phone"`
	DateOfBirth   *string `json:"date_of_birth"`
	Status        string  `json:"status"`
	FaceEmbedding *string `json:"face_embedding"`
	FingerprintID *string `json:"fingerprint_id"`
	HasImage      bool    `json:"has_image"`
}

// ImageResponse carries the stored photo as a data URI, matching what the
// kiosk frontend renders directly into an <img> tag.
type ImageResponse struct {
	Base64 string `json:"base64"`
}

func ToResponse(emp Employee) EmployeeResponse {
	var dob *string
	if emp.DateOfBirth != nil {
		s := emp.DateOfBirth.Format("2006-01-02")
		dob = &s
	}
	return EmployeeResponse{
		EmployeeID:    emp.EmployeeID,
		Name:          emp.Name,
		MobilePhone:   emp.MobilePhone,
		DateOfBirth:   dob,
		Status:        emp.Status,
		FaceEmbedding: emp.FaceEmbedding,
		FingerprintID: emp.FingerprintID,
		HasImage:      len(emp.Image) > 0,
	}
}

// ParseDateOfBirth converts the optional wire date into a time value.
func ParseDateOfBirth(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, ok := validator.IsValidDate(*raw)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "date_of_birth", Message: "date_of_birth must be YYYY-MM-DD"}}
	}
	return &t, nil
}
