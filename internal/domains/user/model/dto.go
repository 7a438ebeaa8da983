package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Normalize trims every field in place.
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&r.Email, validation.Required, validation.RuneLength(1, 255)),
	)
}

// UpdateUserRequest is a partial update: nil fields are left untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (r *UpdateUserRequest) Normalize() {
	r.Name = trimPtr(r.Name)
	r.Email = trimPtr(r.Email)
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.RuneLength(1, 100)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, validation.RuneLength(1, 255)),
	)
}

func (r UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
