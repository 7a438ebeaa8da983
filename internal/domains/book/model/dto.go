package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	// Available defaults to true when omitted.
	Available *bool `json:"available"`
}

func (r *CreateBookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 255)),
		validation.Field(&r.Author, validation.Required, validation.RuneLength(1, 100)),
	)
}

func (r CreateBookRequest) IsAvailable() bool {
	return r.Available == nil || *r.Available
}

type UpdateBookRequest struct {
	Title     *string `json:"title"`
	Author    *string `json:"author"`
	Available *bool   `json:"available"`
}

func (r *UpdateBookRequest) Normalize() {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
	}
	if r.Author != nil {
		a := strings.TrimSpace(*r.Author)
		r.Author = &a
	}
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.RuneLength(1, 255)),
		validation.Field(&r.Author, validation.NilOrNotEmpty, validation.RuneLength(1, 100)),
	)
}

func (r UpdateBookRequest) IsEmpty() bool {
	return r.Title == nil && r.Author == nil && r.Available == nil
}
