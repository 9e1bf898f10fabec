package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AlbumRequest is the payload for both add and edit. Edits only touch name
// and year; covers have their own endpoint.
type AlbumRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

func (r AlbumRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
			validation.Min(1900),
			validation.Max(2100),
		),
	)
}

type CoverRequest struct {
	CoverURL string `json:"coverUrl"`
}

func (r CoverRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CoverURL,
			validation.Required.Error("coverUrl is required"),
			is.URL.Error("coverUrl must be a valid URL"),
		),
	)
}
