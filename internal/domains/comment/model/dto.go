package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateCommentRequest struct {
	Text string `json:"text"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required.Error("text is required")),
	)
}

type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.NilOrNotEmpty),
	)
}
