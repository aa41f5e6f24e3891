package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinScore = 1
	MaxScore = 10
)

type CreateReviewRequest struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required.Error("text is required")),
		validation.Field(&r.Score,
			validation.Required.Error("score is required"),
			validation.Min(MinScore).Error("score must be between 1 and 10"),
			validation.Max(MaxScore).Error("score must be between 1 and 10"),
		),
	)
}

// UpdateReviewRequest is a partial update; nil fields are left unchanged.
type UpdateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.NilOrNotEmpty),
		validation.Field(&r.Score, validation.By(func(v interface{}) error {
			if p, _ := v.(*int); p != nil && (*p < MinScore || *p > MaxScore) {
				return validation.NewError("validation_score", "score must be between 1 and 10")
			}
			return nil
		})),
	)
}
