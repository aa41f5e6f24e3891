package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"mediadb-backend/internal/shared/utils"
)

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 256),
		),
		validation.Field(&r.Slug,
			validation.Required.Error("slug is required"),
			validation.Length(utils.MinSlugLength, utils.MaxSlugLength),
			validation.Match(utils.SlugRegex).Error("slug may only contain letters, digits, hyphens and underscores"),
		),
	)
}
