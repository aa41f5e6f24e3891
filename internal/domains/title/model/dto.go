package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"mediadb-backend/internal/shared/utils"
)

func slugListRule(value interface{}) error {
	slugs, _ := value.([]string)
	for _, slug := range slugs {
		if !utils.SlugRegex.MatchString(slug) {
			return validation.NewError("validation_genre_slug", "invalid genre slug")
		}
	}
	return nil
}

type CreateTitleRequest struct {
	Name        string  `json:"name"`
	Year        int     `json:"year"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Genres      []string `json:"genres"`
}

func (r CreateTitleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 256),
		),
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
			validation.Max(time.Now().Year()).Error("year cannot be in the future"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Match(utils.SlugRegex).Error("invalid category slug"),
		),
		validation.Field(&r.Genres,
			validation.Required.Error("at least one genre is required"),
			validation.By(slugListRule),
		),
	)
}

// UpdateTitleRequest is a partial update; nil fields are left unchanged.
// A non-nil Genres replaces the whole genre set.
type UpdateTitleRequest struct {
	Name        *string   `json:"name"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genres      *[]string `json:"genres"`
}

func (r UpdateTitleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 256)),
		validation.Field(&r.Year, validation.By(func(v interface{}) error {
			if p, _ := v.(*int); p != nil && *p > time.Now().Year() {
				return validation.NewError("validation_year", "year cannot be in the future")
			}
			return nil
		})),
		validation.Field(&r.Category, validation.By(func(v interface{}) error {
			if p, _ := v.(*string); p != nil && !utils.SlugRegex.MatchString(*p) {
				return validation.NewError("validation_category_slug", "invalid category slug")
			}
			return nil
		})),
		validation.Field(&r.Genres, validation.By(func(v interface{}) error {
			if p, _ := v.(*[]string); p != nil {
				if len(*p) == 0 {
					return validation.NewError("validation_genres", "at least one genre is required")
				}
				return slugListRule(*p)
			}
			return nil
		})),
	)
}
