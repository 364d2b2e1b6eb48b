package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator provides validation for the values crossing the API
// boundary before they reach storage.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// CreateArticleInput is the payload for creating an article.
type CreateArticleInput struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Body        string  `json:"body"`
}

// ValidateCreateArticle validates a create payload.
func (v *Validator) ValidateCreateArticle(in *CreateArticleInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 255).Error("title_too_long"),
		),
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
		),
	)
}

// UpdateArticleInput is the payload for updating an article. All fields
// are optional; absent fields leave the stored value unchanged.
type UpdateArticleInput struct {
	Slug        *string `json:"slug,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Body        *string `json:"body,omitempty"`
}

// ValidateUpdateArticle validates an update payload.
func (v *Validator) ValidateUpdateArticle(in *UpdateArticleInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Slug,
			validation.NilOrNotEmpty.Error("slug_empty"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&in.Title,
			validation.NilOrNotEmpty.Error("title_empty"),
			validation.Length(1, 255).Error("title_too_long"),
		),
		validation.Field(&in.Body,
			validation.NilOrNotEmpty.Error("body_empty"),
		),
	)
	if err != nil {
		return err
	}

	if in.Slug == nil && in.Title == nil && in.Description == nil && in.Body == nil {
		return validation.Errors{
			"payload": validation.NewError("no_fields", "at least one field must be set"),
		}
	}
	return nil
}

// ValidateSlug validates a slug path parameter.
func (v *Validator) ValidateSlug(slug string) error {
	return validation.Validate(slug,
		validation.Required.Error("slug_required"),
		validation.Match(slugRegex).Error("invalid_slug_format"),
	)
}

// ValidateTag validates a tag label.
func (v *Validator) ValidateTag(tag string) error {
	return validation.Validate(tag,
		validation.Required.Error("tag_required"),
		validation.Length(1, 100).Error("tag_too_long"),
	)
}

// ValidatePagination validates limit and offset query parameters. The
// core places no upper bound on offset; a page past the end is simply
// empty.
func (v *Validator) ValidatePagination(limit, offset int) error {
	if limit < 1 {
		return validation.Errors{
			"limit": validation.NewError("limit_too_small", "limit must be at least 1"),
		}
	}
	if offset < 0 {
		return validation.Errors{
			"offset": validation.NewError("offset_negative", "offset must not be negative"),
		}
	}
	return nil
}
