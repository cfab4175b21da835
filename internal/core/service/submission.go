package service

import (
	"github.com/bornholm/billet/internal/core/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

const (
	IntentCreate = "create"
	IntentUpdate = "update"
	IntentDelete = "delete"
)

// PostSubmission holds the raw values of a submitted edit form.
type PostSubmission struct {
	Intent   string `json:"intent"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Markdown string `json:"markdown"`
}

func (s PostSubmission) IsDelete() bool {
	return s.Intent == IntentDelete
}

func (s PostSubmission) Post() model.Post {
	return model.NewReadOnlyPost(model.PostSlug(s.Slug), s.Title, s.Markdown)
}

// Validate checks every field and reports all the missing ones at once.
func (s PostSubmission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required.Error("title is required")),
		validation.Field(&s.Slug, validation.Required.Error("slug is required"), validation.By(routableSlug)),
		validation.Field(&s.Markdown, validation.Required.Error("markdown is required")),
	)
}

var errUnroutableSlug = validation.NewError("validation_slug_unroutable", "slug is reserved or contains a '/'")

func routableSlug(value any) error {
	slug, _ := value.(string)
	if slug == "" || model.IsRoutableSlug(model.PostSlug(slug)) {
		return nil
	}

	return errUnroutableSlug
}

// FieldErrors maps each form field to its validation message.
// An empty message means the field is valid.
type FieldErrors struct {
	Title    string `json:"title,omitempty"`
	Slug     string `json:"slug,omitempty"`
	Markdown string `json:"markdown,omitempty"`
}

func (e FieldErrors) Empty() bool {
	return e.Title == "" && e.Slug == "" && e.Markdown == ""
}

// fieldErrorsFrom converts validation errors into FieldErrors.
// It returns false when err is not a field validation failure.
func fieldErrorsFrom(err error) (FieldErrors, bool) {
	var validationErrs validation.Errors
	if !errors.As(err, &validationErrs) {
		return FieldErrors{}, false
	}

	fieldErrs := FieldErrors{}

	for field, fieldErr := range validationErrs {
		switch field {
		case "title":
			fieldErrs.Title = fieldErr.Error()
		case "slug":
			fieldErrs.Slug = fieldErr.Error()
		case "markdown":
			fieldErrs.Markdown = fieldErr.Error()
		}
	}

	return fieldErrs, true
}
