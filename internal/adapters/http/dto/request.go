package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/go-catalog-service/internal/domain"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
)

// requestValidate is the validator instance shared by all request DTOs.
var requestValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// ItemRequest represents the JSON body describing one item.
// Index is only honored when inserting; without it the item is appended.
type ItemRequest struct {
	Index       *int   `json:"index,omitempty" validate:"omitempty,gte=0"`
	UniqueID    string `json:"unique_id" validate:"notblank,max=128"`
	Title       string `json:"title" validate:"notblank,max=256"`
	Subtitle    string `json:"subtitle" validate:"max=256"`
	ImagePath   string `json:"image_path" validate:"max=1024"`
	Description string `json:"description" validate:"max=4096"`
	Content     string `json:"content" validate:"max=65536"`
}

// Validate checks field rules. Returns a *domain.ValidationError if any fail.
func (r *ItemRequest) Validate() error {
	return toValidationError(requestValidate.Struct(r))
}

// ToDraft converts the request to a catalog item draft.
func (r *ItemRequest) ToDraft() catalog.ItemDraft {
	return catalog.ItemDraft{
		UniqueID:    r.UniqueID,
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		ImagePath:   r.ImagePath,
		Description: r.Description,
		Content:     r.Content,
	}
}

// MoveItemRequest represents the JSON body for moving an item.
type MoveItemRequest struct {
	To *int `json:"to" validate:"required,gte=0"`
}

// Validate checks that the target position is present and non-negative.
func (r *MoveItemRequest) Validate() error {
	return toValidationError(requestValidate.Struct(r))
}

// ResetItemsRequest represents the JSON body replacing every item of a group.
type ResetItemsRequest struct {
	Items []ItemRequest `json:"items" validate:"required,max=1000,dive"`
}

// Validate checks the list and every item in it.
func (r *ResetItemsRequest) Validate() error {
	return toValidationError(requestValidate.Struct(r))
}

// ToDrafts converts the items to catalog item drafts, in order.
func (r *ResetItemsRequest) ToDrafts() []catalog.ItemDraft {
	drafts := make([]catalog.ItemDraft, len(r.Items))
	for i := range r.Items {
		drafts[i] = r.Items[i].ToDraft()
	}
	return drafts
}

// toValidationError converts validator errors to a *domain.ValidationError
// keyed by JSON field path (e.g. "items[1].title").
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe.Namespace())] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return domain.MsgRequired
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must have at most %s entries", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
