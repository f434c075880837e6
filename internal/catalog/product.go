// Package catalog holds the product model and the client-side catalog
// composition state: locally created products, hidden remote products, and
// the bulk-selection set.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Product represents a single catalog entry. The wire shape matches the
// remote catalog service; a product is immutable once created. Deleting one
// only removes it from visibility, it never mutates the record.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage,omitempty"`
	Rating             float64  `json:"rating,omitempty"`
	Stock              int      `json:"stock,omitempty"`
	Brand              string   `json:"brand,omitempty"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	Images             []string `json:"images,omitempty"`
}

// Draft is the caller-supplied payload for creating a new product. The
// remote service assigns the identifier and the remaining fields.
type Draft struct {
	Title    string  `json:"title"    validate:"required,max=100"`
	Price    float64 `json:"price"    validate:"required,gte=0"`
	Brand    string  `json:"brand"    validate:"required,max=100"`
	Category string  `json:"category" validate:"required,max=100"`
	Rating   float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Stock    int     `json:"stock,omitempty"  validate:"omitempty,gte=0"`
}

// DraftValidationError reports which draft fields failed which rule. It is
// produced before any request is made; an invalid draft is never submitted.
type DraftValidationError struct {
	Fields map[string]string
}

func (e *DraftValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, rule := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: failed on rule: %s", field, rule))
	}
	return "invalid product draft: " + strings.Join(parts, "; ")
}

var validate = validator.New()

// Validate checks the draft against its field constraints. Returns a
// *DraftValidationError listing every failing field, or nil.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		return &DraftValidationError{Fields: fields}
	}
	return fmt.Errorf("draft validation failed: %w", err)
}
