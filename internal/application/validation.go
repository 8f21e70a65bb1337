package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"exomind/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// recallParams carries validation rules for a recall request
type recallParams struct {
	TopK           int     `validate:"gte=0"`
	LexicalWeight  float64 `validate:"gte=0"`
	GraphWeight    float64 `validate:"gte=0"`
	SemanticWeight float64 `validate:"gte=0"`
}

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateRecall checks a recall request: non-negative topk and weights.
// Any query string is accepted; one without terms ranks by graph signal alone.
func ValidateRecall(topk int, w domain.Weights) error {
	return validateStruct(recallParams{
		TopK:           topk,
		LexicalWeight:  w.Lexical,
		GraphWeight:    w.Graph,
		SemanticWeight: w.Semantic,
	})
}

// ValidateWeights checks that every signal weight is non-negative
func ValidateWeights(w domain.Weights) error {
	return ValidateRecall(0, w)
}

// ValidateTopK checks that topk is at least one
func ValidateTopK(topk int) error {
	if topk < 1 {
		return &ValidationError{Field: "topk", Message: fmt.Sprintf("must be at least 1, got %d", topk)}
	}
	return nil
}

// validateStruct translates the first validator failure into a ValidationError
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Field:   fieldName(fe.Field()),
			Message: fmt.Sprintf("must be %s, got %v", describeRule(fe.Tag(), fe.Param()), fe.Value()),
		}
	}
	return err
}

func describeRule(tag, param string) string {
	switch tag {
	case "gte":
		return "at least " + param
	case "lte":
		return "at most " + param
	default:
		return tag
	}
}

// fieldName maps struct field names to the flag-style names users see
func fieldName(field string) string {
	replacements := map[string]string{
		"TopK":           "topk",
		"LexicalWeight":  "lexical weight",
		"GraphWeight":    "graph weight",
		"SemanticWeight": "semantic weight",
	}
	if name, ok := replacements[field]; ok {
		return name
	}
	return strings.ToLower(field)
}
