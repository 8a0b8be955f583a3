// Package schema проверяет входящие документы проекта по JSON Schema.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed project.schema.json
var projectSchema []byte

// ValidationError содержит все нарушения схемы, найденные в документе
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// Validator проверяет документы по одной скомпилированной схеме
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator компилирует schemaData
func NewValidator(schemaData []byte) (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

// NewProjectValidator возвращает валидатор для ProjectData
func NewProjectValidator() (*Validator, error) {
	return NewValidator(projectSchema)
}

// ValidateBytes проверяет сырой JSON. Битый JSON - обычная ошибка,
// нарушения схемы возвращаются как *ValidationError.
func (v *Validator) ValidateBytes(data []byte) error {
	return v.validate(gojsonschema.NewBytesLoader(data))
}

// Validate проверяет уже декодированное значение
func (v *Validator) Validate(data interface{}) error {
	return v.validate(gojsonschema.NewGoLoader(data))
}

func (v *Validator) validate(doc gojsonschema.JSONLoader) error {
	result, err := v.schema.Validate(doc)
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Details = append(verr.Details, desc.String())
	}
	return verr
}
