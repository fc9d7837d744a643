package prompt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateExists   = errors.New("template already exists")
	ErrEmptyModel       = errors.New("model name is empty")
)

// NotFoundError is returned by Get for an unregistered model. ValidModels
// lists every registered name at the time of the lookup.
type NotFoundError struct {
	Model       string
	ValidModels []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template for model %q not found (valid models: %s)", e.Model, strings.Join(e.ValidModels, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrTemplateNotFound
}

// ConflictError is returned by Register when the model already has a
// template and override was not requested.
type ConflictError struct {
	Model string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("template for model %q already exists", e.Model)
}

func (e *ConflictError) Unwrap() error {
	return ErrTemplateExists
}
