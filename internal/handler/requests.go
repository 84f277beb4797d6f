package handler

import "github.com/deppfellow/holocron/internal/validation"

// EmptyRequest is bound by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// IDRequest carries the {id} path segment. Non-integer values fail binding
// and ids start at 1; both come back as 400.
type IDRequest struct {
	ID uint `param:"id" validate:"min=1"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}
