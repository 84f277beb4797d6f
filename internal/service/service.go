// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives bound
// request values from handlers, calls repository methods and returns
// serialized models or *errs.HTTPError values.
package service

import (
	"errors"

	"github.com/deppfellow/holocron/internal/errs"
	"github.com/deppfellow/holocron/internal/sqlerr"
	"gorm.io/gorm"
)

// notFoundOr maps a missing row to errs.ErrNotFound and any other storage
// error through sqlerr.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	return sqlerr.HandleError(err)
}
