// Package handler is the HTTP entry point of the business logic.
//
// Handlers bind and validate input through the validation package, call
// the service layer and render the result. Typed handlers run through the
// shared Handle pipeline in base.go.
package handler
