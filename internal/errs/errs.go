// Package errs defines the error type returned across the HTTP boundary.
//
// Services and handlers return *HTTPError values explicitly; the global
// error handler in the middleware package turns them into JSON bodies with
// the carried status code.
package errs
