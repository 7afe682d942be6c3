// Package errs holds the error family shared by the domain, the use cases and
// the adapters.
//
// Every kind has a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) and a
// struct carrying the details. The struct unwraps to the sentinel and to its
// cause, so callers classify with errors.Is and the HTTP adapter maps kinds to
// status codes:
//
//	ObjectNotFoundError         404
//	AccessDeniedError           403
//	PreconditionViolationError  409
//	VersionIsInvalidError       409 (optimistic concurrency)
//	ValueIs*Error               400
//	GatewayError                500
package errs
