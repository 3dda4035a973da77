// Package error defines domain-specific errors for the ledger service.
package error

import "errors"

// Kind classifies an error for callers that only care about its broad category.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not-found"
	KindUnavailable Kind = "unavailable"
	KindConflict    Kind = "conflict"
	KindInternal    Kind = "internal"
)

// ErrStoreUnavailable is wrapped around every persistence failure that is not
// a missing record.
var ErrStoreUnavailable = errors.New("store unavailable")

// kinded is implemented by the coded domain errors.
type kinded interface {
	Kind() Kind
}

// KindOf reports the kind of err. Store failures win over any coded error
// wrapping them; unknown errors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return KindUnavailable
	}
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindInternal
}
