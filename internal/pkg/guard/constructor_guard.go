// Package guard provides ConstructorGuard, a marker embedded in value objects and
// commands so that zero values created without their constructor fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its constructor.
//
// Example:
//
//	var ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill")
//
//	type Bill struct {
//	    value float64
//	    guard guard.ConstructorGuard
//	}
//
//	func (b Bill) Validate() error {
//	    return b.guard.Validate(ErrBillIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
