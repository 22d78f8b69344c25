// Package guard provides a small defensive-construction helper used by domain
// value objects, aggregates, and command objects. Embedding a ConstructorGuard
// lets a type distinguish instances produced by its constructor from zero
// values that bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error, so that validation of an unconstructed object never
// silently succeeds.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its designated
// constructor. The zero value reports the object as unconstructed.
//
// Example:
//
//	type Phone struct {
//	    number string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPhone(number string) (Phone, error) {
//	    if number == "" {
//	        return Phone{}, errors.New("number is required")
//	    }
//	    return Phone{number: number, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Phone) Validate() error {
//	    return p.guard.Validate(ErrPhoneIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
