// Package guard provides the constructor guard pattern used by value objects,
// commands, and queries to ensure they are only created through their
// designated constructor functions. A zero-value struct fails validation,
// which prevents bypassing the invariant checks the constructors perform.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied. It guarantees validation always fails with a meaningful
// message for improperly constructed objects.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// struct and initialize it with NewConstructorGuard inside the constructor;
// zero-value instances of the struct will then fail Validate.
//
// Example:
//
//	type Intake struct {
//	    patientRef string
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewIntake(patientRef string) (Intake, error) {
//	    if patientRef == "" {
//	        return Intake{}, errs.NewValueIsRequiredError("patientRef")
//	    }
//	    return Intake{patientRef: patientRef, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i Intake) Validate() error {
//	    return i.guard.Validate(ErrIntakeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// constructed. Call this only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}

	if validationError == nil {
		return ErrDefaultConstructorGuard
	}

	return validationError
}
