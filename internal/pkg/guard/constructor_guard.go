// Package guard provides the constructor guard pattern used by domain
// objects across the application. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable, so that entities and value objects
// can only be used after passing through their validating constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// error was supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value reports the object as unconstructed.
//
// Example:
//
//	type Price struct {
//	    cents int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPrice(cents int64) (Price, error) {
//	    if cents < 0 {
//	        return Price{}, errors.New("price cannot be negative")
//	    }
//	    return Price{cents: cents, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly
// constructed. Call it inside the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was created through its constructor.
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
