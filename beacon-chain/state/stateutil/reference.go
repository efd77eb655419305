package stateutil

import "sync"

// Reference structs are shared across BeaconState copies to understand when the state must use
// copy-on-write for shared fields or may modify a field in place when it holds the only reference
// to the field in question. Everywhere that a *BeaconState struct shares a field with another state
// instance, a reference counter should be incremented to track how many state instances share the
// field.
type Reference struct {
	refs uint
	lock sync.RWMutex
}

// NewRef initializes the Reference struct.
func NewRef(refs uint) *Reference {
	return &Reference{
		refs: refs,
	}
}

// Refs returns the reference number.
func (r *Reference) Refs() uint {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.refs
}

// AddRef adds 1 to the reference number.
func (r *Reference) AddRef() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.refs++
}

// MinusRef subtracts 1 from the reference number.
func (r *Reference) MinusRef() {
	r.lock.Lock()
	defer r.lock.Unlock()
	// Do not reduce further if object
	// already has 0 reference to prevent underflow.
	if r.refs > 0 {
		r.refs--
	}
}
