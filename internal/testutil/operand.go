package testutil

import "sync"

// PostInc increments *p and returns its previous value, standing in for a
// post-increment expression in assertion operands.
func PostInc(p *int) int {
	v := *p
	*p++
	return v
}

// Operand is a test operand with an observable side effect. Each Next call
// returns the current value, then increments it and records the call.
//
// Tests use Operand to prove an assertion evaluates each operand exactly once.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Operand struct {
	mu    sync.Mutex
	value int64
	calls int
}

// NewOperand creates an operand starting at value.
func NewOperand(value int64) *Operand {
	return &Operand{value: value}
}

// Next returns the current value and then increments it.
func (o *Operand) Next() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	v := o.value
	o.value++
	o.calls++
	return v
}

// Value returns the current value without incrementing.
func (o *Operand) Value() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Calls returns how many times Next has been called.
func (o *Operand) Calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}
