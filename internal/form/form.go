// Package form provides the form state container: current field values, the
// per-field error map produced by the validation rules, and the submission
// lifecycle. It is safe for concurrent use; the submit handler runs outside
// the lock.
package form

import (
	"context"
	"sync"

	"ecomarket/internal/validation"
)

// Handler is the externally supplied submit callback. It receives a snapshot
// of the form values; an error return marks the submission as failed.
type Handler func(ctx context.Context, values map[string]string) error

// Form holds field values and drives them through the validation engine.
type Form struct {
	mu         sync.Mutex
	initial    map[string]string
	values     map[string]string
	errors     map[string]string
	rules      validation.Rules
	submitting bool
}

// New creates a form seeded with the given initial values. The initial map
// is copied and kept as the reset snapshot.
func New(initial map[string]string) *Form {
	f := &Form{
		initial: make(map[string]string, len(initial)),
		values:  make(map[string]string, len(initial)),
		errors:  make(map[string]string),
	}
	for k, v := range initial {
		f.initial[k] = v
		f.values[k] = v
	}
	return f
}

// SetValidationRules replaces the active rule set wholesale.
func (f *Form) SetValidationRules(rules validation.Rules) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = rules
}

// UpdateField sets a field's value and immediately re-validates that field,
// updating or clearing its error entry.
func (f *Form) UpdateField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
	f.validateFieldLocked(name, value)
}

// ValidateField validates a single value against the field's rule, recording
// at most one error message. Fields without a rule are always valid.
func (f *Form) ValidateField(name, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateFieldLocked(name, value)
}

func (f *Form) validateFieldLocked(name, value string) bool {
	rule, ok := f.rules[name]
	if !ok {
		return true
	}
	if msg := validation.CheckField(value, rule); msg != "" {
		f.errors[name] = msg
		return false
	}
	delete(f.errors, name)
	return true
}

// ValidateForm re-validates every rule-bearing field against the current
// values. Every field is evaluated, not just the first failure, so the error
// map is complete for display.
func (f *Form) ValidateForm() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateFormLocked()
}

func (f *Form) validateFormLocked() bool {
	valid := true
	for name := range f.rules {
		if !f.validateFieldLocked(name, f.values[name]) {
			valid = false
		}
	}
	return valid
}

// ResetForm restores the initial value snapshot, clears all errors and the
// submitting flag.
func (f *Form) ResetForm() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = make(map[string]string, len(f.initial))
	for k, v := range f.initial {
		f.values[k] = v
	}
	f.errors = make(map[string]string)
	f.submitting = false
}

// SubmitForm validates and, when valid, invokes the handler with a snapshot
// of the current values. It returns false without calling the handler when
// validation fails, and false when the handler returns an error. The
// submitting flag is cleared on every exit path.
func (f *Form) SubmitForm(ctx context.Context, handler Handler) bool {
	f.mu.Lock()
	if !f.validateFormLocked() {
		f.mu.Unlock()
		return false
	}
	f.submitting = true
	snapshot := make(map[string]string, len(f.values))
	for k, v := range f.values {
		snapshot[k] = v
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	return handler(ctx, snapshot) == nil
}

// IsValid reports whether the error map is empty.
func (f *Form) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors) == 0
}

// IsSubmitting reports whether a submission is in flight.
func (f *Form) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Value returns the current value of one field.
func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

// Values returns a copy of the current field values.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Errors returns a copy of the current error map. Absence of a key means the
// field is valid.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Error returns the recorded error message for one field, if any.
func (f *Form) Error(name string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg, ok := f.errors[name]
	return msg, ok
}
