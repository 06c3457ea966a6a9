package form

import (
	"context"
	"errors"
	"testing"

	"ecomarket/internal/validation"
)

func testRules() validation.Rules {
	return validation.Rules{
		"email": {Required: true, Email: true},
		"name":  {Required: true, MinLength: 2},
	}
}

func TestUpdateFieldValidatesImmediately(t *testing.T) {
	f := New(nil)
	f.SetValidationRules(testRules())

	f.UpdateField("email", "bad")
	if msg, ok := f.Error("email"); !ok || msg != validation.MsgInvalidEmail {
		t.Errorf("error = %q, %v; want email message", msg, ok)
	}
	if f.IsValid() {
		t.Error("form must be invalid while an error is recorded")
	}

	f.UpdateField("email", "user@example.com")
	if _, ok := f.Error("email"); ok {
		t.Error("fixing the value must clear the error entry")
	}
}

// ValidateForm evaluates every rule-bearing field so the error map is
// complete, even though a single failure decides the return value.
func TestValidateFormRecordsAllErrors(t *testing.T) {
	f := New(nil)
	f.SetValidationRules(testRules())

	if f.ValidateForm() {
		t.Error("empty form with required fields must be invalid")
	}
	errs := f.Errors()
	if len(errs) != 2 {
		t.Errorf("got %d errors, want 2 (no short-circuit): %v", len(errs), errs)
	}
}

func TestSetValidationRulesReplacesWholesale(t *testing.T) {
	f := New(nil)
	f.SetValidationRules(testRules())
	f.SetValidationRules(validation.Rules{"city": {Required: true}})

	f.ValidateForm()
	if _, ok := f.Error("email"); ok {
		t.Error("old rules must not survive a rule replacement")
	}
	if _, ok := f.Error("city"); !ok {
		t.Error("new rules must be active")
	}
}

func TestResetFormRestoresInitialSnapshot(t *testing.T) {
	f := New(map[string]string{"name": "initial"})
	f.SetValidationRules(testRules())

	f.UpdateField("name", "x")
	f.ValidateForm()
	f.ResetForm()

	if got := f.Value("name"); got != "initial" {
		t.Errorf("Value(name) = %q, want initial snapshot", got)
	}
	if len(f.Errors()) != 0 {
		t.Error("reset must clear all errors")
	}
	if f.IsSubmitting() {
		t.Error("reset must clear the submitting flag")
	}
}

func TestSubmitFormSkipsHandlerWhenInvalid(t *testing.T) {
	f := New(nil)
	f.SetValidationRules(testRules())

	called := false
	ok := f.SubmitForm(context.Background(), func(ctx context.Context, values map[string]string) error {
		called = true
		return nil
	})
	if ok {
		t.Error("submit of an invalid form must fail")
	}
	if called {
		t.Error("handler must not run when validation fails")
	}
}

func TestSubmitFormSuccess(t *testing.T) {
	f := New(map[string]string{"email": "user@example.com", "name": "Jean"})
	f.SetValidationRules(testRules())

	var seen map[string]string
	ok := f.SubmitForm(context.Background(), func(ctx context.Context, values map[string]string) error {
		seen = values
		if !f.IsSubmitting() {
			t.Error("submitting flag must be set while the handler runs")
		}
		return nil
	})
	if !ok {
		t.Fatal("valid submission must succeed")
	}
	if seen["email"] != "user@example.com" {
		t.Errorf("handler got %v, want the value snapshot", seen)
	}
	if f.IsSubmitting() {
		t.Error("submitting flag must clear after success")
	}
}

// A failing handler surfaces as false, and the submitting flag clears
// regardless.
func TestSubmitFormHandlerFailure(t *testing.T) {
	f := New(map[string]string{"email": "user@example.com", "name": "Jean"})
	f.SetValidationRules(testRules())

	ok := f.SubmitForm(context.Background(), func(ctx context.Context, values map[string]string) error {
		return errors.New("boom")
	})
	if ok {
		t.Error("handler failure must surface as false")
	}
	if f.IsSubmitting() {
		t.Error("submitting flag must clear after handler failure")
	}
}

// The handler receives a snapshot; mutating it must not leak back into the
// form's state.
func TestSubmitFormSnapshotIsolation(t *testing.T) {
	f := New(map[string]string{"email": "user@example.com", "name": "Jean"})
	f.SetValidationRules(testRules())

	f.SubmitForm(context.Background(), func(ctx context.Context, values map[string]string) error {
		values["name"] = "mutated"
		return nil
	})
	if got := f.Value("name"); got != "Jean" {
		t.Errorf("Value(name) = %q, handler mutation leaked into the form", got)
	}
}
