package errors

import (
	"testing"
)

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("Amount", ErrAmount, "must be positive"),
		Field("Destination", ErrEmpty, "required"),
		nil,
		Field("Destination", ErrInput, "bad length"),
	)

	if errs := FieldErrors(err, "Amount"); len(errs) != 1 || !ErrAmount.Is(errs[0]) {
		t.Fatalf("unexpected amount errors: %v", errs)
	}
	if errs := FieldErrors(err, "Destination"); len(errs) != 2 {
		t.Fatalf("want two destination errors, got %v", errs)
	}
	if errs := FieldErrors(err, "Metadata"); len(errs) != 0 {
		t.Fatalf("want no errors, got %v", errs)
	}
}

func TestFieldNilIsNil(t *testing.T) {
	if err := Field("Amount", nil, "ignored"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := AppendField(nil, "Amount", nil); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestFieldErrorMessage(t *testing.T) {
	err := Field("Amount", ErrAmount, "got %d", 0)
	const want = `field "Amount": got 0: invalid amount`
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
