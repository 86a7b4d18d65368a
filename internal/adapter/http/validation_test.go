package http

import "testing"

type sampleReq struct {
	Mobile string  `validate:"required,mobile"`
	Amount float64 `validate:"required,gt=0,dec2"`
	Email  string  `validate:"omitempty,email"`
}

func TestCustomValidator_Mobile(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(&sampleReq{Mobile: "9876543210", Amount: 10.50}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	bad := []string{"", "12345", "98765432101", "98765abcde", "+919876543210"}
	for _, m := range bad {
		err := cv.Validate(&sampleReq{Mobile: m, Amount: 10})
		if err == nil {
			t.Fatalf("mobile %q accepted", m)
		}
		fes := ToFieldErrors(err)
		if m != "" && !containsFieldMsg(fes, "Mobile", "10-digit") {
			t.Fatalf("mobile %q: unexpected details %+v", m, fes)
		}
	}
}

func TestCustomValidator_Dec2(t *testing.T) {
	cv := NewValidator()

	if err := cv.Validate(&sampleReq{Mobile: "9876543210", Amount: 10.55}); err != nil {
		t.Fatalf("two decimals rejected: %v", err)
	}
	err := cv.Validate(&sampleReq{Mobile: "9876543210", Amount: 10.555})
	if err == nil {
		t.Fatal("three decimals accepted")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Amount", "2 decimal") {
		t.Fatalf("details: %+v", ToFieldErrors(err))
	}
}

func TestToFieldErrors_Required(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleReq{})
	if err == nil {
		t.Fatal("empty request accepted")
	}
	fes := ToFieldErrors(err)
	if !containsFieldMsg(fes, "Mobile", "required") || !containsFieldMsg(fes, "Amount", "required") {
		t.Fatalf("details: %+v", fes)
	}
}
