package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/laziz/pkg/validate"
)

type categoryInput struct {
	TitlePrimary   string `json:"titlePrimary"   validate:"required,max=255"`
	TitleSecondary string `json:"titleSecondary" validate:"required,max=255"`
	Order          *int   `json:"order"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(categoryInput{
		TitlePrimary:   "Grills",
		TitleSecondary: "مشاوي",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(categoryInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	if _, ok := errs["titlePrimary"]; !ok {
		t.Error("expected titlePrimary to be required")
	}
	if _, ok := errs["titleSecondary"]; !ok {
		t.Error("expected titleSecondary to be required")
	}
}

func TestRequiredRejectsWhitespaceOnly(t *testing.T) {
	errs := validate.Struct(categoryInput{TitlePrimary: "   ", TitleSecondary: "ok"})
	if _, ok := errs["titlePrimary"]; !ok {
		t.Error("expected whitespace-only title to fail required")
	}
}

func TestRequiredPointerToZeroIsProvided(t *testing.T) {
	type in struct {
		Price *float64 `json:"price" validate:"required,gte=0"`
	}
	zero := 0.0
	if errs := validate.Struct(in{Price: &zero}); validate.HasErrors(errs) {
		t.Errorf("price 0 should be a valid provided value, got: %v", errs)
	}
	if errs := validate.Struct(in{}); !validate.HasErrors(errs) {
		t.Error("nil price should fail required")
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	type in struct {
		Image string `json:"image" validate:"nullable,url"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("empty nullable field should pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Image: "not a url"}); !validate.HasErrors(errs) {
		t.Error("non-empty nullable field should still be checked")
	}
}

func TestNumericBoundsOnPointers(t *testing.T) {
	type in struct {
		Price *float64 `json:"price" validate:"nullable,gte=0"`
	}
	neg := -4.0
	errs := validate.Struct(in{Price: &neg})
	if _, ok := errs["price"]; !ok {
		t.Error("expected negative price to fail gte=0")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "admin@laziz.local"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestMaxOnStrings(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,max=3"`
	}
	if errs := validate.Struct(in{Name: "abcd"}); !validate.HasErrors(errs) {
		t.Error("expected max=3 to fail for 4-char string")
	}
}
