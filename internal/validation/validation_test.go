package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Name  string `yaml:"name" validate:"notblank"`
	Lives int    `yaml:"lives" validate:"min=1"`
}

type pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

type couple struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

func init() {
	RegisterStruct(func(sl validator.StructLevel) {
		p := sl.Current().Interface().(pair)
		if p.A != p.B {
			sl.ReportError(p.B, "b", "B", "eqfield", "a")
		}
	}, pair{})

	RegisterMessage("same_side", "must differ from left")
	RegisterStruct(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(couple)
		if c.Left == c.Right {
			sl.ReportError(c.Right, "right", "Right", "same_side", "")
		}
	}, couple{})
}

func TestStructValid(t *testing.T) {
	if err := Struct(sample{Name: "x", Lives: 3}); err != nil {
		t.Fatalf("Struct() = %v, expected nil", err)
	}
}

func TestStructReportsYAMLNames(t *testing.T) {
	err := Struct(sample{Name: "   ", Lives: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("error type = %T, expected Errors", err)
	}
	if _, ok := verrs["name"]; !ok {
		t.Errorf("missing name error in %v", verrs)
	}
	if _, ok := verrs["lives"]; !ok {
		t.Errorf("missing lives error in %v", verrs)
	}
	if !strings.Contains(verrs["name"], "cannot be blank") {
		t.Errorf("name message = %q", verrs["name"])
	}
}

func TestStructLevelRule(t *testing.T) {
	if err := Struct(pair{A: "x", B: "x"}); err != nil {
		t.Fatalf("matching pair rejected: %v", err)
	}
	if err := Struct(pair{A: "x", B: "y"}); err == nil {
		t.Fatal("mismatched pair accepted")
	}
}

func TestErrorsOrdering(t *testing.T) {
	e := Errors{"b": "second", "a": "first"}
	if e.Error() != "first; second" {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestRegisterMessage(t *testing.T) {
	err := Struct(couple{Left: "x", Right: "x"})

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("error = %v, expected Errors", err)
	}
	if got := verrs["right"]; got != "right must differ from left" {
		t.Errorf("message = %q", got)
	}
}
