package expr

import (
	"errors"
	"strings"
	"testing"
)

func evaluate(t *testing.T, source string, vars map[string]any) any {
	t.Helper()
	expression, err := Parse(source)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	value, err := expression.Evaluate(vars)
	if err != nil {
		t.Fatalf("evaluate %q: %v", source, err)
	}
	return value
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		source   string
		vars     map[string]any
		expected any
	}{
		{"1+2*3", nil, int64(7)},
		{"(1+2)*3", nil, int64(9)},
		{"10-2-3", nil, int64(5)},
		{"7/2", nil, int64(3)},
		{"7%2", nil, int64(1)},
		{"1.5*2", nil, float64(3)},
		{"-4+1", nil, int64(-3)},
		{"--4", nil, int64(4)},
		{"1 < 2", nil, true},
		{"2 <= 1", nil, false},
		{"1 == 1 && 2 > 1", nil, true},
		{"false || 1 >= 2", nil, false},
		{"!false", nil, true},
		{`"a" < "b"`, nil, true},
		{`"ab" + "cd"`, nil, "abcd"},
		{`"n=" + 42`, nil, "n=42"},
		{`1 + " is one"`, nil, "1 is one"},
		{`"x\ty"`, nil, "x\ty"},
		{"true == true", nil, true},
		{"x*y", map[string]any{"x": 6, "y": 7}, int64(42)},
		{"name + name", map[string]any{"name": "go"}, "gogo"},
		{"n > 1.5", map[string]any{"n": 2}, true},
	}
	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			value := evaluate(t, test.source, test.vars)
			if value != test.expected {
				t.Fatalf("expected %v (%T), got %v (%T)", test.expected, test.expected, value, value)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	sources := []string{
		"",
		"1+",
		"(1",
		"1 2",
		"*3",
		`1 @`,
	}
	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			if _, err := Parse(source); err == nil {
				t.Fatalf("expected parse error for %q", source)
			}
		})
	}
}

func TestEvaluationErrors(t *testing.T) {
	tests := []struct {
		source string
		vars   map[string]any
	}{
		{"missing + 1", nil},
		{"1 && true", nil},
		{`"a" * 2`, nil},
		{"1/0", nil},
		{"1%0", nil},
		{"x < true", map[string]any{"x": 1}},
	}
	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			expression, err := Parse(test.source)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			_, err = expression.Evaluate(test.vars)
			if err == nil {
				t.Fatal("expected evaluation error")
			}
			var evalErr *EvaluationError
			if !errors.As(err, &evalErr) {
				t.Fatalf("expected *EvaluationError, got %T", err)
			}
		})
	}
}

func TestMissingVariableMessage(t *testing.T) {
	expression, err := Parse("nope")
	if err != nil {
		t.Fatal(err)
	}
	_, err = expression.Evaluate(nil)
	if err == nil || !strings.Contains(err.Error(), `"nope"`) {
		t.Fatalf("message must name the variable: %v", err)
	}
}

// raising always fails; used to assert that folded operands are never
// evaluated.
type raising struct{}

func (raising) Evaluate(vars map[string]any) (any, error) {
	panic("must not be evaluated")
}

func TestShortCircuitFolding(t *testing.T) {
	if e := LogicalAnd(False, raising{}); e != False {
		t.Fatal("and(false, x) must fold to the False singleton")
	}
	if e := LogicalOr(True, raising{}); e != True {
		t.Fatal("or(true, x) must fold to the True singleton")
	}

	x := raising{}
	if e := LogicalAnd(True, x); e != Expression(x) {
		t.Fatal("and(true, x) must fold to x unchanged")
	}
	if e := LogicalOr(False, x); e != Expression(x) {
		t.Fatal("or(false, x) must fold to x unchanged")
	}

	value, err := LogicalAnd(False, raising{}).Evaluate(nil)
	if err != nil {
		t.Fatal(err)
	}
	if value != false {
		t.Fatalf("expected false, got %v", value)
	}
}

func TestRuntimeShortCircuit(t *testing.T) {
	// Folding cannot kick in when the left operand is not a constant; the
	// right operand must still stay unevaluated at runtime.
	e := LogicalAnd(&variableRef{name: "x"}, raising{})
	value, err := e.Evaluate(map[string]any{"x": false})
	if err != nil {
		t.Fatal(err)
	}
	if value != false {
		t.Fatalf("expected false, got %v", value)
	}

	e = LogicalOr(&variableRef{name: "x"}, raising{})
	value, err = e.Evaluate(map[string]any{"x": true})
	if err != nil {
		t.Fatal(err)
	}
	if value != true {
		t.Fatalf("expected true, got %v", value)
	}
}

func TestConstantSingletons(t *testing.T) {
	if ConstantExpression(true) != True {
		t.Fatal("true must map to the True singleton")
	}
	if ConstantExpression(false) != False {
		t.Fatal("false must map to the False singleton")
	}
	e, err := Parse("true")
	if err != nil {
		t.Fatal(err)
	}
	if e != True {
		t.Fatal("parsed literal true must be the singleton")
	}
}

func TestTreeReuse(t *testing.T) {
	expression, err := Parse("x + 1")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		value, err := expression.Evaluate(map[string]any{"x": i})
		if err != nil {
			t.Fatal(err)
		}
		if value != int64(i+1) {
			t.Fatalf("expected %d, got %v", i+1, value)
		}
	}
}
