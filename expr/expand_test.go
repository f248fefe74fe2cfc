package expr

import (
	"strings"
	"testing"
)

func anyName(string) bool { return true }

func TestExpand(t *testing.T) {
	tests := []struct {
		source   string
		vars     map[string]any
		expected any
	}{
		{"#1+2#-ok", nil, "3-ok"},
		{"plain text", nil, "plain text"},
		{"", nil, ""},
		{"a#1#b#2#c", nil, "a1b2c"},
		{"#x# and #y#", map[string]any{"x": 1, "y": 2}, "1 and 2"},
		{"#name#", map[string]any{"name": "go"}, "go"},
		{`#"a" + "b"#!`, nil, "ab!"},
	}
	for _, test := range tests {
		t.Run(test.source, func(t *testing.T) {
			expression, err := Expand(test.source, anyName)
			if err != nil {
				t.Fatalf("expand: %v", err)
			}
			value, err := expression.Evaluate(test.vars)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if value != test.expected {
				t.Fatalf("expected %v, got %v", test.expected, value)
			}
		})
	}
}

func TestExpandCustomDelimiter(t *testing.T) {
	expression, err := ExpandWith('$', "$1+1$ items", anyName)
	if err != nil {
		t.Fatal(err)
	}
	value, err := expression.Evaluate(nil)
	if err != nil {
		t.Fatal(err)
	}
	if value != "2 items" {
		t.Fatalf("expected %q, got %v", "2 items", value)
	}
}

func TestExpandUnterminated(t *testing.T) {
	_, err := Expand("a#1+2", anyName)
	if err == nil {
		t.Fatal("expected error for an unterminated embedded expression")
	}
	if !strings.Contains(err.Error(), "missing closing") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestExpandNamePredicate(t *testing.T) {
	isValid := func(name string) bool {
		return strings.HasPrefix(name, "var_")
	}

	expression, err := Expand("#var_a#", isValid)
	if err != nil {
		t.Fatal(err)
	}
	value, err := expression.Evaluate(map[string]any{"var_a": "yes"})
	if err != nil {
		t.Fatal(err)
	}
	if value != "yes" {
		t.Fatalf("expected %q, got %v", "yes", value)
	}

	_, err = Expand("#other#", isValid)
	if err == nil {
		t.Fatal("expected error for a rejected variable name")
	}
	if !strings.Contains(err.Error(), `"other"`) {
		t.Errorf("message must name the identifier: %s", err.Error())
	}
}

func TestEvaluateLeniently(t *testing.T) {
	expression, err := Expand("value: #x#", anyName)
	if err != nil {
		t.Fatal(err)
	}

	if got := EvaluateLeniently(expression, map[string]any{"x": 42}); got != "value: 42" {
		t.Fatalf("unexpected rendering: %q", got)
	}

	got := EvaluateLeniently(expression, nil)
	if !strings.Contains(got, "cannot evaluate") || !strings.Contains(got, `"x"`) {
		t.Fatalf("fallback must embed the error message: %q", got)
	}

	got = EvaluateLeniently(raising{}, nil)
	if !strings.Contains(got, "cannot evaluate") {
		t.Fatalf("panics must be downgraded too: %q", got)
	}
}
