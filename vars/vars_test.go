package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "a", "b"); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := FirstNonZero(0, 0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestStrToBool(t *testing.T) {
	tests := map[string]bool{
		"true":  true,
		"Yes":   true,
		"y":     true,
		"false": false,
		"no":    false,
		"":      false,
		"junk":  false,
	}
	for input, expected := range tests {
		if got := StrToBool(input); got != expected {
			t.Errorf("StrToBool(%q): expected %v, got %v", input, expected, got)
		}
	}
}
