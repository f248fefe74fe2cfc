package grammars

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/lexpr/scan"
)

func TestLoadTable(t *testing.T) {
	loader := NewLoader([]string{"testdata/grammars.cue"})

	table, err := loader.Table("words")
	if err != nil {
		t.Fatal(err)
	}

	scanner := table.NewScanner("ab 12")
	var types []scan.TokenType
	var sb strings.Builder
	for {
		token, err := scanner.Produce()
		if err != nil {
			t.Fatal(err)
		}
		if token == nil {
			break
		}
		types = append(types, token.Type)
		sb.WriteString(token.Text)
	}
	expected := []scan.TokenType{"word", "space", "number"}
	if len(types) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, types)
	}
	for i := range expected {
		if types[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, types)
		}
	}
	if sb.String() != "ab 12" {
		t.Fatalf("round trip failed: %q", sb.String())
	}
}

func TestLoadTableStates(t *testing.T) {
	loader := NewLoader([]string{"testdata/grammars.cue"})

	table, err := loader.Table("quoted")
	if err != nil {
		t.Fatal(err)
	}

	scanner := table.NewScanner(`say "hi there" now`)
	for {
		token, err := scanner.Produce()
		if err != nil {
			t.Fatal(err)
		}
		if token == nil {
			break
		}
	}
	if scanner.StackDepth() != 0 {
		t.Errorf("expected balanced push/pop, stack depth %d", scanner.StackDepth())
	}
	if scanner.State() != scan.DefaultState {
		t.Errorf("expected default state, got %v", scanner.State())
	}
}

func TestGrammarNotFound(t *testing.T) {
	loader := NewLoader([]string{"testdata/grammars.cue"})
	_, err := loader.Table("nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrGrammarNotFound) {
		t.Fatalf("expected ErrGrammarNotFound, got %v", err)
	}
}

func TestSchemaValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cue")
	if err := os.WriteFile(path, []byte(`
grammars: bad: rules: [
	{pattern: 1, type: "x"},
]
`), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader([]string{path})
	if _, err := loader.Table("bad"); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestBadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badpattern.cue")
	if err := os.WriteFile(path, []byte(`
grammars: broken: rules: [
	{pattern: "(", type: "open"},
]
`), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader([]string{path})
	_, err := loader.Table("broken")
	if err == nil {
		t.Fatal("expected error for an invalid pattern")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("message must name the grammar: %s", err.Error())
	}
}
