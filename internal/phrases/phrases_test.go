package phrases

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("  Hard ")
	if err != nil {
		t.Fatalf("parse difficulty: %v", err)
	}
	if d != Hard {
		t.Fatalf("expected hard, got %s", d)
	}
	if _, err := ParseDifficulty("expert"); err == nil {
		t.Fatalf("expected error for unknown difficulty")
	}
}

func TestDifficultyNextWraps(t *testing.T) {
	if Easy.Next() != Intermediate || Intermediate.Next() != Hard || Hard.Next() != Easy {
		t.Fatalf("unexpected difficulty cycle")
	}
}

func TestBuiltinListsHaveTenPhrases(t *testing.T) {
	for _, d := range All() {
		list := Builtin(d)
		if len(list) != 10 {
			t.Fatalf("expected 10 %s phrases, got %d", d, len(list))
		}
		for _, p := range list {
			if err := Validate(p); err != nil {
				t.Fatalf("built-in phrase %q invalid: %v", p, err)
			}
		}
	}
	list := Builtin(Easy)
	list[0] = "mutated"
	if Builtin(Easy)[0] == "mutated" {
		t.Fatalf("expected Builtin to return a copy")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("Hello world"); err != nil {
		t.Fatalf("expected valid phrase: %v", err)
	}
	for _, bad := range []string{"", "   ", "two\nlines", "tab\there", strings.Repeat("a", MaxPhraseRunes+1)} {
		err := Validate(bad)
		if !errors.Is(err, ErrInvalidPhrase) {
			t.Fatalf("expected ErrInvalidPhrase for %q, got %v", bad, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  a   quick\tfox "); got != "a quick fox" {
		t.Fatalf("unexpected normalized phrase: %q", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.txt")
	content := "# comment\nFirst phrase\n\n  Second   phrase  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(got) != 2 || got[0] != "First phrase" || got[1] != "Second phrase" {
		t.Fatalf("unexpected phrases: %q", got)
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("# only a comment\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for empty phrase file")
	}
}
