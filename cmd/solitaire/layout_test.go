package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/phanxgames/solitaire"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLayoutDump(t *testing.T) {
	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			out, err := runCLI(t, "layout", "dump", "--format", format)
			if err != nil {
				t.Fatalf("dump: %v", err)
			}
			l, err := solitaire.ParseLayout([]byte(out), solitaire.LayoutFormat(format))
			if err != nil {
				t.Fatalf("dumped layout does not parse: %v\n%s", err, out)
			}
			if l.TableauPiles != 7 {
				t.Errorf("TableauPiles = %d", l.TableauPiles)
			}
		})
	}
}

func TestLayoutDumpUnknownFormat(t *testing.T) {
	if _, err := runCLI(t, "layout", "dump", "--format", "ini"); !errors.Is(err, solitaire.ErrUnknownLayoutFormat) {
		t.Errorf("err = %v, want ErrUnknownLayoutFormat", err)
	}
}

func TestLayoutValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(good, []byte("scale: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("scale = 0.0\ndrag_alpha = 2.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "layout", "validate", good)
	if err != nil || !strings.Contains(out, "valid: "+good) {
		t.Errorf("good layout: err %v output %q", err, out)
	}

	out, err = runCLI(t, "layout", "validate", bad)
	if err == nil {
		t.Fatal("bad layout passed validation")
	}
	for _, want := range []string{"invalid: " + bad, "1. scale must be positive", "2. dragAlpha"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := runCLI(t, "layout", "validate", filepath.Join(dir, "none.yaml")); err == nil {
		t.Error("missing file passed validation")
	}
}

func TestLayoutProblems(t *testing.T) {
	joined := errors.Join(errors.New("a"), errors.Join(errors.New("b"), errors.New("c")))
	wrapped := fmt.Errorf("layout x: %w", joined)
	got := layoutProblems(wrapped)
	if strings.Join(got, ",") != "a,b,c" {
		t.Errorf("layoutProblems = %v", got)
	}
	if got := layoutProblems(errors.New("single")); len(got) != 1 || got[0] != "single" {
		t.Errorf("layoutProblems(single) = %v", got)
	}
}
