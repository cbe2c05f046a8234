package solitaire

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultLayoutValid(t *testing.T) {
	if err := DefaultLayout().Validate(); err != nil {
		t.Fatalf("DefaultLayout invalid: %v", err)
	}
}

func TestLayoutGeometry(t *testing.T) {
	l := DefaultLayout()
	w, h := l.ScaledCardSize()
	assertNear(t, "card w", w, 55.5)
	assertNear(t, "card h", h, 78)

	for i, wantX := range []float64{40, 125, 210, 295, 380, 465, 550} {
		p := l.TableauPilePosition(i)
		if p.X != wantX || p.Y != 92 {
			t.Errorf("TableauPilePosition(%d) = %+v, want (%v, 92)", i, p, wantX)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    LayoutFormat
		wantErr bool
	}{
		{"table.yaml", FormatYAML, false},
		{"table.YML", FormatYAML, false},
		{"conf/table.toml", FormatTOML, false},
		{"table.json", "", true},
		{"table", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownLayoutFormat) {
				t.Errorf("err = %v, want ErrUnknownLayoutFormat", err)
			}
			if got != tt.want {
				t.Errorf("format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLayoutOverridesDefaults(t *testing.T) {
	tests := []struct {
		name   string
		format LayoutFormat
		data   string
	}{
		{"yaml", FormatYAML, "scale: 2\ndebug: true\ntableau:\n  x: 10\ndeal:\n  enabled: false\n"},
		{"toml", FormatTOML, "scale = 2.0\ndebug = true\n\n[tableau]\nx = 10.0\n\n[deal]\nenabled = false\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := ParseLayout([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("ParseLayout: %v", err)
			}
			if l.Scale != 2 || !l.Debug || l.Tableau.X != 10 || l.Deal.Enabled {
				t.Errorf("overrides not applied: %+v", l)
			}
			if l.Tableau.Y != 92 || l.Deal.Duration != 0.25 || l.CascadeSpacing != 20 {
				t.Errorf("defaults lost: tableau.y %v duration %v cascade %v", l.Tableau.Y, l.Deal.Duration, l.CascadeSpacing)
			}
		})
	}
}

func TestParseLayoutInvalid(t *testing.T) {
	_, err := ParseLayout([]byte("scale: 0\ndragAlpha: 1.5\nfoundationXs: [1, 2]\n"), FormatYAML)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"scale must be positive", "dragAlpha", "need 4 foundation positions"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestParseLayoutDecodeErrors(t *testing.T) {
	if _, err := ParseLayout([]byte("scale: [oops"), FormatYAML); err == nil {
		t.Error("expected yaml decode error")
	}
	if _, err := ParseLayout([]byte("scale = = 2"), FormatTOML); err == nil {
		t.Error("expected toml decode error")
	}
	if _, err := ParseLayout(nil, LayoutFormat("ini")); !errors.Is(err, ErrUnknownLayoutFormat) {
		t.Errorf("err = %v, want ErrUnknownLayoutFormat", err)
	}
}

func TestEncodeParsesBack(t *testing.T) {
	for _, format := range []LayoutFormat{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := DefaultLayout().Encode(format)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := ParseLayout(data, format)
			if err != nil {
				t.Fatalf("ParseLayout: %v\n%s", err, data)
			}
			if !reflect.DeepEqual(got, DefaultLayout()) {
				t.Errorf("decoded layout differs:\n%+v\nwant\n%+v", got, DefaultLayout())
			}
		})
	}
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yml")
	if err := os.WriteFile(path, []byte("pileSpacing: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if l.PileSpacing != 90 {
		t.Errorf("PileSpacing = %v, want 90", l.PileSpacing)
	}

	if _, err := LoadLayout(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadLayout(filepath.Join(dir, "table.ini")); !errors.Is(err, ErrUnknownLayoutFormat) {
		t.Errorf("err = %v, want ErrUnknownLayoutFormat", err)
	}
}
