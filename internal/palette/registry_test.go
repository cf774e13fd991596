package palette

import (
	"errors"
	"strings"
	"testing"
)

func TestIdentifyPaletteColors(t *testing.T) {
	reg := NewRegistry()

	for _, e := range Foregrounds() {
		if got := reg.Identify(e.Color); got != Identity(e.Name) {
			t.Errorf("Identify(%s) = %q, want %q", e.Name, got, e.Name)
		}
	}
	for _, e := range Highlights() {
		if got := reg.Identify(e.Color); got != Identity(e.Name) {
			t.Errorf("Identify(%s) = %q, want %q", e.Name, got, e.Name)
		}
	}
}

func TestIdentifyWithinTolerance(t *testing.T) {
	reg := NewRegistry()
	blue := Foregrounds()[0]

	nudged := blue.Color
	nudged.R += 0.0005
	if got := reg.Identify(nudged); got != Identity(blue.Name) {
		t.Errorf("Identify(nudged %s) = %q, want palette token", blue.Name, got)
	}

	shifted := blue.Color
	shifted.R += 0.05
	got := reg.Identify(shifted)
	if !got.IsCustom() {
		t.Errorf("Identify(shifted %s) = %q, want custom token", blue.Name, got)
	}
}

func TestIdentifyCustomFormat(t *testing.T) {
	reg := NewRegistry()

	id := reg.Identify(RGBA(0.123, 0.456, 0.789, 0.5))
	s := string(id)
	if !strings.HasPrefix(s, "custom:") {
		t.Fatalf("custom identity %q missing prefix", s)
	}
	if len(s) != len("custom:")+8 {
		t.Errorf("custom identity %q should carry 8 hex digits", s)
	}
}

func TestResolvePaletteTokens(t *testing.T) {
	reg := NewRegistry()

	for _, e := range Foregrounds() {
		c, ok := reg.Resolve(Identity(e.Name))
		if !ok {
			t.Errorf("Resolve(%q) failed", e.Name)
			continue
		}
		if !c.Equals(e.Color) {
			t.Errorf("Resolve(%q) = %v, want %v", e.Name, c, e.Color)
		}
	}
}

func TestResolveAutomatic(t *testing.T) {
	reg := NewRegistry()

	if _, ok := reg.Resolve(Automatic); ok {
		t.Error("automatic must not resolve to a literal color")
	}
}

func TestResolveMalformed(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name string
		id   Identity
	}{
		{"empty", ""},
		{"unknown name", "chartreuse"},
		{"custom short", "custom:ff00"},
		{"custom nonhex", "custom:zzzzzzzz"},
		{"custom empty", "custom:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := reg.Resolve(tt.id); ok {
				t.Errorf("Resolve(%q) should fail", tt.id)
			}
		})
	}
}

func TestResolveIdentifyRoundTrip(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name  string
		color Color
	}{
		{"palette green", Foregrounds()[1].Color},
		{"highlight lemon", Highlights()[0].Color},
		{"arbitrary", RGBA(0.3, 0.6, 0.9, 0.8)},
		{"near black", RGB(0.01, 0.02, 0.03)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := reg.Identify(tt.color)
			back, ok := reg.Resolve(id)
			if !ok {
				t.Fatalf("Resolve(Identify(%v)) failed", tt.color)
			}
			if !back.WithinTolerance(tt.color, 1.0/255) {
				t.Errorf("round trip %v -> %q -> %v exceeds 1/255", tt.color, id, back)
			}
		})
	}
}

func TestRegisterExtendsPalette(t *testing.T) {
	reg := NewRegistry()
	teal := RGB(0, 0.5, 0.5)

	if err := reg.Register("teal", teal); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if got := reg.Identify(teal); got != Identity("teal") {
		t.Errorf("Identify(teal) = %q after registration", got)
	}
	c, ok := reg.Resolve("teal")
	if !ok || !c.Equals(teal) {
		t.Errorf("Resolve(teal) = %v, %v", c, ok)
	}
}

func TestRegisterRejectsReserved(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name    string
		entry   string
		wantErr error
	}{
		{"automatic", "automatic", ErrNameReserved},
		{"custom prefix", "custom:abc", ErrNameReserved},
		{"empty", "", ErrNameReserved},
		{"existing", "blue", ErrNameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Register(tt.entry, RGB(0, 0, 0))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register(%q) error = %v, want %v", tt.entry, err, tt.wantErr)
			}
		})
	}
}

func TestCustomTolerance(t *testing.T) {
	reg := NewRegistry(WithTolerance(0.1))
	blue := Foregrounds()[0]

	shifted := blue.Color
	shifted.R += 0.05
	if got := reg.Identify(shifted); got != Identity(blue.Name) {
		t.Errorf("wide tolerance should match palette, got %q", got)
	}
}
