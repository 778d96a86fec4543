package theme

import (
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	input := `Name: midnight
Background: #101018
Canvas: #181820
Ink: #E0E0E0
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "midnight" {
		t.Errorf("Expected name 'midnight', got %q", th.Name)
	}
	if th.Background.R != 0x10 || th.Background.B != 0x18 {
		t.Errorf("Unexpected Background: %+v", th.Background)
	}
	if th.Ink.R != 0xE0 {
		t.Errorf("Unexpected Ink: %+v", th.Ink)
	}
	// Untouched keys keep the default.
	if th.ButtonBackground != Default().ButtonBackground {
		t.Errorf("ButtonBackground lost its default: %+v", th.ButtonBackground)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Canvas: notacolor\n")); err == nil {
		t.Fatal("expected error for malformed color")
	}
	if _, err := Parse(strings.NewReader("Canvas: #12345\n")); err == nil {
		t.Fatal("expected error for bad hex length")
	}
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	th, err := Parse(strings.NewReader("FutureKey: #112233\nInk = #FF0000\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Ink.R != 0xFF {
		t.Errorf("Unexpected Ink: %+v", th.Ink)
	}
}
