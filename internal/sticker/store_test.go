package sticker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `# palette
sticker = 24 ⭐
sticker = 32 🙂

sticker = 16 :-)
`
	presets := Parse(strings.NewReader(input))
	want := []Preset{{"⭐", 24}, {"🙂", 32}, {":-)", 16}}
	if len(presets) != len(want) {
		t.Fatalf("expected %d presets, got %d", len(want), len(presets))
	}
	for i, p := range want {
		if presets[i] != p {
			t.Errorf("preset %d: expected %+v, got %+v", i, p, presets[i])
		}
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	input := `sticker = 24 ⭐
sticker = huge 🙂
sticker = -3 ✔
sticker = 40
palette = 12 x
sticker = 18 ❤
`
	presets := Parse(strings.NewReader(input))
	want := []Preset{{"⭐", 24}, {"❤", 18}}
	if len(presets) != len(want) {
		t.Fatalf("expected %d presets, got %d: %+v", len(want), len(presets), presets)
	}
	for i, p := range want {
		if presets[i] != p {
			t.Errorf("preset %d: expected %+v, got %+v", i, p, presets[i])
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.rc"))
	presets := s.Load()
	if len(presets) != len(Defaults()) {
		t.Fatalf("expected defaults, got %+v", presets)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "stickers.rc")
	s := NewStore(path)
	want := []Preset{{"⭐", 24}, {"multi word", 12}}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got := s.Load()
	if len(got) != len(want) {
		t.Fatalf("expected %d presets, got %d", len(want), len(got))
	}
	for i, p := range want {
		if got[i] != p {
			t.Errorf("preset %d: expected %+v, got %+v", i, p, got[i])
		}
	}
}

func TestLoadGarbageFileYieldsEmptyPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stickers.rc")
	if err := os.WriteFile(path, []byte("not a preset file\x00"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path)
	if presets := s.Load(); len(presets) != 0 {
		t.Fatalf("expected no presets from a garbage file, got %+v", presets)
	}
}

func TestNewStoreDefaultsPath(t *testing.T) {
	s := NewStore("")
	if s.Path == "" {
		t.Fatal("expected a non-empty default path")
	}
	if !strings.HasSuffix(s.Path, filepath.Join("stickerpad", "stickers.rc")) {
		t.Fatalf("unexpected default path: %s", s.Path)
	}
}
