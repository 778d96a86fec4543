package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/stickerpad/internal/sticker"
)

func TestStickersAddClipboardError(t *testing.T) {
	original := readClipboardTextFn
	sentinel := errors.New("boom")
	readClipboardTextFn = func() (string, error) { return "", sentinel }
	t.Cleanup(func() { readClipboardTextFn = original })

	r := &root{program: "stickerpad", stickerFile: filepath.Join(t.TempDir(), "stickers.rc")}
	cmd, err := parseStickersCmd([]string{"-from-clipboard", "add"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else {
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected wrapped error, got %v", err)
		}
		if want := "failed to read glyph from clipboard"; !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to contain %q, got %v", want, err)
		}
	}
}

func TestStickersAddRejectsGlyphWithClipboard(t *testing.T) {
	r := &root{program: "stickerpad", stickerFile: filepath.Join(t.TempDir(), "stickers.rc")}
	cmd, err := parseStickersCmd([]string{"-from-clipboard", "add", "⭐"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "cannot be combined"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestStickersAddRequiresGlyph(t *testing.T) {
	r := &root{program: "stickerpad", stickerFile: filepath.Join(t.TempDir(), "stickers.rc")}
	cmd, err := parseStickersCmd([]string{"add", "   "}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "must not be empty"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestStickersAddAndRemoveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stickers.rc")
	r := &root{program: "stickerpad", stickerFile: path}

	cmd, err := parseStickersCmd([]string{"-size", "32", "add", "🙂"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	store := sticker.NewStore(path)
	presets := store.Load()
	if got := presets[len(presets)-1]; got.Glyph != "🙂" || got.Size != 32 {
		t.Fatalf("unexpected saved preset: %+v", got)
	}

	before := len(presets)
	cmd, err = parseStickersCmd([]string{"remove", "1"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if got := len(store.Load()); got != before-1 {
		t.Fatalf("expected %d presets after remove, got %d", before-1, got)
	}
}

func TestStickersRemoveRejectsBadIndex(t *testing.T) {
	r := &root{program: "stickerpad", stickerFile: filepath.Join(t.TempDir(), "stickers.rc")}
	cmd, err := parseStickersCmd([]string{"remove", "99"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "out of range"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestStickersUnknownCommand(t *testing.T) {
	r := &root{program: "stickerpad"}
	cmd, err := parseStickersCmd([]string{"frobnicate"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "unknown stickers command"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestSketchRejectsTinyWindow(t *testing.T) {
	r := &root{program: "stickerpad"}
	cmd, err := parseSketchCmd([]string{"-width", "50", "-height", "50"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "at least 200x200"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestConfigUnknownCommand(t *testing.T) {
	r := &root{program: "stickerpad"}
	cmd, err := parseConfigCmd([]string{"wat"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "unknown config command"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}
