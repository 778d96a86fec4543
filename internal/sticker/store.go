// Package sticker persists the user's sticker presets: the glyph and size
// pairs offered in the toolbar palette.
package sticker

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Preset is one palette entry.
type Preset struct {
	Glyph string
	Size  int
}

// Defaults returns the built-in palette used when no preset file exists.
func Defaults() []Preset {
	return []Preset{
		{Glyph: "⭐", Size: 24},
		{Glyph: "❤", Size: 24},
		{Glyph: "🙂", Size: 24},
		{Glyph: "✔", Size: 24},
		{Glyph: "!", Size: 32},
	}
}

// Store reads and writes the preset file.
type Store struct {
	Path string
}

// NewStore creates a Store for path, falling back to the standard location
// when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{Path: path}
}

// DefaultPath returns the XDG location of the preset file.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stickerpad", "stickers.rc")
}

// Load returns the presets from the store's file. A missing or unreadable
// file yields the defaults so a fresh install has a usable palette.
// Malformed lines are skipped rather than failing the whole file.
func (s *Store) Load() []Preset {
	f, err := os.Open(s.Path)
	if err != nil {
		return Defaults()
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads presets from an io.Reader. Lines have the form
// "sticker = <size> <glyph>"; anything else is ignored.
func Parse(r io.Reader) []Preset {
	var presets []Preset
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "sticker" {
			continue
		}
		fields := strings.Fields(strings.TrimSpace(parts[1]))
		if len(fields) < 2 {
			continue
		}
		size, err := strconv.Atoi(fields[0])
		if err != nil || size < 1 {
			continue
		}
		glyph := strings.Join(fields[1:], " ")
		presets = append(presets, Preset{Glyph: glyph, Size: size})
	}
	return presets
}

// Save writes the presets to the store's file, creating the parent
// directory if needed.
func (s *Store) Save(presets []Preset) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create preset dir: %w", err)
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create preset file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(String(presets)); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	return nil
}

// String renders the presets in the file format Parse accepts.
func String(presets []Preset) string {
	var sb strings.Builder
	sb.WriteString("# stickerpad sticker presets\n")
	for _, p := range presets {
		fmt.Fprintf(&sb, "sticker = %d %s\n", p.Size, p.Glyph)
	}
	return sb.String()
}
