package notify

import (
	"testing"
)

func TestLoadPreferencesEnvOverrides(t *testing.T) {
	t.Setenv("STICKERPAD_NOTIFY_TITLE", "My Pad")
	t.Setenv("STICKERPAD_NOTIFY_COPY_TEXT", "yoink: %s")
	prefs := LoadPreferences()
	if prefs.Title != "My Pad" {
		t.Errorf("Expected title 'My Pad', got %q", prefs.Title)
	}
	if got := prefs.Events[EventCopy].Template; got != "yoink: %s" {
		t.Errorf("Expected copy template override, got %q", got)
	}
	if got := prefs.Events[EventStickers].Template; got != DefaultPreferences().Events[EventStickers].Template {
		t.Errorf("Stickers template should keep its default, got %q", got)
	}
}

func TestNotifierDisabledByDefault(t *testing.T) {
	n := New(DefaultPreferences())
	if n.enabledFor(EventCopy) || n.enabledFor(EventStickers) {
		t.Fatal("expected all events disabled until enabled explicitly")
	}
	n.Enable(EventCopy, true)
	if !n.enabledFor(EventCopy) {
		t.Fatal("expected copy event enabled")
	}
	if n.enabledFor(EventStickers) {
		t.Fatal("stickers event should stay disabled")
	}
}
