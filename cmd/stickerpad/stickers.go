package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/stickerpad/internal/clipboard"
	"github.com/example/stickerpad/internal/sticker"
)

// readClipboardTextFn is swapped out in tests.
var readClipboardTextFn = clipboard.ReadText

type stickersCmd struct {
	*root
	fs            *flag.FlagSet
	size          int
	fromClipboard bool
}

func parseStickersCmd(args []string, r *root) (*stickersCmd, error) {
	fs := flag.NewFlagSet("stickers", flag.ExitOnError)
	cmd := &stickersCmd{root: r.subcommand("stickers"), fs: fs}
	fs.IntVar(&cmd.size, "size", 24, "font size in pixels for an added sticker")
	fs.BoolVar(&cmd.fromClipboard, "from-clipboard", false, "take the glyph for an added sticker from the clipboard")
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (c *stickersCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *stickersCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}

	store := sticker.NewStore(c.stickerFile)
	switch args[0] {
	case "list":
		return c.runList(store)
	case "add":
		return c.runAdd(store, args[1:])
	case "remove":
		return c.runRemove(store, args[1:])
	default:
		return fmt.Errorf("unknown stickers command: %s", args[0])
	}
}

func (c *stickersCmd) runList(store *sticker.Store) error {
	for i, p := range store.Load() {
		fmt.Printf("%d: %s (size %d)\n", i+1, p.Glyph, p.Size)
	}
	return nil
}

func (c *stickersCmd) runAdd(store *sticker.Store, args []string) error {
	if c.size < 1 {
		return fmt.Errorf("sticker size must be positive, got %d", c.size)
	}
	var glyph string
	if c.fromClipboard {
		if len(args) > 0 {
			return fmt.Errorf("a glyph argument cannot be combined with -from-clipboard")
		}
		text, err := readClipboardTextFn()
		if err != nil {
			return fmt.Errorf("failed to read glyph from clipboard: %w", err)
		}
		glyph = strings.TrimSpace(text)
	} else {
		glyph = strings.TrimSpace(strings.Join(args, " "))
	}
	if glyph == "" {
		return fmt.Errorf("sticker glyph must not be empty")
	}

	presets := append(store.Load(), sticker.Preset{Glyph: glyph, Size: c.size})
	if err := store.Save(presets); err != nil {
		return fmt.Errorf("failed to save sticker palette: %w", err)
	}
	if c.notifier != nil {
		c.notifier.Stickers(store.Path)
	}
	fmt.Printf("added %s (size %d)\n", glyph, c.size)
	return nil
}

func (c *stickersCmd) runRemove(store *sticker.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("remove takes exactly one palette index")
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid palette index %q: %w", args[0], err)
	}
	presets := store.Load()
	if idx < 1 || idx > len(presets) {
		return fmt.Errorf("palette index %d out of range 1..%d", idx, len(presets))
	}
	removed := presets[idx-1]
	presets = append(presets[:idx-1], presets[idx:]...)
	if err := store.Save(presets); err != nil {
		return fmt.Errorf("failed to save sticker palette: %w", err)
	}
	if c.notifier != nil {
		c.notifier.Stickers(store.Path)
	}
	fmt.Printf("removed %s (size %d)\n", removed.Glyph, removed.Size)
	return nil
}
