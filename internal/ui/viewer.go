// Package ui provides the interactive terminal preview of generated levels.
package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonforge/internal/world"
)

// Regenerate produces a replacement level when the user requests one.
type Regenerate func(ctx context.Context) (*world.Level, error)

// Viewer owns the terminal screen for the lifetime of the preview loop and
// restores the terminal on exit.
type Viewer struct {
	screen   tcell.Screen
	renderer *Renderer
	level    *world.Level

	offsetX, offsetY int
	running          bool
}

// NewViewer initializes the terminal and creates a viewer for the given
// level.
func NewViewer(level *world.Level) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	return &Viewer{
		screen:   screen,
		renderer: NewRenderer(screen),
		level:    level,
		running:  true,
	}, nil
}

// Run executes the preview loop until the user quits. regen is invoked on
// the 'r' key; a regeneration failure keeps the current level on screen.
func (v *Viewer) Run(ctx context.Context, regen Regenerate) error {
	defer v.screen.Fini()

	for v.running {
		v.renderer.Render(v.level, v.offsetX, v.offsetY)
		v.handleEvent(ctx, v.screen.PollEvent(), regen)
	}
	return nil
}

func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event, regen Regenerate) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKey(ctx, ev, regen)
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

func (v *Viewer) handleKey(ctx context.Context, ev *tcell.EventKey, regen Regenerate) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			if regen == nil {
				return
			}
			if level, err := regen(ctx); err == nil {
				v.level = level
				v.offsetX, v.offsetY = 0, 0
			}
		}
	}
}

// scroll pans the view, clamped to the level bounds.
func (v *Viewer) scroll(dx, dy int) {
	termW, termH := v.screen.Size()

	v.offsetX = clamp(v.offsetX+dx, 0, v.level.Bounds.Width-termW)
	v.offsetY = clamp(v.offsetY+dy, 0, v.level.Bounds.Height-termH+1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
