package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/dungeonforge/internal/world"
)

// Renderer draws a generated level to the screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// roomTypeColors maps each room type to a display color. Hues are picked in
// HSV so special rooms stand apart from the combat baseline.
var roomTypeColors = map[world.RoomType]tcell.Color{
	world.RoomUnassigned: toTcell(colorful.Hsv(0, 0, 0.5)),
	world.RoomEntrance:   toTcell(colorful.Hsv(120, 0.8, 0.9)),
	world.RoomExit:       toTcell(colorful.Hsv(280, 0.8, 0.9)),
	world.RoomBoss:       toTcell(colorful.Hsv(0, 0.9, 0.9)),
	world.RoomCombat:     toTcell(colorful.Hsv(0, 0, 0.75)),
	world.RoomShop:       toTcell(colorful.Hsv(45, 0.9, 0.9)),
	world.RoomTreasure:   toTcell(colorful.Hsv(190, 0.8, 0.9)),
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Render draws the level's tile grid with rooms tinted by type. offsetX and
// offsetY scroll the view for levels larger than the terminal.
func (r *Renderer) Render(level *world.Level, offsetX, offsetY int) {
	r.screen.Clear()

	termW, termH := r.screen.Size()
	for sy := 0; sy < termH-1; sy++ {
		for sx := 0; sx < termW; sx++ {
			x, y := sx+offsetX, sy+offsetY
			tile := level.TileAt(x, y)
			if tile == world.TileEmpty {
				continue
			}
			r.screen.SetContent(sx, sy, tile.Rune(), nil, r.tileStyle(level, x, y, tile))
		}
	}

	r.renderStatus(level, termH-1)
	r.screen.Show()
}

// tileStyle tints floor tiles by the type of the room they belong to;
// corridor floor and walls stay neutral.
func (r *Renderer) tileStyle(level *world.Level, x, y int, tile world.TileType) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		if idx := level.RoomIndexAt(x, y); idx >= 0 {
			return tcell.StyleDefault.Foreground(roomTypeColors[level.Rooms[idx].Type])
		}
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// renderStatus draws a one-line summary at the bottom of the screen.
func (r *Renderer) renderStatus(level *world.Level, y int) {
	entrance := level.EntrancePosition()
	msg := fmt.Sprintf("%d rooms, %d corridors | entrance (%d,%d) | arrows scroll, r regenerate, q quit",
		len(level.Rooms), len(level.Corridors), entrance.X, entrance.Y)

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, nil, style)
	}
}
