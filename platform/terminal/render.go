package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
	"github.com/plus3/agilitycamp/game"
)

// Screen is the tcell screen the render system draws into.
type Screen struct {
	tcell.Screen
}

var glyphs = map[game.AssetID]rune{
	game.AssetPlayer: '@',
	game.AssetBone:   '=',
	game.AssetGrass:  '"',
	game.AssetCloud:  '~',
	game.AssetHawk:   'V',
}

func rgb(c config.RGB) tcell.Color {
	r, g, b := c.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Projection maps world coordinates onto a grid of terminal cells.
type Projection struct {
	Camera game.Camera
	Cols   int
	Rows   int
}

// Cell returns the cell containing world point p.
func (p Projection) Cell(pt game.Vec2) (col, row int) {
	x, y := p.Camera.ToScreen(pt)
	col = int(math.Floor(x * float64(p.Cols) / float64(p.Camera.Width)))
	row = int(math.Floor(y * float64(p.Rows) / float64(p.Camera.Height)))
	return col, row
}

// Box returns the cells covered by a box of size centred at center,
// at least one cell in each direction.
func (p Projection) Box(center game.Vec3, size game.Vec2) (col0, row0, col1, row1 int) {
	col0, row0 = p.Cell(game.Vec2{X: center.X - size.X/2, Y: center.Y + size.Y/2})
	col1, row1 = p.Cell(game.Vec2{X: center.X + size.X/2, Y: center.Y - size.Y/2})
	return col0, row0, max(col1, col0+1), max(row1, row0+1)
}

// RenderSystem draws sprites as coloured glyph blocks and labels as text.
type RenderSystem struct {
	Camera  ecs.Singleton[game.Camera]
	Screen  ecs.Singleton[Screen]
	Sprites ecs.Query[struct {
		*game.Transform
		*game.Sprite
	}]
	Labels ecs.Query[struct {
		*game.Transform
		*game.Label
	}]

	GroundColor config.RGB
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	camera := s.Camera.Get()
	screen := s.Screen.Get()
	if camera == nil || screen == nil || screen.Screen == nil {
		return
	}

	cols, rows := screen.Size()
	proj := Projection{Camera: *camera, Cols: cols, Rows: rows}
	sky := tcell.StyleDefault.Background(rgb(camera.ClearColor))

	screen.Clear()
	for row := range rows {
		for col := range cols {
			screen.SetContent(col, row, ' ', nil, sky)
		}
	}

	// Farther sprites first: higher z is nearer.
	for _, pass := range []func(z float32) bool{
		func(z float32) bool { return z < 0.5 },
		func(z float32) bool { return z >= 0.5 },
	} {
		for item := range s.Sprites.Values() {
			if !pass(item.Transform.Translation.Z) {
				continue
			}
			style := sky.Foreground(tcell.ColorWhite)
			if item.Sprite.Asset == game.AssetGrass {
				style = tcell.StyleDefault.Background(rgb(s.GroundColor)).Foreground(tcell.ColorDarkGreen)
			}
			s.fill(screen, proj, item.Transform.Translation, item.Sprite.Size, glyphs[item.Sprite.Asset], style)
		}
	}

	for item := range s.Labels.Values() {
		col, row := proj.Cell(item.Transform.Translation.XY())
		style := sky.Foreground(rgb(item.Label.Color)).Bold(true)
		for _, section := range item.Label.Sections {
			for _, r := range section.Value {
				screen.SetContent(max(col, 0), max(row, 0), r, nil, style)
				col++
			}
		}
	}

	screen.Show()
}

func (s *RenderSystem) fill(screen *Screen, proj Projection, at game.Vec3, size game.Vec2, glyph rune, style tcell.Style) {
	col0, row0, col1, row1 := proj.Box(at, size)
	for row := max(row0, 0); row < min(row1, proj.Rows); row++ {
		for col := max(col0, 0); col < min(col1, proj.Cols); col++ {
			screen.SetContent(col, row, glyph, nil, style)
		}
	}
}
