package window

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/ecs"
	"github.com/plus3/agilitycamp/game"
)

// Screen is the image the render systems draw into this frame.
type Screen struct {
	Image *ebiten.Image
}

func toColor(c config.RGB) color.RGBA {
	r, g, b := c.RGBA8()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

type drawItem struct {
	transform game.Transform
	sprite    game.Sprite
}

// sortByDepth orders items back to front. Equal depths keep query order.
func sortByDepth(items []drawItem) {
	slices.SortStableFunc(items, func(a, b drawItem) int {
		switch {
		case a.transform.Translation.Z < b.transform.Translation.Z:
			return -1
		case a.transform.Translation.Z > b.transform.Translation.Z:
			return 1
		default:
			return 0
		}
	})
}

// spriteGeoM maps an imgW x imgH image onto the sprite's world box,
// rotated about its centre.
func spriteGeoM(tr game.Transform, sprite game.Sprite, imgW, imgH int, camera game.Camera) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(imgW)/2, -float64(imgH)/2)
	m.Scale(float64(sprite.Size.X)/float64(imgW), float64(sprite.Size.Y)/float64(imgH))
	// World angles turn counter-clockwise with y up; screen y points down.
	m.Rotate(-float64(tr.Rotation))
	x, y := camera.ToScreen(tr.Translation.XY())
	m.Translate(x, y)
	return m
}

// SpriteRenderSystem clears the screen and draws every sprite back to
// front. Ground entities get a solid backing strip in the ground colour.
type SpriteRenderSystem struct {
	Camera  ecs.Singleton[game.Camera]
	Screen  ecs.Singleton[Screen]
	Sprites ecs.Query[struct {
		*game.Transform
		*game.Sprite
		Ground *game.Ground `ecs:"optional"`
	}]

	Assets      *Assets
	GroundColor config.RGB

	items []drawItem
}

func (s *SpriteRenderSystem) Execute(frame *ecs.UpdateFrame) {
	camera := s.Camera.Get()
	screen := s.Screen.Get()
	if camera == nil || screen == nil || screen.Image == nil {
		return
	}

	screen.Image.Fill(toColor(camera.ClearColor))

	s.items = s.items[:0]
	for item := range s.Sprites.Values() {
		if item.Ground != nil {
			x, y := camera.ToScreen(game.Vec2{
				X: item.Transform.Translation.X - item.Sprite.Size.X/2,
				Y: item.Transform.Translation.Y + item.Sprite.Size.Y/2,
			})
			vector.DrawFilledRect(screen.Image, float32(x), float32(y), item.Sprite.Size.X, item.Sprite.Size.Y, toColor(s.GroundColor), false)
		}
		s.items = append(s.items, drawItem{transform: *item.Transform, sprite: *item.Sprite})
	}
	sortByDepth(s.items)

	for _, item := range s.items {
		img := s.Assets.Images[item.sprite.Asset]
		if img == nil {
			continue
		}
		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM = spriteGeoM(item.transform, item.sprite, bounds.Dx(), bounds.Dy(), *camera)
		screen.Image.DrawImage(img, op)
	}
}

// LabelRenderSystem draws label text over the sprites.
type LabelRenderSystem struct {
	Camera ecs.Singleton[game.Camera]
	Screen ecs.Singleton[Screen]
	Labels ecs.Query[struct {
		*game.Transform
		*game.Label
	}]

	Assets *Assets
}

func (s *LabelRenderSystem) Execute(frame *ecs.UpdateFrame) {
	camera := s.Camera.Get()
	screen := s.Screen.Get()
	if camera == nil || screen == nil || screen.Image == nil {
		return
	}

	for item := range s.Labels.Values() {
		face := &text.GoTextFace{Source: s.Assets.Font, Size: float64(item.Label.Size)}
		x, y := camera.ToScreen(item.Transform.Translation.XY())

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(toColor(item.Label.Color))
		for _, section := range item.Label.Sections {
			text.Draw(screen.Image, section.Value, face, op)
			width, _ := text.Measure(section.Value, face, 0)
			op.GeoM.Translate(width, 0)
		}
	}
}
