package game

import (
	"math/rand/v2"

	"github.com/plus3/agilitycamp/config"
)

// AssetID names a sprite image. Frontends map it to whatever they draw with.
type AssetID int

const (
	AssetPlayer AssetID = iota
	AssetBone
	AssetGrass
	AssetCloud
	AssetHawk
)

func (a AssetID) String() string {
	switch a {
	case AssetPlayer:
		return "player"
	case AssetBone:
		return "bone"
	case AssetGrass:
		return "grass"
	case AssetCloud:
		return "cloud"
	case AssetHawk:
		return "hawk"
	default:
		return "unknown"
	}
}

// Transform places an entity in the world. Rotation is in radians about z.
type Transform struct {
	Translation Vec3
	Rotation    float32
}

// Sprite is drawn centred on the entity's translation.
type Sprite struct {
	Asset AssetID
	Size  Vec2
}

type Player struct{}

type Bone struct{}

type Hawk struct {
	Speed float32
}

// Floater drifts horizontally and wraps at both screen edges.
type Floater struct {
	Speed float32
}

type Ground struct{}

type Decoration struct{}

type ScoreLabel struct{}

// TextSection is one run of label text.
type TextSection struct {
	Value string
}

// Label is screen text anchored at its transform's top-left corner.
type Label struct {
	Sections []TextSection
	Size     float32
	Color    config.RGB
}

// Score counts collected bones. Only the collision system writes it.
type Score struct {
	Value uint32
}

// Input is the per-frame control state written by the frontend.
type Input struct {
	Ascend bool
}

// Rng is the world's random source. Seeding it makes a run reproducible.
type Rng struct {
	*rand.Rand
}

// Camera describes the viewport. The world origin sits at the centre of the
// screen with +y pointing up.
type Camera struct {
	Width      int
	Height     int
	ClearColor config.RGB
}

// ToScreen converts a world point to screen pixels.
func (c Camera) ToScreen(p Vec2) (x, y float64) {
	return float64(p.X) + float64(c.Width)/2, float64(c.Height)/2 - float64(p.Y)
}

// Tally counts gameplay events for reports and the debug overlay.
type Tally struct {
	BonesCollected uint64
	BonesWrapped   uint64
	HawksSpawned   uint64
	HawkHits       uint64
}

func uniform(r *rand.Rand, lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}
