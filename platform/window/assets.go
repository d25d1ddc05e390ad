package window

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/plus3/agilitycamp/config"
	"github.com/plus3/agilitycamp/game"
	"golang.org/x/image/font/gofont/gobold"
)

// Assets are the loaded sprite images and label font.
type Assets struct {
	Images map[game.AssetID]*ebiten.Image
	Font   *text.GoTextFaceSource
}

// LoadAssets reads every sprite and the font named in cfg. Any missing or
// undecodable file is an error.
func LoadAssets(cfg config.AssetConfig) (*Assets, error) {
	paths := map[game.AssetID]string{
		game.AssetPlayer: cfg.Player,
		game.AssetBone:   cfg.Bone,
		game.AssetGrass:  cfg.Grass,
		game.AssetCloud:  cfg.Cloud,
		game.AssetHawk:   cfg.Hawk,
	}

	assets := &Assets{Images: make(map[game.AssetID]*ebiten.Image, len(paths))}
	for id, path := range paths {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s sprite %s: %w", id, path, err)
		}
		assets.Images[id] = img
	}

	font, err := loadFont(cfg.Font)
	if err != nil {
		return nil, err
	}
	assets.Font = font
	return assets, nil
}

func loadFont(path string) (*text.GoTextFaceSource, error) {
	data := gobold.TTF
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", path, err)
		}
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", path, err)
	}
	return source, nil
}
