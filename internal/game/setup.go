package game

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"valley-farm/assets"
	"valley-farm/internal/gamemap"
)

// NewRand seeds a generator. Zero seeds from the wall clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// LoadMap reads the farm layout from a Tiled file, or from the embedded
// farm when path is empty. The farm grid is fixed size, so a map of any
// other size is rejected.
func LoadMap(path string) (*gamemap.GameMap, error) {
	var r io.Reader = bytes.NewReader(assets.FarmTMX)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open map: %w", err)
		}
		defer f.Close()
		r = f
	}
	m, err := gamemap.LoadTMX(r)
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}
	if m.Width != assets.FarmWidth || m.Height != assets.FarmHeight {
		return nil, fmt.Errorf("map is %dx%d, want %dx%d", m.Width, m.Height, assets.FarmWidth, assets.FarmHeight)
	}
	return m, nil
}
