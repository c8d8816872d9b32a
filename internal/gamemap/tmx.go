package gamemap

import (
	"fmt"
	"io"

	"github.com/lafriks/go-tiled"
)

// BaseLayer is the Tiled layer holding ground kinds.
const BaseLayer = "base"

// LoadTMX reads a Tiled map whose "base" layer uses the farm tileset. Empty
// cells become grass.
func LoadTMX(r io.Reader) (*GameMap, error) {
	tm, err := tiled.LoadReader(".", r)
	if err != nil {
		return nil, fmt.Errorf("parse tmx: %w", err)
	}
	var layer *tiled.Layer
	for _, l := range tm.Layers {
		if l.Name == BaseLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("tmx has no %q layer", BaseLayer)
	}
	if len(layer.Tiles) != tm.Width*tm.Height {
		return nil, fmt.Errorf("layer %q has %d tiles, want %d", BaseLayer, len(layer.Tiles), tm.Width*tm.Height)
	}

	m := New(tm.Width, tm.Height)
	for y := 0; y < tm.Height; y++ {
		for x := 0; x < tm.Width; x++ {
			t := layer.Tiles[y*tm.Width+x]
			if t == nil || t.Nil {
				continue
			}
			k := Kind(t.ID)
			if k >= kindCount {
				return nil, fmt.Errorf("tile %d at (%d,%d) is not a farm kind", t.ID, x, y)
			}
			m.Set(x, y, Make(k))
		}
	}
	return m, nil
}
