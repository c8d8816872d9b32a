package assets

import _ "embed"

// FarmTMX is the farm layout as a Tiled map. Tileset ids follow the
// gamemap tile kinds; layer "base" holds the ground.
//
//go:embed farm.tmx
var FarmTMX []byte

// Farm geometry shared by the map, store and renderer.
const (
	FarmWidth  = 40
	FarmHeight = 30
	TileSize   = 32
)
