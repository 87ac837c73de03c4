package entity

// TileIndex - side-table from board coordinates to whatever handle a presenter
// uses for the visual tile. The game logic never reads it.
type TileIndex[H any] struct {
	tiles map[Coordinates]H
}

func NewTileIndex[H any](size uint32) *TileIndex[H] {
	return &TileIndex[H]{
		tiles: make(map[Coordinates]H, int(size)*int(size)),
	}
}

func (that *TileIndex[H]) Bind(c Coordinates, handle H) {
	that.tiles[c] = handle
}

func (that *TileIndex[H]) Lookup(c Coordinates) (H, bool) {
	handle, ok := that.tiles[c]
	return handle, ok
}

func (that *TileIndex[H]) Len() int {
	return len(that.tiles)
}

func (that *TileIndex[H]) Reset() {
	clear(that.tiles)
}
