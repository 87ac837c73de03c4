package entity

import "math"

// Point - a position in the host's world space, where y grows upwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds - the square area covered by the board. Origin is the bottom-left corner.
type Bounds struct {
	Origin Point   `json:"origin"`
	Size   float64 `json:"size"`
}

// CenteredBounds - a board of the given side length centred on the world origin.
func CenteredBounds(length float64) Bounds {
	return Bounds{
		Origin: Point{X: -length / 2, Y: -length / 2},
		Size:   length,
	}
}

// CellSize - the side of one cell when the bounds are split into size×size cells.
func (that Bounds) CellSize(size uint32) float64 {
	if size == 0 {
		return 0
	}

	return that.Size / float64(size)
}

// PixelToCoordinates - maps a pointer position to the cell under it.
// Row 0 is the top row, so the vertical axis is flipped before dividing.
// Indices are truncated, not rounded.
func PixelToCoordinates(bounds Bounds, cellSize float64, pointer Point) (Coordinates, bool) {
	if cellSize <= 0 || bounds.Size <= 0 {
		return Coordinates{}, false
	}

	localX := pointer.X - bounds.Origin.X
	localY := (bounds.Origin.Y + bounds.Size) - pointer.Y

	if localX < 0 || localX >= bounds.Size || localY < 0 || localY >= bounds.Size {
		return Coordinates{}, false
	}

	return Coordinates{
		Row: cellIndex(localY, cellSize, bounds.Size),
		Col: cellIndex(localX, cellSize, bounds.Size),
	}, true
}

// cellIndex - truncated local/cellSize. A quotient that float division rounded
// up onto the next cell boundary is stepped back.
func cellIndex(local, cellSize, length float64) uint32 {
	idx := math.Floor(local / cellSize)
	for idx > 0 && (idx*cellSize > local || idx*cellSize >= length) {
		idx--
	}

	return uint32(idx)
}

// CoordinatesToPixel - the centre of a cell in world space.
func CoordinatesToPixel(bounds Bounds, cellSize float64, c Coordinates) Point {
	top := bounds.Origin.Y + bounds.Size

	return Point{
		X: bounds.Origin.X + float64(c.Col)*cellSize + cellSize/2,
		Y: top - float64(c.Row)*cellSize - cellSize/2,
	}
}
