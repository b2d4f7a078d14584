package game

// direction of a line, with the range of starting cells that keep the line on the board
type direction struct {
	dCol, dRow     int
	minRow, maxRow int // inclusive
	maxCol         int // inclusive
}

// Scan order: vertical, horizontal, diagonal up, diagonal down.
var directions = [...]direction{
	{dCol: 0, dRow: 1, minRow: 0, maxRow: Rows - InARow, maxCol: Cols - 1},
	{dCol: 1, dRow: 0, minRow: 0, maxRow: Rows - 1, maxCol: Cols - InARow},
	{dCol: 1, dRow: 1, minRow: 0, maxRow: Rows - InARow, maxCol: Cols - InARow},
	{dCol: 1, dRow: -1, minRow: InARow - 1, maxRow: Rows - 1, maxCol: Cols - InARow},
}

// findLine returns the owner of the first complete line in scan order.
func (b *Board) findLine() (Player, bool) {
	for _, d := range directions {
		for col := 0; col <= d.maxCol; col++ {
			for row := d.minRow; row <= d.maxRow; row++ {
				if p, ok := b.lineAt(col, row, d); ok {
					return p, true
				}
			}
		}
	}
	return 0, false
}

func (b *Board) lineAt(col, row int, d direction) (Player, bool) {
	first := b.Get(col, row)
	if first == Empty {
		return 0, false
	}
	for i := 1; i < InARow; i++ {
		if b.Get(col+i*d.dCol, row+i*d.dRow) != first {
			return 0, false
		}
	}
	return first.Player()
}
