package domain

// Forward direction vectors as (row step, column step). Scanning only forward
// from every cell finds each run once from its first disk.
var directions = [4][2]int{
	{0, 1},   // horizontal, left to right
	{-1, 0},  // vertical, bottom to top
	{-1, 1},  // diagonal ascending right
	{-1, -1}, // diagonal ascending left
}

// CheckWin reports whether player has ToWin disks in a row anywhere on the board.
func CheckWin(b *Board, player PlayerID) bool {
	if player == Empty {
		return false
	}

	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if b.cells[row][col] != player {
				continue
			}
			for _, dir := range directions {
				if 1+CountDiskInDirection(b, row, col, dir[0], dir[1], player) >= ToWin {
					return true
				}
			}
		}
	}

	return false
}

// CountDiskInDirection counts player's consecutive disks beyond (row, col)
// along (deltaRow, deltaCol). The starting cell itself is not counted.
func CountDiskInDirection(b *Board, row, col int, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for b.InBounds(r, c) && b.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
