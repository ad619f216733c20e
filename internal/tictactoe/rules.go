package tictactoe

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

// winLines holds the (row, col) cells of the three rows, three columns and two diagonals.
var winLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// HasWon reports whether player owns a full row, column or diagonal.
func HasWon(board *entity.Board, player entity.Mark) bool {
	for _, line := range winLines {
		if board[line[0][0]][line[0][1]] == player &&
			board[line[1][0]][line[1][1]] == player &&
			board[line[2][0]][line[2][1]] == player {
			return true
		}
	}

	return false
}

// IsFull reports whether no empty cell is left. A full board can still hold a win,
// so callers check HasWon first.
func IsFull(board *entity.Board) bool {
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] == entity.Empty {
				return false
			}
		}
	}

	return true
}

// IsValidMove reports whether (row, col) is on the board and empty.
func IsValidMove(board *entity.Board, row, col int) bool {
	if !inBounds(row, col) {
		return false
	}

	return board[row][col] == entity.Empty
}

func inBounds(row, col int) bool {
	return row >= 0 && row < entity.BoardSize && col >= 0 && col < entity.BoardSize
}
