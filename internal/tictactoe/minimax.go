package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// winScore is the value of a win found at depth 0.
const winScore = 10

// Minimax scores board from X's point of view. Wins are worth winScore-depth and
// losses depth-winScore, so faster wins and slower losses score higher.
// The board is mutated while searching and restored before returning.
func Minimax(board *entity.Board, depth int, maximizing bool) int {
	switch {
	case HasWon(board, entity.PlayerX):
		return winScore - depth
	case HasWon(board, entity.PlayerO):
		return depth - winScore
	case IsFull(board):
		return 0
	}

	mark := entity.PlayerO
	best := math.MaxInt
	if maximizing {
		mark = entity.PlayerX
		best = math.MinInt
	}

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] != entity.Empty {
				continue
			}

			board[row][col] = mark
			score := Minimax(board, depth+1, !maximizing)
			board[row][col] = entity.Empty

			if maximizing {
				best = max(best, score)
			} else {
				best = min(best, score)
			}
		}
	}

	return best
}

// FindBestMove returns the computer's (X) best move. Ties go to the first move in
// row-major order. ok is false when the board has no empty cell.
func FindBestMove(board *entity.Board) (move entity.Move, ok bool) {
	bestScore := math.MinInt

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] != entity.Empty {
				continue
			}

			board[row][col] = entity.ComputerMark
			score := Minimax(board, 0, false)
			board[row][col] = entity.Empty

			if score > bestScore {
				bestScore = score
				move = entity.Move{Row: row, Col: col}
				ok = true
			}
		}
	}

	return move, ok
}
