package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// MakeTurn places mark on the round board and updates the round status.
// A rejected turn leaves the round untouched.
func MakeTurn(round *entity.Round, mark entity.Mark, move entity.Move) error {
	if round.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(round, mark, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	round.Board[move.Row][move.Col] = mark
	updateRoundStatus(round, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(round *entity.Round, mark entity.Mark, move entity.Move) error {
	if round.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if IsValidMove(&round.Board, move.Row, move.Col) {
		return nil
	}

	if !inBounds(move.Row, move.Col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, move.Row, move.Col)
	}

	return apperror.ErrCellOccupied
}

// updateRoundStatus - checks the round status after a move.
func updateRoundStatus(round *entity.Round, mark entity.Mark) {
	switch {
	case HasWon(&round.Board, entity.PlayerX):
		finish(round, entity.PlayerX)
	case HasWon(&round.Board, entity.PlayerO):
		finish(round, entity.PlayerO)
	case IsFull(&round.Board):
		finish(round, entity.Empty)
	default:
		round.Turn = mark.Opponent()
	}
}

func finish(round *entity.Round, winner entity.Mark) {
	round.Winner = winner
	round.Status = entity.StatusFinished
	round.Turn = entity.Empty
}
