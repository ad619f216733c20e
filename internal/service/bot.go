package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(round *entity.Round) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn plays the computer's best move on the round board.
func (that *botService) MakeTurn(round *entity.Round) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn", "roundID", round.ID)

	move, ok := tictactoe.FindBestMove(&round.Board)
	if !ok {
		log.Warn("no empty cell left", "move", entity.NoMove)
		return entity.NoMove, ErrNoAvailableMoves
	}

	if err := tictactoe.MakeTurn(round, entity.ComputerMark, move); err != nil {
		return entity.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "row", move.Row, "col", move.Col)

	return move, nil
}
