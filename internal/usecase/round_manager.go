package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	FirstTurnHuman    = "human"
	FirstTurnComputer = "computer"
	FirstTurnRandom   = "random"
)

type botService interface {
	MakeTurn(round *entity.Round) (entity.Move, error)
}

type RoundManager struct {
	logger    *slog.Logger
	bot       botService
	firstTurn string
}

// NewRoundManager - firstTurn is one of FirstTurnHuman, FirstTurnComputer or FirstTurnRandom.
func NewRoundManager(logger *slog.Logger, bot botService, firstTurn string) *RoundManager {
	return &RoundManager{
		logger:    logger.With("component", "round_manager"),
		bot:       bot,
		firstTurn: firstTurn,
	}
}

// StartRound creates a round on an empty board.
func (that *RoundManager) StartRound() *entity.Round {
	round := entity.NewRound(pkg.GenerateRoundID(), that.openingMark())

	that.logger.Info("round started", "roundID", round.ID, "turn", round.Turn.String())

	return round
}

func (that *RoundManager) MakeHumanTurn(round *entity.Round, move entity.Move) error {
	log := that.logger.With("method", "MakeHumanTurn", "roundID", round.ID)

	if err := tictactoe.MakeTurn(round, entity.HumanMark, move); err != nil {
		log.Debug("human turn rejected", "row", move.Row, "col", move.Col, "error", err)
		return fmt.Errorf("failed make turn: %w", err)
	}

	that.logResult(log, round)

	return nil
}

func (that *RoundManager) MakeComputerTurn(round *entity.Round) (entity.Move, error) {
	log := that.logger.With("method", "MakeComputerTurn", "roundID", round.ID)

	move, err := that.bot.MakeTurn(round)
	if err != nil {
		log.Error("computer turn failed", "error", err)
		return move, fmt.Errorf("failed make computer turn: %w", err)
	}

	that.logResult(log, round)

	return move, nil
}

func (that *RoundManager) openingMark() entity.Mark {
	switch that.firstTurn {
	case FirstTurnComputer:
		return entity.ComputerMark
	case FirstTurnRandom:
		return entity.RandomFirstTurn()
	default:
		return entity.HumanMark
	}
}

func (that *RoundManager) logResult(log *slog.Logger, round *entity.Round) {
	if !round.IsFinished() {
		return
	}

	if round.IsDraw() {
		log.Info("round finished", "result", "draw")
		return
	}

	log.Info("round finished", "winner", round.Winner.String())
}
