package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	promptHumanTurn = "Player's turn (O). Enter row and column (0-2): "
	promptPlayAgain = "Try Again ? (Y/N): "

	msgComputerTurn = "AI's turn (X)"
	msgInvalidInput = "Invalid input! Please enter row and column between 0 and 2."
	msgCellOccupied = "Invalid move! This position is already occupied."
	msgComputerWins = "AI (X) wins!"
	msgHumanWins    = "YOU WIN !!"
	msgDraw         = " DRAW ! "
	msgGoodbye      = "Thanks for playing!"
)

type roundUseCase interface {
	StartRound() *entity.Round
	MakeHumanTurn(round *entity.Round, move entity.Move) error
	MakeComputerTurn(round *entity.Round) (entity.Move, error)
}

// Server plays rounds against the computer over a line based text stream.
type Server struct {
	logger *slog.Logger
	rounds roundUseCase

	input  *bufio.Scanner
	output *termenv.Output
}

func New(logger *slog.Logger, rounds roundUseCase, in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Server {
	return &Server{
		logger: logger.With("component", "console"),
		rounds: rounds,
		input:  bufio.NewScanner(in),
		output: termenv.NewOutput(out, opts...),
	}
}

// Start runs rounds until the player declines a replay or the input is closed.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := that.playRound(ctx)
		if errors.Is(err, io.EOF) {
			log.Info("input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to play round: %w", err)
		}

		again, err := that.askPlayAgain()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if !again {
			that.println(msgGoodbye)
			return nil
		}
	}
}

func (that *Server) playRound(ctx context.Context) error {
	round := that.rounds.StartRound()

	for round.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return err
		}

		that.printBoard(round.Board)

		if round.Turn == entity.ComputerMark {
			that.println(msgComputerTurn)

			move, err := that.rounds.MakeComputerTurn(round)
			if err != nil {
				return fmt.Errorf("computer turn failed: %w", err)
			}

			that.printf("AI (X) plays row %d, column %d\n", move.Row, move.Col)
			continue
		}

		if err := that.humanTurn(round); err != nil {
			return err
		}
	}

	that.printBoard(round.Board)
	that.announceResult(round)

	return nil
}

// humanTurn prompts until the player enters a playable cell.
func (that *Server) humanTurn(round *entity.Round) error {
	for {
		that.print(promptHumanTurn)

		line, err := that.readLine()
		if err != nil {
			return err
		}

		move, err := parseMove(line)
		if err != nil {
			that.logger.Debug("unparsable move", "input", line, "error", err)
			that.println(msgInvalidInput)
			continue
		}

		err = that.rounds.MakeHumanTurn(round, move)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperror.ErrInvalidCell):
			that.println(msgInvalidInput)
		case errors.Is(err, apperror.ErrCellOccupied):
			that.println(msgCellOccupied)
		default:
			return fmt.Errorf("failed to make turn: %w", err)
		}
	}
}

func (that *Server) announceResult(round *entity.Round) {
	switch {
	case round.IsDraw():
		that.println(msgDraw)
	case round.Winner == entity.ComputerMark:
		that.println(msgComputerWins)
	default:
		that.println(msgHumanWins)
	}
}

// askPlayAgain accepts any answer starting with y or Y.
func (that *Server) askPlayAgain() (bool, error) {
	that.print(promptPlayAgain)

	line, err := that.readLine()
	if err != nil {
		return false, err
	}

	return strings.HasPrefix(line, "y") || strings.HasPrefix(line, "Y"), nil
}

func (that *Server) readLine() (string, error) {
	if that.input.Scan() {
		return strings.TrimSpace(that.input.Text()), nil
	}

	if err := that.input.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", io.EOF
}

func (that *Server) print(s string) {
	fmt.Fprint(that.output, s)
}

func (that *Server) println(s string) {
	fmt.Fprintln(that.output, s)
}

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.output, format, args...)
}
