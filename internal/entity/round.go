package entity

import "math/rand"

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Round is a single game from an empty board to a win or a draw.
type Round struct {
	ID     string
	Board  Board
	Turn   Mark
	Winner Mark
	Status string
}

func NewRound(id string, firstTurn Mark) *Round {
	return &Round{
		ID:     id,
		Board:  Board{},
		Turn:   firstTurn,
		Winner: Empty,
		Status: StatusOngoing,
	}
}

func (that *Round) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Round) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsDraw reports a finished round without a winner.
func (that *Round) IsDraw() bool {
	return that.IsFinished() && that.Winner == Empty
}

// RandomFirstTurn picks who opens the round.
func RandomFirstTurn() Mark {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return ComputerMark
	}
	return HumanMark
}
