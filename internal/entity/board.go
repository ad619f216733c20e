package entity

// BoardSize is the number of rows and columns of the board.
const BoardSize = 3

// Mark is the content of a single cell.
type Mark int8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

// The computer always plays X and the human always plays O.
const (
	ComputerMark = PlayerX
	HumanMark    = PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Board is a 3x3 grid indexed as Board[row][col]. The zero value is an empty board.
type Board [BoardSize][BoardSize]Mark

// Move identifies a cell by row and column.
type Move struct {
	Row int
	Col int
}

// NoMove is reported when a board has no empty cell left.
var NoMove = Move{Row: -1, Col: -1}
