package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	rowSeparator = "---|---|---"

	colorComputer = "1"
	colorHuman    = "4"
)

func (that *Server) printBoard(board entity.Board) {
	that.print(that.renderBoard(board))
}

// renderBoard draws the board framed by blank lines, e.g. " X | O |   ".
func (that *Server) renderBoard(board entity.Board) string {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			sb.WriteString(" " + that.styleMark(board[row][col]) + " ")
			if col < entity.BoardSize-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		if row < entity.BoardSize-1 {
			sb.WriteString(rowSeparator + "\n")
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

func (that *Server) styleMark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.output.String(mark.String()).Foreground(that.output.Color(colorComputer)).Bold().String()
	case entity.PlayerO:
		return that.output.String(mark.String()).Foreground(that.output.Color(colorHuman)).Bold().String()
	default:
		return mark.String()
	}
}
