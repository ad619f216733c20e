package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrMalformedInput = errors.New("expected row and column")

// parseMove reads "row col" or "row,col". Range is checked by the game controller.
func parseMove(line string) (entity.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: got %q", ErrMalformedInput, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row: %w", ErrMalformedInput, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column: %w", ErrMalformedInput, err)
	}

	return entity.Move{Row: row, Col: col}, nil
}
