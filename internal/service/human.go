package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	MovePrompt         = "Enter your move (row and column, e.g., 0 1): "
	InvalidMoveMessage = "Invalid move. Please try again."
)

type prompter interface {
	Prompt(ctx context.Context, text string) (string, error)
	Notify(text string)
}

// HumanService reads moves from a player at the terminal.
type HumanService struct {
	prompter prompter
}

func NewHumanService(prompter prompter) *HumanService {
	return &HumanService{
		prompter: prompter,
	}
}

// NextMove asks until the input is a valid coordinate on the board.
// It returns an error only when the input itself fails.
func (that *HumanService) NextMove(ctx context.Context, board *entity.Board) (entity.Move, error) {
	for {
		line, err := that.prompter.Prompt(ctx, MovePrompt)
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
		}

		move, err := ParseMove(line, board.Size())
		if err == nil {
			return move, nil
		}

		that.prompter.Notify(InvalidMoveMessage)
	}
}

// ParseMove - parses "row col" where both are non-negative integers below size.
func ParseMove(line string, size int) (entity.Move, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return entity.Move{}, fmt.Errorf("%w: expected two numbers, got %d fields", apperror.ErrInvalidInput, len(parts))
	}

	row, err := parseIndex(parts[0], size)
	if err != nil {
		return entity.Move{}, err
	}

	col, err := parseIndex(parts[1], size)
	if err != nil {
		return entity.Move{}, err
	}

	return entity.Move{Row: row, Col: col}, nil
}

func parseIndex(field string, size int) (int, error) {
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a non-negative integer", apperror.ErrInvalidInput, field)
		}
	}

	value, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	if value >= size {
		return 0, fmt.Errorf("%w: %d is outside [0, %d)", apperror.ErrOutOfBounds, value, size)
	}

	return value, nil
}
