package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var (
	ErrSessionTerminated = errors.New("session is already terminated")
	ErrUnknownPhase      = errors.New("unknown session phase")
)

// MoveSource produces the next move of one player.
type MoveSource interface {
	NextMove(ctx context.Context, board *entity.Board) (entity.Move, error)
}

// Presenter receives everything a session surfaces to the player.
type Presenter interface {
	ShowBoard(board *entity.Board)
	ShowTurn(player entity.Player)
	ShowRejected(player entity.Player, move entity.Move, reason error)
	ShowOutcome(outcome entity.Outcome)
}

type Phase int

const (
	PhaseAwaitingMove Phase = iota
	PhaseMoveRejected
	PhaseMoveAccepted
	PhaseTerminated
)

func (that Phase) String() string {
	switch that {
	case PhaseAwaitingMove:
		return "awaiting_move"
	case PhaseMoveRejected:
		return "move_rejected"
	case PhaseMoveAccepted:
		return "move_accepted"
	case PhaseTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("phase(%d)", int(that))
	}
}

// State is the current position of the session state machine.
// Reason is set only in PhaseMoveRejected, Outcome only in PhaseTerminated.
type State struct {
	Phase   Phase
	Player  entity.Player
	Reason  error
	Outcome entity.Outcome
}

// Session plays one game on a board it owns until a win or a draw.
type Session struct {
	id     string
	logger *slog.Logger

	board     *entity.Board
	sources   map[entity.Player]MoveSource
	presenter Presenter

	state     State
	halfTurns int
	started   bool
}

func NewSession(logger *slog.Logger, board *entity.Board, playerX, playerO MoveSource, presenter Presenter) *Session {
	id := uuid.NewString()

	return &Session{
		id:     id,
		logger: logger.With("component", "session", "session_id", id),
		board:  board,
		sources: map[entity.Player]MoveSource{
			entity.PlayerX: playerX,
			entity.PlayerO: playerO,
		},
		presenter: presenter,
		state:     State{Phase: PhaseAwaitingMove, Player: entity.PlayerX},
	}
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) State() State {
	return that.state
}

// HalfTurns is the number of accepted moves so far.
func (that *Session) HalfTurns() int {
	return that.halfTurns
}

// Run steps the session until it terminates and returns the outcome.
// It fails only when a move source does.
func (that *Session) Run(ctx context.Context) (entity.Outcome, error) {
	that.logger.Info("session started", "size", that.board.Size())

	for that.state.Phase != PhaseTerminated {
		if err := ctx.Err(); err != nil {
			return entity.Outcome{}, err
		}

		if err := that.Step(ctx); err != nil {
			return entity.Outcome{}, err
		}
	}

	that.logger.Info("session finished", "winner", that.state.Outcome.Winner, "half_turns", that.halfTurns)

	return that.state.Outcome, nil
}

// Step performs a single state transition.
func (that *Session) Step(ctx context.Context) error {
	if !that.started {
		that.started = true
		that.presenter.ShowBoard(that.board)
		that.presenter.ShowTurn(that.state.Player)
	}

	switch that.state.Phase {
	case PhaseAwaitingMove:
		return that.awaitMove(ctx)
	case PhaseMoveRejected:
		that.state = State{Phase: PhaseAwaitingMove, Player: that.state.Player}
		return nil
	case PhaseMoveAccepted:
		that.settle()
		return nil
	case PhaseTerminated:
		return ErrSessionTerminated
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPhase, that.state.Phase)
	}
}

func (that *Session) awaitMove(ctx context.Context) error {
	player := that.state.Player

	move, err := that.sources[player].NextMove(ctx, that.board)
	if err != nil {
		return fmt.Errorf("player %s failed to move: %w", player, err)
	}

	if err = that.validateMove(move); err != nil {
		that.logger.Debug("move rejected", "player", player, "move", move, "reason", err)
		that.state = State{Phase: PhaseMoveRejected, Player: player, Reason: err}
		that.presenter.ShowRejected(player, move, err)

		return nil
	}

	if err = that.board.Set(move.Row, move.Col, player); err != nil {
		return fmt.Errorf("failed to apply move %s: %w", move, err)
	}

	that.halfTurns++
	that.state = State{Phase: PhaseMoveAccepted, Player: player}
	that.presenter.ShowBoard(that.board)

	return nil
}

// validateMove - checks that the target cell exists and is empty.
func (that *Session) validateMove(move entity.Move) error {
	cell, err := that.board.Get(move.Row, move.Col)
	if err != nil {
		return err
	}

	if cell != entity.CellEmpty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return nil
}

// settle - decides whether the last accepted move ended the game.
func (that *Session) settle() {
	player := that.state.Player

	switch {
	case HasWon(that.board, player):
		that.terminate(entity.NewWin(player))
	case that.board.IsFull():
		that.terminate(entity.NewDraw())
	default:
		that.state = State{Phase: PhaseAwaitingMove, Player: player.Other()}
		that.presenter.ShowTurn(player.Other())
	}
}

func (that *Session) terminate(outcome entity.Outcome) {
	that.state = State{Phase: PhaseTerminated, Player: that.state.Player, Outcome: outcome}
	that.presenter.ShowOutcome(outcome)
}
