package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// AttemptMove - plays the current turn's mark at the given cell. A move on
// a terminal session, a busy session or an occupied cell is rejected with
// the session left untouched; the turn only toggles on an accepted move.
func AttemptMove(session *entity.Session, cell int) error {
	if session.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if session.IsBusy() {
		return apperror.ErrEngineBusy
	}

	if cell < 0 || cell >= len(session.Board) {
		return apperror.ErrInvalidCell
	}

	if session.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	place(session, session.Turn, cell)

	return nil
}

// EngineMove - resolves the engine's turn. The search runs on a snapshot
// copy of the board, so exploration is never visible on the authoritative
// session. Only legal while the session is in the thinking state.
func EngineMove(session *entity.Session) error {
	if !session.IsBusy() {
		return apperror.ErrNotEngineTurn
	}

	engineMark := session.EngineMark
	result := BestMove(session.Board, engineMark, entity.OpponentMark(engineMark))

	// A full board should have been caught by the terminal guard; settle
	// the session without mutating the board.
	if result.Cell == NoCell {
		finish(session, Evaluate(session.Board))
		return nil
	}

	session.State = entity.StateAwaitingInput
	place(session, engineMark, result.Cell)

	return nil
}

func place(session *entity.Session, mark string, cell int) {
	session.Board[cell] = mark

	outcome := Evaluate(session.Board)
	if outcome.IsTerminal() {
		finish(session, outcome)
		return
	}

	session.Turn = entity.OpponentMark(mark)
	if session.IsEngineTurn() {
		session.State = entity.StateEngineThinking
	}
}

func finish(session *entity.Session, outcome Outcome) {
	session.State = entity.StateTerminal
	session.Turn = ""

	switch outcome.Result {
	case ResultWon:
		session.Winner = outcome.Winner
		session.WinningLine = []int{outcome.Line[0], outcome.Line[1], outcome.Line[2]}
	case ResultDraw:
		session.Winner = entity.PlayerTie
	}
}
