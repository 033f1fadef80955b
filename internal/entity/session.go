package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	ModePlayerVsPlayer = "pvp"
	ModeVsEngine       = "engine"
)

const (
	StateAwaitingInput  = "awaiting_input"
	StateEngineThinking = "engine_thinking"
	StateTerminal       = "terminal"
)

// Session is the authoritative state of one game: the board, whose turn it
// is, the mode, and the controller state. It is fully replaced on every
// reset; Epoch counts resets so results computed against an older board
// can be recognized and discarded.
type Session struct {
	ID          string    `json:"id"`
	Board       [9]string `json:"board"`
	Turn        string    `json:"player_turn"`
	Mode        string    `json:"mode"`
	EngineMark  string    `json:"engine_mark,omitempty"`
	State       string    `json:"state"`
	Winner      string    `json:"winner,omitempty"`
	WinningLine []int     `json:"winning_line,omitempty"`
	Epoch       int       `json:"epoch"`
}

// NewSession - creates a fresh session. X always moves first; when the
// engine plays X the session starts with the engine to move.
func NewSession(id, mode, engineMark string) *Session {
	session := &Session{
		ID:    id,
		Board: [9]string{},
		Turn:  PlayerX,
		Mode:  mode,
		State: StateAwaitingInput,
	}

	if mode == ModeVsEngine {
		session.EngineMark = engineMark
		if session.IsEngineTurn() {
			session.State = StateEngineThinking
		}
	}

	return session
}

// Reset - clears the board and returns the session to its initial state.
// There is no partial reset: board, turn, winner and state all go back
// together, and the epoch is bumped.
func (that *Session) Reset() {
	that.Board = [9]string{}
	that.Turn = PlayerX
	that.Winner = ""
	that.WinningLine = nil
	that.State = StateAwaitingInput
	that.Epoch++

	if that.IsEngineTurn() {
		that.State = StateEngineThinking
	}
}

func (that *Session) IsTerminal() bool {
	return that.State == StateTerminal
}

// IsBusy reports whether the engine owns the next move; human input is
// dropped while this is true.
func (that *Session) IsBusy() bool {
	return that.State == StateEngineThinking
}

func (that *Session) IsWithEngine() bool {
	return that.Mode == ModeVsEngine
}

func (that *Session) IsEngineTurn() bool {
	return that.IsWithEngine() && that.Turn == that.EngineMark && that.State != StateTerminal
}

// OpponentMark - returns the mark playing against the given one.
func OpponentMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
