package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Run("Player vs player", func(t *testing.T) {
		// When: creating a fresh pvp session
		session := NewSession("123", ModePlayerVsPlayer, "")

		// Then: the board is empty, X moves first and input is awaited
		expected := &Session{
			ID:    "123",
			Board: [9]string{},
			Turn:  PlayerX,
			Mode:  ModePlayerVsPlayer,
			State: StateAwaitingInput,
		}

		require.Equal(t, expected, session)
	})

	t.Run("Engine on O waits for the human", func(t *testing.T) {
		// When: creating an engine session with the engine on O
		session := NewSession("123", ModeVsEngine, PlayerO)

		// Then: the human's X moves first
		require.Equal(t, StateAwaitingInput, session.State)
		assert.False(t, session.IsBusy())
		assert.False(t, session.IsEngineTurn())
	})

	t.Run("Engine on X starts thinking", func(t *testing.T) {
		// When: creating an engine session with the engine on X
		session := NewSession("123", ModeVsEngine, PlayerX)

		// Then: the session starts in the thinking state
		require.Equal(t, StateEngineThinking, session.State)
		assert.True(t, session.IsBusy())
	})
}

func TestSession_Reset(t *testing.T) {
	t.Run("Full replacement", func(t *testing.T) {
		// Given: a finished session with leftovers in every field
		session := NewSession("123", ModePlayerVsPlayer, "")
		session.Board[0] = PlayerX
		session.Board[4] = PlayerO
		session.Turn = ""
		session.State = StateTerminal
		session.Winner = PlayerX
		session.WinningLine = []int{0, 1, 2}

		// When: resetting
		session.Reset()

		// Then: everything goes back at once and the epoch is bumped
		require.Equal(t, [9]string{}, session.Board)
		require.Equal(t, PlayerX, session.Turn)
		require.Equal(t, StateAwaitingInput, session.State)
		require.Empty(t, session.Winner)
		require.Nil(t, session.WinningLine)
		assert.Equal(t, 1, session.Epoch)
	})

	t.Run("Engine on X resumes thinking after reset", func(t *testing.T) {
		// Given: an engine-on-X session mid-game
		session := NewSession("123", ModeVsEngine, PlayerX)
		session.Board[0] = PlayerX
		session.State = StateAwaitingInput
		session.Turn = PlayerO

		// When: resetting
		session.Reset()

		// Then: the fresh board belongs to the engine again
		require.Equal(t, StateEngineThinking, session.State)
		assert.Equal(t, PlayerX, session.Turn)
	})
}

func TestOpponentMark(t *testing.T) {
	assert.Equal(t, PlayerO, OpponentMark(PlayerX))
	assert.Equal(t, PlayerX, OpponentMark(PlayerO))
}
