package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMove(t *testing.T) {
	t.Run("Completes own winning line", func(t *testing.T) {
		// Given: X has two in the top row, the third cell is empty
		board := [9]string{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: X searches for its best move
		result := BestMove(board, entity.PlayerX, entity.PlayerO)

		// Then: X completes the top row
		require.Equal(t, 2, result.Cell)
		require.Equal(t, 10, result.Score)
	})

	t.Run("Blocks opponent's winning line", func(t *testing.T) {
		// Given: O threatens the bottom row and X has no winning move of its own
		board := [9]string{
			entity.EmptyCell, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.PlayerX,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
		}

		// When: X searches for its best move
		result := BestMove(board, entity.PlayerX, entity.PlayerO)

		// Then: X blocks at cell 8
		require.Equal(t, 8, result.Cell)
	})

	t.Run("Deterministic", func(t *testing.T) {
		// Given: a mid-game board
		board := [9]string{
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: searching the same position twice
		first := BestMove(board, entity.PlayerX, entity.PlayerO)
		second := BestMove(board, entity.PlayerX, entity.PlayerO)

		// Then: the result is identical
		require.Equal(t, first, second)
	})

	t.Run("Lowest index wins ties", func(t *testing.T) {
		// Given: X took the center; all corners are equal-best replies for O
		board := [9]string{}
		board[4] = entity.PlayerX

		// When: O searches for its best move
		result := BestMove(board, entity.PlayerO, entity.PlayerX)

		// Then: the lowest-indexed corner is picked, with drawing value
		require.Equal(t, 0, result.Cell)
		require.Equal(t, 0, result.Score)
	})

	t.Run("No move on a terminal board", func(t *testing.T) {
		// Given: a board already won by X
		board := [9]string{
			entity.PlayerX, entity.PlayerX, entity.PlayerX,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: X searches the won board
		result := BestMove(board, entity.PlayerX, entity.PlayerO)

		// Then: there is no move, only the terminal score
		require.Equal(t, NoCell, result.Cell)
		require.Equal(t, 10, result.Score)

		// When: O searches the same board
		result = BestMove(board, entity.PlayerO, entity.PlayerX)

		// Then: the score flips
		require.Equal(t, NoCell, result.Cell)
		assert.Equal(t, -10, result.Score)
	})

	t.Run("Caller's board is untouched", func(t *testing.T) {
		// Given: an empty board
		board := [9]string{}

		// When: running the full-depth search
		BestMove(board, entity.PlayerX, entity.PlayerO)

		// Then: exploration never leaked into the caller's copy
		require.Equal(t, [9]string{}, board)
	})

	t.Run("Self-play always draws", func(t *testing.T) {
		// Given: an empty board and both sides playing the search's move
		board := [9]string{}
		mark := entity.PlayerX

		// When: playing the game out
		for {
			outcome := Evaluate(board)
			if outcome.IsTerminal() {
				// Then: optimal against optimal is a draw
				require.Equal(t, ResultDraw, outcome.Result)
				return
			}

			result := BestMove(board, mark, entity.OpponentMark(mark))
			require.NotEqual(t, NoCell, result.Cell)
			require.Equal(t, entity.EmptyCell, board[result.Cell])

			board[result.Cell] = mark
			mark = entity.OpponentMark(mark)
		}
	})
}
