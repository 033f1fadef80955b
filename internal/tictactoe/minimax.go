package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// NoCell - returned as the move when the board is already terminal.
const NoCell = -1

const (
	scoreWin  = 10
	scoreLoss = -10
	scoreDraw = 0
)

type SearchResult struct {
	Cell  int
	Score int
}

// BestMove - exhaustive minimax over every legal continuation. Wins for the
// searching mark score +10, losses -10, draws 0, with no depth discount.
// Candidate cells are tried in ascending index order and only a strictly
// better score replaces the current best, so ties resolve to the lowest
// index. The board parameter is a value copy; exploration never touches the
// caller's board.
func BestMove(board [9]string, searching, opponent string) SearchResult {
	return search(&board, searching, opponent, true)
}

func search(board *[9]string, searching, opponent string, maximizing bool) SearchResult {
	switch outcome := Evaluate(*board); {
	case outcome.Result == ResultWon && outcome.Winner == searching:
		return SearchResult{Cell: NoCell, Score: scoreWin}
	case outcome.Result == ResultWon && outcome.Winner == opponent:
		return SearchResult{Cell: NoCell, Score: scoreLoss}
	case outcome.Result == ResultDraw:
		return SearchResult{Cell: NoCell, Score: scoreDraw}
	}

	mark := searching
	best := SearchResult{Cell: NoCell, Score: math.MinInt}
	if !maximizing {
		mark = opponent
		best.Score = math.MaxInt
	}

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = mark
		candidate := search(board, searching, opponent, !maximizing)
		board[cell] = entity.EmptyCell

		if maximizing && candidate.Score > best.Score {
			best = SearchResult{Cell: cell, Score: candidate.Score}
		}
		if !maximizing && candidate.Score < best.Score {
			best = SearchResult{Cell: cell, Score: candidate.Score}
		}
	}

	return best
}
