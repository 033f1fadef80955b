package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

const (
	ResultInProgress = "in_progress"
	ResultWon        = "won"
	ResultDraw       = "draw"
)

// WinLines - the 8 completed-line index triples: rows, columns, diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Outcome struct {
	Result string
	Winner string
	Line   [3]int
}

// Evaluate - classifies a board snapshot as won, drawn or still in
// progress. Pure function; lines are checked in fixed order and the first
// completed one wins.
func Evaluate(board [9]string) Outcome {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return Outcome{Result: ResultWon, Winner: a, Line: line}
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return Outcome{Result: ResultInProgress}
		}
	}

	return Outcome{Result: ResultDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Result != ResultInProgress
}
