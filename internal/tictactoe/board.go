package tictactoe

// Mark is the content of a single board cell.
type Mark string

const (
	Empty    Mark = ""
	Human    Mark = "O"
	Computer Mark = "X"
)

// Result is the outcome of evaluating a board.
type Result string

const (
	ResultNone     Result = ""
	ResultTie      Result = "tie"
	ResultHuman           = Result(Human)
	ResultComputer        = Result(Computer)
)

const BoardSize = 9

// Board is a 3x3 grid stored row-major, indexes 0..8.
type Board [BoardSize]Mark

// WinCombos lists the rows, columns and diagonals in evaluation order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// CheckWinner - returns the winning mark, ResultTie for a full board or ResultNone.
func CheckWinner(board Board) Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return Result(a)
		}
	}

	// the game continues until all the squares are full
	for _, cell := range board {
		if cell == Empty {
			return ResultNone
		}
	}

	return ResultTie
}

// IsTerminal - reports whether the board has a winner or no empty cells.
func IsTerminal(board Board) bool {
	return CheckWinner(board) != ResultNone
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Strings converts the board to plain strings for rendering and storage.
func (that Board) Strings() [BoardSize]string {
	var out [BoardSize]string
	for i, cell := range that {
		out[i] = string(cell)
	}

	return out
}

// BoardFromStrings is the inverse of Board.Strings. Unknown values are treated as empty.
func BoardFromStrings(cells [BoardSize]string) Board {
	var board Board
	for i, cell := range cells {
		switch mark := Mark(cell); mark {
		case Human, Computer:
			board[i] = mark
		default:
			board[i] = Empty
		}
	}

	return board
}

func opponent(mark Mark) Mark {
	if mark == Computer {
		return Human
	}
	return Computer
}
