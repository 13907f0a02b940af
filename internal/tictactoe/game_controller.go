package tictactoe

const (
	StatusTie = "It's a tie!"
)

// View receives every render produced by a Game.
type View interface {
	RenderBoard(board Board)
	RenderStatus(status string)
}

type nopView struct{}

func (nopView) RenderBoard(Board)   {}
func (nopView) RenderStatus(string) {}

// Game is a single human-vs-computer tic-tac-toe round. The human always moves first.
type Game struct {
	board Board
	view  View
}

func NewGame(view View) *Game {
	if view == nil {
		view = nopView{}
	}

	return &Game{view: view}
}

// Restore - rebuilds a game from a stored board without rendering.
func Restore(board Board, view View) *Game {
	game := NewGame(view)
	game.board = board

	return game
}

// Reset - clears the board and the status display.
func (that *Game) Reset() {
	that.board = Board{}
	that.view.RenderBoard(that.board)
	that.view.RenderStatus("")
}

// SubmitHumanMove - places the human mark and the computer reply.
// Out of range, occupied or post-game moves are ignored and false is returned.
func (that *Game) SubmitHumanMove(index int) bool {
	if index < 0 || index >= BoardSize {
		return false
	}

	if that.board[index] != Empty || IsTerminal(that.board) {
		return false
	}

	that.board[index] = Human

	if !IsTerminal(that.board) {
		that.board[BestMove(that.board)] = Computer
	}

	that.view.RenderBoard(that.board)

	if status := that.Status(); status != "" {
		that.view.RenderStatus(status)
	}

	return true
}

func (that *Game) Board() Board {
	return that.board
}

func (that *Game) Result() Result {
	return CheckWinner(that.board)
}

// Status - returns "", StatusTie or "<mark> wins!".
func (that *Game) Status() string {
	return StatusText(CheckWinner(that.board))
}

func StatusText(result Result) string {
	switch result {
	case ResultNone:
		return ""
	case ResultTie:
		return StatusTie
	default:
		return string(result) + " wins!"
	}
}
