package rps

import "fmt"

// WinningScore ends the match as soon as either side reaches it.
const WinningScore = 5

type Outcome string

const (
	OutcomeDraw     Outcome = "draw"
	OutcomePlayer   Outcome = "player"
	OutcomeComputer Outcome = "computer"
)

// Predictor chooses the computer's move from the player's earlier moves.
type Predictor interface {
	Predict(history []Move) Move
}

// View receives the composed result line after every round, and "" on restart.
type View interface {
	RenderResult(message string)
}

type nopView struct{}

func (nopView) RenderResult(string) {}

// Round describes one resolved round.
type Round struct {
	PlayerMove    Move    `json:"player_move"`
	ComputerMove  Move    `json:"computer_move"`
	Outcome       Outcome `json:"outcome"`
	PlayerScore   int     `json:"player_score"`
	ComputerScore int     `json:"computer_score"`
	MatchOver     bool    `json:"match_over"`
	Message       string  `json:"message"`
}

// Match is a first-to-five series against the predictor.
type Match struct {
	predictor Predictor
	view      View

	history       []Move
	playerScore   int
	computerScore int
}

func NewMatch(predictor Predictor, view View) *Match {
	if view == nil {
		view = nopView{}
	}

	return &Match{
		predictor: predictor,
		view:      view,
	}
}

// RestoreMatch - rebuilds a match from stored state without rendering.
func RestoreMatch(predictor Predictor, view View, history []Move, playerScore, computerScore int) *Match {
	match := NewMatch(predictor, view)
	match.history = append([]Move(nil), history...)
	match.playerScore = playerScore
	match.computerScore = computerScore

	return match
}

// SubmitPlayerMove - plays one round. Returns false without touching state once the match is over.
func (that *Match) SubmitPlayerMove(move Move) (Round, bool) {
	if that.IsOver() || !move.Valid() {
		return Round{}, false
	}

	// the predictor only sees earlier rounds
	computerMove := that.predictor.Predict(that.History())
	that.history = append(that.history, move)

	round := Round{
		PlayerMove:   move,
		ComputerMove: computerMove,
		Outcome:      Resolve(move, computerMove),
	}

	switch round.Outcome {
	case OutcomePlayer:
		that.playerScore++
	case OutcomeComputer:
		that.computerScore++
	case OutcomeDraw:
	}

	round.PlayerScore = that.playerScore
	round.ComputerScore = that.computerScore
	round.MatchOver = that.IsOver()
	round.Message = that.message(round)

	that.view.RenderResult(round.Message)

	return round, true
}

// Restart - clears history and scores.
func (that *Match) Restart() {
	that.history = nil
	that.playerScore = 0
	that.computerScore = 0
	that.view.RenderResult("")
}

func (that *Match) IsOver() bool {
	return that.playerScore >= WinningScore || that.computerScore >= WinningScore
}

func (that *Match) History() []Move {
	return append([]Move(nil), that.history...)
}

func (that *Match) Scores() (player, computer int) {
	return that.playerScore, that.computerScore
}

// Winner - returns OutcomePlayer or OutcomeComputer for a finished match, "" otherwise.
func (that *Match) Winner() Outcome {
	switch {
	case that.playerScore >= WinningScore:
		return OutcomePlayer
	case that.computerScore >= WinningScore:
		return OutcomeComputer
	default:
		return ""
	}
}

// Resolve - decides a single round from the player's side.
func Resolve(player, computer Move) Outcome {
	switch {
	case player == computer:
		return OutcomeDraw
	case Beats[player] == computer:
		return OutcomePlayer
	default:
		return OutcomeComputer
	}
}

func (that *Match) message(round Round) string {
	var result string

	switch round.Outcome {
	case OutcomeDraw:
		result = fmt.Sprintf("It's a draw! You both chose %s.", round.PlayerMove)
	case OutcomePlayer:
		result = fmt.Sprintf("You win! %s beats %s.", round.PlayerMove, round.ComputerMove)
	case OutcomeComputer:
		result = fmt.Sprintf("You lose! %s beats %s.", round.ComputerMove, round.PlayerMove)
	}

	switch that.Winner() {
	case OutcomePlayer:
		result += " You won the game!"
	case OutcomeComputer:
		result += " AI wins the game!"
	}

	return result + fmt.Sprintf("\nScore - You: %d, AI: %d", that.playerScore, that.computerScore)
}
