package usecase

import (
	"go.opentelemetry.io/otel"

	"github.com/rocketscienceinc/mindgames-backend/internal/rps"
	"github.com/rocketscienceinc/mindgames-backend/internal/tictactoe"
)

var (
	tracer = otel.Tracer("usecase")
	meter  = otel.Meter("usecase")
)

// renderBuffer collects engine renders made inside a storage transaction.
// Only the renders of the committed attempt reach the real view.
type renderBuffer struct {
	ttt []func(view tictactoe.View)
	rps []func(view rps.View)
}

func (that *renderBuffer) reset() {
	that.ttt = nil
	that.rps = nil
}

func (that *renderBuffer) RenderBoard(board tictactoe.Board) {
	that.ttt = append(that.ttt, func(view tictactoe.View) { view.RenderBoard(board) })
}

func (that *renderBuffer) RenderStatus(status string) {
	that.ttt = append(that.ttt, func(view tictactoe.View) { view.RenderStatus(status) })
}

func (that *renderBuffer) RenderResult(message string) {
	that.rps = append(that.rps, func(view rps.View) { view.RenderResult(message) })
}

func (that *renderBuffer) replayTicTacToe(view tictactoe.View) {
	if view == nil {
		return
	}

	for _, render := range that.ttt {
		render(view)
	}
}

func (that *renderBuffer) replayRPS(view rps.View) {
	if view == nil {
		return
	}

	for _, render := range that.rps {
		render(view)
	}
}
