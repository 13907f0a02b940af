package tictactoe

import "math"

const winScore = 10

// BestMove - picks the optimal cell for the computer. Returns -1 when the board is terminal.
func BestMove(board Board) int {
	return BestMoveFor(board, Computer)
}

// BestMoveFor runs the same search on behalf of either mark.
// Every root cell gets its own full window so its score is exact. Cells are tried in
// ascending order and only a strictly better score replaces the current choice,
// so the first best cell wins.
func BestMoveFor(board Board, mark Mark) int {
	if IsTerminal(board) {
		return -1
	}

	bestScore := math.MinInt
	move := -1

	for i := range board {
		if board[i] != Empty {
			continue
		}

		board[i] = mark
		score := minimax(board, 0, false, mark)
		board[i] = Empty

		if score > bestScore {
			bestScore = score
			move = i
		}
	}

	return move
}

// minimax scores the position from the point of view of self.
// board is a copy, placements never leak back to the caller.
func minimax(board Board, depth int, selfTurn bool, self Mark) int {
	return alphaBeta(board, depth, math.MinInt, math.MaxInt, selfTurn, self)
}

// alphaBeta is minimax with pruning. The result is exact while it lies inside (alpha, beta).
func alphaBeta(board Board, depth, alpha, beta int, selfTurn bool, self Mark) int {
	switch result := CheckWinner(board); result {
	case Result(self):
		return winScore - depth
	case Result(opponent(self)):
		return depth - winScore
	case ResultTie:
		return 0
	}

	if selfTurn {
		best := math.MinInt
		for i := range board {
			if board[i] != Empty {
				continue
			}
			board[i] = self
			best = max(best, alphaBeta(board, depth+1, alpha, beta, false, self))
			board[i] = Empty

			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for i := range board {
		if board[i] != Empty {
			continue
		}
		board[i] = opponent(self)
		best = min(best, alphaBeta(board, depth+1, alpha, beta, true, self))
		board[i] = Empty

		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}
	return best
}
