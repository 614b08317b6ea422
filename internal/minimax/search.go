// Package minimax finds the game-theoretic best move for a tic-tac-toe position.
//
// Values are seen from First: +1 means First wins with best play, -1 means
// Second wins, 0 is a draw. First maximizes, Second minimizes, and among
// equally valued moves the one with the lowest position is chosen.
package minimax

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	maxValue int8 = 1
	minValue int8 = -1

	// one step outside the value range on each side
	negInf = minValue - 1
	posInf = maxValue + 1
)

var ErrCancelled = errors.New("search cancelled")

// Result of a search. HasMove is false when the searched board is already decided.
type Result struct {
	Move    tictactoe.Move
	HasMove bool
	Value   int8
	Nodes   int
}

// Search - runs an uncancellable search. Callers that need a move must check
// board.Outcome() first: a decided board yields only its value.
func Search(board tictactoe.Board, toMove tictactoe.Mark, opts ...Option) Result {
	result, err := SearchContext(context.Background(), board, toMove, opts...)
	if err != nil {
		// context.Background is never cancelled
		panic(fmt.Errorf("unexpected search error: %w", err))
	}

	return result
}

// SearchContext - like Search, but checks ctx on every visited position and
// returns ErrCancelled once it is done.
func SearchContext(ctx context.Context, board tictactoe.Board, toMove tictactoe.Mark, opts ...Option) (Result, error) {
	o := newOptions(opts)

	root := o.trace.start(board)

	if o.parallel {
		return searchParallel(ctx, o, board, toMove, root)
	}

	s := &searcher{ctx: ctx, opts: o}

	move, ok, value, err := s.search(board, toMove, 0, negInf, posInf, root)
	if err != nil {
		return Result{Nodes: s.nodes}, err
	}

	return Result{Move: move, HasMove: ok, Value: value, Nodes: s.nodes}, nil
}

type searcher struct {
	ctx   context.Context
	opts  options
	nodes int
}

func (that *searcher) search(
	board tictactoe.Board,
	toMove tictactoe.Mark,
	ply int,
	alpha, beta int8,
	node *Node,
) (tictactoe.Move, bool, int8, error) {
	if err := that.ctx.Err(); err != nil {
		return tictactoe.Move{}, false, 0, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	that.nodes++

	if outcome := board.Outcome(); outcome.IsTerminal() {
		node.setValue(outcome.Score())
		return tictactoe.Move{}, false, outcome.Score(), nil
	}

	if that.opts.maxDepth > 0 && ply >= that.opts.maxDepth {
		node.setValue(0)
		return tictactoe.Move{}, false, 0, nil
	}

	best := worst(toMove)
	bestMove := tictactoe.Move{}
	found := false

	for _, move := range board.LegalMoves(toMove) {
		child := play(board, move)

		_, _, value, err := that.search(child, toMove.Opponent(), ply+1, alpha, beta, node.addChild(move, child))
		if err != nil {
			return tictactoe.Move{}, false, 0, err
		}

		if better(toMove, value, best) {
			best = value
			bestMove = move
			found = true
		}

		if !that.opts.alphaBeta {
			continue
		}

		if toMove == tictactoe.First {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}

		if alpha >= beta {
			break
		}
	}

	if !found {
		panic(fmt.Errorf("no legal moves on undecided board %s", board.Key()))
	}

	node.setValue(best)

	return bestMove, true, best, nil
}

type branch struct {
	value int8
	nodes int
	err   error
}

// searchParallel - each root move gets its own goroutine and board copy; results
// are collected by index so selection sees them in enumeration order.
func searchParallel(
	ctx context.Context,
	o options,
	board tictactoe.Board,
	toMove tictactoe.Mark,
	root *Node,
) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	if outcome := board.Outcome(); outcome.IsTerminal() {
		root.setValue(outcome.Score())
		return Result{Value: outcome.Score(), Nodes: 1}, nil
	}

	moves := board.LegalMoves(toMove)
	branches := make([]branch, len(moves))
	nodes := make([]*Node, len(moves))

	var wg sync.WaitGroup
	for i, move := range moves {
		child := play(board, move)
		nodes[i] = root.addChild(move, child)

		wg.Add(1)
		go func() {
			defer wg.Done()

			s := &searcher{ctx: ctx, opts: o}
			_, _, value, err := s.search(child, toMove.Opponent(), 1, negInf, posInf, nodes[i])

			branches[i] = branch{value: value, nodes: s.nodes, err: err}
		}()
	}

	wg.Wait()

	result := Result{Value: worst(toMove), Nodes: 1}
	for i, b := range branches {
		result.Nodes += b.nodes

		if b.err != nil {
			return Result{Nodes: result.Nodes}, b.err
		}

		if better(toMove, b.value, result.Value) {
			result.Value = b.value
			result.Move = moves[i]
			result.HasMove = true
		}
	}

	root.setValue(result.Value)

	return result, nil
}

func play(board tictactoe.Board, move tictactoe.Move) tictactoe.Board {
	child := board.Clone()
	if err := child.Place(move); err != nil {
		panic(fmt.Errorf("illegal move %s generated on %s: %w", move, board.Key(), err))
	}

	return child
}

func worst(toMove tictactoe.Mark) int8 {
	if toMove == tictactoe.First {
		return negInf
	}
	return posInf
}

// better - strict comparison, so the earliest of equal moves is kept.
func better(toMove tictactoe.Mark, value, best int8) bool {
	if toMove == tictactoe.First {
		return value > best
	}
	return value < best
}
