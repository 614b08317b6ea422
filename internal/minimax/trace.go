package minimax

import "github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"

// Node is one explored position. The root has a zero Move.
type Node struct {
	Move     tictactoe.Move
	Board    tictactoe.Board
	Value    int8
	Children []*Node
}

// Trace collects the tree explored by one search call. Reusing a Trace
// replaces the previous tree.
type Trace struct {
	Root *Node
}

func (that *Trace) start(board tictactoe.Board) *Node {
	if that == nil {
		return nil
	}

	that.Root = &Node{Board: board}

	return that.Root
}

// Size - number of recorded nodes, root included.
func (that *Trace) Size() int {
	if that == nil {
		return 0
	}

	return that.Root.size()
}

// PrincipalVariation - follows the first child carrying its parent's value at
// every level. With pruning enabled, values of cut-off subtrees are only bounds.
func (that *Trace) PrincipalVariation() []tictactoe.Move {
	if that == nil || that.Root == nil {
		return nil
	}

	var line []tictactoe.Move
	for node := that.Root; len(node.Children) > 0; {
		next := node.Children[0]
		for _, child := range node.Children {
			if child.Value == node.Value {
				next = child
				break
			}
		}

		line = append(line, next.Move)
		node = next
	}

	return line
}

func (that *Node) addChild(move tictactoe.Move, board tictactoe.Board) *Node {
	if that == nil {
		return nil
	}

	child := &Node{Move: move, Board: board}
	that.Children = append(that.Children, child)

	return child
}

func (that *Node) setValue(value int8) {
	if that != nil {
		that.Value = value
	}
}

func (that *Node) size() int {
	if that == nil {
		return 0
	}

	total := 1
	for _, child := range that.Children {
		total += child.size()
	}

	return total
}
