package main

import "errors"

var errInvalidCoordinate = errors.New("coordinate must be in range a1-h8")
var errIllegalMove = errors.New("piece cannot make that move")

// Coordinate is a square on the 8x8 grid, file X and rank Y both 0-7.
type Coordinate struct {
	X int
	Y int
}

func makeCoordinate(x, y int) (Coordinate, error) {
	coordinate := Coordinate{X: x, Y: y}
	if !coordinate.inBounds() {
		return Coordinate{}, errInvalidCoordinate
	}
	return coordinate, nil
}

func (coordinate Coordinate) inBounds() bool {
	return coordinate.X >= 0 && coordinate.X <= 7 && coordinate.Y >= 0 && coordinate.Y <= 7
}

type offset struct {
	dx int
	dy int
}

type ruleKind uint8

const (
	slidingRule ruleKind = iota
	jumpingRule
)

// moveRule is the movement variant for a piece kind: sliding pieces carry
// direction capabilities, jumping pieces carry a fixed offset pattern.
type moveRule struct {
	kind ruleKind

	horizontal bool
	vertical   bool
	diagonal   bool

	pattern []offset
}

func span(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// canMoveTo reports whether target is geometrically reachable from current,
// ignoring every other piece on the board.
func (rule moveRule) canMoveTo(current, target Coordinate) bool {
	if current == target {
		return false
	}
	if !target.inBounds() {
		return false
	}
	switch rule.kind {
	case slidingRule:
		if target.Y == current.Y && rule.horizontal {
			return true
		}
		if target.X == current.X && rule.vertical {
			return true
		}
		if span(target.X, current.X) == span(target.Y, current.Y) && rule.diagonal {
			return true
		}
	case jumpingRule:
		for _, o := range rule.pattern {
			if target.X-current.X == o.dx && target.Y-current.Y == o.dy {
				return true
			}
		}
	}
	return false
}

func (rule moveRule) possibleMoves(current Coordinate) []Coordinate {
	if rule.kind == jumpingRule {
		moves := make([]Coordinate, 0, len(rule.pattern))
		for _, o := range rule.pattern {
			target := Coordinate{X: current.X + o.dx, Y: current.Y + o.dy}
			if target.inBounds() {
				moves = append(moves, target)
			}
		}
		return moves
	}
	moves := make([]Coordinate, 0, 27)
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			target := Coordinate{X: x, Y: y}
			if rule.canMoveTo(current, target) {
				moves = append(moves, target)
			}
		}
	}
	return moves
}

func (rule moveRule) possibleMoveCount(current Coordinate) int {
	return len(rule.possibleMoves(current))
}

func (rule moveRule) moveType() string {
	if rule.kind == jumpingRule {
		return "fixed offsets"
	}
	if rule.horizontal && rule.vertical && rule.diagonal {
		return "all directions (rank, file and diagonal)"
	} else if rule.horizontal && rule.vertical {
		return "rank and file"
	} else if rule.horizontal && rule.diagonal {
		return "rank and diagonal"
	} else if rule.vertical && rule.diagonal {
		return "file and diagonal"
	} else if rule.horizontal {
		return "rank only"
	} else if rule.vertical {
		return "file only"
	} else if rule.diagonal {
		return "diagonal only"
	}
	return "none"
}

// combinedAbilities is non-empty only for pieces that slide on every line,
// the queen being the one standard example.
func (rule moveRule) combinedAbilities() string {
	if rule.kind == slidingRule && rule.horizontal && rule.vertical && rule.diagonal {
		return "rook and bishop lines combined"
	}
	return ""
}
