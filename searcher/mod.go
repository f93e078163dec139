package searcher

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoLegalMove       = errors.New("no legal move")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Difficulty selects how the AI plays. Every level above Easy searches deeper
// with less noise than the one before it.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
	Hell
)

var Difficulties = []Difficulty{Easy, Normal, Hard, Hell}

// Search depth and leaf noise amplitude per difficulty. Easy does not search.
var params = map[Difficulty]struct{ depth, noise int }{
	Easy:   {0, 0},
	Normal: {1, 25},
	Hard:   {2, 8},
	Hell:   {4, 0},
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	case Hell:
		return "hell"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Params returns the search depth in plies and the noise amplitude added to
// non-terminal leaf scores.
func (d Difficulty) Params() (depth, noise int) {
	p, ok := params[d]
	if !ok {
		p = params[Hell]
	}
	return p.depth, p.noise
}

func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}
