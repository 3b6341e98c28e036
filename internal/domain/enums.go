package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
	Master
)

// ErrUnknownDifficulty indicates a difficulty tag outside the closed set.
// It is a caller error, distinct from search failure, and is never silently
// defaulted.
var ErrUnknownDifficulty = errors.New("domain: unknown difficulty")

var difficultyNames = [...]string{"easy", "medium", "hard", "expert", "master"}

func (d Difficulty) String() string {
	if d < Easy || d > Master {
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// ParseDifficulty maps a tag from the closed set {easy, medium, hard, expert,
// master} to its Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range difficultyNames {
		if n == name {
			return Difficulty(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// MarshalText lets Difficulty round-trip through JSON as its tag.
func (d Difficulty) MarshalText() ([]byte, error) {
	if d < Easy || d > Master {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	return []byte(difficultyNames[d]), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
