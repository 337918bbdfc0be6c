package engine

import (
	"context"
	"math/rand"
	"strings"
	"time"
)

// Style is a rendering hint attached to narrative text.
type Style int

const (
	StylePlain Style = iota
	StyleInfo
	StyleSuccess
	StyleDanger
	StyleTitle
)

// String returns a human-readable style name.
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleInfo:
		return "info"
	case StyleSuccess:
		return "success"
	case StyleDanger:
		return "danger"
	case StyleTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Display receives the narrative the game produces.
type Display interface {
	Present(text string, style Style)
	Clear()
}

// Input supplies one line of player input per call. ReadLine blocks until
// a line is available or ctx is done.
type Input interface {
	ReadLine(ctx context.Context) (string, error)
}

// Source is the randomness every probabilistic branch draws from.
// Float64 returns a value in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source. A seed of 0 seeds from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // Game logic randomness, not security critical
}

// rollRange returns an integer in [1, n].
func rollRange(src Source, n int) int {
	roll := int(src.Float64()*float64(n)) + 1
	if roll > n {
		return n
	}
	return roll
}

// readCommand reads one line and normalizes it for matching.
func readCommand(ctx context.Context, in Input) (string, error) {
	line, err := in.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}
