package engine

import (
	"context"
	"io"
	"strings"

	"github.com/tatianab/treasure-hunter/internal/models"
	"github.com/tatianab/treasure-hunter/internal/telemetry"
)

// scriptedSource returns a fixed sequence of draws and panics when a test
// draws more than it scripted.
type scriptedSource struct {
	values []float64
	next   int
}

func script(values ...float64) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) Float64() float64 {
	if s.next >= len(s.values) {
		panic("scriptedSource: no draws left")
	}
	v := s.values[s.next]
	s.next++
	return v
}

func (s *scriptedSource) remaining() int {
	return len(s.values) - s.next
}

// scriptedInput replays lines and then reports io.EOF.
type scriptedInput struct {
	lines []string
	reads int
}

func lines(l ...string) *scriptedInput {
	return &scriptedInput{lines: l}
}

func (in *scriptedInput) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if in.reads >= len(in.lines) {
		return "", io.EOF
	}
	line := in.lines[in.reads]
	in.reads++
	return line, nil
}

type presented struct {
	text  string
	style Style
}

type recordingDisplay struct {
	entries []presented
	clears  int
}

func (d *recordingDisplay) Present(text string, style Style) {
	d.entries = append(d.entries, presented{text: text, style: style})
}

func (d *recordingDisplay) Clear() {
	d.clears++
}

func (d *recordingDisplay) saw(fragment string) bool {
	for _, e := range d.entries {
		if strings.Contains(e.text, fragment) {
			return true
		}
	}
	return false
}

func (d *recordingDisplay) styleOf(fragment string) (Style, bool) {
	for _, e := range d.entries {
		if strings.Contains(e.text, fragment) {
			return e.style, true
		}
	}
	return StylePlain, false
}

func testRules() *Rules {
	return NewRules(models.MustLoadGameData())
}

func testShop(markdown float64) *Shop {
	return NewShop(markdown, testRules().Catalog())
}

// newTestGame builds a game wired to scripted collaborators.
func newTestGame(in Input, src Source) (*Game, *recordingDisplay) {
	display := &recordingDisplay{}
	g, err := New(Options{
		Display:   display,
		Input:     in,
		Source:    src,
		Rules:     testRules(),
		Tracer:    telemetry.NoopTracer(),
		SessionID: "test-session",
	})
	if err != nil {
		panic(err)
	}
	return g, display
}
