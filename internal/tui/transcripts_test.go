package tui

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/treasure-hunter/internal/models"
)

func TestPrintTranscripts(t *testing.T) {
	dir := t.TempDir()
	tr := &models.Transcript{
		SessionID: "abc123",
		Hunter:    "ivan",
		Mode:      "hard",
		Outcome:   "bankrupt",
		Turns: []models.TurnRecord{
			{Turn: 1, Command: "l", Gold: 4},
			{Turn: 2, Command: "l", Gold: -2},
		},
	}
	require.NoError(t, tr.Save(dir))

	var out bytes.Buffer
	require.NoError(t, PrintTranscripts(&out, dir))
	for _, want := range []string{"SESSION", "abc123", "ivan", "hard", "bankrupt", "-2"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestPrintTranscriptsEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "none")

	var out bytes.Buffer
	require.NoError(t, PrintTranscripts(&out, dir))
	assert.Equal(t, "No transcripts in "+dir+"\n", out.String())
}
