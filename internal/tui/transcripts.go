package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tatianab/treasure-hunter/internal/models"
)

// PrintTranscripts writes a summary table of the sessions saved under dir.
func PrintTranscripts(w io.Writer, dir string) error {
	sessions, err := models.ListTranscripts(dir)
	if err != nil {
		return fmt.Errorf("listing transcripts: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Fprintf(w, "No transcripts in %s\n", dir)
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SESSION", "HUNTER", "MODE", "OUTCOME", "TURNS", "GOLD")
	for _, id := range sessions {
		tr, err := models.LoadTranscript(dir, id)
		if err != nil {
			return fmt.Errorf("loading transcript %s: %w", id, err)
		}
		gold := "-"
		if len(tr.Turns) > 0 {
			gold = strconv.Itoa(tr.Turns[len(tr.Turns)-1].Gold)
		}
		t.Row(id, tr.Hunter, tr.Mode, tr.Outcome, strconv.Itoa(len(tr.Turns)), gold)
	}

	fmt.Fprintln(w, t.Render())
	return nil
}
