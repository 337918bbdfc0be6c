package models

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTranscriptDir is where transcripts go when no directory is configured.
const DefaultTranscriptDir = ".transcripts"

const transcriptFile = "transcript.yaml"

// Save writes the transcript to dir/<session id>/transcript.yaml.
func (t *Transcript) Save(dir string) error {
	sessionDir := filepath.Join(dir, t.SessionID)
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(sessionDir, transcriptFile), data, 0644)
}

func LoadTranscript(dir, sessionID string) (*Transcript, error) {
	data, err := os.ReadFile(filepath.Join(dir, sessionID, transcriptFile))
	if err != nil {
		return nil, err
	}

	var t Transcript
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func ListTranscripts(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sessions []string
	for _, entry := range entries {
		if entry.IsDir() {
			// transcript.yaml marks a finished session
			path := filepath.Join(dir, entry.Name(), transcriptFile)
			if _, err := os.Stat(path); err == nil {
				sessions = append(sessions, entry.Name())
			}
		}
	}
	return sessions, nil
}
