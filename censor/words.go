package censor

import (
	"strings"

	"github.com/textscrub/textscrub/vocab"
)

// Entry is one word to register with the vulgarity dictionary. An Entry
// that carries no severity registers as vocab.Inappropriate.
type Entry struct {
	Word     string         `json:"word"`
	Severity vocab.Severity `json:"severity"`
}

// AddWords registers entries with the process-wide dictionary. The whole
// batch is validated before any entry is committed: an empty or all-space
// word fails the call with an EmptyWordError and leaves the dictionary
// untouched, including entries earlier in the batch. An entry whose
// severity is unset registers as vocab.Inappropriate; any other severity
// is taken as given. Committed words are visible to every subsequent
// classifier run in the process.
func AddWords(entries []Entry) error {
	for i, e := range entries {
		if strings.TrimSpace(e.Word) == "" {
			return EmptyWordError{Index: i}
		}
	}
	for _, e := range entries {
		severity := e.Severity
		if severity == vocab.Safe {
			severity = vocab.Inappropriate
		}
		if err := vocab.Default().Set(e.Word, severity); err != nil {
			return err
		}
	}
	return nil
}
