package vocab

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Dictionary is a lexicon of vulgar words tagged with severities. Censoring
// and lookups walk a trie of folded runes. A Dictionary is safe for use from
// any number of goroutines.
type Dictionary struct {
	mu        sync.RWMutex
	root      *node
	count     int
	threshold Severity
}

// NewDictionary returns an empty dictionary that censors every registered
// word regardless of severity. Use SetThreshold to narrow it.
func NewDictionary() *Dictionary {
	return &Dictionary{
		root:      newNode(),
		threshold: Any,
	}
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the process-wide dictionary, seeded with the built-in
// vocabulary on first use. Words added to it are visible to every caller in
// the process for the remainder of its lifetime.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		defaultDict = NewDictionary()
		for _, w := range builtin {
			// Built-in entries are static and non-empty, so Set cannot fail.
			_ = defaultDict.Set(w.word, w.severity)
		}
	})
	return defaultDict
}

// Set registers word under the given severity, folding it rune by rune so
// later lookups are case- and diacritic-insensitive. Registering a word
// again unions the severities. Empty and all-space words are rejected.
func (d *Dictionary) Set(word string, severity Severity) error {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return fmt.Errorf("cannot add empty word to dictionary")
	}
	runes := []rune(trimmed)
	for i, r := range runes {
		runes[i] = foldRune(r)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.root.insert(runes, severity) {
		d.count++
	}
	return nil
}

// Lookup reports the severity of word and whether the whole word is in the
// dictionary.
func (d *Dictionary) Lookup(word string) (Severity, bool) {
	runes := []rune(strings.TrimSpace(word))
	if len(runes) == 0 {
		return Safe, false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	end, severity, ok := d.root.longestMatch(runes, 0, foldRune)
	if !ok || end != len(runes) {
		return Safe, false
	}
	return severity, true
}

// Len reports the number of distinct words registered.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.count
}

// Threshold reports the severity filter Censor applies.
func (d *Dictionary) Threshold() Severity {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.threshold
}

// SetThreshold narrows Censor to words whose severity intersects t.
func (d *Dictionary) SetThreshold(t Severity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.threshold = t
}

// Censor masks every dictionary word in s that crosses the threshold,
// keeping the first character and starring the rest, so "fuck" comes back
// as "f***". Detection runs twice over the text, once under plain
// case/diacritic folding and once with leet substitutions, and overlapping
// finds are coalesced. Everything else passes through untouched.
func (d *Dictionary) Censor(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)

	d.mu.RLock()
	spans := d.scan(runes, foldRune)
	spans = append(spans, d.scan(runes, leetRune)...)
	d.mu.RUnlock()

	if len(spans) == 0 {
		return s
	}
	for _, sp := range merge(spans) {
		for i := sp.start + 1; i < sp.end; i++ {
			runes[i] = '*'
		}
	}
	return string(runes)
}

// span marks a half-open rune interval [start, end) holding one detected
// word.
type span struct {
	start, end int
}

// scan collects the spans of dictionary words found in runes under the given
// fold. Matches must sit on word boundaries: the runes on either side of a
// span cannot fold to letters or digits. Callers hold at least a read lock.
func (d *Dictionary) scan(runes []rune, fold func(rune) rune) []span {
	var spans []span
	for i := 0; i < len(runes); i++ {
		if !wordStart(runes, i, fold) {
			continue
		}
		end, severity, ok := d.root.longestMatch(runes, i, fold)
		if !ok || !severity.Is(d.threshold) {
			continue
		}
		if end < len(runes) && wordy(fold(runes[end])) {
			continue
		}
		spans = append(spans, span{start: i, end: end})
		i = end - 1
	}
	return spans
}

// wordStart reports whether position i begins a word: the rune there must
// fold to a letter or digit and the rune before it must not.
func wordStart(runes []rune, i int, fold func(rune) rune) bool {
	if !wordy(fold(runes[i])) {
		return false
	}
	return i == 0 || !wordy(fold(runes[i-1]))
}

func wordy(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// merge sorts spans and coalesces overlaps so a word caught by both scan
// passes is masked once.
func merge(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})
	merged := make([]span, 0, len(spans))
	for _, sp := range spans {
		if n := len(merged); n > 0 && sp.start <= merged[n-1].end {
			if sp.end > merged[n-1].end {
				merged[n-1].end = sp.end
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}
