package censor

import (
	"fmt"
	"sort"
	"strings"
)

// Kind names one masking pass in a censoring request.
type Kind string

const (
	// Link matches http and https URLs.
	Link Kind = "link"
	// IP matches dotted-quad IPv4 addresses.
	IP Kind = "ip"
	// Email matches anything shaped like user@host.tld.
	Email Kind = "email"
	// Custom matches a caller-supplied regular expression. Requests naming
	// it must carry a Pattern. Patterns able to match '*' re-censor their
	// own output when a result is fed back through; the built-in kinds
	// never do.
	Custom Kind = "custom"
)

// kindOrder fixes the evaluation order of masking passes. Callers may list
// kinds in any order and with duplicates; passes always run in this
// sequence, so a given request produces one deterministic result.
var kindOrder = map[Kind]int{
	Link:   0,
	IP:     1,
	Email:  2,
	Custom: 3,
}

// ParseKind reads a kind name as written in configs and request payloads.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := kindOrder[k]; !ok {
		return "", fmt.Errorf("unknown kind %q", s)
	}
	return k, nil
}

// normalize dedupes kinds and sorts them into canonical order.
func normalize(kinds []Kind) []Kind {
	seen := make(map[Kind]bool, len(kinds))
	out := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return kindOrder[out[i]] < kindOrder[out[j]]
	})
	return out
}

// Request describes one censoring call: the text to work on, the masking
// passes to run, and the expression for Custom. Pattern is only consulted
// when Kinds names Custom.
type Request struct {
	Text    string `json:"text"`
	Kinds   []Kind `json:"kinds,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

// Result reports one censoring call. Censored always holds a usable string;
// Changed is true when it differs from Original.
type Result struct {
	Original string `json:"original"`
	Censored string `json:"censored"`
	Changed  bool   `json:"changed"`
}
