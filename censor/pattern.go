package censor

import (
	"fmt"
	"regexp"
)

// Built-in matchers, compiled once at init. The sources favor recall over
// strictness: they flag anything that plausibly leaks a URL, address, or
// mailbox rather than validating the relevant RFCs.
var (
	linkPattern  = regexp.MustCompile(`https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()!@:%_+.~#?&/=]*)`)
	ipPattern    = regexp.MustCompile(`(\b25[0-5]|\b2[0-4][0-9]|\b[01]?[0-9][0-9]?)(\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)){3}`)
	emailPattern = regexp.MustCompile(`[^@ \t\r\n]+@[^@ \t\r\n]+\.[^@ \t\r\n]+`)
)

// matcherFor resolves a kind to a compiled expression. Built-ins are shared
// package state and never fail; Custom compiles the request's pattern and
// surfaces ErrMissingPattern or an InvalidPatternError.
func matcherFor(kind Kind, pattern string) (*regexp.Regexp, error) {
	switch kind {
	case Link:
		return linkPattern, nil
	case IP:
		return ipPattern, nil
	case Email:
		return emailPattern, nil
	case Custom:
		if pattern == "" {
			return nil, ErrMissingPattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, InvalidPatternError{Pattern: pattern, Err: err}
		}
		return re, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}
