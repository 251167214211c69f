package hcl

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/textscrub/textscrub/censor"
	"github.com/textscrub/textscrub/vocab"
)

// Config is the root of a textscrub configuration file.
type Config struct {
	Censor  *Censor   `hcl:"censor,block" json:"censor,omitempty"`
	Vulgars []*Vulgar `hcl:"vulgar,block" json:"vulgars,omitempty"`
}

// Censor carries default masking passes for run and serve invocations.
type Censor struct {
	Kinds   []string `hcl:"kinds,optional"`
	Pattern string   `hcl:"pattern,optional"`
}

// Vulgar declares extra words for the vulgarity dictionary, registered when
// the config is applied. Severity applies to every word in the block and
// defaults to profane|moderate when omitted.
type Vulgar struct {
	Label    string   `hcl:"name,label"`
	Words    []string `hcl:"words"`
	Severity string   `hcl:"severity,optional"`
}

// defaultSeverity tags configured words when a vulgar block does not say.
const defaultSeverity = vocab.Profane | vocab.Moderate

// Parse takes a file path and decodes the file from disk into Config types.
func Parse(path string) (Config, error) {
	var c Config
	err := hclsimple.DecodeFile(path, nil, &c)
	if err != nil {
		return Config{}, err
	}
	return c, nil
}

// Apply registers every vulgar block with the process-wide dictionary.
// Blocks are independent: a block that fails to parse or register is
// reported without stopping the others, and all failures come back
// collected in one error.
func Apply(cfg Config) error {
	hclog.L().Trace("hcl.Apply()", "vulgar_blocks", len(cfg.Vulgars))

	var errs *multierror.Error
	for _, v := range cfg.Vulgars {
		entries, err := mapVulgar(v)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if err := censor.AddWords(entries); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("registering vulgar block, name=%s: %w", v.Label, err))
		}
	}
	return errs.ErrorOrNil()
}

// Request maps the censor block onto request defaults. Kind names are
// validated, and a pattern implies the custom kind so configs do not have
// to list it twice. The pattern is compile-checked here so a bad config
// fails at load time rather than on the first request.
func (c Config) Request() (censor.Request, error) {
	var req censor.Request
	if c.Censor == nil {
		return req, nil
	}

	var errs *multierror.Error
	for _, raw := range c.Censor.Kinds {
		k, err := censor.ParseKind(raw)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		req.Kinds = append(req.Kinds, k)
	}

	if c.Censor.Pattern != "" {
		if _, err := regexp.Compile(c.Censor.Pattern); err != nil {
			errs = multierror.Append(errs, censor.InvalidPatternError{Pattern: c.Censor.Pattern, Err: err})
		} else {
			req.Pattern = c.Censor.Pattern
			req.Kinds = append(req.Kinds, censor.Custom)
		}
	}
	return req, errs.ErrorOrNil()
}

// mapVulgar maps one config block to dictionary entries.
func mapVulgar(v *Vulgar) ([]censor.Entry, error) {
	severity := defaultSeverity
	if v.Severity != "" {
		s, err := vocab.ParseSeverity(v.Severity)
		if err != nil {
			return nil, fmt.Errorf("invalid severity in vulgar block, name=%s: %w", v.Label, err)
		}
		severity = s
	}

	entries := make([]censor.Entry, len(v.Words))
	for i, w := range v.Words {
		entries[i] = censor.Entry{Word: w, Severity: severity}
	}
	return entries, nil
}
