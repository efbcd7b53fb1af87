package lint

import "github.com/leapstack-labs/leapstyle/pkg/source"

// Scanner applies rules to decoded files.
type Scanner struct {
	config *Config
}

// NewScanner creates a scanner with optional configuration.
func NewScanner(config *Config) *Scanner {
	if config == nil {
		config = NewConfig()
	}
	return &Scanner{config: config}
}

// Scan runs every rule against every line of the file, in line order and
// then rule order. There is no short-circuit: violations accumulate across
// the whole file. Violations on lines covered by an inline disable
// directive are dropped. The scan has no side effects; identical inputs
// yield identical Results.
func (s *Scanner) Scan(file *source.File, rules []RuleDef) *Result {
	result := &Result{
		Path:         file.Path,
		LinesScanned: file.LineCount(),
	}

	for _, line := range file.Lines {
		ctx := Context{File: file, Line: line}
		for _, rule := range rules {
			if s.config.IsDisabled(rule.ID) {
				continue
			}

			opts := s.config.GetRuleOptions(rule.ID)
			violations := rule.Check(ctx, opts)

			for _, v := range violations {
				if file.Suppressed(v.Pos.Line, rule.ID) {
					continue
				}
				// Apply severity overrides
				v.Severity = s.config.GetSeverity(rule.ID, v.Severity)
				result.Violations = append(result.Violations, v)
			}
		}
	}

	return result
}

// Scan runs rules against a decoded file with the given configuration.
func Scan(file *source.File, rules []RuleDef, config *Config) *Result {
	return NewScanner(config).Scan(file, rules)
}

// ScanText decodes text and scans it. It fails with
// *source.InvalidEncodingError when the text is not valid UTF-8; no
// partial Result is produced.
func ScanText(text string, rules []RuleDef, config *Config) (*Result, error) {
	file, err := source.NewFile("", text)
	if err != nil {
		return nil, err
	}
	return Scan(file, rules, config), nil
}
