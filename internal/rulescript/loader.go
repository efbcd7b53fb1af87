// Package rulescript loads custom style rules from Starlark files.
//
// Each .star file in a configured rule directory is executed once at
// startup. Files declare rules by calling the predeclared register_rule
// builtin, either with a regular expression pattern or with a check
// function that receives one line of text. Loaded rules join the same
// registry as the builtin catalog, with the same duplicate-ID semantics.
package rulescript

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/leapstack-labs/leapstyle/pkg/token"
	"go.starlark.net/starlark"
)

// LoadError describes a failure to load a rule script.
type LoadError struct {
	File    string
	Message string
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("rule script %s: %s", e.File, e.Message)
}

// Loader loads rule scripts into a registry.
type Loader struct {
	registry *lint.Registry
	logger   *slog.Logger
}

// NewLoader creates a loader that registers rules into reg.
func NewLoader(reg *lint.Registry, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{registry: reg, logger: logger}
}

// LoadDir executes every .star file in dir and registers the rules they
// declare. A missing directory is not an error. Returns the number of
// rules registered.
func (l *Loader) LoadDir(dir string) (int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to access rule directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("rule path is not a directory: %s", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.star"))
	if err != nil {
		return 0, fmt.Errorf("failed to scan rule directory: %w", err)
	}

	total := 0
	for _, file := range files {
		n, err := l.loadFile(file)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// loadFile executes one script. register_rule calls take effect
// immediately, so a duplicate ID aborts the load with the registry's
// error.
func (l *Loader) loadFile(path string) (int, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the configured rule directory
	if err != nil {
		return 0, &LoadError{File: path, Message: fmt.Sprintf("failed to read file: %v", err)}
	}

	count := 0
	var loadErr error

	registerRule := starlark.NewBuiltin("register_rule", func(
		th *starlark.Thread, _ *starlark.Builtin,
		args starlark.Tuple, kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		rule, err := l.unpackRule(path, args, kwargs)
		if err != nil {
			return nil, err
		}
		if err := l.registry.Register(rule); err != nil {
			loadErr = err
			return nil, err
		}
		l.logger.Debug("registered script rule",
			slog.String("id", rule.ID), slog.String("file", path))
		count++
		return starlark.None, nil
	})

	thread := &starlark.Thread{
		Name: fmt.Sprintf("rulescript:%s", filepath.Base(path)),
		Print: func(_ *starlark.Thread, msg string) {
			l.logger.Debug("rule script print", slog.String("file", path), slog.String("msg", msg))
		},
	}

	predeclared := starlark.StringDict{"register_rule": registerRule}
	if _, err := starlark.ExecFile(thread, path, content, predeclared); err != nil { //nolint:staticcheck // SA1019: will migrate to ExecFileOptions later
		if loadErr != nil {
			return count, loadErr
		}
		return count, &LoadError{File: path, Message: fmt.Sprintf("Starlark execution error: %v", err)}
	}

	return count, nil
}

// unpackRule converts register_rule arguments into a RuleDef.
func (l *Loader) unpackRule(path string, args starlark.Tuple, kwargs []starlark.Tuple) (lint.RuleDef, error) {
	var (
		id, message, severity, group, description, pattern string
		raw                                                bool
		check                                              starlark.Callable
	)
	severity = "warning"
	group = "script"

	if err := starlark.UnpackArgs("register_rule", args, kwargs,
		"id", &id,
		"message", &message,
		"severity?", &severity,
		"group?", &group,
		"description?", &description,
		"pattern?", &pattern,
		"raw?", &raw,
		"check?", &check,
	); err != nil {
		return lint.RuleDef{}, err
	}

	if id == "" {
		return lint.RuleDef{}, fmt.Errorf("register_rule: id must not be empty")
	}
	if pattern == "" && check == nil {
		return lint.RuleDef{}, fmt.Errorf("register_rule: rule %q needs a pattern or a check function", id)
	}
	if pattern != "" && check != nil {
		return lint.RuleDef{}, fmt.Errorf("register_rule: rule %q cannot have both a pattern and a check function", id)
	}

	sev, ok := lint.ParseSeverity(severity)
	if !ok {
		return lint.RuleDef{}, fmt.Errorf("register_rule: rule %q has invalid severity %q", id, severity)
	}

	var checkFn lint.CheckFunc
	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return lint.RuleDef{}, fmt.Errorf("register_rule: rule %q has invalid pattern: %w", id, err)
		}
		checkFn = patternCheck(id, sev, message, re, raw)
	} else {
		checkFn = callableCheck(id, sev, message, check, raw)
	}

	if description == "" {
		description = message
	}

	return lint.RuleDef{
		ID:          id,
		Name:        fmt.Sprintf("%s.%s", group, id),
		Group:       group,
		Description: description,
		Severity:    sev,
		Check:       checkFn,
		Origin:      "script",
		Fix:         fmt.Sprintf("Defined in %s", filepath.Base(path)),
	}, nil
}

// patternCheck reports one violation per regexp match. Matching runs over
// the code view of the line unless raw is set.
func patternCheck(id string, sev lint.Severity, message string, re *regexp.Regexp, raw bool) lint.CheckFunc {
	return func(ctx lint.Context, _ map[string]any) []lint.Violation {
		text := ctx.Line.Code()
		if raw {
			text = ctx.Line.Text
		}

		var violations []lint.Violation
		for _, m := range re.FindAllStringIndex(text, -1) {
			violations = append(violations, lint.Violation{
				RuleID:   id,
				Severity: sev,
				Message:  message,
				Pos:      token.Position{Line: ctx.Line.Num, Column: m[0] + 1},
			})
		}
		return violations
	}
}

// callableCheck invokes a Starlark check function with the line text. The
// function may return False/None (no violation), True (violation with no
// column), an int column, or a list of int columns. Starlark values are
// not safe for concurrent calls, so invocations are serialized.
func callableCheck(id string, sev lint.Severity, message string, fn starlark.Callable, raw bool) lint.CheckFunc {
	var mu sync.Mutex

	return func(ctx lint.Context, _ map[string]any) []lint.Violation {
		text := ctx.Line.Code()
		if raw {
			text = ctx.Line.Text
		}

		mu.Lock()
		defer mu.Unlock()

		thread := &starlark.Thread{Name: fmt.Sprintf("rule:%s", id)}
		result, err := starlark.Call(thread, fn, starlark.Tuple{starlark.String(text)}, nil)
		if err != nil {
			// A failing check function reports nothing; the error is a
			// script bug, not a finding.
			return nil
		}

		violation := func(col int) lint.Violation {
			return lint.Violation{
				RuleID:   id,
				Severity: sev,
				Message:  message,
				Pos:      token.Position{Line: ctx.Line.Num, Column: col},
			}
		}

		switch v := result.(type) {
		case starlark.Bool:
			if bool(v) {
				return []lint.Violation{violation(0)}
			}
		case starlark.Int:
			if col, ok := v.Int64(); ok && col > 0 {
				return []lint.Violation{violation(int(col))}
			}
		case *starlark.List:
			var violations []lint.Violation
			for i := 0; i < v.Len(); i++ {
				if n, ok := v.Index(i).(starlark.Int); ok {
					if col, ok := n.Int64(); ok && col > 0 {
						violations = append(violations, violation(int(col)))
					}
				}
			}
			return violations
		}
		return nil
	}
}
