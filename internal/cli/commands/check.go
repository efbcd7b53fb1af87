package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/leapstack-labs/leapstyle/internal/baseline"
	"github.com/leapstack-labs/leapstyle/internal/cli/config"
	"github.com/leapstack-labs/leapstyle/internal/cli/output"
	"github.com/leapstack-labs/leapstyle/internal/rulescript"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	_ "github.com/leapstack-labs/leapstyle/pkg/lint/rules" // register builtin rules
	"github.com/leapstack-labs/leapstyle/pkg/source"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Paths          []string // Files or directories; "-" reads stdin
	Format         string   // Output format: text, markdown, json
	Disable        []string // Rule IDs to disable
	Rules          []string // Run only specific rules
	Severity       string   // Report threshold: error, warning, info, hint
	MaxWarnings    int      // Fail when warnings exceed this; -1 disables
	UseBaseline    bool     // Suppress baselined violations
	UpdateBaseline bool     // Snapshot current violations into the baseline
	Watch          bool     // Re-run on file changes
	Jobs           int      // Parallel file scans; 0 means one per CPU
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Aliases: []string{"lint"},
		Short:   "Check source files against style rules",
		Long: `Check source files against the registered style rules.

Paths may be files or directories; directories are walked recursively and
filtered by the configured extensions. Use "-" to read from stdin. With no
paths, the project root is checked.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format

Exit codes: 0 when no error-severity violations were found, 1 when at
least one was (or warnings exceed --max-warnings), 2 when input could not
be read or decoded or the configuration is invalid.`,
		Example: `  # Check the whole project
  leapstyle check

  # Check specific paths
  leapstyle check Sources/ Tests/App.swift

  # Check stdin
  cat App.swift | leapstyle check -

  # Output as JSON
  leapstyle check --format json

  # Disable specific rules
  leapstyle check --disable no-todo-comment,line-length

  # Only report errors
  leapstyle check --severity error

  # Suppress everything already in the baseline
  leapstyle check --baseline`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Report threshold: error, warning, info, hint")
	cmd.Flags().IntVar(&opts.MaxWarnings, "max-warnings", -1, "Fail when warnings exceed this count (-1 disables)")
	cmd.Flags().BoolVar(&opts.UseBaseline, "baseline", false, "Suppress violations recorded in the baseline")
	cmd.Flags().BoolVar(&opts.UpdateBaseline, "update-baseline", false, "Snapshot current violations into the baseline")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run the check when files change")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Parallel file scans (0 = one per CPU)")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)

	if opts.Watch {
		return runWatch(cmd, cmdCtx, opts)
	}
	return runCheckOnce(cmd, cmdCtx, opts)
}

func runCheckOnce(cmd *cobra.Command, cmdCtx *CommandContext, opts *CheckOptions) error {
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
		if cfg.NoColor {
			r.DisableColor()
		}
	}

	reg, err := buildRegistry(cfg, cmdCtx)
	if err != nil {
		return err
	}

	rules, err := selectRules(reg, opts.Rules)
	if err != nil {
		return err
	}

	lintCfg := buildLintConfig(cfg.Style(), opts.Disable)

	results, err := scanPaths(cmd, cfg, opts, rules, lintCfg)
	if err != nil {
		return err
	}

	if opts.UpdateBaseline {
		return writeBaseline(cmdCtx, r, results)
	}

	suppressed := 0
	if opts.UseBaseline {
		set, err := loadBaseline(cmdCtx)
		if err != nil {
			return err
		}
		suppressed = applyBaseline(results, set)
	}

	threshold, err := parseSeverityThreshold(opts.Severity)
	if err != nil {
		return err
	}
	results = filterBySeverity(results, threshold)

	summary := buildSummary(results)
	summary.Suppressed = suppressed

	renderCheckResults(r, results, summary)

	if summary.Errors > 0 {
		return ErrViolationsFound
	}
	maxWarnings := cfg.MaxWarnings
	if cmd.Flags().Changed("max-warnings") {
		maxWarnings = opts.MaxWarnings
	}
	if maxWarnings >= 0 && summary.Warnings > maxWarnings {
		return fmt.Errorf("%d warnings exceed the limit of %d: %w", summary.Warnings, maxWarnings, ErrViolationsFound)
	}
	return nil
}

// buildRegistry copies the builtin catalog into a fresh registry and loads
// configured rule scripts on top. A fresh registry per run keeps watch
// re-runs picking up script edits without duplicate registrations.
func buildRegistry(cfg *config.Config, cmdCtx *CommandContext) (*lint.Registry, error) {
	reg := lint.NewRegistry()
	for _, rule := range lint.DefaultRegistry().All() {
		reg.MustRegister(rule)
	}

	loader := rulescript.NewLoader(reg, cmdCtx.Logger)
	for _, dir := range cfg.RuleDirs {
		n, err := loader.LoadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to load rule scripts: %w", err)
		}
		if n > 0 {
			cmdCtx.Logger.Debug("loaded rule scripts", "dir", dir, "rules", n)
		}
	}
	return reg, nil
}

// selectRules restricts the rule set to the --rule list, when given.
func selectRules(reg *lint.Registry, only []string) ([]lint.RuleDef, error) {
	all := reg.All()
	if len(only) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(only))
	for _, id := range only {
		id = strings.TrimSpace(id)
		if _, ok := reg.Get(id); !ok {
			return nil, fmt.Errorf("unknown rule %q", id)
		}
		want[id] = true
	}

	var rules []lint.RuleDef
	for _, rule := range all {
		if want[rule.ID] {
			rules = append(rules, rule)
		}
	}
	return rules, nil
}

// scanPaths resolves the target files and scans them, in parallel for
// multi-file runs. Results come back sorted by path so output is
// deterministic regardless of scheduling.
func scanPaths(cmd *cobra.Command, cfg *config.Config, opts *CheckOptions, rules []lint.RuleDef, lintCfg *lint.Config) ([]*lint.Result, error) {
	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{cfg.ProjectRoot}
	}

	// Stdin is a single-input special case
	if len(paths) == 1 && paths[0] == "-" {
		return scanStdin(cmd.InOrStdin(), rules, lintCfg)
	}

	files, err := collectFiles(cfg, paths)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]*lint.Result, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := scanFile(path, rules, lintCfg)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanStdin(in io.Reader, rules []lint.RuleDef, lintCfg *lint.Config) ([]*lint.Result, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, &InputError{Path: "<stdin>", Err: err}
	}

	file, err := source.NewFile("<stdin>", string(data))
	if err != nil {
		return nil, err
	}
	return []*lint.Result{lint.Scan(file, rules, lintCfg)}, nil
}

func scanFile(path string, rules []lint.RuleDef, lintCfg *lint.Config) (*lint.Result, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the CLI arguments or a directory walk
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	file, err := source.NewFile(path, string(data))
	if err != nil {
		return nil, err
	}
	return lint.Scan(file, rules, lintCfg), nil
}

// collectFiles expands the given paths into a sorted list of files.
// Directories are walked recursively with the extension filter; files
// named explicitly bypass it.
func collectFiles(cfg *config.Config, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &InputError{Path: path, Err: err}
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return &InputError{Path: p, Err: err}
			}
			if d.IsDir() {
				// Skip hidden directories like .git and .leapstyle
				if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if slices.Contains(cfg.Extensions, filepath.Ext(p)) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)
	return files, nil
}

func openBaselineStore(cmdCtx *CommandContext) (*baseline.Store, error) {
	path := cmdCtx.Cfg.BaselinePath
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create baseline directory: %w", err)
		}
	}

	store := baseline.NewStore(cmdCtx.Logger)
	if err := store.Open(path); err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func writeBaseline(cmdCtx *CommandContext, r *output.Renderer, results []*lint.Result) error {
	store, err := openBaselineStore(cmdCtx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var entries []baseline.Entry
	for _, res := range results {
		for _, v := range res.Violations {
			entries = append(entries, baseline.Entry{
				Path:    res.Path,
				RuleID:  v.RuleID,
				Line:    v.Pos.Line,
				Message: v.Message,
			})
		}
	}

	id, err := store.Write(entries)
	if err != nil {
		return err
	}

	cmdCtx.Logger.Debug("baseline snapshot written", "id", id, "entries", len(entries))
	r.Success(fmt.Sprintf("Baseline updated: %d accepted violations", len(entries)))
	return nil
}

func loadBaseline(cmdCtx *CommandContext) (*baseline.Set, error) {
	if _, err := os.Stat(cmdCtx.Cfg.BaselinePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no baseline found at %s (run 'leapstyle check --update-baseline' first)", cmdCtx.Cfg.BaselinePath)
	}

	store, err := openBaselineStore(cmdCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	return store.Load()
}

// applyBaseline drops baselined violations in place and returns how many
// were suppressed.
func applyBaseline(results []*lint.Result, set *baseline.Set) int {
	suppressed := 0
	for _, res := range results {
		kept := res.Violations[:0]
		for _, v := range res.Violations {
			if set.Has(baseline.Entry{Path: res.Path, RuleID: v.RuleID, Line: v.Pos.Line, Message: v.Message}) {
				suppressed++
				continue
			}
			kept = append(kept, v)
		}
		res.Violations = kept
	}
	return suppressed
}

// parseSeverityThreshold converts a severity string to lint.Severity.
func parseSeverityThreshold(s string) (lint.Severity, error) {
	if sev, ok := lint.ParseSeverity(s); ok {
		return sev, nil
	}
	return 0, fmt.Errorf("invalid severity %q (expected error, warning, info, or hint)", s)
}

// filterBySeverity keeps violations at or above the threshold.
func filterBySeverity(results []*lint.Result, threshold lint.Severity) []*lint.Result {
	for _, res := range results {
		kept := res.Violations[:0]
		for _, v := range res.Violations {
			if v.Severity <= threshold {
				kept = append(kept, v)
			}
		}
		res.Violations = kept
	}
	return results
}

func buildSummary(results []*lint.Result) output.CheckSummary {
	summary := output.CheckSummary{FilesScanned: len(results)}
	for _, res := range results {
		summary.LinesScanned += res.LinesScanned
		summary.Total += len(res.Violations)
		summary.Errors += res.Count(lint.SeverityError)
		summary.Warnings += res.Count(lint.SeverityWarning)
		summary.Info += res.Count(lint.SeverityInfo)
		summary.Hints += res.Count(lint.SeverityHint)
	}
	return summary
}

func renderCheckResults(r *output.Renderer, results []*lint.Result, summary output.CheckSummary) {
	if r.EffectiveMode() == output.ModeJSON {
		renderCheckJSON(r, results, summary)
		return
	}

	if summary.Total == 0 {
		msg := fmt.Sprintf("No style violations in %d files", summary.FilesScanned)
		if summary.FilesScanned == 1 {
			msg = "No style violations"
		}
		if summary.Suppressed > 0 {
			msg += fmt.Sprintf(" (%d baselined)", summary.Suppressed)
		}
		r.Success(msg)
		return
	}

	multiFile := len(results) > 1
	for _, res := range results {
		if len(res.Violations) == 0 {
			continue
		}
		if multiFile {
			r.Println(r.Styles().FilePath.Render(res.Path))
		}
		for _, v := range res.Violations {
			loc := fmt.Sprintf("%d:", v.Pos.Line)
			if v.Pos.Column > 0 {
				loc = fmt.Sprintf("%d:%d:", v.Pos.Line, v.Pos.Column)
			}
			r.Printf("%s %s %s [%s]\n",
				r.Styles().Muted.Render(loc),
				severityStyle(r, v.Severity),
				v.Message,
				r.Styles().Bold.Render(v.RuleID),
			)
		}
		if multiFile {
			r.Println("")
		}
	}

	parts := []string{}
	if summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", summary.Hints))
	}
	detail := ""
	if len(parts) > 0 {
		detail = fmt.Sprintf(" (%s)", strings.Join(parts, ", "))
	}
	if summary.Suppressed > 0 {
		detail += fmt.Sprintf(", %d baselined", summary.Suppressed)
	}
	r.Printf("Summary: %d violations%s in %d files\n", summary.Total, detail, summary.FilesScanned)
}

func renderCheckJSON(r *output.Renderer, results []*lint.Result, summary output.CheckSummary) {
	out := output.CheckOutput{Summary: summary}
	for _, res := range results {
		if len(res.Violations) == 0 {
			continue
		}
		report := output.FileReport{Path: res.Path}
		for _, v := range res.Violations {
			report.Violations = append(report.Violations, output.ViolationEntry{
				RuleID:   v.RuleID,
				Severity: v.Severity.String(),
				Message:  v.Message,
				Line:     v.Pos.Line,
				Column:   v.Pos.Column,
			})
		}
		out.Files = append(out.Files, report)
	}
	_ = r.JSON(out)
}
