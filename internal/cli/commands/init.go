package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/leapstyle/internal/cli/config"
	"github.com/spf13/cobra"
)

// configTemplate is the scaffolded leapstyle.yaml. Every key is present
// and commented so a new project starts from the defaults.
const configTemplate = `# leapstyle configuration
# https://github.com/leapstack-labs/leapstyle

# File extensions scanned during directory walks
extensions:
  - ".swift"

# Output format: auto, text, markdown, json
output: auto

# Fail the check when warnings exceed this count (-1 disables)
max_warnings: -1

# Accepted-violation store, managed by 'leapstyle baseline'
baseline: .leapstyle/baseline.db

# Directories with custom Starlark rule scripts
# rule_dirs:
#   - style-rules

# Rule IDs to disable
# disabled:
#   - no-todo-comment

# Severity overrides (error, warning, info, hint)
# severity:
#   line-length: error

# Rule-specific options
# rules:
#   line-length:
#     max_length: 120
#   no-blank-line-runs:
#     max_blank_lines: 1
`

// baselineIgnore keeps the baseline database out of version control.
const baselineIgnore = `baseline.db
baseline.db-wal
baseline.db-shm
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a leapstyle project",
		Long: `Initialize a leapstyle project with a default configuration.

This creates:
  - leapstyle.yaml configuration file
  - .leapstyle/ directory for the baseline store (with a .gitignore)`,
		Example: `  # Initialize in the current directory
  leapstyle init

  # Initialize in a new directory
  leapstyle init my-project

  # Force overwrite existing config
  leapstyle init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cmdCtx := NewCommandContext(cmd)
			return runInit(cmdCtx, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmdCtx *CommandContext, dir string, force bool) error {
	r := cmdCtx.Renderer

	if dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, config.DefaultConfigName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.DefaultConfigName)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0o644); err != nil { //nolint:gosec // G306: config file is not sensitive
		return fmt.Errorf("failed to write %s: %w", config.DefaultConfigName, err)
	}
	r.StatusLine(config.DefaultConfigName, "success", "")

	storeDir := filepath.Join(dir, ".leapstyle")
	if err := os.MkdirAll(storeDir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", storeDir, err)
	}
	ignorePath := filepath.Join(storeDir, ".gitignore")
	if err := os.WriteFile(ignorePath, []byte(baselineIgnore), 0o644); err != nil { //nolint:gosec // G306: ignore file is not sensitive
		return fmt.Errorf("failed to write %s: %w", ignorePath, err)
	}
	r.StatusLine(".leapstyle/.gitignore", "success", "")

	r.Println("")
	r.Success("leapstyle project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Adjust rules and severities in leapstyle.yaml")
	r.Println("  2. Run 'leapstyle check' to scan your sources")
	r.Println("  3. Run 'leapstyle rules' to browse the rule catalog")

	return nil
}
