package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/leapstyle/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewBaselineCommand creates the baseline command group.
func NewBaselineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage the accepted-violation baseline",
		Long: `Manage the baseline of accepted violations.

A baseline snapshots the violations a project has decided to live with.
'leapstyle check --baseline' suppresses everything recorded here, so only
new findings are reported.`,
	}

	cmd.AddCommand(newBaselineWriteCommand())
	cmd.AddCommand(newBaselineListCommand())
	cmd.AddCommand(newBaselineClearCommand())

	return cmd
}

func newBaselineWriteCommand() *cobra.Command {
	opts := &CheckOptions{UpdateBaseline: true}
	cmd := &cobra.Command{
		Use:   "write [paths...]",
		Short: "Snapshot current violations into the baseline",
		Long: `Scan the given paths and record every current violation as accepted.
This replaces the previous baseline.`,
		Example: `  # Baseline the whole project
  leapstyle baseline write

  # Baseline a subtree
  leapstyle baseline write Sources/Legacy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			cmdCtx := NewCommandContext(cmd)
			return runCheckOnce(cmd, cmdCtx, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "Parallel file scans (0 = one per CPU)")

	return cmd
}

func newBaselineListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List baseline snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			store, err := openBaselineStore(cmdCtx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snaps, err := store.Snapshots()
			if err != nil {
				return err
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(snaps)
			}

			if len(snaps) == 0 {
				r.Println("No baseline snapshots recorded.")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(r.Writer())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Created", "Entries"})
			for _, snap := range snaps {
				t.AppendRow(table.Row{snap.ID, snap.CreatedAt.Format("2006-01-02 15:04:05"), snap.Entries})
			}
			t.Render()

			return nil
		},
	}
}

func newBaselineClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all baseline entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)

			store, err := openBaselineStore(cmdCtx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Clear(); err != nil {
				return err
			}

			cmdCtx.Renderer.Success(fmt.Sprintf("Baseline cleared (%s)", cmdCtx.Cfg.BaselinePath))
			return nil
		},
	}
}
