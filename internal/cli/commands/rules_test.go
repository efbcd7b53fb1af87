package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/leapstyle/pkg/core"
	"github.com/leapstack-labs/leapstyle/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRulesCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"group", "severity", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestListRulesMarkdown(t *testing.T) {
	out, err := runRulesCommand(t, "--format", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Style Rules")
	assert.Contains(t, out, "no-semicolons")
	assert.Contains(t, out, "no-trailing-whitespace")
}

func TestListRulesJSON(t *testing.T) {
	out, err := runRulesCommand(t, "--format", "json")
	require.NoError(t, err)

	var payload RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, lint.DefaultRegistry().Count(), payload.Count)
	assert.Len(t, payload.Rules, payload.Count)
}

func TestListRulesGroupFilter(t *testing.T) {
	out, err := runRulesCommand(t, "--group", "whitespace", "--format", "json")
	require.NoError(t, err)

	var payload RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.NotEmpty(t, payload.Rules)
	for _, info := range payload.Rules {
		assert.Equal(t, "whitespace", info.Group)
	}
}

func TestListRulesSeverityFilter(t *testing.T) {
	out, err := runRulesCommand(t, "--severity", "error", "--format", "json")
	require.NoError(t, err)

	var payload RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.NotEmpty(t, payload.Rules)
	for _, info := range payload.Rules {
		assert.Equal(t, core.SeverityError, info.DefaultSeverity)
	}
}

func TestShowRule(t *testing.T) {
	t.Run("markdown detail", func(t *testing.T) {
		out, err := runRulesCommand(t, "no-semicolons", "--format", "markdown")
		require.NoError(t, err)

		assert.Contains(t, out, "no-semicolons")
		assert.Contains(t, out, "## Bad Example")
		assert.Contains(t, out, "## Good Example")
	})

	t.Run("json detail", func(t *testing.T) {
		out, err := runRulesCommand(t, "line-length", "--format", "json")
		require.NoError(t, err)

		var info core.RuleInfo
		require.NoError(t, json.Unmarshal([]byte(out), &info))
		assert.Equal(t, "line-length", info.ID)
		assert.NotEmpty(t, info.ConfigKeys)
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := runRulesCommand(t, "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope")
	})
}

func TestFilterRuleInfo(t *testing.T) {
	infos := []core.RuleInfo{
		{ID: "a", Group: "whitespace", DefaultSeverity: core.SeverityError},
		{ID: "b", Group: "naming", DefaultSeverity: core.SeverityWarning},
		{ID: "c", Group: "whitespace", DefaultSeverity: core.SeverityWarning},
	}

	t.Run("no filters", func(t *testing.T) {
		assert.Len(t, filterRuleInfo(infos, &RulesOptions{}), 3)
	})

	t.Run("group", func(t *testing.T) {
		filtered := filterRuleInfo(infos, &RulesOptions{Group: "whitespace"})
		assert.Len(t, filtered, 2)
	})

	t.Run("severity", func(t *testing.T) {
		filtered := filterRuleInfo(infos, &RulesOptions{Severity: "Warning"})
		assert.Len(t, filtered, 2)
	})

	t.Run("group and severity", func(t *testing.T) {
		filtered := filterRuleInfo(infos, &RulesOptions{Group: "whitespace", Severity: "warning"})
		require.Len(t, filtered, 1)
		assert.Equal(t, "c", filtered[0].ID)
	})
}
