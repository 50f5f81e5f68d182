package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reportcard/internal/nav"
	"github.com/abhisek/reportcard/internal/viewmodel"
)

// run executes the root command with args against a config path that does
// not exist, so defaults apply.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv("REPORTCARD_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.toml")))
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default between runs; cobra keeps
// parsed values on the package-level commands.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestViewJSON_Chapter(t *testing.T) {
	out, err := run(t, "view", "--json", "--subject", "Physics", "--chapter", "Newtonian Mechanics")
	require.NoError(t, err)

	var v viewmodel.View
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, nav.ScreenChapter, v.Screen)
	require.NotNil(t, v.Chapter)
	assert.Equal(t, 65, v.Chapter.Score)
	assert.Len(t, v.Chapter.MCQTopics, 4)
}

func TestViewJSON_QuarterAndChart(t *testing.T) {
	out, err := run(t, "view", "--json", "--quarter", "3", "--chart", "mcq")
	require.NoError(t, err)

	var v viewmodel.View
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "Q3", v.Header.QuarterLabel)
	assert.Equal(t, 94, v.Progress.TotalScore)
	assert.Equal(t, "mcq", string(v.Trend.Series.Metric))
}

func TestViewRejectsChapterWithoutSubject(t *testing.T) {
	_, err := run(t, "view", "--chapter", "Vectors")
	assert.Error(t, err)
}

func TestViewRejectsBadQuarter(t *testing.T) {
	_, err := run(t, "view", "--quarter", "4")
	assert.Error(t, err)
}

func TestViewText_Leaderboard(t *testing.T) {
	out, err := run(t, "view", "--tab", "leaderboard", "--filter-subject", "Physics")
	require.NoError(t, err)
	assert.Contains(t, out, "Larry Brown")
	assert.Contains(t, out, "Rafiq Islam")
}

func TestLeaderboardFilters(t *testing.T) {
	out, err := run(t, "leaderboard", "--subject", "Physics")
	require.NoError(t, err)
	assert.Contains(t, out, "  1  Larry Brown")
	assert.NotContains(t, out, "Chemistry")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "reportcard (devel)\n", out)
}
