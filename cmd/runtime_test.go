package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"releng-sop/core/audit"
	"releng-sop/core/database"
	"releng-sop/core/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPrompter struct {
	answer  string
	prompts int
}

func (s *stubPrompter) Prompt(string) (string, error) {
	s.prompts++
	return s.answer, nil
}

func TestResolvePassword(t *testing.T) {
	pulpCfg := &document.PulpAdmin{Name: "pulp-test", User: "admin", Password: "stored"}

	tests := []struct {
		name    string
		flags   pulpFlags
		want    string
		prompts int
	}{
		{name: "dry run", flags: pulpFlags{}, want: "", prompts: 0},
		{name: "stored", flags: pulpFlags{workflowFlags: workflowFlags{commit: true}}, want: "stored", prompts: 0},
		{name: "forced", flags: pulpFlags{workflowFlags: workflowFlags{commit: true}, forcePassword: true}, want: "typed", prompts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPrompter{answer: "typed"}
			saved := prompter
			prompter = stub
			t.Cleanup(func() { prompter = saved })

			got, err := resolvePassword(pulpCfg, tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.prompts, stub.prompts)
		})
	}
}

func sqliteAudit(path string) audit.Config {
	return audit.Config{
		Enabled:         true,
		DatabaseEnabled: true,
		Database:        database.Config{Driver: database.DriverSQLite, Name: path},
	}
}

func TestOpenRecorder_DryRunHasNoSinks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	run := audit.NewRun(audit.WorkflowClearRepos, "default", "fedora-24")
	run.Finish(nil)

	rec := openRecorder(context.Background(), sqliteAudit(path), false, zap.NewNop())
	assert.Equal(t, 0, rec.Record(context.Background(), run))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	rec = openRecorder(context.Background(), sqliteAudit(path), true, zap.NewNop())
	assert.Equal(t, 1, rec.Record(context.Background(), run))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestBootstrap_MissingEnvironmentIsRecorded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	t.Setenv("RELENG_SOP_DOCUMENTS_ROOTS", t.TempDir())
	t.Setenv("RELENG_SOP_LOG_LEVEL", "error")
	t.Setenv("RELENG_SOP_AUDIT_ENABLED", "true")
	t.Setenv("RELENG_SOP_AUDIT_DATABASE_DRIVER", database.DriverSQLite)
	t.Setenv("RELENG_SOP_AUDIT_DATABASE_NAME", path)

	rt, err := bootstrap(context.Background(), audit.WorkflowClearRepos, workflowFlags{commit: true, env: "nowhere"}, "fedora-24")
	assert.Nil(t, rt)
	require.True(t, document.IsNotFound(err))

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: path})
	require.NoError(t, err)

	var rows []audit.RunRow
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, audit.WorkflowClearRepos, rows[0].Workflow)
	assert.Equal(t, "nowhere", rows[0].Environment)
	assert.True(t, rows[0].Commit)
	assert.Contains(t, rows[0].Error, "couldn't find config file 'nowhere.json'")
}
