package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSyncCommand(t *testing.T) {
	out, _, err := run(t, "sync")
	assert.NilError(t, err)
	assert.Check(t, is.Contains(out, "models in sync"))
}

func TestValidateCommand(t *testing.T) {
	good := writeFile(t, "params.yaml", "projectId: proj_1\nkeepAlive: true\nregion: us-east-1\n")
	out, _, err := run(t, "validate", "--type", "session-create-params", good)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(out, "SessionCreateParams: ok\n"))

	bad := writeFile(t, "params.json", `{"projectId":"proj_1","region":"mars-1"}`)
	_, _, err = run(t, "validate", "--type", "SessionCreateParams", bad)
	assert.Check(t, is.ErrorContains(err, "invalid data at region"))

	_, _, err = run(t, "validate", "--type", "Spaceship", good)
	assert.Check(t, is.ErrorContains(err, `unknown model "Spaceship"`))
}

func TestDiffCommand(t *testing.T) {
	a := writeFile(t, "a.json", `{"projectId":"proj_1","keepAlive":true}`)
	b := writeFile(t, "b.yaml", "keepAlive: true\nprojectId: proj_1\n")
	out, _, err := run(t, "diff", a, b)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(strings.TrimSpace(out), "equal"))

	c := writeFile(t, "c.json", `{"projectId":"proj_2","keepAlive":true}`)
	_, _, err = run(t, "diff", a, c)
	assert.Check(t, is.ErrorContains(err, "documents differ"))
}

func TestOpsCommand(t *testing.T) {
	out, _, err := run(t, "ops", "--tag", "Extensions")
	assert.NilError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Assert(t, is.Len(lines, 2))
	assert.Check(t, is.Contains(lines[0], "extensions.delete"))
	assert.Check(t, strings.HasSuffix(lines[0], "- -> -"), lines[0])
	assert.Check(t, is.Contains(lines[1], "extensions.get"))
}
