package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumnet/internal/pkg/printer"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	printer.SetOutput(&stdout, &stderr)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		printer.SetOutput(os.Stdout, os.Stderr)
		rootCmd.SetArgs(nil)
		confirmDown = false
	})

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_ShowsHelp(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "create-admin")
	assert.Contains(t, stdout, "migrate")
}

func TestMigrateDown_RequiresConfirmation(t *testing.T) {
	_, stderr, err := execute(t, "migrate", "down")
	assert.EqualError(t, err, "Refusing to roll back")
	assert.Contains(t, stderr, "--yes")
}

func TestCreateAdmin_Validation(t *testing.T) {
	t.Run("missing flags", func(t *testing.T) {
		_, _, err := execute(t, "create-admin", "--email", "root@example.edu")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("short password", func(t *testing.T) {
		_, stderr, err := execute(t, "create-admin", "--email", "root@example.edu", "--password", "abc")
		assert.EqualError(t, err, "Password too short")
		assert.Contains(t, stderr, "at least 6")
	})
}
