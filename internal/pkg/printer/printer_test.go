package printer

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	SetOutput(&stdout, &stderr)
	t.Cleanup(func() {
		color.NoColor = noColor
		SetOutput(os.Stdout, os.Stderr)
	})
	return &stdout, &stderr
}

func TestSuccessAndWarning(t *testing.T) {
	stdout, _ := capture(t)

	Success("migrated to version %d\n", 3)
	Success("✓ done\n")
	Warning("admin exists\n")

	assert.Equal(t, "✓ migrated to version 3\n✓ done\n! admin exists\n", stdout.String())
}

func TestError(t *testing.T) {
	_, stderr := capture(t)

	err := Error("Migration failed", "the database refused the connection",
		map[string]string{"host": "db", "database": "alumnet"},
		"check DB_HOST", "start postgres")

	assert.EqualError(t, err, "Migration failed")
	assert.Equal(t, "Migration failed\n\nthe database refused the connection\n\n"+
		"  database: alumnet\n  host: db\n\nEither:\n  1. check DB_HOST\n  2. start postgres\n", stderr.String())
}
