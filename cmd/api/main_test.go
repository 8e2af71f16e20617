package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "todo-api version dev\n", out.String())
}

func TestMigrateCommandArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no direction", args: []string{"migrate"}},
		{name: "unknown direction", args: []string{"migrate", "sideways"}},
		{name: "too many", args: []string{"migrate", "up", "down"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := rootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)
			assert.Error(t, cmd.Execute())
		})
	}
}

func TestMigrateRequiresDSN(t *testing.T) {
	t.Setenv("PG_DSN", "")
	t.Setenv("DATABASE_URL", "")

	cmd := rootCmd()
	cmd.SetArgs([]string{"migrate", "status"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PG_DSN or DATABASE_URL is required")
}
