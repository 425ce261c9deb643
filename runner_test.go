package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRunner(t *testing.T) {
	runner := ShellRunner{}

	stdout, stderr, err := runner.Run(context.Background(), "echo out; echo err >&2")
	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout)
	assert.Equal(t, "err\n", stderr)

	t.Run("failing tool still returns its output", func(t *testing.T) {
		stdout, stderr, err := runner.Run(context.Background(), "echo partial; echo oops >&2; exit 3")
		require.NoError(t, err)
		assert.Equal(t, "partial\n", stdout)
		assert.Equal(t, "oops\n", stderr)
	})

	t.Run("pipeline", func(t *testing.T) {
		stdout, _, err := runner.Run(context.Background(), "printf 'a==1\\nRSeQC==3.0.0\\n' | grep RSeQC")
		require.NoError(t, err)
		assert.Equal(t, "RSeQC==3.0.0\n", stdout)
	})

	t.Run("timeout", func(t *testing.T) {
		runner := ShellRunner{Timeout: 50 * time.Millisecond}
		_, _, err := runner.Run(context.Background(), "sleep 5")
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestHasProg(t *testing.T) {
	assert.True(t, hasProg("sh -c true"))
	assert.False(t, hasProg("no-such-tool-7f3c --version"))
	assert.False(t, hasProg("  "))
}
