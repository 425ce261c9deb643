package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"
)

// Runner runs a shell command line and returns what it printed.
type Runner interface {
	Run(ctx context.Context, cmd string) (stdout, stderr string, err error)
}

// ShellRunner runs commands through sh -c. A non-zero exit status is logged,
// not returned: the caller parses whatever the tool printed.
type ShellRunner struct {
	Timeout time.Duration
}

func (r ShellRunner) Run(ctx context.Context, cmd string) (string, string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, "sh", "-c", cmd)
	c.Stdout = &stdout
	c.Stderr = &stderr
	// children of sh may hold the pipes open after a kill
	c.WaitDelay = time.Second
	err := c.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdout.String(), stderr.String(), fmt.Errorf("run [%s]: %w", cmd, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.Printf("exit status %d:[%s]", exitErr.ExitCode(), cmd)
		err = nil
	}
	if err != nil {
		return "", "", fmt.Errorf("run [%s]: %w", cmd, err)
	}
	return stdout.String(), stderr.String(), nil
}

// hasProg reports whether the program a command line starts with is on PATH.
func hasProg(cmd string) bool {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return false
	}
	_, err := exec.LookPath(fields[0])
	return err == nil
}
