package onepassword

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

var (
	// Escape hatch for unit testing without an op binary on the PATH
	unitTestExecuteFunc func(string, ...string) (string, string, error)
)

func ExecuteOSCommand(ctx context.Context, bin string, args ...string) (string, string, error) {
	if unitTestExecuteFunc != nil {
		return unitTestExecuteFunc(bin, args...)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// ExecuteInteractiveOSCommand hands the terminal to the child, for commands that prompt
func ExecuteInteractiveOSCommand(ctx context.Context, bin string, args ...string) error {
	if unitTestExecuteFunc != nil {
		_, _, err := unitTestExecuteFunc(bin, args...)
		return err
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
