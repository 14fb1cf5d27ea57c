package adapters

import (
	"context"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"extbuild/internal/ports"
	"extbuild/internal/shared"
)

// GitCLIAdapter applies release actions by running git in WorkDir.
type GitCLIAdapter struct {
	WorkDir string
}

func NewGitCLIAdapter(workDir string) GitCLIAdapter {
	return GitCLIAdapter{WorkDir: workDir}
}

func (a GitCLIAdapter) Commit(ctx context.Context, message string) error {
	return a.run(ctx, "commit", "-a", "-m", message)
}

func (a GitCLIAdapter) Tag(ctx context.Context, name string, message string) error {
	return a.run(ctx, "tag", "-a", name, "-m", message)
}

func (a GitCLIAdapter) Push(ctx context.Context) error {
	if err := a.run(ctx, "push"); err != nil {
		return err
	}
	return a.run(ctx, "push", "--tags")
}

func (a GitCLIAdapter) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	if a.WorkDir != "" {
		cmd.Dir = a.WorkDir
	}
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("git " + args[0] + " failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

var _ ports.VCSPort = GitCLIAdapter{}
