package cmd

import (
	"context"
	"os"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
	"svnbranch/internal/services"
)

// SynchronizeCmd merges source changes into the workspace
type SynchronizeCmd struct {
	Path string `arg:"" optional:"" help:"Any path inside the workspace" default:"."`
}

// Run executes the synchronize command.
// Conflicts are printed with the rest of the merge before the error is returned.
func (s *SynchronizeCmd) Run(container *Container) error {
	logging.Logger.Info("Executing synchronize command", "path", s.Path)
	result, err := container.BranchService.Synchronize(context.Background(), s.Path)
	if result != nil {
		renderSynchronize(os.Stdout, result)
		printWarnings(os.Stderr, result.Warnings)
	}
	return err
}

// PromoteCmd merges the branch into its source and commits
type PromoteCmd struct {
	Message string `help:"Commit log message for the source" short:"m"`
	Path    string `arg:"" optional:"" help:"Any path inside the workspace" default:"."`
}

// Run executes the promote command
func (p *PromoteCmd) Run(container *Container) error {
	message := p.Message
	if message == "" {
		if !container.Interactive {
			return domain.E(domain.Op("promote"), domain.ArgumentError, "a log message is required (-m)")
		}
		var err error
		message, err = container.Prompter.Input("Log message for the promote commit", "describe the change")
		if err != nil {
			return domain.E(domain.Op("promote"), domain.ArgumentError, err)
		}
	}
	logging.Logger.Info("Executing promote command", "path", p.Path)

	result, err := container.BranchService.Promote(context.Background(), services.PromoteParams{
		Message: message,
		Path:    p.Path,
	})
	if result != nil {
		printWarnings(os.Stderr, result.Warnings)
		if err == nil {
			renderPromote(os.Stdout, result)
		}
	}
	return err
}

// RevertToSourceCmd makes paths match the source again
type RevertToSourceCmd struct {
	Paths []string `arg:"" help:"Paths inside the workspace to revert"`
}

// Run executes the reverttosource command.
// Every path is attempted; failures are reported together at the end.
func (r *RevertToSourceCmd) Run(container *Container) error {
	logging.Logger.Info("Executing reverttosource command", "paths", r.Paths)
	result, err := container.BranchService.RevertToSource(context.Background(), services.RevertToSourceParams{
		Paths: r.Paths,
	})
	if result != nil {
		renderRevert(os.Stdout, result)
	}
	return err
}
