package cmd

import (
	"context"
	"fmt"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
	"svnbranch/internal/services"
	"svnbranch/internal/theme"
)

// SetBranchCmd switches a workspace to another branch
type SetBranchCmd struct {
	Kind       string `arg:"" optional:"" help:"Branch type: trunk, release or user" default:"user"`
	Name       string `arg:"" optional:"" help:"Branch name (not used for trunk)"`
	ChangeRoot string `name:"changeRoot" help:"Directory of the workspace to switch" default:"." placeholder:"DIR"`
	Force      bool   `help:"Switch even when the workspace has local modifications" short:"f"`
}

// Run executes the setbranch command
func (s *SetBranchCmd) Run(container *Container) error {
	kind, err := domain.ParseBranchType(s.Kind)
	if err != nil {
		return domain.E(domain.Op("setbranch"), domain.ArgumentError, err)
	}
	if kind != domain.Trunk && s.Name == "" {
		return domain.E(domain.Op("setbranch"), domain.ArgumentError, fmt.Sprintf("a %s name is required", kind))
	}
	logging.Logger.Info("Executing setbranch command", "kind", kind.Keyword(), "name", s.Name, "path", s.ChangeRoot)

	result, err := container.BranchService.SetBranch(context.Background(), services.SetBranchParams{
		Force: s.Force,
		Kind:  kind,
		Name:  s.Name,
		Path:  s.ChangeRoot,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Switched %s to %s\n", result.Root, theme.BranchStyle.Render(result.BranchPath))
	return nil
}
