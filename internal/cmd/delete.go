package cmd

import (
	"context"
	"fmt"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
	"svnbranch/internal/services"
	"svnbranch/internal/theme"
)

// DeleteUserBranchCmd deletes a user branch from the repository
type DeleteUserBranchCmd struct {
	Force  bool   `help:"Delete without confirmation" short:"f"`
	Name   string `arg:"" help:"Name of the user branch to delete"`
	Target string `help:"Working copy to check for checkouts of the branch" default:"." placeholder:"PATH"`
}

// Run executes the deleteuserbranch command
func (d *DeleteUserBranchCmd) Run(container *Container) error {
	logging.Logger.Info("Executing deleteuserbranch command", "name", d.Name, "target", d.Target, "force", d.Force)

	if !d.Force && !container.Interactive {
		return domain.E(domain.Op("deleteuserbranch"), domain.ArgumentError,
			"confirmation needs a terminal; pass -f to delete non-interactively")
	}

	result, err := container.BranchService.DeleteBranch(context.Background(), services.DeleteBranchParams{
		Force: d.Force,
		Name:  d.Name,
		Path:  d.Target,
	})
	if err != nil {
		return err
	}
	if result.Cancelled {
		fmt.Println("Cancelled")
		return nil
	}
	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("Deleted user branch %s in r%d", result.BranchPath, result.Revision)))
	return nil
}
