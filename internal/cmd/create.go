package cmd

import (
	"context"
	"os"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
	"svnbranch/internal/services"
)

// createFlags are shared by the branch creation commands
type createFlags struct {
	Name       string `arg:"" help:"Name of the new branch"`
	SubRoot    string `arg:"" optional:"" help:"Directory of the workspace to branch (defaults to the workspace root)"`
	ChangeRoot string `name:"changeRoot" help:"Directory of the workspace to branch, same as SUB-ROOT" placeholder:"DIR"`
	Message    string `help:"Commit log message (a default is generated)" short:"m"`
	Remote     bool   `help:"Create the branch in the repository without switching the workspace"`
}

func (f *createFlags) subRoot() string {
	if f.ChangeRoot != "" {
		return f.ChangeRoot
	}
	return f.SubRoot
}

func (f *createFlags) run(container *Container, kind domain.BranchType, force bool) error {
	logging.Logger.Info("Executing create branch command",
		"name", f.Name,
		"kind", kind.Keyword(),
		"subroot", f.subRoot(),
		"remote", f.Remote,
		"force", force)

	path := "."
	if sub := f.subRoot(); sub != "" {
		path = sub
	}
	result, err := container.BranchService.CreateBranch(context.Background(), services.CreateBranchParams{
		Force:   force,
		Kind:    kind,
		Message: f.Message,
		Name:    f.Name,
		Path:    path,
		Remote:  f.Remote,
		SubRoot: f.subRoot(),
	})
	if result != nil {
		printWarnings(os.Stderr, result.Warnings)
		renderCreate(os.Stdout, result)
	}
	return err
}

// CreateUserBranchCmd creates a user branch
type CreateUserBranchCmd struct {
	createFlags
	Force bool `help:"Create even when the workspace has local modifications or is out of date" short:"f"`
}

// Run executes the createuserbranch command
func (c *CreateUserBranchCmd) Run(container *Container) error {
	return c.run(container, domain.UserBranch, c.Force)
}

// CreateReleaseBranchCmd creates a release branch.
// Release branches always require a clean workspace.
type CreateReleaseBranchCmd struct {
	createFlags
}

// Run executes the createreleasebranch command
func (c *CreateReleaseBranchCmd) Run(container *Container) error {
	return c.run(container, domain.ReleaseBranch, false)
}
