package cmd

import (
	"context"
	"os"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

// ListWorkingCopyInfoCmd prints the metadata block of a workspace
type ListWorkingCopyInfoCmd struct {
	Path string `arg:"" optional:"" help:"Any path inside the workspace" default:"."`
}

// Run executes the listworkingcopyinfo command
func (l *ListWorkingCopyInfoCmd) Run(container *Container) error {
	logging.Logger.Info("Executing listworkingcopyinfo command", "path", l.Path)
	info, err := container.BranchService.ListWorkingCopyInfo(context.Background(), l.Path)
	if err != nil {
		return err
	}
	renderWorkingCopyInfo(os.Stdout, info)
	return nil
}

// ListBranchesCmd lists the branches of one category
type ListBranchesCmd struct {
	Kind string `help:"Branch type to list (user or release)" default:"user" enum:"user,release"`
	Path string `arg:"" optional:"" help:"Any path inside a workspace of the project" default:"."`
}

// Run executes the listbranches command
func (l *ListBranchesCmd) Run(container *Container) error {
	kind, err := domain.ParseBranchType(l.Kind)
	if err != nil {
		return domain.E(domain.Op("listbranches"), domain.ArgumentError, err)
	}
	return listBranches(container, l.Path, kind)
}

// ListUserBranchesCmd lists the user branches
type ListUserBranchesCmd struct {
	Path string `arg:"" optional:"" help:"Any path inside a workspace of the project" default:"."`
}

// Run executes the listuserbranches command
func (l *ListUserBranchesCmd) Run(container *Container) error {
	return listBranches(container, l.Path, domain.UserBranch)
}

func listBranches(container *Container, path string, kind domain.BranchType) error {
	logging.Logger.Info("Listing branches", "kind", kind.Keyword(), "path", path)
	branches, err := container.BranchService.ListBranches(context.Background(), path, kind)
	if err != nil {
		return err
	}
	renderBranches(os.Stdout, branches)
	return nil
}

// HistoryCmd shows the local operation journal
type HistoryCmd struct {
	Limit int `help:"Number of operations to show" default:"20" short:"n"`
}

// Run executes the history command
func (h *HistoryCmd) Run(container *Container) error {
	records, err := container.BranchService.History(context.Background(), h.Limit)
	if err != nil {
		return err
	}
	renderHistory(os.Stdout, records)
	return nil
}
