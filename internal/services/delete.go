package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

// location is a local directory and the repository path it is checked out from
type location struct {
	local    string
	repoPath string
}

// DeleteBranch removes a user branch in one repository-side commit.
// Deletion is refused while any known working copy is on, above or below the branch.
func (s *BranchService) DeleteBranch(ctx context.Context, params DeleteBranchParams) (result *DeleteBranchResult, err error) {
	const op domain.Op = "deleteuserbranch"

	rec := domain.OperationRecord{Operation: string(op)}
	defer func() {
		if result != nil {
			rec.BranchPath = result.BranchPath
			rec.Revision = result.Revision
		}
		if result == nil || !result.Cancelled {
			s.record(ctx, rec, err)
		}
	}()

	if err := domain.ValidateBranchName(params.Name); err != nil {
		return nil, domain.E(op, domain.ArgumentError, err)
	}

	ws, err := s.resolver.Resolve(ctx, params.Path)
	if err != nil {
		return nil, err
	}
	rec.WorkspacePath = ws.Root

	branchPath := ws.Metadata.BranchPathFor(domain.UserBranch, params.Name)
	rec.BranchPath = branchPath
	branchURL := ws.URL(branchPath)

	kind, err := s.repo.CheckPath(ctx, branchURL, domain.RevisionHead)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(branchPath), err)
	}
	if kind != domain.NodeDir {
		return nil, domain.E(op, domain.PathArg(branchPath), domain.NotFound,
			fmt.Errorf("%w: user branch %s", domain.ErrBranchNotFound, params.Name))
	}
	if err := s.requireUserBranch(ctx, op, ws, branchPath); err != nil {
		return nil, err
	}

	locations, err := s.knownLocations(ctx, ws)
	if err != nil {
		return nil, domain.E(op, err)
	}
	for _, loc := range locations {
		if domain.IsRelated(loc.repoPath, branchPath) {
			return nil, domain.E(op, domain.PathArg(branchPath), domain.PreconditionError,
				fmt.Errorf("%s is checked out from %s; switch it away before deleting %s", loc.local, loc.repoPath, branchPath))
		}
	}

	result = &DeleteBranchResult{BranchPath: branchPath}
	if !params.Force {
		ok, err := s.prompter.Confirm(
			fmt.Sprintf("Delete user branch %s?", params.Name),
			fmt.Sprintf("%s will be removed from the repository at HEAD.", branchPath))
		if err != nil {
			return nil, domain.E(op, err)
		}
		if !ok {
			logging.Logger.Info("Branch deletion cancelled", "branch", branchPath)
			result.Cancelled = true
			return result, nil
		}
	}

	message := fmt.Sprintf("Delete user branch %s", branchPath)
	revision, err := s.repo.CommitOps(ctx, ws.RepoRootURL,
		[]domain.CommitOp{{Action: domain.CommitDelete, Path: branchPath}}, message, nil)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(branchPath), err)
	}
	logging.Logger.Info("Branch deleted", "branch", branchPath, "revision", revision)
	result.Revision = revision
	return result, nil
}

// requireUserBranch refuses to delete anything whose metadata says it is not a user branch
func (s *BranchService) requireUserBranch(ctx context.Context, op domain.Op, ws *Workspace, branchPath string) error {
	metaURL := ws.URL(domain.JoinRepoPath(branchPath, domain.MetadataFileName))
	kind, err := s.repo.CheckPath(ctx, metaURL, domain.RevisionHead)
	if err != nil {
		return domain.E(op, domain.PathArg(branchPath), err)
	}
	if kind != domain.NodeFile {
		return nil
	}
	props, err := s.repo.GetProperties(ctx, metaURL, domain.RevisionHead)
	if err != nil {
		return domain.E(op, domain.PathArg(branchPath), err)
	}
	meta, err := domain.DecodeMetadata(props)
	if err != nil {
		return domain.E(op, domain.PathArg(branchPath), domain.IntegrityError, err)
	}
	if meta.BranchType != domain.UserBranch {
		return domain.E(op, domain.PathArg(branchPath), domain.PreconditionError,
			fmt.Errorf("%s is a %s; only user branches can be deleted", branchPath, meta.BranchType))
	}
	return nil
}

// knownLocations collects the repository paths of the target working copy, its switched
// descendants and every registered working copy of the same repository
func (s *BranchService) knownLocations(ctx context.Context, ws *Workspace) ([]location, error) {
	var out []location

	rootInfo, err := s.repo.Info(ctx, ws.WCRoot)
	if err != nil {
		return nil, domain.E(domain.PathArg(ws.WCRoot), err)
	}
	out = append(out, location{local: rootInfo.Path, repoPath: rootInfo.RepoPath()})

	report, err := s.inspect(ctx, ws.WCRoot, false)
	if err != nil {
		return nil, domain.E(domain.PathArg(ws.WCRoot), err)
	}
	for _, p := range report.switched {
		info, err := s.repo.Info(ctx, p)
		if err != nil {
			return nil, domain.E(domain.PathArg(p), err)
		}
		out = append(out, location{local: p, repoPath: info.RepoPath()})
	}

	if s.store == nil {
		return out, nil
	}
	registered, err := s.store.ListWorkspaces(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to list registered workspaces", "error", err)
		return out, nil
	}
	for _, reg := range registered {
		if reg.RepoRootURL != ws.RepoRootURL || samePath(reg.Path, rootInfo.Path) {
			continue
		}
		info, err := s.repo.Info(ctx, reg.Path)
		if err != nil {
			if _, statErr := os.Stat(reg.Path); errors.Is(statErr, os.ErrNotExist) || errors.Is(err, domain.ErrNotWorkingCopy) {
				logging.Logger.Info("Forgetting stale workspace", "path", reg.Path)
				if err := s.store.Forget(ctx, reg.Path); err != nil {
					logging.Logger.Warn("Failed to forget workspace", "path", reg.Path, "error", err)
				}
				continue
			}
			return nil, domain.E(domain.PathArg(reg.Path), err)
		}
		if info.RepoRootURL != ws.RepoRootURL {
			continue
		}
		out = append(out, location{local: reg.Path, repoPath: info.RepoPath()})
	}
	return out, nil
}
