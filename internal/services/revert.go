package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

// RevertToSource makes each path match its counterpart in the source at the last merge revision.
// Every path is attempted; failures are collected and returned together.
func (s *BranchService) RevertToSource(ctx context.Context, params RevertToSourceParams) (result *RevertToSourceResult, err error) {
	const op domain.Op = "reverttosource"

	rec := domain.OperationRecord{Operation: string(op)}
	defer func() {
		if result != nil {
			rec.SourcePath = result.SourcePath
			rec.Revision = result.SourceRevision
		}
		s.record(ctx, rec, err)
	}()

	if len(params.Paths) == 0 {
		return nil, domain.E(op, domain.ArgumentError, "no paths to revert")
	}
	wsPath := params.Path
	if wsPath == "" {
		wsPath = filepath.Dir(params.Paths[0])
	}

	ws, err := s.resolver.Resolve(ctx, wsPath)
	if err != nil {
		return nil, err
	}
	rec.WorkspacePath = ws.Root
	rec.BranchPath = ws.Metadata.BranchPath
	if !ws.Metadata.HasSource() {
		return nil, domain.E(op, domain.PathArg(ws.Metadata.BranchPath), domain.PreconditionError, domain.ErrNoSource)
	}

	lastMerge := *ws.Metadata.LastMergeRevision
	result = &RevertToSourceResult{
		SourcePath:     ws.SourceRepoPath(),
		SourceRevision: lastMerge,
	}

	var errs *multierror.Error
	for _, p := range params.Paths {
		action, err := s.revertPath(ctx, ws, p, lastMerge)
		if err != nil {
			logging.Logger.Error("Failed to revert to source", "path", p, "error", err)
			errs = multierror.Append(errs, domain.E(op, domain.PathArg(p), err))
			action = RevertFailed
		}
		result.Outcomes = append(result.Outcomes, RevertOutcome{Action: action, Path: p})
	}
	return result, errs.ErrorOrNil()
}

func (s *BranchService) revertPath(ctx context.Context, ws *Workspace, path string, lastMerge domain.Revision) (RevertAction, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := relativeTo(ws.Root, abs)
	if err != nil {
		return "", domain.E(domain.ArgumentError, err)
	}
	if rel == domain.MetadataFileName && ws.RootOffset == "" {
		return "", domain.E(domain.ArgumentError, "the branch metadata file cannot be reverted to the source")
	}

	// Local edits go first; an unversioned or missing path is not an error here
	if err := s.repo.Revert(ctx, []string{abs}, domain.DepthEmpty); err != nil {
		logging.Logger.Debug("Local revert failed", "path", abs, "error", err)
	}

	branchURL := ws.URL(domain.JoinRepoPath(ws.RootRepoPath(), rel))
	sourceURL := ws.URL(domain.JoinRepoPath(ws.SourceRepoPath(), rel))

	inBranch, err := s.repo.CheckPath(ctx, branchURL, domain.RevisionHead)
	if err != nil {
		return "", err
	}
	inSource, err := s.repo.CheckPath(ctx, sourceURL, lastMerge)
	if err != nil {
		return "", err
	}

	switch {
	case inBranch != domain.NodeNone && inSource != domain.NodeNone:
		depth := domain.DepthEmpty
		if inSource == domain.NodeDir {
			depth = domain.DepthInfinity
		}
		merge, err := s.repo.Merge(ctx, abs, domain.MergeRequest{
			Depth:        depth,
			FromRevision: domain.RevisionHead,
			FromURL:      branchURL,
			ToRevision:   lastMerge,
			ToURL:        sourceURL,
		})
		if err != nil {
			return "", err
		}
		if n := merge.ConflictCount(); n > 0 {
			return "", domain.E(domain.ConflictError, fmt.Errorf("%d conflicts reverting to %s@%d", n, sourceURL, lastMerge))
		}
		return RevertMerged, nil

	case inSource != domain.NodeNone:
		// A leftover unversioned node would obstruct the copy
		if _, err := s.repo.Info(ctx, abs); errors.Is(err, domain.ErrNotWorkingCopy) {
			if err := os.RemoveAll(abs); err != nil {
				return "", err
			}
		}
		if err := s.repo.Copy(ctx, sourceURL, lastMerge, abs); err != nil {
			return "", err
		}
		return RevertCopied, nil

	case inBranch != domain.NodeNone:
		if err := s.repo.Delete(ctx, abs); err != nil {
			return "", err
		}
		return RevertDeleted, nil
	}

	logging.Logger.Info("Path exists in neither branch nor source", "path", abs)
	return RevertSkipped, nil
}
