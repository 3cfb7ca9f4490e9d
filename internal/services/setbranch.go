package services

import (
	"context"
	"fmt"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

// SetBranch switches the workspace to another branch of the same project.
// A sub-branch workspace is switched to the same offset inside the target.
func (s *BranchService) SetBranch(ctx context.Context, params SetBranchParams) (result *SetBranchResult, err error) {
	const op domain.Op = "setbranch"

	rec := domain.OperationRecord{Operation: string(op)}
	defer func() {
		if result != nil {
			rec.BranchPath = result.BranchPath
		}
		s.record(ctx, rec, err)
	}()

	if params.Kind != domain.Trunk {
		if err := domain.ValidateBranchName(params.Name); err != nil {
			return nil, domain.E(op, domain.ArgumentError, err)
		}
	}

	ws, err := s.resolver.Resolve(ctx, params.Path)
	if err != nil {
		return nil, err
	}
	rec.WorkspacePath = ws.Root
	current := ws.Metadata

	targetPath := current.BranchPathFor(params.Kind, params.Name)
	// The workspace content corresponds to this path in the project; the target must hold it too
	logical := domain.JoinSubpath(current.SourceSubpath, ws.RootOffset)

	targetMeta, err := s.readTargetMetadata(ctx, op, ws, targetPath)
	if err != nil {
		return nil, err
	}
	targetOffset := logical
	if targetMeta != nil && targetMeta.SourceSubpath != "" {
		tail, ok := domain.TailPath("/"+logical, "/"+targetMeta.SourceSubpath)
		if !ok {
			return nil, domain.E(op, domain.PathArg(targetPath), domain.PreconditionError,
				fmt.Errorf("%s only branches %s; the workspace holds %s", targetPath, targetMeta.SourceSubpath, "/"+logical))
		}
		targetOffset = tail
	}
	switchPath := domain.JoinRepoPath(targetPath, targetOffset)

	kind, err := s.repo.CheckPath(ctx, ws.URL(switchPath), domain.RevisionHead)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(switchPath), err)
	}
	if kind != domain.NodeDir {
		return nil, domain.E(op, domain.PathArg(switchPath), domain.NotFound,
			fmt.Errorf("%w: %s does not exist", domain.ErrBranchNotFound, switchPath))
	}

	report, err := s.inspect(ctx, ws.Root, false)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(ws.Root), err)
	}
	if params.Force {
		logging.Logger.Info("Skipping clean workspace checks", "root", ws.Root)
	} else if err := requireClean(op, ws.Root, report); err != nil {
		return nil, err
	}

	if metaFile, ok := ws.LocalMetadataPath(); ok {
		if err := s.repo.Revert(ctx, []string{metaFile}, domain.DepthEmpty); err != nil {
			return nil, domain.E(op, domain.PathArg(metaFile), err)
		}
	}

	url := ws.URL(switchPath)
	logging.Logger.Info("Switching workspace", "root", ws.Root, "url", url)
	if err := s.repo.Switch(ctx, ws.Root, url, domain.RevisionHead); err != nil {
		return nil, domain.E(op, domain.PathArg(ws.Root), err)
	}
	s.track(ctx, ws.Root, ws.RepoRootURL, switchPath)

	return &SetBranchResult{
		BranchPath: targetPath,
		Metadata:   targetMeta,
		Root:       ws.Root,
		URL:        url,
	}, nil
}

// readTargetMetadata reads the metadata of the branch being switched to, nil when it has none
func (s *BranchService) readTargetMetadata(ctx context.Context, op domain.Op, ws *Workspace, branchPath string) (*domain.BranchMetadata, error) {
	kind, err := s.repo.CheckPath(ctx, ws.URL(branchPath), domain.RevisionHead)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(branchPath), err)
	}
	if kind != domain.NodeDir {
		return nil, domain.E(op, domain.PathArg(branchPath), domain.NotFound,
			fmt.Errorf("%w: %s does not exist", domain.ErrBranchNotFound, branchPath))
	}
	metaURL := ws.URL(domain.JoinRepoPath(branchPath, domain.MetadataFileName))
	kind, err = s.repo.CheckPath(ctx, metaURL, domain.RevisionHead)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(branchPath), err)
	}
	if kind != domain.NodeFile {
		return nil, nil
	}
	props, err := s.repo.GetProperties(ctx, metaURL, domain.RevisionHead)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(branchPath), err)
	}
	return decodeAt(op, metaURL, props, branchPath)
}
