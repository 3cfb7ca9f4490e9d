package services

import (
	"context"
	"fmt"
	"sort"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

// metadataFileContent is written to fresh metadata files of sub-branches
const metadataFileContent = "This file records svnbranch metadata in its versioned properties.\n"

// CreateBranch copies the current branch (or a sub-root of it) to a new user or release branch
// in one commit and switches the sub-root to it
func (s *BranchService) CreateBranch(ctx context.Context, params CreateBranchParams) (result *CreateBranchResult, err error) {
	op := domain.Op("create" + opSuffix(params.Kind))
	logging.Logger.Info("Creating branch", "name", params.Name, "kind", params.Kind.Keyword(), "subroot", params.SubRoot)

	rec := domain.OperationRecord{Operation: string(op), Message: params.Message}
	defer func() {
		if result != nil {
			rec.BranchPath = result.BranchPath
			rec.Revision = result.Revision
			rec.SourcePath = result.SourcePath
		}
		s.record(ctx, rec, err)
	}()

	if params.Kind == domain.Trunk {
		return nil, domain.E(op, domain.ArgumentError, "trunk cannot be created")
	}
	if err := domain.ValidateBranchName(params.Name); err != nil {
		return nil, domain.E(op, domain.ArgumentError, err)
	}

	ws, err := s.resolver.Resolve(ctx, params.Path)
	if err != nil {
		return nil, err
	}
	rec.WorkspacePath = ws.Root
	current := ws.Metadata

	subRoot := params.SubRoot
	if subRoot == "" {
		subRoot = ws.Root
	}
	offset, subRoot, err := s.branchOffset(ctx, op, ws, subRoot)
	if err != nil {
		return nil, err
	}

	report, err := s.inspect(ctx, subRoot, true)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(subRoot), err)
	}
	if len(report.conflicted) > 0 {
		return nil, domain.E(op, domain.PathArg(subRoot), domain.PreconditionError,
			fmt.Errorf("working copy has conflicts: %s", listPaths(report.conflicted)))
	}
	if params.Force && params.Kind == domain.UserBranch {
		logging.Logger.Info("Skipping clean workspace checks", "subroot", subRoot)
	} else if err := requireClean(op, subRoot, report); err != nil {
		return nil, err
	}

	// User branches continue the lineage of their own source
	sourcePath := current.BranchPath
	sourceSubpath := offset
	if current.BranchType == domain.UserBranch {
		sourcePath = current.SourcePath
		sourceSubpath = domain.JoinSubpath(current.SourceSubpath, offset)
	}
	copySource := domain.JoinRepoPath(sourcePath, sourceSubpath)
	newPath := current.BranchPathFor(params.Kind, params.Name)

	if err := s.checkNameAvailable(ctx, op, ws, current, params.Kind, params.Name); err != nil {
		return nil, err
	}

	newMeta := &domain.BranchMetadata{
		BranchPath:          newPath,
		BranchType:          params.Kind,
		ProjectName:         current.ProjectName,
		ProjectRoot:         current.ProjectRoot,
		ReleaseBranchesPath: current.ReleaseBranchesPath,
		SourcePath:          sourcePath,
		SourceSubpath:       sourceSubpath,
		TrunkPath:           current.TrunkPath,
		UserBranchesPath:    current.UserBranchesPath,
	}

	warnings, err := s.gate.CheckVersion(newMeta)
	if err != nil {
		return nil, err
	}
	if params.Message != "" && s.gate.ProjectPolicy(newMeta).CheckCreateMessages {
		if err := s.gate.CheckLogMessage(newMeta, params.Message); err != nil {
			return nil, err
		}
	}

	sourceRevision, err := s.repo.LatestRevision(ctx, ws.URL(copySource))
	if err != nil {
		return nil, domain.E(op, domain.PathArg(copySource), err)
	}
	kind, err := s.repo.CheckPath(ctx, ws.URL(copySource), sourceRevision)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(copySource), err)
	}
	if kind != domain.NodeDir {
		return nil, domain.E(op, domain.PathArg(copySource), domain.NotFound,
			fmt.Errorf("source %s does not exist at r%d", copySource, sourceRevision))
	}

	newMeta.BranchPointRevision = domain.RevisionPtr(sourceRevision)
	newMeta.LastMergeRevision = domain.RevisionPtr(sourceRevision)
	if err := newMeta.Validate(); err != nil {
		return nil, domain.E(op, domain.IntegrityError, err)
	}

	ops, err := s.createOps(ctx, ws, copySource, sourceRevision, newMeta)
	if err != nil {
		return nil, domain.E(op, err)
	}

	message := params.Message
	if message == "" {
		message = fmt.Sprintf("Create %s %s from %s@%d", params.Kind, params.Name, copySource, sourceRevision)
	}
	revision, err := s.repo.CommitOps(ctx, ws.RepoRootURL, ops, message, nil)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(newPath),
			fmt.Errorf("failed to copy %s@%d to %s: %w", copySource, sourceRevision, newPath, err))
	}
	logging.Logger.Info("Branch committed", "branch", newPath, "revision", revision, "source", copySource)

	result = &CreateBranchResult{
		BranchPath:     newPath,
		Metadata:       newMeta,
		Revision:       revision,
		SourcePath:     copySource,
		SourceRevision: sourceRevision,
		Warnings:       warnings,
	}

	if params.Remote {
		return result, nil
	}

	if err := s.repo.Switch(ctx, subRoot, ws.URL(newPath), domain.RevisionHead); err != nil {
		return result, domain.E(op, domain.PathArg(subRoot),
			fmt.Errorf("branch %s was created in r%d but switching %s failed: %w", newPath, revision, subRoot, err))
	}
	metaFile := joinLocal(subRoot, domain.MetadataFileName)
	if err := s.repo.Revert(ctx, []string{metaFile}, domain.DepthEmpty); err != nil {
		return result, domain.E(op, domain.PathArg(metaFile), err)
	}
	result.SwitchedPath = subRoot
	s.track(ctx, subRoot, ws.RepoRootURL, newPath)
	return result, nil
}

// branchOffset validates the sub-root and returns its offset below the branch root
func (s *BranchService) branchOffset(ctx context.Context, op domain.Op, ws *Workspace, subRoot string) (string, string, error) {
	info, err := s.repo.Info(ctx, subRoot)
	if err != nil {
		return "", "", domain.E(op, domain.PathArg(subRoot), err)
	}
	if info.Kind != domain.NodeDir {
		return "", "", domain.E(op, domain.PathArg(subRoot), domain.ArgumentError, "branch root must be a directory")
	}
	offset, ok := domain.TailPath(info.RepoPath(), ws.Metadata.BranchPath)
	if !ok || info.RepoRootURL != ws.RepoRootURL {
		return "", "", domain.E(op, domain.PathArg(subRoot), domain.ArgumentError,
			fmt.Errorf("%s is not part of %s", info.RepoPath(), ws.Metadata.BranchPath))
	}
	return offset, info.Path, nil
}

// checkNameAvailable rejects existing branches and user/release name collisions
func (s *BranchService) checkNameAvailable(ctx context.Context, op domain.Op, ws *Workspace,
	meta *domain.BranchMetadata, kind domain.BranchType, name string) error {
	newPath := meta.BranchPathFor(kind, name)
	existing, err := s.repo.CheckPath(ctx, ws.URL(newPath), domain.RevisionHead)
	if err != nil {
		return domain.E(op, domain.PathArg(newPath), err)
	}
	if existing != domain.NodeNone {
		return domain.E(op, domain.PathArg(newPath), domain.AlreadyExists,
			fmt.Errorf("%w: %s %s already exists", domain.ErrBranchExists, kind, name))
	}

	other := domain.ReleaseBranch
	if kind == domain.ReleaseBranch {
		other = domain.UserBranch
	}
	otherPath := meta.BranchPathFor(other, name)
	existing, err = s.repo.CheckPath(ctx, ws.URL(otherPath), domain.RevisionHead)
	if err != nil {
		return domain.E(op, domain.PathArg(otherPath), err)
	}
	if existing != domain.NodeNone {
		return domain.E(op, domain.PathArg(newPath), domain.AlreadyExists,
			fmt.Errorf("%w: a %s named %s already exists at %s", domain.ErrBranchExists, other, name, otherPath))
	}
	return nil
}

// createOps builds the single commit that creates the branch and its metadata record
func (s *BranchService) createOps(ctx context.Context, ws *Workspace, copySource string,
	rev domain.Revision, meta *domain.BranchMetadata) ([]domain.CommitOp, error) {
	var ops []domain.CommitOp

	missing := false
	for _, dir := range domain.AncestorPaths(meta.BranchPath) {
		if dir == "/" {
			continue
		}
		if !missing {
			kind, err := s.repo.CheckPath(ctx, ws.URL(dir), rev)
			if err != nil {
				return nil, err
			}
			if kind == domain.NodeFile {
				return nil, domain.E(domain.PathArg(dir), domain.PreconditionError, "a file is in the way of the branch path")
			}
			missing = kind == domain.NodeNone
		}
		if missing {
			ops = append(ops, domain.CommitOp{Action: domain.CommitMkdir, Path: dir})
		}
	}

	ops = append(ops, domain.CommitOp{
		Action:       domain.CommitCopy,
		CopyFrom:     copySource,
		CopyRevision: rev,
		Path:         meta.BranchPath,
	})

	metaPath := domain.JoinRepoPath(meta.BranchPath, domain.MetadataFileName)
	sourceMeta := domain.JoinRepoPath(copySource, domain.MetadataFileName)
	kind, err := s.repo.CheckPath(ctx, ws.URL(sourceMeta), rev)
	if err != nil {
		return nil, err
	}

	copied := map[string]string{}
	if kind == domain.NodeFile {
		copied, err = s.repo.GetProperties(ctx, ws.URL(sourceMeta), rev)
		if err != nil {
			return nil, err
		}
	} else {
		ops = append(ops, domain.CommitOp{
			Action:  domain.CommitPut,
			Content: []byte(metadataFileContent),
			Path:    metaPath,
		})
	}

	encoded := domain.EncodeMetadata(meta)
	names := make([]string, 0, len(encoded))
	for name := range encoded {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ops = append(ops, domain.CommitOp{
			Action:    domain.CommitPropSet,
			Path:      metaPath,
			PropName:  name,
			PropValue: encoded[name],
		})
	}
	for _, name := range domain.MetadataProperties() {
		if _, stale := copied[name]; stale {
			if _, kept := encoded[name]; !kept {
				ops = append(ops, domain.CommitOp{Action: domain.CommitPropDel, Path: metaPath, PropName: name})
			}
		}
	}
	return ops, nil
}

func opSuffix(kind domain.BranchType) string {
	switch kind {
	case domain.ReleaseBranch:
		return "releasebranch"
	case domain.UserBranch:
		return "userbranch"
	}
	return "branch"
}
