package services

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

// maxConcurrentReads bounds the metadata reads ListBranches runs at once
const maxConcurrentReads = 8

// ListBranches lists the branches of one category at HEAD with their metadata.
// Entries whose metadata cannot be read are still listed, with the problem.
func (s *BranchService) ListBranches(ctx context.Context, path string, kind domain.BranchType) ([]BranchSummary, error) {
	const op domain.Op = "listbranches"

	if kind == domain.Trunk {
		return nil, domain.E(op, domain.ArgumentError, "trunk is not a branch category")
	}
	ws, err := s.resolver.Resolve(ctx, path)
	if err != nil {
		return nil, err
	}

	category := ws.Metadata.CategoryPath(kind)
	categoryURL := ws.URL(category)
	exists, err := s.repo.CheckPath(ctx, categoryURL, domain.RevisionHead)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(category), err)
	}
	if exists != domain.NodeDir {
		logging.Logger.Info("Branch category does not exist", "path", category)
		return []BranchSummary{}, nil
	}

	entries, err := s.repo.List(ctx, categoryURL, domain.RevisionHead)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(category), err)
	}

	summaries := make([]BranchSummary, 0, len(entries))
	for _, e := range entries {
		if e.Kind != domain.NodeDir {
			continue
		}
		summaries = append(summaries, BranchSummary{Name: e.Name, Path: domain.JoinRepoPath(category, e.Name)})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i := range summaries {
		i := i
		g.Go(func() error {
			meta, problem := s.readMetadata(gctx, ws, summaries[i].Path)
			summaries[i].Metadata = meta
			summaries[i].Problem = problem
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, domain.E(op, err)
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

// readMetadata returns the branch metadata at HEAD, or a description of why it is unusable
func (s *BranchService) readMetadata(ctx context.Context, ws *Workspace, branchPath string) (*domain.BranchMetadata, string) {
	metaURL := ws.URL(domain.JoinRepoPath(branchPath, domain.MetadataFileName))
	kind, err := s.repo.CheckPath(ctx, metaURL, domain.RevisionHead)
	if err != nil {
		return nil, err.Error()
	}
	if kind != domain.NodeFile {
		return nil, "no branch metadata"
	}
	props, err := s.repo.GetProperties(ctx, metaURL, domain.RevisionHead)
	if err != nil {
		return nil, err.Error()
	}
	meta, err := decodeAt("listbranches", metaURL, props, branchPath)
	if err != nil {
		return nil, err.Error()
	}
	return meta, ""
}

// ListWorkingCopyInfo returns the information block for the workspace containing path
func (s *BranchService) ListWorkingCopyInfo(ctx context.Context, path string) (*WorkingCopyInfo, error) {
	ws, err := s.resolver.Resolve(ctx, path)
	if err != nil {
		return nil, err
	}
	meta := ws.Metadata
	info := &WorkingCopyInfo{
		BranchName:          meta.BranchName(),
		BranchPointRevision: meta.BranchPointRevision,
		BranchSubpath:       ws.RootOffset,
		BranchType:          meta.BranchType,
		LastMergeRevision:   meta.LastMergeRevision,
		ProjectName:         meta.ProjectName,
		Root:                ws.Root,
	}
	if meta.HasSource() {
		info.Source = meta.SourceContentPath()
	}
	return info, nil
}

// History returns the most recent journal entries, newest first
func (s *BranchService) History(ctx context.Context, limit int) ([]domain.OperationRecord, error) {
	if s.store == nil {
		return nil, domain.E(domain.Op("history"), domain.PreconditionError, fmt.Errorf("no state store configured"))
	}
	return s.store.Recent(ctx, limit)
}
