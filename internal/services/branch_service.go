package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
	"svnbranch/internal/ports"
)

// BranchService orchestrates the branch lifecycle operations
type BranchService struct {
	gate     *PolicyGate
	prompter ports.Prompter
	repo     ports.Repository
	resolver *WorkspaceResolver
	store    ports.StateStore
}

// NewBranchService creates a new BranchService
func NewBranchService(
	repo ports.Repository,
	store ports.StateStore,
	gate *PolicyGate,
	prompter ports.Prompter,
) *BranchService {
	return &BranchService{
		gate:     gate,
		prompter: prompter,
		repo:     repo,
		resolver: NewWorkspaceResolver(repo),
		store:    store,
	}
}

// Resolve exposes the workspace resolver
func (s *BranchService) Resolve(ctx context.Context, path string) (*Workspace, error) {
	return s.resolver.Resolve(ctx, path)
}

// record writes an entry to the operation journal; journal failures never fail the operation
func (s *BranchService) record(ctx context.Context, rec domain.OperationRecord, opErr error) {
	if s.store == nil {
		return
	}
	rec.Succeeded = opErr == nil
	if opErr != nil {
		rec.Error = opErr.Error()
	}
	if err := s.store.Record(ctx, rec); err != nil {
		logging.Logger.Warn("Failed to record operation", "operation", rec.Operation, "error", err)
	}
}

// track remembers which branch a local working copy points at
func (s *BranchService) track(ctx context.Context, path, repoRootURL, branchPath string) {
	if s.store == nil || path == "" {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	ws := domain.WorkspaceRecord{BranchPath: branchPath, Path: abs, RepoRootURL: repoRootURL}
	if err := s.store.Register(ctx, ws); err != nil {
		logging.Logger.Warn("Failed to register workspace", "path", abs, "error", err)
	}
}

// statusReport groups the entries of a status walk the lifecycle checks care about
type statusReport struct {
	conflicted []string
	modified   []string
	outOfDate  []string
	propsEdits []string
	replaced   []string
	switched   []string
}

// inspect runs a status walk below root, ignoring externals.
// root itself is never reported as switched: it may legitimately be a switched sub-branch.
func (s *BranchService) inspect(ctx context.Context, root string, remote bool) (*statusReport, error) {
	entries, err := s.repo.Status(ctx, root, domain.StatusOptions{
		Depth:           domain.DepthInfinity,
		IgnoreExternals: true,
		Remote:          remote,
	})
	if err != nil {
		return nil, err
	}

	report := &statusReport{}
	for _, e := range entries {
		if e.Item == domain.StatusExternal {
			continue
		}
		if e.Switched && !samePath(e.Path, root) {
			report.switched = append(report.switched, e.Path)
		}
		if e.Item == domain.StatusReplaced {
			report.replaced = append(report.replaced, e.Path)
		}
		if e.IsConflicted() {
			report.conflicted = append(report.conflicted, e.Path)
		}
		if e.IsLocallyModified() {
			report.modified = append(report.modified, e.Path)
		}
		if e.Props == domain.StatusModified {
			report.propsEdits = append(report.propsEdits, e.Path)
		}
		if e.OutOfDate {
			report.outOfDate = append(report.outOfDate, e.Path)
		}
	}
	return report, nil
}

// requireClean fails when the workspace has local changes, switched descendants or stale paths
func requireClean(op domain.Op, root string, report *statusReport) error {
	switch {
	case len(report.conflicted) > 0:
		return domain.E(op, domain.PathArg(root), domain.PreconditionError,
			fmt.Errorf("working copy has conflicts: %s", listPaths(report.conflicted)))
	case len(report.modified) > 0:
		return domain.E(op, domain.PathArg(root), domain.PreconditionError,
			fmt.Errorf("working copy has local modifications: %s", listPaths(report.modified)))
	case len(report.switched) > 0:
		return domain.E(op, domain.PathArg(root), domain.PreconditionError,
			fmt.Errorf("working copy is partially switched: %s", listPaths(report.switched)))
	case len(report.outOfDate) > 0:
		return domain.E(op, domain.PathArg(root), domain.PreconditionError,
			fmt.Errorf("working copy is out of date, update first: %s", listPaths(report.outOfDate)))
	}
	return nil
}

func containsPath(paths []string, p string) bool {
	for _, candidate := range paths {
		if samePath(candidate, p) {
			return true
		}
	}
	return false
}

func listPaths(paths []string) string {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

// joinLocal joins slash-separated offsets onto a local directory
func joinLocal(dir string, rel ...string) string {
	parts := []string{dir}
	for _, r := range rel {
		if r = domain.CleanSubpath(r); r != "" {
			parts = append(parts, filepath.FromSlash(r))
		}
	}
	return filepath.Join(parts...)
}
