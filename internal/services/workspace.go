package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
	"svnbranch/internal/ports"
)

// Workspace is a working copy resolved to the branch that governs it
type Workspace struct {
	Metadata *domain.BranchMetadata
	// MetadataPath is the local metadata file, "" when the branch root lies above the working copy
	MetadataPath string
	RepoRootURL  string
	Revision     domain.Revision // BASE revision of Root
	// Root is the local directory lifecycle operations act on: the branch root when it is part of
	// the working copy, the working-copy root otherwise
	Root string
	// RootOffset is Root's offset below the branch root
	RootOffset string
	WCRoot     string
}

// URL turns a repository path into a URL of the workspace's repository
func (w *Workspace) URL(repoPath string) string {
	return w.RepoRootURL + domain.CleanRepoPath(repoPath)
}

// RootRepoPath is the repository path Root is checked out from
func (w *Workspace) RootRepoPath() string {
	return domain.JoinRepoPath(w.Metadata.BranchPath, w.RootOffset)
}

// SourceRepoPath is the repository path in the source that corresponds to Root
func (w *Workspace) SourceRepoPath() string {
	return domain.JoinRepoPath(w.Metadata.SourceContentPath(), w.RootOffset)
}

// LocalMetadataPath returns the local metadata file path when the branch root is in the working copy
func (w *Workspace) LocalMetadataPath() (string, bool) {
	return w.MetadataPath, w.MetadataPath != ""
}

// WorkspaceResolver locates the metadata record that governs a working-copy path
type WorkspaceResolver struct {
	repo ports.Repository
}

// NewWorkspaceResolver creates a new WorkspaceResolver
func NewWorkspaceResolver(repo ports.Repository) *WorkspaceResolver {
	return &WorkspaceResolver{repo: repo}
}

// Resolve walks up from path to the nearest branch root.
// Local directories are searched first (reading working values), then the repository ancestors
// of the working-copy root at its BASE revision.
func (r *WorkspaceResolver) Resolve(ctx context.Context, path string) (*Workspace, error) {
	const op domain.Op = "resolve"

	if path == "" {
		path = "."
	}
	info, err := r.repo.Info(ctx, path)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(path), err)
	}
	if info.Kind != domain.NodeDir {
		info, err = r.repo.Info(ctx, filepath.Dir(info.Path))
		if err != nil {
			return nil, domain.E(op, domain.PathArg(path), err)
		}
	}
	logging.Logger.Debug("Resolving workspace", "path", info.Path, "url", info.URL, "wc_root", info.WCRoot)

	ws, err := r.resolveLocal(ctx, info)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		ws, err = r.resolveRemote(ctx, info)
		if err != nil {
			return nil, err
		}
	}

	logging.Logger.Info("Workspace resolved",
		"root", ws.Root,
		"branch", ws.Metadata.BranchPath,
		"type", ws.Metadata.BranchType.Keyword(),
		"offset", ws.RootOffset)
	return ws, nil
}

// resolveLocal walks local directories from info.Path up to the working-copy root
func (r *WorkspaceResolver) resolveLocal(ctx context.Context, info *domain.WorkingCopyInfo) (*Workspace, error) {
	const op domain.Op = "resolve"

	wcRoot := info.WCRoot
	if wcRoot == "" {
		wcRoot = info.Path
	}

	dir := info.Path
	for {
		candidate := filepath.Join(dir, domain.MetadataFileName)
		fileInfo, err := r.repo.Info(ctx, candidate)
		switch {
		case err == nil && fileInfo.Kind == domain.NodeFile:
			dirInfo, err := r.repo.Info(ctx, dir)
			if err != nil {
				return nil, domain.E(op, domain.PathArg(dir), err)
			}
			props, err := r.repo.GetProperties(ctx, candidate, domain.RevisionWorking)
			if err != nil {
				return nil, domain.E(op, domain.PathArg(candidate), err)
			}
			meta, err := decodeAt(op, candidate, props, dirInfo.RepoPath())
			if err != nil {
				return nil, err
			}
			return &Workspace{
				Metadata:     meta,
				MetadataPath: candidate,
				RepoRootURL:  dirInfo.RepoRootURL,
				Revision:     dirInfo.Revision,
				Root:         dir,
				WCRoot:       wcRoot,
			}, nil
		case err != nil && !errors.Is(err, domain.ErrNotWorkingCopy):
			return nil, domain.E(op, domain.PathArg(candidate), err)
		}

		if samePath(dir, wcRoot) {
			return nil, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// resolveRemote walks repository ancestors of the working-copy root at its BASE revision
func (r *WorkspaceResolver) resolveRemote(ctx context.Context, info *domain.WorkingCopyInfo) (*Workspace, error) {
	const op domain.Op = "resolve"

	rootInfo := info
	if info.WCRoot != "" && !samePath(info.WCRoot, info.Path) {
		var err error
		rootInfo, err = r.repo.Info(ctx, info.WCRoot)
		if err != nil {
			return nil, domain.E(op, domain.PathArg(info.WCRoot), err)
		}
	}

	rootPath := rootInfo.RepoPath()
	candidates := append([]string{rootPath}, reversed(domain.AncestorPaths(rootPath))...)
	for _, dirPath := range candidates {
		metaURL := rootInfo.RepoRootURL + domain.JoinRepoPath(dirPath, domain.MetadataFileName)
		kind, err := r.repo.CheckPath(ctx, metaURL, rootInfo.Revision)
		if err != nil {
			return nil, domain.E(op, domain.PathArg(metaURL), err)
		}
		if kind != domain.NodeFile {
			continue
		}
		props, err := r.repo.GetProperties(ctx, metaURL, rootInfo.Revision)
		if err != nil {
			return nil, domain.E(op, domain.PathArg(metaURL), err)
		}
		meta, err := decodeAt(op, metaURL, props, dirPath)
		if err != nil {
			return nil, err
		}
		offset, _ := domain.TailPath(rootPath, dirPath)
		ws := &Workspace{
			Metadata:    meta,
			RepoRootURL: rootInfo.RepoRootURL,
			Revision:    rootInfo.Revision,
			Root:        rootInfo.Path,
			RootOffset:  offset,
			WCRoot:      rootInfo.Path,
		}
		if offset == "" {
			// The branch root is the working-copy root but its metadata file is not checked out
			logging.Logger.Warn("Metadata file missing from working copy", "root", ws.Root)
		}
		return ws, nil
	}

	return nil, domain.E(op, domain.PathArg(info.Path), domain.NotFound,
		fmt.Errorf("%w: no %s found in %s or its repository ancestors", domain.ErrMetadataNotFound,
			domain.MetadataFileName, info.Path))
}

// decodeAt decodes metadata found at location and enforces that it describes that location
func decodeAt(op domain.Op, where string, props map[string]string, location string) (*domain.BranchMetadata, error) {
	meta, err := domain.DecodeMetadata(props)
	if err != nil {
		return nil, domain.E(op, domain.PathArg(where), domain.IntegrityError, err)
	}
	if domain.CleanRepoPath(meta.BranchPath) != domain.CleanRepoPath(location) {
		return nil, domain.E(op, domain.PathArg(where), domain.IntegrityError,
			fmt.Errorf("metadata names branch %s but is stored at %s", meta.BranchPath, location))
	}
	return meta, nil
}

func reversed(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[len(paths)-1-i] = p
	}
	return out
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// relativeTo returns target relative to root in slash form, failing when target is outside root
func relativeTo(root, target string) (string, error) {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s is outside %s", target, root)
	}
	return domain.CleanSubpath(rel), nil
}
