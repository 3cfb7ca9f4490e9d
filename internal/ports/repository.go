package ports

import (
	"context"

	"svnbranch/internal/domain"
)

// RepositoryBrowser reads repository state by URL without a working copy.
// Targets may also be local working-copy paths where noted.
type RepositoryBrowser interface {
	// CheckPath reports whether url exists at rev and whether it is a file or a directory
	CheckPath(ctx context.Context, url string, rev domain.Revision) (domain.NodeKind, error)
	// GetProperties returns the versioned properties of a URL or local path.
	// domain.RevisionWorking reads the local working values of a path.
	GetProperties(ctx context.Context, target string, rev domain.Revision) (map[string]string, error)
	// LastChangedRevision returns the last revision that modified url at or before rev
	LastChangedRevision(ctx context.Context, url string, rev domain.Revision) (domain.Revision, error)
	// LatestRevision returns the youngest revision of the repository holding url
	LatestRevision(ctx context.Context, url string) (domain.Revision, error)
	List(ctx context.Context, url string, rev domain.Revision) ([]domain.DirEntry, error)
	Log(ctx context.Context, url string, limit int) ([]domain.LogEntry, error)
}

// CommitEditor applies an ordered list of repository-side changes as one atomic commit
type CommitEditor interface {
	CommitOps(ctx context.Context, rootURL string, ops []domain.CommitOp, message string, revProps map[string]string) (domain.Revision, error)
}

// WorkingCopy manipulates a local checkout
type WorkingCopy interface {
	Commit(ctx context.Context, paths []string, message string, revProps map[string]string) (domain.Revision, error)
	Copy(ctx context.Context, srcURL string, rev domain.Revision, dst string) error
	Delete(ctx context.Context, path string) error
	DeleteProperty(ctx context.Context, path, name string) error
	Info(ctx context.Context, path string) (*domain.WorkingCopyInfo, error)
	Merge(ctx context.Context, target string, req domain.MergeRequest) (*domain.MergeResult, error)
	Revert(ctx context.Context, paths []string, depth domain.Depth) error
	SetProperty(ctx context.Context, path, name, value string) error
	Status(ctx context.Context, path string, opts domain.StatusOptions) ([]domain.StatusEntry, error)
	Switch(ctx context.Context, target, url string, rev domain.Revision) error
}

// Repository is the composite capability the lifecycle operations are built from
type Repository interface {
	CommitEditor
	RepositoryBrowser
	WorkingCopy
}
