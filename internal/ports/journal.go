package ports

import (
	"context"

	"svnbranch/internal/domain"
)

// OperationJournal records lifecycle operations for later auditing
type OperationJournal interface {
	Record(ctx context.Context, rec domain.OperationRecord) error
	Recent(ctx context.Context, limit int) ([]domain.OperationRecord, error)
}

// WorkspaceRegistry remembers which local working copies point at which branch
type WorkspaceRegistry interface {
	Forget(ctx context.Context, path string) error
	ListWorkspaces(ctx context.Context) ([]domain.WorkspaceRecord, error)
	Register(ctx context.Context, ws domain.WorkspaceRecord) error
}

// StateStore is the composite interface
type StateStore interface {
	OperationJournal
	WorkspaceRegistry
	Close() error
}
