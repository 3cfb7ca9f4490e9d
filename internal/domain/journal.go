package domain

import "time"

// OperationRecord is one entry of the local audit trail of lifecycle operations
type OperationRecord struct {
	BranchPath    string
	CreatedAt     time.Time
	Error         string
	ID            string
	Message       string
	Operation     string
	Revision      Revision
	SourcePath    string
	Succeeded     bool
	WorkspacePath string
}

// WorkspaceRecord remembers a local working copy and the branch it was last switched to
type WorkspaceRecord struct {
	BranchPath  string
	Path        string
	RepoRootURL string
	UpdatedAt   time.Time
}
