package storage

import "time"

// OperationModel is the GORM model for the operations journal
type OperationModel struct {
	BranchPath    string    `gorm:"not null;default:'';index:idx_operation_branch"`
	CreatedAt     time.Time `gorm:"not null;index:idx_operation_created"`
	Error         string    `gorm:"not null;default:''"`
	ID            string    `gorm:"primaryKey"`
	Message       string    `gorm:"not null;default:''"`
	Operation     string    `gorm:"not null"`
	Revision      int64     `gorm:"not null;default:0"`
	SourcePath    string    `gorm:"not null;default:''"`
	Succeeded     bool      `gorm:"not null;default:false"`
	WorkspacePath string    `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (OperationModel) TableName() string { return "operations" }

// WorkspaceModel is the GORM model for registered working copies
type WorkspaceModel struct {
	BranchPath  string `gorm:"not null;index:idx_workspace_branch"`
	CreatedAt   time.Time
	Path        string `gorm:"primaryKey"`
	RepoRootURL string `gorm:"not null;default:''"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (WorkspaceModel) TableName() string { return "workspaces" }
