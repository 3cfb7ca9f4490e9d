package storage

import (
	"svnbranch/internal/domain"
)

// operationModelToDomain converts an OperationModel (GORM) to domain.OperationRecord
func operationModelToDomain(m OperationModel) domain.OperationRecord {
	return domain.OperationRecord{
		BranchPath:    m.BranchPath,
		CreatedAt:     m.CreatedAt,
		Error:         m.Error,
		ID:            m.ID,
		Message:       m.Message,
		Operation:     m.Operation,
		Revision:      domain.Revision(m.Revision),
		SourcePath:    m.SourcePath,
		Succeeded:     m.Succeeded,
		WorkspacePath: m.WorkspacePath,
	}
}

// domainToOperationModel converts a domain.OperationRecord to OperationModel (GORM)
func domainToOperationModel(r domain.OperationRecord) OperationModel {
	return OperationModel{
		BranchPath:    r.BranchPath,
		CreatedAt:     r.CreatedAt,
		Error:         r.Error,
		ID:            r.ID,
		Message:       r.Message,
		Operation:     r.Operation,
		Revision:      int64(r.Revision),
		SourcePath:    r.SourcePath,
		Succeeded:     r.Succeeded,
		WorkspacePath: r.WorkspacePath,
	}
}

// workspaceModelToDomain converts a WorkspaceModel (GORM) to domain.WorkspaceRecord
func workspaceModelToDomain(m WorkspaceModel) domain.WorkspaceRecord {
	return domain.WorkspaceRecord{
		BranchPath:  m.BranchPath,
		Path:        m.Path,
		RepoRootURL: m.RepoRootURL,
		UpdatedAt:   m.UpdatedAt,
	}
}
