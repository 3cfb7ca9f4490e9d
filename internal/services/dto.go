package services

import "svnbranch/internal/domain"

// CreateBranchParams contains parameters for creating a branch
type CreateBranchParams struct {
	Force   bool // user branches only: skip the clean workspace checks
	Kind    domain.BranchType
	Message string
	Name    string
	Path    string // any path inside the workspace, defaults to "."
	Remote  bool   // commit the branch without switching the workspace
	SubRoot string // local directory to branch, defaults to the workspace root
}

// CreateBranchResult contains the result of branch creation
type CreateBranchResult struct {
	BranchPath     string
	Metadata       *domain.BranchMetadata
	Revision       domain.Revision // the commit that created the branch
	SourcePath     string          // copy source: source branch plus sub-branch offset
	SourceRevision domain.Revision // revision copied from
	SwitchedPath   string          // local directory now on the branch, "" for remote creates
	Warnings       []string
}

// SynchronizeResult contains the categorized outcome of a synchronize merge
type SynchronizeResult struct {
	Added            []string
	BranchPath       string
	Conflicted       []string
	Deleted          []string
	FromRevision     domain.Revision // last merge revision before the merge
	MetadataConflict bool
	Modified         []string
	PropConflicted   []string
	PropertyChanged  []string
	Skipped          []string
	SkippedChanged   []string // skipped paths the source really changed
	SourcePath       string
	ToRevision       domain.Revision // merged-through revision
	TreeConflicted   []string
	UpToDate         bool
	Warnings         []string
}

// ConflictCount counts text, property and tree conflicts
func (r *SynchronizeResult) ConflictCount() int {
	return len(r.Conflicted) + len(r.PropConflicted) + len(r.TreeConflicted)
}

// PromoteParams contains parameters for promoting a branch
type PromoteParams struct {
	Message string
	Path    string
}

// PromoteResult contains the outcome of a promote
type PromoteResult struct {
	Added             []string
	BranchPath        string
	Deleted           []string
	Modified          []string
	NothingToPromote  bool
	Revision          domain.Revision // the commit on the source, 0 when nothing was promoted
	SourcePath        string
	SourceRevision    domain.Revision // source HEAD the branch was merged onto
	StrippedMergeInfo bool
	Warnings          []string
}

// RevertAction is what RevertToSource did to one path
type RevertAction string

const (
	RevertCopied  RevertAction = "copied"
	RevertDeleted RevertAction = "deleted"
	RevertFailed  RevertAction = "failed"
	RevertMerged  RevertAction = "merged"
	RevertSkipped RevertAction = "skipped"
)

// RevertOutcome is the per-path result of RevertToSource
type RevertOutcome struct {
	Action RevertAction
	Path   string
}

// RevertToSourceParams contains parameters for reverting paths to the source
type RevertToSourceParams struct {
	Path  string // workspace, defaults to the first target's directory
	Paths []string
}

// RevertToSourceResult contains per-path outcomes in argument order
type RevertToSourceResult struct {
	Outcomes       []RevertOutcome
	SourcePath     string
	SourceRevision domain.Revision
}

// DeleteBranchParams contains parameters for deleting a user branch
type DeleteBranchParams struct {
	Force bool // skip the confirmation prompt
	Name  string
	Path  string // working copy to check, defaults to "."
}

// DeleteBranchResult contains the outcome of a delete
type DeleteBranchResult struct {
	BranchPath string
	Cancelled  bool
	Revision   domain.Revision
}

// BranchSummary is one entry of ListBranches
type BranchSummary struct {
	Metadata *domain.BranchMetadata // nil when the metadata could not be read
	Name     string
	Path     string
	Problem  string
}

// SetBranchParams contains parameters for switching a workspace to another branch
type SetBranchParams struct {
	Force bool
	Kind  domain.BranchType
	Name  string
	Path  string
}

// SetBranchResult contains the outcome of a switch
type SetBranchResult struct {
	BranchPath string
	Metadata   *domain.BranchMetadata
	Root       string
	URL        string
}

// WorkingCopyInfo is the fixed information block of a workspace
type WorkingCopyInfo struct {
	BranchName          string
	BranchPointRevision *domain.Revision
	BranchSubpath       string
	BranchType          domain.BranchType
	LastMergeRevision   *domain.Revision
	ProjectName         string
	Root                string
	Source              string
}
