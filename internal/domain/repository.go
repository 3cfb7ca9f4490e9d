package domain

import (
	"net/url"
	"time"
)

// NodeKind is what a repository path points to at a revision
type NodeKind int

const (
	NodeNone NodeKind = iota
	NodeFile
	NodeDir
)

func (k NodeKind) String() string {
	switch k {
	case NodeFile:
		return "file"
	case NodeDir:
		return "dir"
	}
	return "none"
}

// Depth limits how far a working-copy operation recurses
type Depth string

const (
	DepthEmpty      Depth = "empty"
	DepthFiles      Depth = "files"
	DepthImmediates Depth = "immediates"
	DepthInfinity   Depth = "infinity"
)

// StatusKind is the local state of a working-copy path
type StatusKind string

const (
	StatusAdded       StatusKind = "added"
	StatusConflicted  StatusKind = "conflicted"
	StatusDeleted     StatusKind = "deleted"
	StatusExternal    StatusKind = "external"
	StatusIgnored     StatusKind = "ignored"
	StatusIncomplete  StatusKind = "incomplete"
	StatusMissing     StatusKind = "missing"
	StatusModified    StatusKind = "modified"
	StatusNormal      StatusKind = "normal"
	StatusObstructed  StatusKind = "obstructed"
	StatusReplaced    StatusKind = "replaced"
	StatusUnversioned StatusKind = "unversioned"
)

// StatusEntry is one path reported by a status walk
type StatusEntry struct {
	Item           StatusKind
	OutOfDate      bool // a newer revision exists in the repository (remote status only)
	Path           string
	Props          StatusKind
	Switched       bool
	TreeConflicted bool
}

// IsLocallyModified reports whether the entry carries an uncommitted change
func (s StatusEntry) IsLocallyModified() bool {
	switch s.Item {
	case StatusAdded, StatusDeleted, StatusModified, StatusReplaced, StatusConflicted,
		StatusMissing, StatusObstructed, StatusIncomplete:
		return true
	}
	switch s.Props {
	case StatusModified, StatusConflicted:
		return true
	}
	return s.TreeConflicted
}

// IsConflicted reports text, property or tree conflicts
func (s StatusEntry) IsConflicted() bool {
	return s.Item == StatusConflicted || s.Props == StatusConflicted || s.TreeConflicted
}

// WorkingCopyInfo describes a versioned local path
type WorkingCopyInfo struct {
	Kind           NodeKind
	LastChangedRev Revision
	Path           string
	RepoRootURL    string
	Revision       Revision
	URL            string
	WCRoot         string
}

// RepoPath is the repository-relative path of the working-copy node
func (i *WorkingCopyInfo) RepoPath() string {
	return RepoPathOfURL(i.URL, i.RepoRootURL)
}

// RepoPathOfURL strips the repository root from a URL and returns an absolute, unescaped repository path
func RepoPathOfURL(u, rootURL string) string {
	if len(u) >= len(rootURL) && u[:len(rootURL)] == rootURL {
		u = u[len(rootURL):]
	}
	if unescaped, err := url.PathUnescape(u); err == nil {
		u = unescaped
	}
	return CleanRepoPath(u)
}

// MergeOutcome is the per-path result category of a merge
type MergeOutcome string

const (
	MergeAdded           MergeOutcome = "added"
	MergeConflicted      MergeOutcome = "conflicted"
	MergeDeleted         MergeOutcome = "deleted"
	MergeModified        MergeOutcome = "modified"
	MergePropertyChanged MergeOutcome = "property-changed"
	MergePropConflicted  MergeOutcome = "property-conflicted"
	MergeSkipped         MergeOutcome = "skipped"
	MergeTreeConflicted  MergeOutcome = "tree-conflicted"
)

// MergeEntry is one path touched by a merge
type MergeEntry struct {
	Outcome MergeOutcome
	Path    string
}

// MergeResult groups merge outcomes by category
type MergeResult struct {
	Entries []MergeEntry
}

// Paths returns the paths with the given outcome, in merge order
func (r *MergeResult) Paths(outcome MergeOutcome) []string {
	var out []string
	if r == nil {
		return out
	}
	for _, e := range r.Entries {
		if e.Outcome == outcome {
			out = append(out, e.Path)
		}
	}
	return out
}

// ConflictCount counts text, property and tree conflicts
func (r *MergeResult) ConflictCount() int {
	return len(r.Paths(MergeConflicted)) + len(r.Paths(MergePropConflicted)) + len(r.Paths(MergeTreeConflicted))
}

// LogEntry is one revision of history
type LogEntry struct {
	Author   string
	Date     time.Time
	Message  string
	Revision Revision
}

// CommitAction is the kind of change in a repository-side commit
type CommitAction string

const (
	CommitCopy    CommitAction = "cp"
	CommitDelete  CommitAction = "rm"
	CommitMkdir   CommitAction = "mkdir"
	CommitPropDel CommitAction = "propdel"
	CommitPropSet CommitAction = "propset"
	CommitPut     CommitAction = "put"
)

// CommitOp is one step of an atomic repository-side commit.
// Paths are absolute repository paths.
type CommitOp struct {
	Action       CommitAction
	Content      []byte   // put
	CopyFrom     string   // cp source path
	CopyRevision Revision // cp source revision
	Path         string
	PropName     string // propset, propdel
	PropValue    string // propset
}

// DirEntry is one child of a repository directory
type DirEntry struct {
	Kind NodeKind
	Name string
}

// StatusOptions controls a status walk
type StatusOptions struct {
	Depth           Depth
	IgnoreExternals bool
	Remote          bool // contact the repository to flag out-of-date paths
}

// MergeRequest describes a merge into a working-copy target.
// When FromURL equals ToURL it is a revision-range merge, otherwise a two-URL merge.
type MergeRequest struct {
	Depth        Depth
	FromRevision Revision
	FromURL      string
	ToRevision   Revision
	ToURL        string
}

// IsRangeMerge reports whether both sides name the same location
func (r MergeRequest) IsRangeMerge() bool {
	return r.FromURL == r.ToURL
}
