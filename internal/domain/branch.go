package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BranchType is the closed set of branch categories
type BranchType int

const (
	Trunk BranchType = iota
	ReleaseBranch
	UserBranch
)

// BranchTypeInfo holds the keyword and default location of a branch category
type BranchTypeInfo struct {
	DefaultPath string
	Keyword     string
}

var branchTypes = map[BranchType]BranchTypeInfo{
	Trunk:         {DefaultPath: "trunk", Keyword: "trunk"},
	ReleaseBranch: {DefaultPath: "branches/releases", Keyword: "release branch"},
	UserBranch:    {DefaultPath: "branches/users", Keyword: "user branch"},
}

// BranchTypes lists every variant in a stable order
func BranchTypes() []BranchType {
	return []BranchType{Trunk, ReleaseBranch, UserBranch}
}

// Info returns the lookup table entry for the variant
func (t BranchType) Info() BranchTypeInfo {
	info, ok := branchTypes[t]
	if !ok {
		panic(fmt.Sprintf("unknown branch type %d", int(t)))
	}
	return info
}

// Keyword returns the metadata/CLI keyword
func (t BranchType) Keyword() string {
	return t.Info().Keyword
}

// DefaultPath returns the default path segment below the project root
func (t BranchType) DefaultPath() string {
	return t.Info().DefaultPath
}

func (t BranchType) String() string {
	return t.Keyword()
}

// ParseBranchType maps a keyword back to its variant.
// Short CLI forms ("release", "user") are accepted as well.
func ParseBranchType(keyword string) (BranchType, error) {
	k := strings.ToLower(strings.TrimSpace(keyword))
	for _, t := range BranchTypes() {
		info := t.Info()
		if k == info.Keyword || k == strings.TrimSuffix(info.Keyword, " branch") {
			return t, nil
		}
	}
	return Trunk, fmt.Errorf("unknown branch type %q", keyword)
}

// Revision is a repository revision number
type Revision int64

const (
	RevisionHead    Revision = -1
	RevisionWorking Revision = -2
	RevisionBase    Revision = -3
)

func (r Revision) String() string {
	switch r {
	case RevisionHead:
		return "HEAD"
	case RevisionWorking:
		return "WORKING"
	case RevisionBase:
		return "BASE"
	}
	return strconv.FormatInt(int64(r), 10)
}

// IsNumber reports whether r is a concrete revision number
func (r Revision) IsNumber() bool {
	return r >= 0
}

// RevisionPtr returns a pointer to r
func RevisionPtr(r Revision) *Revision {
	return &r
}

// FormatRevision renders an optional revision, "" for nil
func FormatRevision(r *Revision) string {
	if r == nil {
		return ""
	}
	return r.String()
}

// BranchMetadata identifies a branch and its lineage.
// One record exists per branch, stored as properties on the metadata file at the branch root.
type BranchMetadata struct {
	BranchPath          string
	BranchPointRevision *Revision
	BranchType          BranchType
	LastMergeRevision   *Revision
	ProjectName         string
	ProjectRoot         string
	ReleaseBranchesPath string
	SourcePath          string
	SourceSubpath       string
	TrunkPath           string
	UserBranchesPath    string
}

// BranchName is the last segment of the branch path
func (m *BranchMetadata) BranchName() string {
	return BaseName(m.BranchPath)
}

// HasSource reports whether the branch was created from another branch
func (m *BranchMetadata) HasSource() bool {
	return m.BranchType != Trunk
}

// SourceContentPath is the repository path whose content this branch tracks:
// the source branch root plus the sub-branch offset
func (m *BranchMetadata) SourceContentPath() string {
	return JoinRepoPath(m.SourcePath, m.SourceSubpath)
}

// CategoryPath returns where branches of type t live for this project
func (m *BranchMetadata) CategoryPath(t BranchType) string {
	switch t {
	case Trunk:
		return m.TrunkPath
	case ReleaseBranch:
		return m.ReleaseBranchesPath
	case UserBranch:
		return m.UserBranchesPath
	}
	panic(fmt.Sprintf("unknown branch type %d", int(t)))
}

// BranchPathFor returns the repository path of a named branch of type t.
// Trunk ignores the name.
func (m *BranchMetadata) BranchPathFor(t BranchType, name string) string {
	if t == Trunk {
		return m.TrunkPath
	}
	return JoinRepoPath(m.CategoryPath(t), name)
}

// SourceBranchType infers the type of the source branch from its location
func (m *BranchMetadata) SourceBranchType() (BranchType, bool) {
	if !m.HasSource() {
		return Trunk, false
	}
	src := CleanRepoPath(m.SourcePath)
	switch {
	case src == CleanRepoPath(m.TrunkPath):
		return Trunk, true
	case IsSubpath(src, m.ReleaseBranchesPath):
		return ReleaseBranch, true
	case IsSubpath(src, m.UserBranchesPath):
		return UserBranch, true
	}
	return Trunk, false
}

// Validate enforces the metadata invariants
func (m *BranchMetadata) Validate() error {
	if strings.TrimSpace(m.ProjectName) == "" {
		return fmt.Errorf("project name is empty")
	}
	if m.BranchPath == "" {
		return fmt.Errorf("branch path is empty")
	}
	if _, ok := branchTypes[m.BranchType]; !ok {
		return fmt.Errorf("unknown branch type %d", int(m.BranchType))
	}

	categories := map[string]string{}
	for _, c := range []struct{ name, path string }{
		{"trunk path", m.TrunkPath},
		{"release branches path", m.ReleaseBranchesPath},
		{"user branches path", m.UserBranchesPath},
	} {
		if c.path == "" {
			return fmt.Errorf("%s is empty", c.name)
		}
		p := CleanRepoPath(c.path)
		if other, dup := categories[p]; dup {
			return fmt.Errorf("%s and %s are both %s", other, c.name, p)
		}
		categories[p] = c.name
	}

	if m.BranchType == Trunk {
		if m.SourcePath != "" || m.SourceSubpath != "" {
			return fmt.Errorf("trunk must not have a source")
		}
		if m.BranchPointRevision != nil || m.LastMergeRevision != nil {
			return fmt.Errorf("trunk must not have branch point or last merge revisions")
		}
		return nil
	}

	if m.SourcePath == "" {
		return fmt.Errorf("%s %s has no source path", m.BranchType, m.BranchPath)
	}
	if m.BranchPointRevision == nil || m.LastMergeRevision == nil {
		return fmt.Errorf("%s %s is missing branch point or last merge revision", m.BranchType, m.BranchPath)
	}
	if !m.BranchPointRevision.IsNumber() || !m.LastMergeRevision.IsNumber() {
		return fmt.Errorf("branch point and last merge revisions must be revision numbers")
	}
	if *m.LastMergeRevision < *m.BranchPointRevision {
		return fmt.Errorf("last merge revision %d is older than branch point revision %d",
			*m.LastMergeRevision, *m.BranchPointRevision)
	}
	return nil
}

// ValidateBranchName rejects names that would escape the branch category directory
func ValidateBranchName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("branch name is empty")
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("branch name %q must not contain path separators", name)
	case name == "." || name == "..":
		return fmt.Errorf("branch name %q is not allowed", name)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("branch name %q must not start or end with whitespace", name)
	}
	return nil
}
