package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MetadataFileName is the sentinel file at every branch root carrying the metadata properties
const MetadataFileName = ".svnbranch"

// Metadata property names. These are an external contract: never rename them.
const (
	PropBranchPath          = "svnbranch:branch-path"
	PropBranchPointRevision = "svnbranch:branch-point-revision"
	PropBranchType          = "svnbranch:branch-type"
	PropLastMergeRevision   = "svnbranch:last-merge-revision"
	PropProjectName         = "svnbranch:project-name"
	PropProjectRoot         = "svnbranch:project-root"
	PropReleaseBranchesPath = "svnbranch:release-branches-path"
	PropSourcePath          = "svnbranch:source-path"
	PropSourceSubpath       = "svnbranch:source-subpath"
	PropTrunkPath           = "svnbranch:trunk-path"
	PropUserBranchesPath    = "svnbranch:user-branches-path"
)

// MetadataProperties lists every metadata property name
func MetadataProperties() []string {
	return []string{
		PropProjectName,
		PropProjectRoot,
		PropBranchType,
		PropBranchPath,
		PropSourcePath,
		PropSourceSubpath,
		PropTrunkPath,
		PropReleaseBranchesPath,
		PropUserBranchesPath,
		PropBranchPointRevision,
		PropLastMergeRevision,
	}
}

// DecodeMetadata parses and validates a metadata property set.
// Missing or malformed required values fail here instead of surfacing later as zero values.
func DecodeMetadata(props map[string]string) (*BranchMetadata, error) {
	get := func(name string) string {
		return strings.TrimSpace(props[name])
	}
	required := func(name string) (string, error) {
		v := get(name)
		if v == "" {
			return "", fmt.Errorf("missing property %s", name)
		}
		return v, nil
	}

	m := &BranchMetadata{}
	var err error
	if m.ProjectName, err = required(PropProjectName); err != nil {
		return nil, err
	}
	keyword, err := required(PropBranchType)
	if err != nil {
		return nil, err
	}
	if m.BranchType, err = ParseBranchType(keyword); err != nil {
		return nil, fmt.Errorf("property %s: %w", PropBranchType, err)
	}
	branchPath, err := required(PropBranchPath)
	if err != nil {
		return nil, err
	}
	m.BranchPath = CleanRepoPath(branchPath)

	for _, p := range []struct {
		name string
		dst  *string
	}{
		{PropTrunkPath, &m.TrunkPath},
		{PropReleaseBranchesPath, &m.ReleaseBranchesPath},
		{PropUserBranchesPath, &m.UserBranchesPath},
	} {
		v, err := required(p.name)
		if err != nil {
			return nil, err
		}
		*p.dst = CleanRepoPath(v)
	}

	if v := get(PropProjectRoot); v != "" {
		m.ProjectRoot = CleanRepoPath(v)
	} else {
		m.ProjectRoot = ParentPath(m.TrunkPath)
	}
	if v := get(PropSourcePath); v != "" {
		m.SourcePath = CleanRepoPath(v)
	}
	m.SourceSubpath = CleanSubpath(get(PropSourceSubpath))

	if m.BranchPointRevision, err = parseOptionalRevision(PropBranchPointRevision, get(PropBranchPointRevision)); err != nil {
		return nil, err
	}
	if m.LastMergeRevision, err = parseOptionalRevision(PropLastMergeRevision, get(PropLastMergeRevision)); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid branch metadata: %w", err)
	}
	return m, nil
}

func parseOptionalRevision(name, v string) (*Revision, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("property %s: invalid revision %q", name, v)
	}
	return RevisionPtr(Revision(n)), nil
}

// EncodeMetadata renders metadata as properties. Optional values that are unset are omitted.
func EncodeMetadata(m *BranchMetadata) map[string]string {
	props := map[string]string{
		PropProjectName:         m.ProjectName,
		PropProjectRoot:         CleanRepoPath(m.ProjectRoot),
		PropBranchType:          m.BranchType.Keyword(),
		PropBranchPath:          CleanRepoPath(m.BranchPath),
		PropTrunkPath:           CleanRepoPath(m.TrunkPath),
		PropReleaseBranchesPath: CleanRepoPath(m.ReleaseBranchesPath),
		PropUserBranchesPath:    CleanRepoPath(m.UserBranchesPath),
	}
	if m.SourcePath != "" {
		props[PropSourcePath] = CleanRepoPath(m.SourcePath)
	}
	if sub := CleanSubpath(m.SourceSubpath); sub != "" {
		props[PropSourceSubpath] = sub
	}
	if m.BranchPointRevision != nil {
		props[PropBranchPointRevision] = m.BranchPointRevision.String()
	}
	if m.LastMergeRevision != nil {
		props[PropLastMergeRevision] = m.LastMergeRevision.String()
	}
	return props
}
