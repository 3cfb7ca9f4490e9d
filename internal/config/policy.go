package config

import (
	"fmt"
	"maps"
	"os"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"svnbranch/internal/domain"
)

const (
	// DefaultFreezeBreakPattern accepts messages ending with the freeze break marker
	DefaultFreezeBreakPattern = `(?i).*\bcode freeze break\b\W*`

	// DefaultFreezeError is raised when a frozen project receives an ordinary message
	DefaultFreezeError = `projectName is code frozen: end the log message with "code freeze break" to commit anyway`

	// DefaultMessageError is raised when a log message does not match its pattern
	DefaultMessageError = `log message rejected for branchType branchName`
)

// policyFile mirrors policy.yaml
type policyFile struct {
	Defaults *projectPolicyFile           `yaml:"defaults"`
	Projects map[string]projectPolicyFile `yaml:"projects"`
}

type projectPolicyFile struct {
	CheckCreateMessages *bool             `yaml:"check_create_messages"`
	CodeFrozen          *bool             `yaml:"code_frozen"`
	FreezeBreakPattern  string            `yaml:"freeze_break_pattern"`
	FreezeError         string            `yaml:"freeze_error"`
	LogMessageErrors    map[string]string `yaml:"log_message_errors"`
	LogMessagePatterns  map[string]string `yaml:"log_message_patterns"`
	MinimumVersion      string            `yaml:"minimum_version"`
	StripMergeInfo      *bool             `yaml:"strip_merge_info"`
}

// ProjectPolicy is the resolved policy of one project.
// Values are copies; mutating them does not affect the Policy they came from.
type ProjectPolicy struct {
	CheckCreateMessages bool
	CodeFrozen          bool
	FreezeBreakPattern  string
	FreezeError         string
	LogMessageErrors    map[domain.BranchType]string
	LogMessagePatterns  map[domain.BranchType]string
	MinimumVersion      string
	StripMergeInfo      bool
}

// Policy is the immutable policy configuration loaded from policy.yaml
type Policy struct {
	defaults ProjectPolicy
	projects map[string]ProjectPolicy
}

// DefaultProjectPolicy is the policy of a project nobody configured
func DefaultProjectPolicy() ProjectPolicy {
	return ProjectPolicy{
		FreezeBreakPattern: DefaultFreezeBreakPattern,
		FreezeError:        DefaultFreezeError,
		LogMessageErrors:   map[domain.BranchType]string{},
		LogMessagePatterns: map[domain.BranchType]string{},
	}
}

// EmptyPolicy returns a Policy that applies the defaults to every project
func EmptyPolicy() *Policy {
	return &Policy{defaults: DefaultProjectPolicy(), projects: map[string]ProjectPolicy{}}
}

// Project returns the policy of a project, falling back to the defaults block
func (p *Policy) Project(name string) ProjectPolicy {
	pp, ok := p.projects[name]
	if !ok {
		pp = p.defaults
	}
	pp.LogMessageErrors = maps.Clone(pp.LogMessageErrors)
	pp.LogMessagePatterns = maps.Clone(pp.LogMessagePatterns)
	return pp
}

// Projects returns the names of explicitly configured projects
func (p *Policy) Projects() []string {
	names := make([]string, 0, len(p.projects))
	for name := range p.projects {
		names = append(names, name)
	}
	return names
}

// LoadPolicy loads $SVNBRANCH_HOME/policy.yaml.
// A missing file yields the empty policy.
func LoadPolicy() (*Policy, error) {
	return LoadPolicyFrom(GetPolicyPath())
}

// LoadPolicyFrom loads a policy file from an explicit path
func LoadPolicyFrom(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return EmptyPolicy(), nil
		}
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	return ParsePolicy(data)
}

// ParsePolicy builds a Policy from policy.yaml content
func ParsePolicy(data []byte) (*Policy, error) {
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid policy.yaml: %w", err)
	}

	defaults := DefaultProjectPolicy()
	if file.Defaults != nil {
		resolved, err := resolveProjectPolicy(defaults, *file.Defaults)
		if err != nil {
			return nil, fmt.Errorf("invalid policy.yaml defaults: %w", err)
		}
		defaults = resolved
	}

	policy := &Policy{defaults: defaults, projects: make(map[string]ProjectPolicy, len(file.Projects))}
	for name, raw := range file.Projects {
		resolved, err := resolveProjectPolicy(defaults, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid policy.yaml project %q: %w", name, err)
		}
		policy.projects[name] = resolved
	}
	return policy, nil
}

// resolveProjectPolicy overlays a file block on top of a base policy
func resolveProjectPolicy(base ProjectPolicy, raw projectPolicyFile) (ProjectPolicy, error) {
	pp := base
	pp.LogMessageErrors = maps.Clone(base.LogMessageErrors)
	pp.LogMessagePatterns = maps.Clone(base.LogMessagePatterns)

	if raw.CheckCreateMessages != nil {
		pp.CheckCreateMessages = *raw.CheckCreateMessages
	}
	if raw.CodeFrozen != nil {
		pp.CodeFrozen = *raw.CodeFrozen
	}
	if raw.StripMergeInfo != nil {
		pp.StripMergeInfo = *raw.StripMergeInfo
	}
	if raw.FreezeBreakPattern != "" {
		if _, err := regexp.Compile(raw.FreezeBreakPattern); err != nil {
			return ProjectPolicy{}, fmt.Errorf("freeze_break_pattern: %w", err)
		}
		pp.FreezeBreakPattern = raw.FreezeBreakPattern
	}
	if raw.FreezeError != "" {
		pp.FreezeError = raw.FreezeError
	}
	if raw.MinimumVersion != "" {
		if _, err := semver.NewVersion(raw.MinimumVersion); err != nil {
			return ProjectPolicy{}, fmt.Errorf("minimum_version %q: %w", raw.MinimumVersion, err)
		}
		pp.MinimumVersion = raw.MinimumVersion
	}

	for keyword, pattern := range raw.LogMessagePatterns {
		bt, err := domain.ParseBranchType(keyword)
		if err != nil {
			return ProjectPolicy{}, fmt.Errorf("log_message_patterns: %w", err)
		}
		pp.LogMessagePatterns[bt] = pattern
	}
	for keyword, tmpl := range raw.LogMessageErrors {
		bt, err := domain.ParseBranchType(keyword)
		if err != nil {
			return ProjectPolicy{}, fmt.Errorf("log_message_errors: %w", err)
		}
		pp.LogMessageErrors[bt] = tmpl
	}
	return pp, nil
}
