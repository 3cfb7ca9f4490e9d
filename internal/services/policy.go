package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"svnbranch/internal/config"
	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

var placeholderRe = regexp.MustCompile(`\b(projectName|branchName|branchType|sourceBranchName|sourceBranchType)\b`)

// PolicyGate validates log messages and the running version against the project policy
type PolicyGate struct {
	policy  *config.Policy
	version string
}

// NewPolicyGate creates a gate for the given policy and running tool version
func NewPolicyGate(policy *config.Policy, runningVersion string) *PolicyGate {
	if policy == nil {
		policy = config.EmptyPolicy()
	}
	return &PolicyGate{policy: policy, version: runningVersion}
}

// ProjectPolicy returns the policy that applies to the branch's project
func (g *PolicyGate) ProjectPolicy(meta *domain.BranchMetadata) config.ProjectPolicy {
	return g.policy.Project(meta.ProjectName)
}

// Check runs the version check and then the log message check.
// Warnings are returned even when the message check fails.
func (g *PolicyGate) Check(meta *domain.BranchMetadata, message string) ([]string, error) {
	warnings, err := g.CheckVersion(meta)
	if err != nil {
		return warnings, err
	}
	return warnings, g.CheckLogMessage(meta, message)
}

// CheckVersion refuses to run when the tool is older than the project's minimum version.
// An unknown running version is reported as a warning.
func (g *PolicyGate) CheckVersion(meta *domain.BranchMetadata) ([]string, error) {
	const op domain.Op = "policy.version"

	minimum := g.ProjectPolicy(meta).MinimumVersion
	if minimum == "" {
		return nil, nil
	}
	required, err := semver.NewVersion(minimum)
	if err != nil {
		return nil, domain.E(op, domain.PolicyRejection, fmt.Errorf("invalid minimum version %q: %w", minimum, err))
	}

	running, err := semver.NewVersion(g.version)
	if err != nil {
		warning := fmt.Sprintf("running version %q is unknown; minimum version %s for project %s was not checked",
			g.version, minimum, meta.ProjectName)
		logging.Logger.Warn("Minimum version not checked", "running", g.version, "minimum", minimum)
		return []string{warning}, nil
	}

	// Only major.minor.patch take part; a prerelease of the required version meets the floor
	if releaseOf(running).LessThan(releaseOf(required)) {
		return nil, domain.E(op, domain.PolicyRejection,
			fmt.Errorf("svnbranch %s is older than version %s required by project %s", g.version, minimum, meta.ProjectName))
	}
	return nil, nil
}

// CheckLogMessage matches the whitespace-normalized message against the pattern for the branch type,
// then against the freeze break pattern when the project is code frozen
func (g *PolicyGate) CheckLogMessage(meta *domain.BranchMetadata, message string) error {
	const op domain.Op = "policy.message"

	pp := g.ProjectPolicy(meta)
	values := placeholderValues(meta)
	normalized := strings.Join(strings.Fields(message), " ")

	if pattern := pp.LogMessagePatterns[meta.BranchType]; pattern != "" {
		ok, err := matchesFully(substitute(pattern, values, regexp.QuoteMeta), normalized)
		if err != nil {
			return domain.E(op, domain.PolicyRejection, fmt.Errorf("invalid log message pattern %q: %w", pattern, err))
		}
		if !ok {
			tmpl := pp.LogMessageErrors[meta.BranchType]
			if tmpl == "" {
				tmpl = config.DefaultMessageError
			}
			logging.Logger.Info("Log message rejected", "pattern", pattern, "branch", meta.BranchPath)
			return domain.E(op, domain.PolicyRejection,
				fmt.Errorf("%s: message %q does not match pattern %q", substitute(tmpl, values, verbatim), normalized, pattern))
		}
	}

	if pp.CodeFrozen {
		pattern := pp.FreezeBreakPattern
		if pattern == "" {
			pattern = config.DefaultFreezeBreakPattern
		}
		ok, err := matchesFully(substitute(pattern, values, regexp.QuoteMeta), normalized)
		if err != nil {
			return domain.E(op, domain.PolicyCancellation, fmt.Errorf("invalid freeze break pattern %q: %w", pattern, err))
		}
		if !ok {
			tmpl := pp.FreezeError
			if tmpl == "" {
				tmpl = config.DefaultFreezeError
			}
			logging.Logger.Info("Commit cancelled by code freeze", "project", meta.ProjectName)
			return domain.E(op, domain.PolicyCancellation, substitute(tmpl, values, verbatim))
		}
	}
	return nil
}

// placeholderValues maps the placeholder words to the branch's metadata
func placeholderValues(meta *domain.BranchMetadata) map[string]string {
	values := map[string]string{
		"branchName":       meta.BranchName(),
		"branchType":       meta.BranchType.Keyword(),
		"projectName":      meta.ProjectName,
		"sourceBranchName": "",
		"sourceBranchType": "",
	}
	if meta.HasSource() {
		values["sourceBranchName"] = domain.BaseName(meta.SourcePath)
		if st, ok := meta.SourceBranchType(); ok {
			values["sourceBranchType"] = st.Keyword()
		}
	}
	return values
}

func verbatim(s string) string { return s }

func releaseOf(v *semver.Version) *semver.Version {
	return semver.New(v.Major(), v.Minor(), v.Patch(), "", "")
}

// substitute replaces placeholder words on word boundaries, escaping values with quote
func substitute(tmpl string, values map[string]string, quote func(string) string) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(word string) string {
		return quote(values[word])
	})
}

func matchesFully(pattern, s string) (bool, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}
