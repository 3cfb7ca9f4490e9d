package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// ProjectName is the project every test repository is seeded with
const ProjectName = "p"

// TestRepository is a throw-away Subversion repository seeded with one project.
//
// Layout after seeding (r1):
//
//	/p/trunk/.svnbranch       <- trunk metadata properties
//	/p/trunk/README.txt
//	/p/trunk/src/main.c
//	/p/trunk/src/text/format.c
//	/p/branches/releases
//	/p/branches/users
type TestRepository struct {
	Path string // repository directory created by svnadmin
	URL  string // file:// URL of the repository root
	tb   testing.TB
}

// NewTestRepository creates and seeds a repository
func NewTestRepository(tb testing.TB) *TestRepository {
	tb.Helper()

	base := tb.TempDir()
	repoPath := filepath.Join(base, "repo")
	runTool(tb, base, "svnadmin", "create", repoPath)

	r := &TestRepository{
		Path: repoPath,
		URL:  "file://" + filepath.ToSlash(repoPath),
		tb:   tb,
	}
	r.seed(base)
	return r
}

func (r *TestRepository) seed(base string) {
	r.tb.Helper()

	files := map[string]string{
		"empty":     "",
		"readme":    "# Test project\n",
		"main":      "int main(void) { return 0; }\n",
		"formatter": "void format(void) {}\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(base, name), []byte(content), 0644); err != nil {
			r.tb.Fatalf("Failed to stage %s: %v", name, err)
		}
	}

	trunk := r.URL + "/p/trunk"
	meta := trunk + "/.svnbranch"
	args := []string{"-m", "Create project p",
		"mkdir", r.URL + "/p",
		"mkdir", trunk,
		"mkdir", trunk + "/src",
		"mkdir", trunk + "/src/text",
		"mkdir", r.URL + "/p/branches",
		"mkdir", r.URL + "/p/branches/releases",
		"mkdir", r.URL + "/p/branches/users",
		"put", filepath.Join(base, "readme"), trunk + "/README.txt",
		"put", filepath.Join(base, "main"), trunk + "/src/main.c",
		"put", filepath.Join(base, "formatter"), trunk + "/src/text/format.c",
		"put", filepath.Join(base, "empty"), meta,
	}
	props := map[string]string{
		"svnbranch:project-name":          ProjectName,
		"svnbranch:project-root":          "/p",
		"svnbranch:branch-type":           "trunk",
		"svnbranch:branch-path":           "/p/trunk",
		"svnbranch:trunk-path":            "/p/trunk",
		"svnbranch:release-branches-path": "/p/branches/releases",
		"svnbranch:user-branches-path":    "/p/branches/users",
	}
	for name, value := range props {
		args = append(args, "propset", name, value, meta)
	}
	runTool(r.tb, base, "svnmucc", args...)
}

// Checkout checks out a repository path into a fresh temp directory
func (r *TestRepository) Checkout(repoPath string) string {
	r.tb.Helper()
	dir := filepath.Join(r.tb.TempDir(), "wc")
	runTool(r.tb, filepath.Dir(dir), "svn", "checkout", "-q", r.URL+repoPath, dir)
	return dir
}

// HeadRevision returns the youngest revision of the repository
func (r *TestRepository) HeadRevision() int {
	r.tb.Helper()
	out := outputTool(r.tb, r.Path, "svn", "info", "--non-interactive", "--show-item", "revision", r.URL)
	rev, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		r.tb.Fatalf("Unexpected svn info output %q: %v", out, err)
	}
	return rev
}

// Exists reports whether a repository path exists at HEAD
func (r *TestRepository) Exists(repoPath string) bool {
	r.tb.Helper()
	cmd := exec.Command("svn", "info", "--non-interactive", r.URL+repoPath)
	return cmd.Run() == nil
}

// Cat returns the content of a repository file at HEAD
func (r *TestRepository) Cat(repoPath string) string {
	r.tb.Helper()
	return outputTool(r.tb, r.Path, "svn", "cat", "--non-interactive", r.URL+repoPath)
}

// RunSvn executes an svn command in the specified directory
func RunSvn(tb testing.TB, dir string, args ...string) string {
	tb.Helper()
	return outputTool(tb, dir, "svn", append(args, "--non-interactive")...)
}

// Status returns `svn status -q` output for a working copy, empty when clean
func Status(tb testing.TB, dir string) string {
	tb.Helper()
	return strings.TrimSpace(RunSvn(tb, dir, "status", "-q"))
}

// WriteFile writes a file inside a working copy, creating parent directories
func WriteFile(tb testing.TB, path, content string) {
	tb.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tb.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tb.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadFile returns the content of a local file
func ReadFile(tb testing.TB, path string) string {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func runTool(tb testing.TB, dir, tool string, args ...string) {
	tb.Helper()
	outputTool(tb, dir, tool, args...)
}

func outputTool(tb testing.TB, dir, tool string, args ...string) string {
	tb.Helper()

	cmd := exec.Command(tool, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "LC_ALL=C")

	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		tb.Fatalf("%s %v failed in %s: %v\nStderr: %s", tool, args, dir, err, stderr.String())
	}
	return string(out)
}
