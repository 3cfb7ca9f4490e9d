package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own SVNBRANCH_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp SVNBRANCH_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out SVNBRANCH_* variables and sets:
//   - SVNBRANCH_HOME to the temp directory
//   - SVNBRANCH_DEBUG to empty string (disables debug logging)
//   - SVNBRANCH_NON_INTERACTIVE to "1"
//   - LC_ALL to C so svn messages are not translated
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+4+len(e.extraEnv))

	overrideKeys := map[string]bool{"LC_ALL": true}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "SVNBRANCH_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"SVNBRANCH_HOME="+e.Home,
		"SVNBRANCH_DEBUG=",
		"SVNBRANCH_NON_INTERACTIVE=1",
		"LC_ALL=C",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "state.db")
}

// WritePolicy writes policy.yaml into SVNBRANCH_HOME
func (e *TestEnvironment) WritePolicy(content string) {
	e.tb.Helper()
	if err := os.WriteFile(filepath.Join(e.Home, "policy.yaml"), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write policy: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
