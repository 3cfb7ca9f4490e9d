// Package harness provides utilities for integration testing the svnbranch CLI.
// It handles binary compilation, environment isolation, throw-away Subversion
// repositories and command execution.
//
// Environment variables managed:
//   - SVNBRANCH_HOME: Isolated per test (temp directory)
//   - SVNBRANCH_DEBUG: Disabled to reduce noise
//   - SVNBRANCH_NON_INTERACTIVE: Set so no command waits for a prompt
package harness
