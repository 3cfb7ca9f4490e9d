package svn

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
	"svnbranch/internal/ports"
)

// Options configures how the svn binaries are invoked
type Options struct {
	Binary         string // defaults to "svn"
	MuccBinary     string // defaults to "svnmucc"
	NonInteractive bool
	Password       string
	Username       string
}

// Client implements ports.Repository using the svn and svnmucc command line tools
type Client struct {
	opts Options
}

// Verify interface compliance at compile time
var _ ports.Repository = (*Client)(nil)

// NewClient creates a new Client
func NewClient(opts Options) *Client {
	if opts.Binary == "" {
		opts.Binary = "svn"
	}
	if opts.MuccBinary == "" {
		opts.MuccBinary = "svnmucc"
	}
	return &Client{opts: opts}
}

// commonArgs returns the authentication and interaction flags shared by svn and svnmucc
func (c *Client) commonArgs() []string {
	var args []string
	if c.opts.NonInteractive {
		args = append(args, "--non-interactive")
	}
	if c.opts.Username != "" {
		args = append(args, "--username", c.opts.Username)
	}
	if c.opts.Password != "" {
		args = append(args, "--password", c.opts.Password)
	}
	return args
}

// svn runs an svn subcommand and returns its stdout
func (c *Client) svn(ctx context.Context, subcommand string, args ...string) ([]byte, error) {
	full := append([]string{subcommand}, c.commonArgs()...)
	full = append(full, args...)
	return c.run(ctx, domain.Op("svn."+subcommand), c.opts.Binary, full)
}

func (c *Client) run(ctx context.Context, op domain.Op, binary string, args []string) ([]byte, error) {
	logging.Logger.Debug("Running subversion command", "binary", binary, "args", redact(args))
	start := time.Now()

	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	elapsed := time.Since(start)
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		logging.Logger.Error("Subversion command failed",
			"binary", binary,
			"args", redact(args),
			"duration", elapsed,
			"error", err,
			"stderr", msg)
		return stdout.Bytes(), domain.E(op, domain.TransportError, &commandError{stderr: msg, err: err})
	}

	logging.Logger.Debug("Subversion command finished", "binary", binary, "duration", elapsed, "bytes", stdout.Len())
	return stdout.Bytes(), nil
}

// commandError keeps the stderr of a failed command next to its exit error
type commandError struct {
	err    error
	stderr string
}

func (e *commandError) Error() string {
	return e.stderr
}

func (e *commandError) Unwrap() error {
	return e.err
}

// hasErrorCode reports whether a failed command printed one of the given svn error codes (e.g. "E170000")
func hasErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, code := range codes {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}

// redact hides the password argument in logged command lines
func redact(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		if out[i] == "--password" {
			out[i+1] = "***"
		}
	}
	return out
}

// pegged appends a peg revision to a URL or path.
// Working-copy reads get a bare "@" only when the target itself contains one.
func pegged(target string, rev domain.Revision) string {
	if rev == domain.RevisionWorking {
		if strings.Contains(target, "@") {
			return target + "@"
		}
		return target
	}
	return fmt.Sprintf("%s@%s", target, rev)
}

// plainTarget protects local paths containing "@" from being read as peg revisions
func plainTarget(path string) string {
	return pegged(path, domain.RevisionWorking)
}
