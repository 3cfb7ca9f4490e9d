package svn

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

var muccCommittedRe = regexp.MustCompile(`(?m)^r(\d+) committed`)

// CommitOps implements CommitEditor.CommitOps with a single svnmucc invocation
func (c *Client) CommitOps(ctx context.Context, rootURL string, ops []domain.CommitOp, message string, revProps map[string]string) (domain.Revision, error) {
	if len(ops) == 0 {
		return 0, domain.E(domain.Op("svnmucc"), domain.ArgumentError, "no commit operations")
	}
	rootURL = strings.TrimSuffix(rootURL, "/")

	tmpDir, err := os.MkdirTemp("", "svnbranch-mucc-")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	args := append([]string{}, c.commonArgs()...)
	args = append(args, "--message", message)
	args = append(args, revPropArgs(revProps)...)

	for i, op := range ops {
		url := rootURL + domain.CleanRepoPath(op.Path)
		switch op.Action {
		case domain.CommitMkdir:
			args = append(args, "mkdir", url)
		case domain.CommitDelete:
			args = append(args, "rm", url)
		case domain.CommitCopy:
			args = append(args, "cp", op.CopyRevision.String(), rootURL+domain.CleanRepoPath(op.CopyFrom), url)
		case domain.CommitPropSet:
			args = append(args, "propset", op.PropName, op.PropValue, url)
		case domain.CommitPropDel:
			args = append(args, "propdel", op.PropName, url)
		case domain.CommitPut:
			file := fmt.Sprintf("%s/put-%d", tmpDir, i)
			if err := os.WriteFile(file, op.Content, 0644); err != nil {
				return 0, fmt.Errorf("failed to stage content for %s: %w", op.Path, err)
			}
			args = append(args, "put", file, url)
		default:
			return 0, domain.E(domain.Op("svnmucc"), domain.ArgumentError, fmt.Sprintf("unknown commit action %q", op.Action))
		}
	}

	logging.Logger.Info("Committing repository operations", "root", rootURL, "operations", len(ops))
	out, err := c.run(ctx, domain.Op("svnmucc"), c.opts.MuccBinary, args)
	if err != nil {
		return 0, err
	}

	m := muccCommittedRe.FindSubmatch(out)
	if m == nil {
		return 0, domain.E(domain.Op("svnmucc"), domain.TransportError,
			fmt.Sprintf("unexpected svnmucc output: %q", strings.TrimSpace(string(out))))
	}
	rev, err := strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse committed revision: %w", err)
	}
	logging.Logger.Info("Committed repository operations", "revision", rev)
	return domain.Revision(rev), nil
}

// revPropArgs renders revision properties as --with-revprop flags in stable order
func revPropArgs(revProps map[string]string) []string {
	names := make([]string, 0, len(revProps))
	for name := range revProps {
		names = append(names, name)
	}
	sort.Strings(names)

	var args []string
	for _, name := range names {
		args = append(args, "--with-revprop", name+"="+revProps[name])
	}
	return args
}
