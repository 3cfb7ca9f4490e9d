package svn

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
)

// Error codes svn prints when a path is absent at the requested revision
var missingPathCodes = []string{"E170000", "W170000", "E160013", "W160013", "E200009"}

var committedRevisionRe = regexp.MustCompile(`(?m)^Committed revision (\d+)\.`)

// RepositoryBrowser methods

// CheckPath implements RepositoryBrowser.CheckPath
func (c *Client) CheckPath(ctx context.Context, url string, rev domain.Revision) (domain.NodeKind, error) {
	out, err := c.svn(ctx, "info", "--xml", pegged(url, rev))
	if err != nil {
		if hasErrorCode(err, missingPathCodes...) {
			logging.Logger.Debug("Path does not exist", "url", url, "revision", rev)
			return domain.NodeNone, nil
		}
		return domain.NodeNone, err
	}
	info, err := parseInfo(out)
	if err != nil {
		return domain.NodeNone, err
	}
	return info.Kind, nil
}

// GetProperties implements RepositoryBrowser.GetProperties
func (c *Client) GetProperties(ctx context.Context, target string, rev domain.Revision) (map[string]string, error) {
	args := []string{"--xml", "--verbose"}
	if rev != domain.RevisionWorking {
		args = append(args, "--revision", rev.String())
	}
	args = append(args, pegged(target, rev))
	out, err := c.svn(ctx, "proplist", args...)
	if err != nil {
		return nil, err
	}
	return parseProperties(out)
}

// LastChangedRevision implements RepositoryBrowser.LastChangedRevision
func (c *Client) LastChangedRevision(ctx context.Context, url string, rev domain.Revision) (domain.Revision, error) {
	out, err := c.svn(ctx, "info", "--xml", pegged(url, rev))
	if err != nil {
		return 0, err
	}
	info, err := parseInfo(out)
	if err != nil {
		return 0, err
	}
	return info.LastChangedRev, nil
}

// LatestRevision implements RepositoryBrowser.LatestRevision
func (c *Client) LatestRevision(ctx context.Context, url string) (domain.Revision, error) {
	out, err := c.svn(ctx, "info", "--xml", pegged(url, domain.RevisionHead))
	if err != nil {
		return 0, err
	}
	info, err := parseInfo(out)
	if err != nil {
		return 0, err
	}
	return info.Revision, nil
}

// List implements RepositoryBrowser.List
func (c *Client) List(ctx context.Context, url string, rev domain.Revision) ([]domain.DirEntry, error) {
	out, err := c.svn(ctx, "list", "--xml", pegged(url, rev))
	if err != nil {
		return nil, err
	}
	return parseList(out)
}

// Log implements RepositoryBrowser.Log
func (c *Client) Log(ctx context.Context, url string, limit int) ([]domain.LogEntry, error) {
	args := []string{"--xml"}
	if limit > 0 {
		args = append(args, "--limit", strconv.Itoa(limit))
	}
	args = append(args, url)
	out, err := c.svn(ctx, "log", args...)
	if err != nil {
		return nil, err
	}
	return parseLog(out)
}

// WorkingCopy methods

// Info implements WorkingCopy.Info
func (c *Client) Info(ctx context.Context, path string) (*domain.WorkingCopyInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	out, err := c.svn(ctx, "info", "--xml", plainTarget(abs))
	if err != nil {
		if hasErrorCode(err, "E155007", "W155010", "E155010") {
			return nil, domain.E(domain.Op("svn.info"), domain.PathArg(abs), domain.NotFound, domain.ErrNotWorkingCopy)
		}
		return nil, err
	}
	info, err := parseInfo(out)
	if err != nil {
		return nil, err
	}
	if info.Path == "" || !filepath.IsAbs(info.Path) {
		info.Path = abs
	}
	return info, nil
}

// Status implements WorkingCopy.Status
func (c *Client) Status(ctx context.Context, path string, opts domain.StatusOptions) ([]domain.StatusEntry, error) {
	args := []string{"--xml"}
	if opts.Depth != "" {
		args = append(args, "--depth", string(opts.Depth))
	}
	if opts.IgnoreExternals {
		args = append(args, "--ignore-externals")
	}
	if opts.Remote {
		args = append(args, "--show-updates")
	}
	args = append(args, plainTarget(path))
	out, err := c.svn(ctx, "status", args...)
	if err != nil {
		return nil, err
	}
	return parseStatus(out)
}

// Merge implements WorkingCopy.Merge
func (c *Client) Merge(ctx context.Context, target string, req domain.MergeRequest) (*domain.MergeResult, error) {
	args := []string{"--accept", "postpone"}
	if req.Depth != "" {
		args = append(args, "--depth", string(req.Depth))
	}
	if req.IsRangeMerge() {
		args = append(args,
			"--revision", fmt.Sprintf("%s:%s", req.FromRevision, req.ToRevision),
			pegged(req.FromURL, req.ToRevision))
	} else {
		args = append(args, pegged(req.FromURL, req.FromRevision), pegged(req.ToURL, req.ToRevision))
	}
	args = append(args, plainTarget(target))

	logging.Logger.Info("Merging", "target", target, "from", req.FromURL, "from_rev", req.FromRevision,
		"to", req.ToURL, "to_rev", req.ToRevision)
	out, err := c.svn(ctx, "merge", args...)
	if err != nil {
		return nil, err
	}
	result := parseMergeOutput(out)
	absolutizeEntries(result)
	logging.Logger.Info("Merge finished", "target", target, "entries", len(result.Entries),
		"conflicts", result.ConflictCount())
	return result, nil
}

// Switch implements WorkingCopy.Switch
func (c *Client) Switch(ctx context.Context, target, url string, rev domain.Revision) error {
	logging.Logger.Info("Switching working copy", "target", target, "url", url, "revision", rev)
	_, err := c.svn(ctx, "switch", "--accept", "postpone", pegged(url, rev), plainTarget(target))
	return err
}

// Revert implements WorkingCopy.Revert
func (c *Client) Revert(ctx context.Context, paths []string, depth domain.Depth) error {
	args := []string{}
	if depth != "" {
		args = append(args, "--depth", string(depth))
	}
	for _, p := range paths {
		args = append(args, plainTarget(p))
	}
	_, err := c.svn(ctx, "revert", args...)
	return err
}

// Copy implements WorkingCopy.Copy
func (c *Client) Copy(ctx context.Context, srcURL string, rev domain.Revision, dst string) error {
	_, err := c.svn(ctx, "copy", "--parents", pegged(srcURL, rev), plainTarget(dst))
	return err
}

// Delete implements WorkingCopy.Delete
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.svn(ctx, "delete", "--force", plainTarget(path))
	return err
}

// SetProperty implements WorkingCopy.SetProperty
func (c *Client) SetProperty(ctx context.Context, path, name, value string) error {
	_, err := c.svn(ctx, "propset", name, value, plainTarget(path))
	return err
}

// DeleteProperty implements WorkingCopy.DeleteProperty
func (c *Client) DeleteProperty(ctx context.Context, path, name string) error {
	_, err := c.svn(ctx, "propdel", name, plainTarget(path))
	return err
}

// Commit implements WorkingCopy.Commit.
// Returns revision 0 when there was nothing to commit.
func (c *Client) Commit(ctx context.Context, paths []string, message string, revProps map[string]string) (domain.Revision, error) {
	args := []string{"--message", message}
	args = append(args, revPropArgs(revProps)...)
	for _, p := range paths {
		args = append(args, plainTarget(p))
	}
	out, err := c.svn(ctx, "commit", args...)
	if err != nil {
		return 0, err
	}
	m := committedRevisionRe.FindSubmatch(out)
	if m == nil {
		logging.Logger.Info("Nothing committed", "paths", paths)
		return 0, nil
	}
	rev, err := strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected commit output %q: %w", string(m[0]), err)
	}
	logging.Logger.Info("Committed working copy", "revision", rev)
	return domain.Revision(rev), nil
}

// absolutizeEntries resolves merge notification paths, which svn prints relative to the current directory
func absolutizeEntries(result *domain.MergeResult) {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	for i, e := range result.Entries {
		if !filepath.IsAbs(e.Path) {
			result.Entries[i].Path = filepath.Join(cwd, e.Path)
		}
	}
}
