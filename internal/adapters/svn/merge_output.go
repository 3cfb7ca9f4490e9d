package svn

import (
	"bufio"
	"bytes"
	"strings"

	"svnbranch/internal/domain"
)

// parseMergeOutput turns svn merge notifications into categorized entries.
//
// Notification lines carry four status columns and the path:
//
//	U    src/main.c      text updated
//	 U   src             property updated
//	C    src/util.c      text conflict
//	 C   .               property conflict
//	   C docs            tree conflict
//	Skipped missing target: 'lib/gone.c'
//
// Header lines ("--- Merging ...") and the conflict summary are ignored.
func parseMergeOutput(data []byte) *domain.MergeResult {
	result := &domain.MergeResult{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if entry, ok := parseMergeLine(line); ok {
			result.Entries = append(result.Entries, entry)
		}
	}
	return result
}

func parseMergeLine(line string) (domain.MergeEntry, bool) {
	if strings.HasPrefix(line, "Skipped") {
		first := strings.Index(line, "'")
		last := strings.LastIndex(line, "'")
		if first < 0 || last <= first {
			return domain.MergeEntry{}, false
		}
		return domain.MergeEntry{Outcome: domain.MergeSkipped, Path: line[first+1 : last]}, true
	}

	if len(line) < 6 || line[4] != ' ' || strings.HasPrefix(line, "---") {
		return domain.MergeEntry{}, false
	}
	cols, path := line[:4], line[5:]
	if strings.TrimSpace(cols) == "" {
		return domain.MergeEntry{}, false
	}
	for _, c := range cols {
		if !strings.ContainsRune(" ADUCGER", c) {
			return domain.MergeEntry{}, false
		}
	}

	var outcome domain.MergeOutcome
	switch {
	case cols[3] == 'C':
		outcome = domain.MergeTreeConflicted
	case cols[0] == 'C':
		outcome = domain.MergeConflicted
	case cols[1] == 'C':
		outcome = domain.MergePropConflicted
	case cols[0] == 'A' || cols[0] == 'R':
		outcome = domain.MergeAdded
	case cols[0] == 'D':
		outcome = domain.MergeDeleted
	case cols[0] == 'U' || cols[0] == 'G' || cols[0] == 'E':
		outcome = domain.MergeModified
	case cols[1] == 'U' || cols[1] == 'G':
		outcome = domain.MergePropertyChanged
	default:
		return domain.MergeEntry{}, false
	}
	return domain.MergeEntry{Outcome: outcome, Path: path}, true
}
