package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"svnbranch/internal/domain"
	"svnbranch/internal/services"
	"svnbranch/internal/theme"
)

// infoLabelWidth fits the longest label, "Branch Point Revision:"
const infoLabelWidth = 22

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", theme.LabelStyle.Render(fmt.Sprintf("%-*s", infoLabelWidth, label+":")), value)
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintln(w, theme.WarningStyle.Render("Warning: "+warning))
	}
}

// renderWorkingCopyInfo prints the fixed information block of a workspace
func renderWorkingCopyInfo(w io.Writer, info *services.WorkingCopyInfo) {
	printField(w, "Branch Name", theme.BranchStyle.Render(info.BranchName))
	if info.BranchSubpath != "" {
		printField(w, "Branch Subpath", info.BranchSubpath)
	}
	printField(w, "Project Name", info.ProjectName)
	printField(w, "Branch Type", info.BranchType.Keyword())
	printField(w, "Source", info.Source)
	printField(w, "Branch Point Revision", domain.FormatRevision(info.BranchPointRevision))
	printField(w, "Last Merge Revision", domain.FormatRevision(info.LastMergeRevision))
}

func renderCreate(w io.Writer, result *services.CreateBranchResult) {
	fmt.Fprintf(w, "Created %s %s in r%d\n",
		result.Metadata.BranchType, theme.BranchStyle.Render(result.BranchPath), result.Revision)
	fmt.Fprintf(w, "Copied from %s@%d\n", result.SourcePath, result.SourceRevision)
	if result.SwitchedPath != "" {
		fmt.Fprintf(w, "Switched %s to %s\n", result.SwitchedPath, result.BranchPath)
	}
}

func renderPaths(w io.Writer, code string, style lipgloss.Style, paths []string) {
	for _, p := range paths {
		fmt.Fprintf(w, "%s %s\n", style.Render(code), p)
	}
}

// renderSynchronize prints merge outcomes grouped by category, conflicts last
func renderSynchronize(w io.Writer, result *services.SynchronizeResult) {
	if result.UpToDate {
		fmt.Fprintf(w, "%s is up to date with %s@%d\n",
			theme.BranchStyle.Render(result.BranchPath), result.SourcePath, result.FromRevision)
		return
	}

	fmt.Fprintln(w, theme.HeadingStyle.Render(fmt.Sprintf("Merged %s r%d through r%d into %s",
		result.SourcePath, result.FromRevision+1, result.ToRevision, result.BranchPath)))
	renderPaths(w, "A ", theme.AddedStyle, result.Added)
	renderPaths(w, "D ", theme.DeletedStyle, result.Deleted)
	renderPaths(w, "U ", theme.ModifiedStyle, result.Modified)
	renderPaths(w, " U", theme.ModifiedStyle, result.PropertyChanged)
	renderPaths(w, "C ", theme.ConflictStyle, result.Conflicted)
	renderPaths(w, " C", theme.ConflictStyle, result.PropConflicted)
	renderPaths(w, "  ", theme.ConflictStyle, prefixed("tree conflict: ", result.TreeConflicted))

	if len(result.Skipped) > 0 {
		lines := []string{"Skipped (missing locally):"}
		lines = append(lines, indent(result.Skipped)...)
		fmt.Fprintln(w, theme.WarningBoxStyle.Render(strings.Join(lines, "\n")))
	}
	if len(result.SkippedChanged) > 0 {
		lines := []string{"The source changed these paths but they are missing locally.", "Reconcile them by hand:"}
		lines = append(lines, indent(result.SkippedChanged)...)
		fmt.Fprintln(w, theme.WarningBoxStyle.Render(strings.Join(lines, "\n")))
	}

	if n := result.ConflictCount(); n > 0 {
		fmt.Fprintln(w, theme.ConflictStyle.Render(fmt.Sprintf(
			"Conflicts: %d (text %d, property %d, tree %d)",
			n, len(result.Conflicted), len(result.PropConflicted), len(result.TreeConflicted))))
		if result.MetadataConflict {
			fmt.Fprintf(w, "The branch metadata file %s has conflicts\n", domain.MetadataFileName)
		}
	}
}

func renderPromote(w io.Writer, result *services.PromoteResult) {
	if result.NothingToPromote {
		fmt.Fprintf(w, "Nothing to promote: %s matches %s@%d\n",
			theme.BranchStyle.Render(result.BranchPath), result.SourcePath, result.SourceRevision)
		fmt.Fprintf(w, "Workspace now tracks %s\n", result.SourcePath)
		return
	}
	renderPaths(w, "A ", theme.AddedStyle, result.Added)
	renderPaths(w, "D ", theme.DeletedStyle, result.Deleted)
	renderPaths(w, "M ", theme.ModifiedStyle, result.Modified)
	if result.StrippedMergeInfo {
		fmt.Fprintln(w, theme.MutedStyle.Render("Removed merge tracking from the source root"))
	}
	fmt.Fprintf(w, "Promoted %s into %s in r%d\n",
		theme.BranchStyle.Render(result.BranchPath), result.SourcePath, result.Revision)
	fmt.Fprintf(w, "Workspace now tracks %s\n", result.SourcePath)
}

func renderRevert(w io.Writer, result *services.RevertToSourceResult) {
	fmt.Fprintln(w, theme.HeadingStyle.Render(fmt.Sprintf("Reverting to %s@%d", result.SourcePath, result.SourceRevision)))
	for _, o := range result.Outcomes {
		style := theme.MutedStyle
		switch o.Action {
		case services.RevertCopied:
			style = theme.AddedStyle
		case services.RevertDeleted:
			style = theme.DeletedStyle
		case services.RevertMerged:
			style = theme.ModifiedStyle
		case services.RevertFailed:
			style = theme.ErrorStyle
		}
		fmt.Fprintf(w, "%s %s\n", style.Render(fmt.Sprintf("%-8s", o.Action)), o.Path)
	}
}

// renderBranches prints a table of branches; unreadable metadata is shown in the problem column
func renderBranches(w io.Writer, branches []services.BranchSummary) {
	if len(branches) == 0 {
		fmt.Fprintln(w, "No branches found.")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Branch", "Source", "Branch Point", "Last Merge", "Problem"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, b := range branches {
		row := []string{b.Name, "", "", "", b.Problem}
		if m := b.Metadata; m != nil {
			row[1] = m.SourceContentPath()
			row[2] = domain.FormatRevision(m.BranchPointRevision)
			row[3] = domain.FormatRevision(m.LastMergeRevision)
		}
		table.Append(row)
	}
	table.Render()
}

func renderHistory(w io.Writer, records []domain.OperationRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No operations recorded yet.")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"When", "Operation", "Branch", "Revision", "Result"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, r := range records {
		result := "ok"
		if !r.Succeeded {
			result = "failed: " + r.Error
		}
		revision := ""
		if r.Revision > 0 {
			revision = r.Revision.String()
		}
		table.Append([]string{
			r.CreatedAt.Local().Format(time.DateTime),
			r.Operation,
			r.BranchPath,
			revision,
			result,
		})
	}
	table.Render()
}

func indent(paths []string) []string {
	return prefixed("  ", paths)
}

func prefixed(prefix string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = prefix + p
	}
	return out
}
