package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"svnbranch/internal/config"
	"svnbranch/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version        kong.VersionFlag `help:"Show version information"`
	Chdir          string           `help:"Run as if svnbranch was started in this directory" short:"C" type:"existingdir" placeholder:"DIR"`
	Debug          bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile      string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles    int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	NonInteractive bool             `help:"Never prompt: confirmations are declined and missing input fails" env:"SVNBRANCH_NON_INTERACTIVE"`

	CreateUserBranch    CreateUserBranchCmd    `cmd:"createuserbranch" help:"Create a user branch from the current branch and switch to it"`
	CreateReleaseBranch CreateReleaseBranchCmd `cmd:"createreleasebranch" help:"Create a release branch from trunk or a release branch and switch to it"`
	SetBranch           SetBranchCmd           `cmd:"setbranch" help:"Switch the workspace to another branch of the same project"`
	ListWorkingCopyInfo ListWorkingCopyInfoCmd `cmd:"listworkingcopyinfo" help:"Show the branch metadata of a workspace"`
	ListUserBranches    ListUserBranchesCmd    `cmd:"listuserbranches" help:"List the user branches of the project"`
	ListBranches        ListBranchesCmd        `cmd:"listbranches" help:"List the user or release branches of the project"`
	Synchronize         SynchronizeCmd         `cmd:"synchronize" help:"Merge new source changes into the workspace"`
	Promote             PromoteCmd             `cmd:"promote" help:"Merge the branch into its source, commit and switch to the source"`
	RevertToSource      RevertToSourceCmd      `cmd:"reverttosource" help:"Make paths match the source at the last merge revision"`
	DeleteUserBranch    DeleteUserBranchCmd    `cmd:"deleteuserbranch" help:"Delete a user branch nobody has checked out"`
	History             HistoryCmd             `cmd:"history" help:"Show recent lifecycle operations run from this machine"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing, applies settings and binds the Container for commands
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("SVNBRANCH_MAX_LOG_FILES"); !hasEnv {
				c.MaxLogFiles = config.IntValue(c.settings.MaxLogFiles, c.MaxLogFiles)
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("SVNBRANCH_DEBUG"); !hasEnv {
				c.Debug = config.BoolValue(c.settings.Debug, false)
			}
		}
		if !c.NonInteractive {
			if _, hasEnv := os.LookupEnv("SVNBRANCH_NON_INTERACTIVE"); !hasEnv {
				c.NonInteractive = config.BoolValue(c.settings.NonInteractive, false)
			}
		}
	}

	if err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	if c.Chdir != "" {
		if err := os.Chdir(c.Chdir); err != nil {
			return fmt.Errorf("failed to change directory: %w", err)
		}
		logging.Logger.Debug("Changed working directory", "dir", c.Chdir)
	}

	// Prompts need a terminal on both ends
	interactive := !c.NonInteractive &&
		isatty.IsTerminal(os.Stdin.Fd()) &&
		isatty.IsTerminal(os.Stdout.Fd())

	// Container is created after logging so the gorm logger has somewhere to write
	container, err := NewContainer(c.settings, interactive)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	kctx.Bind(container)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
