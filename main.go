package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"svnbranch/internal/cmd"
	"svnbranch/internal/config"
	"svnbranch/internal/domain"
	"svnbranch/version"
)

func main() {
	// Load settings from ~/.svnbranch/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("svnbranch"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err = ctx.Run()
	cli.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode separates code freeze cancellations from every other failure
func exitCode(err error) int {
	if domain.IsKind(err, domain.PolicyCancellation) {
		return 2
	}
	return 1
}
