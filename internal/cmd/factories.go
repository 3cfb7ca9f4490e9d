package cmd

import (
	"fmt"

	adapterprompt "svnbranch/internal/adapters/prompt"
	adapterstorage "svnbranch/internal/adapters/storage"
	adaptersvn "svnbranch/internal/adapters/svn"
	"svnbranch/internal/config"
	"svnbranch/internal/logging"
	"svnbranch/internal/ports"
	"svnbranch/internal/services"
	"svnbranch/version"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	BranchService *services.BranchService

	Interactive bool
	Prompter    ports.Prompter

	// Internal - for cleanup only
	store ports.StateStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings, interactive bool) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	policy, err := config.LoadPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	store, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	repo := adaptersvn.NewClient(adaptersvn.Options{
		Binary:         settings.SvnBinary,
		MuccBinary:     settings.SvnmuccBinary,
		NonInteractive: !interactive,
		Password:       settings.Password,
		Username:       settings.Username,
	})

	var prompter ports.Prompter = adapterprompt.NonInteractive{}
	if interactive {
		prompter = adapterprompt.NewHuhPrompter()
	}

	gate := services.NewPolicyGate(policy, version.Version)
	logging.Logger.Debug("Container initialized",
		"interactive", interactive,
		"policy_projects", policy.Projects(),
		"version", version.Version)

	return &Container{
		BranchService: services.NewBranchService(repo, store, gate, prompter),
		Interactive:   interactive,
		Prompter:      prompter,
		store:         store,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
