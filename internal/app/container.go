// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/runoshun/git-whatdo/internal/domain"
	"github.com/runoshun/git-whatdo/internal/infra/config"
	"github.com/runoshun/git-whatdo/internal/infra/git"
	"github.com/runoshun/git-whatdo/internal/infra/logging"
	"github.com/runoshun/git-whatdo/internal/infra/yamlstore"
	"github.com/runoshun/git-whatdo/internal/usecase"
)

// Paths holds the filesystem locations the application works with.
type Paths struct {
	RepoRoot     string // Root directory of the git repository
	GitDir       string // Path to the .git directory
	WhatdoDir    string // Path to .git/whatdo
	DocumentPath string // Path to WHATDO.yaml
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store        domain.DocumentStore
	VCS          domain.VCS
	ConfigLoader domain.ConfigLoader
	Logger       domain.Logger

	// Configuration
	Config *domain.Config
	Paths  Paths
}

// New creates a new Container by detecting the git repository from the given
// directory.
func New(dir string) (*Container, error) {
	gitClient, err := git.NewClient(dir)
	if err != nil {
		return nil, err
	}

	paths := Paths{
		RepoRoot:     gitClient.RepoRoot(),
		GitDir:       gitClient.GitDir(),
		WhatdoDir:    domain.WhatdoDir(gitClient.GitDir()),
		DocumentPath: domain.DocumentPath(gitClient.RepoRoot()),
	}

	configLoader := config.NewLoader(paths.WhatdoDir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}
	gitClient.Configure(cfg.Branch)

	logger := logging.New(paths.WhatdoDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Store:        yamlstore.New(paths.DocumentPath),
		VCS:          gitClient,
		ConfigLoader: configLoader,
		Logger:       logger,
		Config:       cfg,
		Paths:        paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(paths Paths, store domain.DocumentStore, vcs domain.VCS, configLoader domain.ConfigLoader, logger domain.Logger) *Container {
	return &Container{
		Store:        store,
		VCS:          vcs,
		ConfigLoader: configLoader,
		Logger:       logger,
		Paths:        paths,
	}
}

// UseCase factory methods

// InitRepoUseCase returns a new InitRepo use case.
func (c *Container) InitRepoUseCase() *usecase.InitRepo {
	return usecase.NewInitRepo(c.Store)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.Logger)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Store)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// NextTaskUseCase returns a new NextTask use case.
func (c *Container) NextTaskUseCase() *usecase.NextTask {
	return usecase.NewNextTask(c.Store)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store, c.Logger)
}

// EditQueueUseCase returns a new EditQueue use case.
func (c *Container) EditQueueUseCase() *usecase.EditQueue {
	return usecase.NewEditQueue(c.Store)
}

// StartTaskUseCase returns a new StartTask use case.
func (c *Container) StartTaskUseCase() *usecase.StartTask {
	return usecase.NewStartTask(c.Store, c.VCS, c.ConfigLoader, c.Logger)
}

// ResolveTaskUseCase returns a new ResolveTask use case.
func (c *Container) ResolveTaskUseCase() *usecase.ResolveTask {
	return usecase.NewResolveTask(c.Store, c.VCS, c.FinishTaskUseCase(), c.Logger)
}

// FinishTaskUseCase returns a new FinishTask use case.
func (c *Container) FinishTaskUseCase() *usecase.FinishTask {
	return usecase.NewFinishTask(c.Store, c.VCS, c.Logger)
}

// StatusUseCase returns a new Status use case.
func (c *Container) StatusUseCase() *usecase.Status {
	return usecase.NewStatus(c.Store, c.VCS)
}
