package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"tmt/internal/config"
	"tmt/internal/mutation"
	"tmt/pkg/logging"
)

// ErrNoChanges is returned by Run when the request asks for nothing.
var ErrNoChanges = errors.New("no changes requested")

// Application is the main application structure that bootstraps and runs tmt
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the configuration, sets up logging and builds the
// services. It never touches the settings store.
func NewApplication(cfg *Config) (*Application, error) {
	runID := slog.String("run", uuid.NewString())

	// Configure logging based on debug flag until the config says otherwise
	appLogLevel := logging.LevelWarn
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, cfg.stderr(), runID)

	var (
		tmtCfg config.TmtConfig
		err    error
	)
	if cfg.ConfigPath != "" {
		tmtCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load tmt configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load tmt configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		tmtCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load tmt configuration")
			return nil, fmt.Errorf("failed to load tmt configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}
	cfg.TmtConfig = &tmtCfg

	if !cfg.Debug {
		level, err := logging.ParseLevel(tmtCfg.LogLevel)
		if err != nil {
			logging.Warn("Bootstrap", "Ignoring log level: %v", err)
			level = logging.LevelWarn
		}
		logging.InitForCLI(level, cfg.stderr(), runID)
	}

	return &Application{
		config:   cfg,
		services: InitializeServices(cfg),
	}, nil
}

// Services exposes the wired services to other commands.
func (a *Application) Services() *Services {
	return a.services
}

// Plan validates the request and returns the mutations to apply.
func (a *Application) Plan() ([]mutation.Mutation, error) {
	tc := *a.config.TmtConfig
	return mutation.Plan(a.config.Request, Preset(tc), tc.TrackedProperties)
}

// NewExecutor resolves the active profile and returns an executor bound to it
// that prints to stdout. A missing profile is fatal: the caller must not
// attempt any write.
func (a *Application) NewExecutor(ctx context.Context) (*mutation.Executor, error) {
	return a.NewExecutorWithOutput(ctx, a.services.Printer)
}

// NewExecutorWithOutput is NewExecutor reporting to out.
func (a *Application) NewExecutorWithOutput(ctx context.Context, out mutation.Output) (*mutation.Executor, error) {
	profile, err := a.services.Applier.ResolveProfile(ctx)
	if err != nil {
		logging.Error("Bootstrap", err, "Profile resolution failed")
		return nil, err
	}
	return mutation.NewExecutor(mutation.ExecutorConfig{
		Store:   a.services.Applier,
		Profile: profile,
		Colors:  a.services.Colors,
		Classes: a.services.Classes,
		Themes:  a.services.Themes,
		Font:    Font(*a.config.TmtConfig),
		Output:  out,
	}), nil
}

// Run plans the request, resolves the profile and applies every mutation.
// Invalid arguments and a missing profile stop it before any write. Failed
// mutations are all applied around and summarized in the returned error.
func (a *Application) Run(ctx context.Context) error {
	plan, err := a.Plan()
	if err != nil {
		return err
	}
	if len(plan) == 0 {
		return ErrNoChanges
	}

	exec, err := a.NewExecutor(ctx)
	if err != nil {
		return err
	}

	report := exec.Run(ctx, plan)
	logging.Debug("Bootstrap", "Applied %d change(s) with %d write(s)", len(report.Outcomes), report.Writes())
	return report.Err()
}
