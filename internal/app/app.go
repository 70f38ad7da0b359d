package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/devforge/internal/config"
	"github.com/vk/devforge/internal/ctxlog"
	"github.com/vk/devforge/internal/devshell"
	"github.com/vk/devforge/internal/index"
	"github.com/vk/devforge/internal/inputs"
	"github.com/vk/devforge/internal/platform"
	"github.com/vk/devforge/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	inputs   inputs.Resolved
	enum     *platform.Enumerator
	index    *index.Index
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and a
// registry populated from the compiled-in catalogs. The configuration is
// loaded, the input registry resolved, and every name reference validated
// eagerly; a failure in any of these is a fatal startup error and panics,
// to be recovered by main.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, catalogs ...registry.Catalog) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	reg := registry.New()
	if len(catalogs) == 0 {
		catalogs = coreCatalogs
	}
	for _, cat := range catalogs {
		cat.Register(reg)
	}
	logger.Debug("All catalogs registered.", "count", len(catalogs))

	resolved, err := inputs.Resolve(model.Inputs)
	if err != nil {
		panic(fmt.Errorf("failed to resolve input registry: %w", err))
	}
	logger.Debug("Input registry resolved.", "inputs", len(resolved))

	enum, err := platform.NewEnumerator(model.Platforms)
	if err != nil {
		panic(err)
	}
	logger.Debug("Platform enumeration constructed.", "platforms", enum.Len())

	if err := reg.Validate(ctx, model, enum, devshell.Roles()); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		inputs:   resolved,
		enum:     enum,
		index:    index.New(reg),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Inputs returns the resolved input set. This is primarily for testing.
func (a *App) Inputs() inputs.Resolved {
	return a.inputs
}

// Enumerator returns the platform enumeration. This is primarily for testing.
func (a *App) Enumerator() *platform.Enumerator {
	return a.enum
}
