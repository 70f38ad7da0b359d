package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/devforge/internal/ctxlog"
	"github.com/vk/devforge/internal/derivation"
	"github.com/vk/devforge/internal/devshell"
	"github.com/vk/devforge/internal/engine"
	"github.com/vk/devforge/internal/output"
	"github.com/vk/devforge/internal/overlay"
	"github.com/vk/devforge/internal/platform"
)

// Run executes the requested operation based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", appConfig.Command)

	switch appConfig.Command {
	case CommandBuild:
		var eng engine.Engine
		if appConfig.BuilderCmd != "" {
			eng = engine.NewExecEngine(appConfig.BuilderCmd, a.outW, a.outW)
		} else {
			eng = engine.NewPrintEngine(a.outW)
		}
		return a.Build(ctx, appConfig.Platform, eng)

	case CommandShell:
		desc, err := a.Shell(ctx, appConfig.Platform)
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.outW, string(b))
		return err

	case CommandEval:
		set, err := a.Eval(ctx, appConfig.WorkerCount)
		if err != nil {
			return err
		}
		b, err := set.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.outW, string(b))
		return err

	default:
		return fmt.Errorf("unknown command %q", appConfig.Command)
	}
}

// selectPlatform maps an empty request to the current host platform and
// validates the result against the enumeration.
func (a *App) selectPlatform(name string) (platform.Platform, error) {
	if name == "" {
		current, err := platform.Current()
		if err != nil {
			return "", err
		}
		name = string(current)
	}
	return a.enum.Resolve(name)
}

// Build resolves the default package derivation for the selected platform
// and hands it to the build engine. Engine failures are returned verbatim.
func (a *App) Build(ctx context.Context, platformName string, eng engine.Engine) error {
	p, err := a.selectPlatform(platformName)
	if err != nil {
		return err
	}

	drv, err := derivation.Build(a.index.Context(p), a.model.Package)
	if err != nil {
		return err
	}

	a.logger.Info("🚀 Handing derivation to the build engine.", "system", p, "name", drv.Name)
	if err := eng.Realize(ctx, drv); err != nil {
		return err
	}
	a.logger.Info("🏁 Build engine finished.", "system", p)
	return nil
}

// Shell resolves the development shell descriptor for the selected platform.
func (a *App) Shell(ctx context.Context, platformName string) (*devshell.Descriptor, error) {
	p, err := a.selectPlatform(platformName)
	if err != nil {
		return nil, err
	}
	return devshell.Compose(a.index.Context(p), a.model.DevShell)
}

// Eval resolves the full output set: per-platform outputs for every
// enumerated platform plus the published overlay entry. The two halves are
// resolved independently and combined here.
func (a *App) Eval(ctx context.Context, workers int) (*output.Set, error) {
	perPlatform, err := output.Resolve(ctx, a.enum, a.index, a.model, workers)
	if err != nil {
		return nil, err
	}
	name, fn := overlay.Publish(a.model.Overlay, a.model.Package)
	return output.Combine(perPlatform, name, fn), nil
}
