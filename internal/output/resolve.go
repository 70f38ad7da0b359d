package output

import (
	"context"
	"sync"

	"github.com/vk/devforge/internal/config"
	"github.com/vk/devforge/internal/ctxlog"
	"github.com/vk/devforge/internal/derivation"
	"github.com/vk/devforge/internal/devshell"
	"github.com/vk/devforge/internal/index"
	"github.com/vk/devforge/internal/platform"
)

// Resolve evaluates the per-platform half of the output set: exactly one
// derivation and one shell descriptor per enumerated platform. Platforms
// are independent, so they are resolved by a bounded pool of workers; the
// result is identical for any worker count. Resolution either completes
// for every platform or fails outright: with the first resolution error
// encountered, or with the context's error when the caller cancels.
func Resolve(ctx context.Context, enum *platform.Enumerator, idx *index.Index, model *config.Model, workers int) (map[platform.Platform]*PlatformOutputs, error) {
	logger := ctxlog.FromContext(ctx)

	if workers < 1 {
		workers = 1
	}
	if n := enum.Len(); workers > n {
		workers = n
	}

	platformChan := make(chan platform.Platform)
	results := make(map[platform.Platform]*PlatformOutputs, enum.Len())

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for workerID := 0; workerID < workers; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for p := range platformChan {
				if workCtx.Err() != nil {
					continue
				}
				logger.Debug("Worker resolving platform.", "workerID", workerID, "platform", p)

				res, err := resolvePlatform(idx.Context(p), model)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					cancel()
					continue
				}
				results[p] = res
				mu.Unlock()
			}
		}(workerID)
	}

	for p := range enum.All() {
		platformChan <- p
	}
	close(platformChan)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	// A cancelled caller context makes the workers skip platforms without
	// recording an error; a partial result must not be returned as success.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Debug("Per-platform resolution complete.", "platforms", len(results))
	return results, nil
}

// resolvePlatform builds both outputs for a single instantiation context.
func resolvePlatform(ictx *index.Context, model *config.Model) (*PlatformOutputs, error) {
	drv, err := derivation.Build(ictx, model.Package)
	if err != nil {
		return nil, err
	}
	shell, err := devshell.Compose(ictx, model.DevShell)
	if err != nil {
		return nil, err
	}
	return &PlatformOutputs{Package: drv, Shell: shell}, nil
}
