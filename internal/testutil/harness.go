package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/devforge/internal/app"
	"github.com/vk/devforge/internal/hcl"
	"github.com/vk/devforge/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a harness run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// RunHarness writes the given HCL configuration files into a temporary
// directory, builds an App against them, and captures log output. Startup
// panics are recovered into HarnessResult.Err. Catalogs default to the
// compiled-in set when none are given.
func RunHarness(t *testing.T, files map[string]string, mutate func(*app.Config), catalogs ...registry.Catalog) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.Config{
		ConfigPath:  tmpDir,
		Command:     app.CommandEval,
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 4,
	}
	if mutate != nil {
		mutate(appConfig)
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hcl.NewLoader(), catalogs...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		App:       testApp,
	}
}
