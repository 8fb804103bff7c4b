package renderengine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/avassart/reels-ms-go/internal/logger"
	"github.com/avassart/reels-ms-go/internal/model"
	"github.com/avassart/reels-ms-go/internal/port"
)

// CLIEngine renders compositions by shelling out to the Remotion CLI.
// The engine is deliberately opaque to the rest of the pipeline: it takes a
// composition id and a property bag, and either returns the path of the
// finished mp4 or an error.
type CLIEngine struct {
	cli        string
	projectDir string
	outputDir  string
}

// compile-time check: *CLIEngine must satisfy port.RenderEngine
var _ port.RenderEngine = (*CLIEngine)(nil)

func NewCLIEngine(cli, projectDir, outputDir string) (*CLIEngine, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create render output dir %q: %w", outputDir, err)
	}
	return &CLIEngine{cli: cli, projectDir: projectDir, outputDir: outputDir}, nil
}

func (e *CLIEngine) Render(ctx context.Context, videoID, compositionID string, props model.Props) (string, error) {
	outputPath := filepath.Join(e.outputDir, videoID+".mp4")

	propsJSON, err := json.Marshal(props)
	if err != nil {
		return "", fmt.Errorf("could not marshal props for video #%s: %w", videoID, err)
	}

	args := []string{
		"remotion", "render",
		e.projectDir,
		compositionID,
		outputPath,
		"--props", string(propsJSON),
		"--codec", "h264",
	}

	logger.Infof(ctx, "starting render for video #%s: %s", videoID, compositionID)

	cmd := exec.CommandContext(ctx, e.cli, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("render of composition %q failed: %w: %s", compositionID, err, truncate(string(out), 512))
	}

	if _, err := os.Stat(outputPath); err != nil {
		return "", fmt.Errorf("render of composition %q produced no output file: %w", compositionID, err)
	}

	logger.Infof(ctx, "video rendered successfully: %s", outputPath)
	return outputPath, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
