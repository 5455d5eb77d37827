package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"
)

// bridgeMissingExit is the exit code the embedded Python bridges use to
// signal that their OCR package is not importable, distinguishing "engine
// not installed" from "recognition raised".
const bridgeMissingExit = 3

// pythonBridge shells out to an embedded Python snippet for engines that
// have no Go bindings. The snippet receives a temporary PNG path as argv[1]
// and must print a JSON array of {"text": ..., "confidence": ...} objects
// on stdout, in reading order.
type pythonBridge struct {
	name   string
	script string
}

// available reports whether python3 exists and the engine package imports.
func (b *pythonBridge) available(probe string) bool {
	python, err := exec.LookPath("python3")
	if err != nil {
		return false
	}
	return exec.Command(python, "-c", probe).Run() == nil
}

// recognize encodes the image to a uniquely named temp PNG, runs the bridge
// on it, and parses the JSON line list. The temp file is removed before
// returning; unique naming makes concurrent calls collision-free.
func (b *pythonBridge) recognize(ctx context.Context, img image.Image) ([]Line, error) {
	python, err := exec.LookPath("python3")
	if err != nil {
		return nil, fmt.Errorf("%w: python3 not found in PATH", ErrEngineUnavailable)
	}

	tmp, err := os.CreateTemp("", "stripocr-"+b.name+"-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp image: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write temp image: %w", err)
	}

	cmd := exec.CommandContext(ctx, python, "-c", b.script, tmpPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == bridgeMissingExit {
			return nil, fmt.Errorf("%w: %s", ErrEngineUnavailable, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("%s failed: %w (stderr: %s)", b.name, err, strings.TrimSpace(stderr.String()))
	}

	return parseBridgeOutput(stdout.Bytes())
}

// parseBridgeOutput decodes the bridge's JSON line array.
func parseBridgeOutput(data []byte) ([]Line, error) {
	var lines []Line
	if err := json.Unmarshal(bytes.TrimSpace(data), &lines); err != nil {
		return nil, fmt.Errorf("failed to parse bridge output: %w", err)
	}
	return lines, nil
}
