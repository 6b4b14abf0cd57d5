package logger_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/RastaKolobar/pyre-check/internal/adapters/logger"
)

func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done
	os.Stderr = originalStderr
	return output, r.Close()
}

func TestLogger_Info(t *testing.T) {
	output, err := captureStderr(func() {
		logger.New().Info("some message", "key", "value")
	})
	if err != nil {
		t.Fatalf("failed to capture stderr: %v", err)
	}
	if !strings.Contains(output, "some message") || !strings.Contains(output, "INFO") {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	output, err := captureStderr(func() {
		logger.New().Error("operation failed", "error", os.ErrPermission)
	})
	if err != nil {
		t.Fatalf("failed to capture stderr: %v", err)
	}
	if !strings.Contains(output, "permission denied") || !strings.Contains(output, "ERROR") {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	output, err := captureStderr(func() {
		logger.New().Warn("some warning")
	})
	if err != nil {
		t.Fatalf("failed to capture stderr: %v", err)
	}
	if !strings.Contains(output, "some warning") || !strings.Contains(output, "WARN") {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestLogger_With_PrependsArgsToSubsequentRecords(t *testing.T) {
	output, err := captureStderr(func() {
		logger.New().With("module", "m").Info("recheck complete")
	})
	if err != nil {
		t.Fatalf("failed to capture stderr: %v", err)
	}
	if !strings.Contains(output, "module=m") {
		t.Errorf("expected output to carry the With arg, got: %s", output)
	}
}

func TestLogger_SetOutput_RedirectsSubsequentRecords(t *testing.T) {
	var buf strings.Builder
	lg := logger.New()
	lg.SetOutput(&buf)
	lg.Info("redirected")

	if !strings.Contains(buf.String(), "redirected") {
		t.Errorf("expected redirected output to contain log line, got: %s", buf.String())
	}
}
