package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/csheth/homescout/internal/tuitest"
)

func TestHomescoutRendersFormAndOfflineBanner(t *testing.T) {
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	historyPath := filepath.Join(t.TempDir(), "history.json")

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{
			binary,
			"-no-alt-screen",
			"-endpoint", "http://127.0.0.1:1",
			"-history", historyPath,
		},
		Dir:    cmdDir,
		Width:  100,
		Height: 32,
		Steps: []tuitest.Step{
			{Delay: 2 * time.Second},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	frame, ok := rec.FinalFrame()
	if !ok {
		t.Fatal("no frames captured")
	}
	for _, want := range []string{"homescout", "Bedrooms", "Bathrooms", "Living area", "Condition", "Nearby schools"} {
		if !strings.Contains(frame.Plain, want) {
			t.Fatalf("final frame missing %q:\n%s", want, frame.Plain)
		}
	}
	if !strings.Contains(frame.Plain, "unreachable") {
		t.Fatalf("expected offline banner against a dead endpoint:\n%s", frame.Plain)
	}
}

func TestHomescoutSampleSubmitShowsEstimate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.Write([]byte(`{"status":"ok"}`))
		case "/predict":
			w.Write([]byte(`{"price":450000,"currency":"USD"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	historyPath := filepath.Join(t.TempDir(), "history.json")

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{
			binary,
			"-no-alt-screen",
			"-endpoint", server.URL,
			"-history", historyPath,
		},
		Dir:    cmdDir,
		Width:  100,
		Height: 32,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			{Input: tuitest.KeyCtrlS},
			{Delay: 200 * time.Millisecond},
			{Input: tuitest.KeyEnter},
			{Delay: 2 * time.Second},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        15 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	frame, ok := rec.FinalFrame()
	if !ok {
		t.Fatal("no frames captured")
	}
	if !strings.Contains(frame.Plain, "$450,000.00") {
		t.Fatalf("expected formatted estimate in final frame:\n%s", frame.Plain)
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	tmp := t.TempDir()
	name := "homescout-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(tmp, name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
