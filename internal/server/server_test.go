package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"qr-kiosk/internal/logger"
)

func setupImages(t *testing.T) (string, []byte) {
	t.Helper()

	dir := t.TempDir()
	content := []byte("\x89PNG\r\n\x1a\nnot-really-a-png-but-bytes-matter")
	if err := os.WriteFile(filepath.Join(dir, "abc123.png"), content, 0644); err != nil {
		t.Fatalf("Failed to create image: %v", err)
	}
	return dir, content
}

func TestDownload_ServesAttachment(t *testing.T) {
	dir, content := setupImages(t)
	s := NewDownloadServer(dir, 5000, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/download/abc123.png", http.NoBody)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !bytes.Equal(rr.Body.Bytes(), content) {
		t.Error("downloaded bytes differ from the file on disk")
	}
	want := `attachment; filename="abc123.png"`
	if got := rr.Header().Get("Content-Disposition"); got != want {
		t.Errorf("expected Content-Disposition %q, got %q", want, got)
	}
}

func TestDownload_NotFound(t *testing.T) {
	dir, _ := setupImages(t)
	if err := os.WriteFile(filepath.Join(filepath.Dir(dir), "secret.txt"), []byte("secret"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	s := NewDownloadServer(dir, 5000, logger.Nop())

	tests := []struct {
		name string
		path string
	}{
		{"missing file", "/download/missing.png"},
		{"parent reference", "/download/.."},
		{"escaped traversal", "/download/..%2Fsecret.txt"},
		{"no filename", "/download/"},
		{"other route", "/abc123.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rr := httptest.NewRecorder()
			s.Handler().ServeHTTP(rr, req)

			if rr.Code != http.StatusNotFound {
				t.Errorf("expected status 404, got %d", rr.Code)
			}
		})
	}
}

func TestDownload_OnlyGet(t *testing.T) {
	dir, _ := setupImages(t)
	s := NewDownloadServer(dir, 5000, logger.Nop())

	req := httptest.NewRequest(http.MethodPost, "/download/abc123.png", http.NoBody)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rr.Code)
	}
}

func TestLauncher_StartsOnce(t *testing.T) {
	dir, content := setupImages(t)
	launcher := NewLauncher(NewDownloadServer(dir, 0, logger.Nop()), logger.Nop())
	defer launcher.Shutdown(context.Background())

	if launcher.Started() {
		t.Fatal("launcher must not start before first use")
	}

	launcher.Start()
	launcher.Start()

	if !launcher.Started() {
		t.Fatal("launcher should report started")
	}

	deadline := time.Now().Add(5 * time.Second)
	for launcher.Server().Addr() == nil {
		if time.Now().After(deadline) {
			t.Fatal("server did not start listening")
		}
		time.Sleep(10 * time.Millisecond)
	}

	_, port, err := net.SplitHostPort(launcher.Server().Addr().String())
	if err != nil {
		t.Fatalf("unexpected listener address: %v", err)
	}
	resp, err := http.Get("http://" + net.JoinHostPort("127.0.0.1", port) + "/download/abc123.png")
	if err != nil {
		t.Fatalf("download request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !bytes.Equal(body, content) {
		t.Error("downloaded bytes differ from the file on disk")
	}
}

func TestLauncher_ShutdownBeforeStart(t *testing.T) {
	launcher := NewLauncher(NewDownloadServer(t.TempDir(), 0, logger.Nop()), logger.Nop())
	launcher.Shutdown(context.Background())

	if launcher.Started() {
		t.Error("shutdown must not start the server")
	}
}

func TestLauncher_ShutdownStopsServing(t *testing.T) {
	dir, _ := setupImages(t)
	launcher := NewLauncher(NewDownloadServer(dir, 0, logger.Nop()), logger.Nop())
	launcher.Start()

	deadline := time.Now().Add(5 * time.Second)
	for launcher.Server().Addr() == nil {
		if time.Now().After(deadline) {
			t.Fatal("server did not start listening")
		}
		time.Sleep(10 * time.Millisecond)
	}
	_, port, err := net.SplitHostPort(launcher.Server().Addr().String())
	if err != nil {
		t.Fatalf("unexpected listener address: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	launcher.Shutdown(ctx)

	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get("http://" + net.JoinHostPort("127.0.0.1", port) + "/download/abc123.png")
	if err == nil {
		resp.Body.Close()
		t.Error("expected the server to refuse connections after shutdown")
	}
}
