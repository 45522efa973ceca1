package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func TestResolveHostKeyPath(t *testing.T) {
	got, err := resolveHostKeyPath("/tmp/key")
	if err != nil || got != "/tmp/key" {
		t.Errorf("resolveHostKeyPath(explicit) = %q, %v", got, err)
	}

	t.Setenv("HOME", "/home/racer")
	got, err = resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath() error: %v", err)
	}
	if want := filepath.Join("/home/racer", ".stadium", "host_key"); got != want {
		t.Errorf("resolveHostKeyPath() = %q, expected %q", got, want)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.server == nil {
		t.Error("server should be built")
	}
}

func TestSessionModelFollowsSession(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}

	ctx, disconnect := context.WithCancel(context.Background())
	m := srv.sessionModel(ctx, "racer", 100, 30)
	if m.raceCtx.Err() != nil {
		t.Fatal("race context should be live while the session is")
	}

	if m.keys.Screenshot.Enabled() {
		t.Error("screenshots should be off for SSH sessions")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.notice != "" {
		t.Errorf("ctrl+s should do nothing, notice = %q", m.notice)
	}

	m, _ = update(t, m, runes("r"))
	disconnect()
	if m.raceCtx.Err() == nil {
		t.Error("disconnecting should cancel the race context, also after a reset")
	}
}
