package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/notice-board/internal/board"
	"github.com/spec-kit/notice-board/internal/client"
	"github.com/spec-kit/notice-board/internal/domain"
)

var errNotLoggedIn = errors.New("not logged in, run \"noticectl login\" first")

// savedSession is what survives between invocations after a login.
type savedSession struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
	Admin     domain.AdminSummary `json:"admin"`
}

func loadSession(path string, now time.Time) (*savedSession, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var s savedSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", path, err)
	}
	if s.Token == "" || (!s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)) {
		_ = clearSession(path)
		return nil, nil
	}
	return &s, nil
}

func saveSession(path string, s *savedSession) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func clearSession(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// adminSession restores the dashboard from the saved token.
func (c *cli) adminSession() (*board.Session, *client.Client, error) {
	saved, err := loadSession(c.sessionPath(), c.now())
	if err != nil {
		return nil, nil, err
	}
	if saved == nil {
		return nil, nil, errNotLoggedIn
	}
	session := board.NewSession()
	if err := session.Restore(saved.Token, saved.Admin); err != nil {
		return nil, nil, err
	}
	return session, c.client(session.Token()), nil
}

// checkAuth drops the saved session when the server rejected its token.
func (c *cli) checkAuth(err error) error {
	if err == nil || !client.IsUnauthorized(err) {
		return err
	}
	if clearErr := clearSession(c.sessionPath()); clearErr != nil {
		c.logger.Warn("failed to clear session", zap.Error(clearErr))
	}
	return fmt.Errorf("session rejected, run \"noticectl login\" again: %w", err)
}
