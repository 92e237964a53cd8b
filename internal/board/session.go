// Package board holds the presentation state of the notice board: the view
// state machine, the notice form, the local notice list and its rendering.
package board

import (
	"errors"
	"fmt"

	"github.com/spec-kit/notice-board/internal/domain"
)

// ErrInvalidTransition is returned when an action is not allowed in the
// current view.
var ErrInvalidTransition = errors.New("invalid view transition")

// View enumerates the top-level screens.
type View int

const (
	ViewLanding View = iota
	ViewStudent
	ViewAdminLogin
	ViewAdminDashboard
)

func (v View) String() string {
	switch v {
	case ViewLanding:
		return "landing"
	case ViewStudent:
		return "student"
	case ViewAdminLogin:
		return "admin-login"
	case ViewAdminDashboard:
		return "admin-dashboard"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Session tracks the current view and the client-side session token.
// Logging out only forgets the token; nothing is revoked server-side.
type Session struct {
	view    View
	token   string
	admin   *domain.AdminSummary
	preview bool
}

// NewSession starts on the landing view.
func NewSession() *Session {
	return &Session{view: ViewLanding}
}

func (s *Session) View() View          { return s.view }
func (s *Session) Token() string       { return s.token }
func (s *Session) Authenticated() bool { return s.token != "" }
func (s *Session) Previewing() bool    { return s.preview }
func (s *Session) Admin() *domain.AdminSummary {
	if s.admin == nil {
		return nil
	}
	admin := *s.admin
	return &admin
}

// OpenStudentView moves from the landing page to the public board.
func (s *Session) OpenStudentView() error {
	return s.transition(ViewLanding, ViewStudent)
}

// OpenAdminLogin moves from the landing page to the login form.
func (s *Session) OpenAdminLogin() error {
	return s.transition(ViewLanding, ViewAdminLogin)
}

// Back returns to the landing page from the student view or login form.
func (s *Session) Back() error {
	if s.view != ViewStudent && s.view != ViewAdminLogin {
		return s.invalid("back")
	}
	s.view = ViewLanding
	return nil
}

// LoginSucceeded stores the token and enters the dashboard.
func (s *Session) LoginSucceeded(token string, admin domain.AdminSummary) error {
	if s.view != ViewAdminLogin {
		return s.invalid("login")
	}
	s.authenticate(token, admin)
	return nil
}

// Restore re-enters the dashboard with a previously saved token.
func (s *Session) Restore(token string, admin domain.AdminSummary) error {
	if s.view != ViewLanding || token == "" {
		return s.invalid("restore")
	}
	s.authenticate(token, admin)
	return nil
}

// TogglePreview switches the dashboard's student-view overlay on or off.
// The session stays authenticated throughout.
func (s *Session) TogglePreview() error {
	if s.view != ViewAdminDashboard {
		return s.invalid("preview")
	}
	s.preview = !s.preview
	return nil
}

// Logout forgets the token and returns to the landing page.
func (s *Session) Logout() error {
	if s.view != ViewAdminDashboard {
		return s.invalid("logout")
	}
	s.token = ""
	s.admin = nil
	s.preview = false
	s.view = ViewLanding
	return nil
}

func (s *Session) authenticate(token string, admin domain.AdminSummary) {
	s.token = token
	s.admin = &admin
	s.preview = false
	s.view = ViewAdminDashboard
}

func (s *Session) transition(from, to View) error {
	if s.view != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.view, to)
	}
	s.view = to
	return nil
}

func (s *Session) invalid(action string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, s.view)
}
