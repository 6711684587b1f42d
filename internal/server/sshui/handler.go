package sshui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/store"
	"github.com/renato0307/pomo/internal/ui"
)

// sessionModel wraps the dashboard to log the end of an SSH session
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// teaHandler creates a dashboard for each SSH session, scoped to the SSH user's tenant
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, err := s.newModel(sess.User())
	if err != nil {
		logging.Logger.Error("Failed to create dashboard for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	return &sessionModel{
		Model:     model,
		sessionID: sessionID,
		startTime: time.Now(),
	}, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *Server) newModel(user string) (*ui.Model, error) {
	tenant, err := store.NormalizeTenant(user)
	if err != nil {
		return nil, err
	}
	cfg := s.model
	cfg.Tenant = tenant
	return ui.NewModel(cfg)
}

// errorModel displays an error and quits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
