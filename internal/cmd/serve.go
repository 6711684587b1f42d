package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/pomo/internal/config"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/paths"
	"github.com/renato0307/pomo/internal/server/httpapi"
	"github.com/renato0307/pomo/internal/server/sshui"
	"github.com/renato0307/pomo/internal/telemetry"
	"github.com/renato0307/pomo/internal/ui"
)

// ServeCmd runs the HTTP API and, when configured, the SSH dashboard
type ServeCmd struct {
	HTTPAddr string `help:"HTTP API listen address (overrides $POMO_HTTP_ADDR)" name:"http-addr"`
	SSHAddr  string `help:"SSH dashboard listen address, empty disables SSH (overrides $POMO_SSH_ADDR)" name:"ssh-addr"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return err
	}
	httpAddr := s.resolveAddr(s.HTTPAddr, cfg.HTTPAddr, "POMO_HTTP_ADDR", cli.settings, func(st *config.Settings) string { return st.HTTPAddr })
	sshAddr := s.resolveAddr(s.SSHAddr, cfg.SSHAddr, "POMO_SSH_ADDR", cli.settings, func(st *config.Settings) string { return st.SSHAddr })
	if httpAddr == "" && sshAddr == "" {
		return errors.New("nothing to serve: set --http-addr or --ssh-addr")
	}

	if err := cli.Container.AcquireLock(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "pomo")
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logging.Logger.Warn("Failed to flush traces", "error", err)
		}
	}()

	c := cli.Container
	g, gctx := errgroup.WithContext(ctx)

	if httpAddr != "" {
		apiServer := httpapi.NewServer(httpapi.Deps{
			DefaultUser: cfg.DefaultUser,
			Events:      c.Hub,
			Pomodoro:    c.PomodoroService,
			Stats:       c.StatsService,
			Transfer:    c.TransferService,
		})
		fmt.Printf("HTTP API listening on %s\n", httpAddr)
		g.Go(func() error {
			return apiServer.ListenAndServe(gctx, httpAddr)
		})
	}

	if sshAddr != "" {
		hostKeyPath := cfg.HostKeyPath
		if hostKeyPath == "" {
			hostKeyPath = paths.GetHostKeyPath()
		}
		sshServer, err := sshui.NewServer(sshui.Config{
			Address:            sshAddr,
			AuthorizedKeysPath: paths.ExpandPath(cfg.AuthorizedKeys),
			HostKeyPath:        paths.ExpandPath(hostKeyPath),
			Model: ui.ModelConfig{
				BreakMinutes: cli.breakMinutes(),
				Clock:        c.Clock,
				Keys:         cli.keyBindings(),
				Language:     cli.Language(),
				Pomodoro:     c.PomodoroService,
				Stats:        c.StatsService,
				WorkMinutes:  cli.workMinutes(),
			},
		})
		if err != nil {
			return err
		}
		fmt.Printf("SSH dashboard listening on %s\n", sshAddr)
		g.Go(func() error {
			return sshServer.ListenAndServe(gctx)
		})
	}

	logging.Logger.Info("Serving", "http_addr", httpAddr, "ssh_addr", sshAddr, "default_user", cfg.DefaultUser)
	if err := g.Wait(); err != nil {
		return err
	}
	logging.Logger.Info("Server stopped")
	return nil
}

// resolveAddr applies flag > env > settings.json > env default
func (s *ServeCmd) resolveAddr(flag, fromEnv, envName string, settings *config.Settings, fromSettings func(*config.Settings) string) string {
	if flag != "" {
		return flag
	}
	if _, hasEnv := os.LookupEnv(envName); !hasEnv && settings != nil {
		if addr := fromSettings(settings); addr != "" {
			return addr
		}
	}
	return fromEnv
}
