// Package cli implements the interactive terminal client. Commands are thin
// consumers of the session manager and the API gateway: they hold form state,
// fire one request, and print the normalized result. All policy (validation,
// credential handling, error shaping) lives below this layer.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/inkpress/inkcli/internal/client/api"
	"github.com/inkpress/inkcli/internal/client/config"
	"github.com/inkpress/inkcli/internal/client/session"
	"github.com/inkpress/inkcli/internal/client/storage"
	"github.com/inkpress/inkcli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Manager
	store   *storage.SQLiteStore
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open credentials store: %w", err)
	}

	sess := session.NewManager(store, log)

	a := &App{
		config:  cfg,
		session: sess,
		store:   store,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
	}

	a.api = api.New(cfg.APIBaseURL, sess, log,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithOnSessionExpired(func() {
			fmt.Fprintln(a.out, "Session expired. Please login again.")
		}),
	)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close credentials store", "error", err)
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.CheckAuthStatus(ctx).IsAuthenticated
}

// printErr renders a normalized API error for the user. Callers retry by
// re-running the command; nothing is retried automatically.
func (a *App) printErr(err error) {
	fmt.Fprintf(a.out, "Error: %s\n", err.Error())
}
