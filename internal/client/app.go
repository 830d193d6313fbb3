package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-user-lists/internal/adapter"
	"github.com/MKhiriev/go-user-lists/internal/config"
	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/models"
)

// Usage lists the commands understood by App.Run.
const Usage = `commands:
  register                      create the account given by -u and -pw
  login                         print a token for -u and -pw
  favourites [add|remove <id>]  show or change favourites
  history [add|remove <id>]     show or change history`

type App struct {
	adapter  adapter.ServerAdapter
	username string
	password string
	out      io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:  serverAdapter,
		username: cfg.Username,
		password: cfg.Password,
		out:      out,
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrMissingArgs, Usage)
	}

	switch command := args[0]; command {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case models.Favourites.String(), models.History.String():
		return a.list(ctx, models.ListKind(command), args[1:])
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, command, Usage)
	}
}

func (a *App) register(ctx context.Context) error {
	if a.username == "" || a.password == "" {
		return ErrNoCredentials
	}

	message, err := a.adapter.Register(ctx, models.RegisterRequest{
		Username:  a.username,
		Password:  a.password,
		Password2: a.password,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	_, err = fmt.Fprintln(a.out, message)
	return err
}

func (a *App) login(ctx context.Context) error {
	if err := a.ensureToken(ctx, true); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, a.adapter.Token())
	return err
}

// ensureToken logs in unless a token is already set. force always logs in.
func (a *App) ensureToken(ctx context.Context, force bool) error {
	if !force && a.adapter.Token() != "" {
		return nil
	}
	if a.username == "" || a.password == "" {
		return ErrNoCredentials
	}

	token, err := a.adapter.Login(ctx, models.Credentials{Username: a.username, Password: a.password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.logger.Debug().Str("user_id", token.UserID).Msg("logged in")
	return nil
}

func (a *App) list(ctx context.Context, kind models.ListKind, args []string) error {
	if err := a.ensureToken(ctx, false); err != nil {
		return err
	}

	var (
		items []string
		err   error
	)

	switch {
	case len(args) == 0:
		items, err = a.get(ctx, kind)
	case len(args) == 2 && args[0] == "add":
		items, err = a.add(ctx, kind, args[1])
	case len(args) == 2 && args[0] == "remove":
		items, err = a.remove(ctx, kind, args[1])
	default:
		return fmt.Errorf("%w: %s [add|remove <id>]", ErrMissingArgs, kind)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	if items == nil {
		items = []string{}
	}

	return json.NewEncoder(a.out).Encode(items)
}

func (a *App) get(ctx context.Context, kind models.ListKind) ([]string, error) {
	if kind == models.Favourites {
		return a.adapter.Favourites(ctx)
	}
	return a.adapter.History(ctx)
}

func (a *App) add(ctx context.Context, kind models.ListKind, itemID string) ([]string, error) {
	if kind == models.Favourites {
		return a.adapter.AddFavourite(ctx, itemID)
	}
	return a.adapter.AddHistory(ctx, itemID)
}

func (a *App) remove(ctx context.Context, kind models.ListKind, itemID string) ([]string, error) {
	if kind == models.Favourites {
		return a.adapter.RemoveFavourite(ctx, itemID)
	}
	return a.adapter.RemoveHistory(ctx, itemID)
}
