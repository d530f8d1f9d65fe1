package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/storeadmin/internal/client/client"
	"github.com/dmitrijs2005/storeadmin/internal/client/forms"
	"github.com/dmitrijs2005/storeadmin/internal/client/services"
	"github.com/dmitrijs2005/storeadmin/internal/client/session"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
)

// Session is the part of session.Manager the CLI drives.
type Session interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
	ValidateSession(ctx context.Context) error
	Snapshot() session.Session
}

// ImageResolver turns stored file references into URLs.
type ImageResolver interface {
	Resolve(ctx context.Context, ref, placeholder string) string
}

type App struct {
	session    Session
	products   services.ProductService
	categories services.CategoryService
	profile    services.ProfileService
	media      ImageResolver
	reader     *bufio.Reader
	out        io.Writer
	log        logging.Logger
}

type Deps struct {
	Session    Session
	Products   services.ProductService
	Categories services.CategoryService
	Profile    services.ProfileService
	Media      ImageResolver
	Log        logging.Logger
}

// NewApp reads commands from in and writes everything the user sees to out.
func NewApp(d Deps, in io.Reader, out io.Writer) *App {
	log := d.Log
	if log == nil {
		log = logging.Discard()
	}
	return &App{
		session:    d.Session,
		products:   d.Products,
		categories: d.Categories,
		profile:    d.Profile,
		media:      d.Media,
		reader:     bufio.NewReader(in),
		out:        out,
		log:        log,
	}
}

// Run validates the stored session and serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	if err := a.session.ValidateSession(ctx); err != nil {
		a.log.Error(ctx, "session validation", "error", err)
	}

	a.println("Welcome to the store admin CLI (type 'help' for commands)")
	if s := a.session.Snapshot(); s.Authenticated() {
		a.printf("Signed in as %s\n", s.User.Username)
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated()
}

func (a *App) status() string {
	s := a.session.Snapshot()
	if !s.Authenticated() {
		return ""
	}
	return fmt.Sprintf("(%s)", s.User.Username)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail prints the error banner for a command and returns err so the caller
// can pass it up. Local validation failures always show their own message;
// otherwise the server's message is preferred when useServerMessage is set.
func (a *App) fail(ctx context.Context, err error, fallback string, useServerMessage bool) error {
	msg := fallback

	var ve *forms.ValidationError
	var ae *session.ActionError
	switch {
	case errors.As(err, &ve):
		msg = ve.Message
	case errors.As(err, &ae):
		msg = ae.Message
	case errors.Is(err, services.ErrNoUserID):
		msg = services.MsgNoUserID
	case useServerMessage:
		msg = client.UserMessage(err, fallback)
	}

	a.log.Warn(ctx, "command failed", "message", msg, "error", err)
	a.printf("Error: %s\n", msg)
	return err
}
