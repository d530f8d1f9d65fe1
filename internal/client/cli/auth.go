package cli

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/client/forms"
	"github.com/dmitrijs2005/storeadmin/internal/common"
)

// Register prompts for username, email, password and its confirmation,
// validates them locally and creates the account. It does not sign in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	f := forms.RegisterForm{
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}
	if err := f.Validate(); err != nil {
		return a.fail(ctx, err, "", false)
	}

	if err := a.session.Register(ctx, f.Username, f.Email, f.Password); err != nil {
		return a.fail(ctx, err, "Registration failed", true)
	}

	a.println("Registration successful. Please log in.")
	return nil
}

// Login prompts for credentials and signs in. On failure the session stays
// anonymous and the server's explanation is shown.
func (a *App) Login(ctx context.Context) error {
	if s := a.session.Snapshot(); s.Authenticated() {
		a.printf("Already signed in as %s\n", s.User.Username)
		return nil
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	f := forms.LoginForm{Email: email, Password: string(password)}
	if err := f.Validate(); err != nil {
		return a.fail(ctx, err, "", false)
	}

	if err := a.session.Login(ctx, f.Email, f.Password); err != nil {
		return a.fail(ctx, err, "Login failed", true)
	}

	s := a.session.Snapshot()
	if s.User != nil {
		a.printf("Welcome, %s!\n", s.User.Username)
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout", "error", err)
	}
	a.println("Logged out")
	return nil
}
