package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/dmitrijs2005/storeadmin/internal/client/services"
	"github.com/dmitrijs2005/storeadmin/internal/client/session"
	"github.com/stretchr/testify/assert"
)

// ------------ fakes ------------

type fakeSession struct {
	snap session.Session

	loginErr, registerErr, logoutErr, validateErr error

	loginCalls, registerCalls, logoutCalls, validateCalls int

	lastEmail, lastPassword, lastUsername string
}

func signedIn(username string) *fakeSession {
	return &fakeSession{snap: session.Session{
		Token: "tok",
		User:  &models.User{ID: "u1", Username: username, Email: username + "@example.com"},
	}}
}

func (f *fakeSession) Login(_ context.Context, email, password string) error {
	f.loginCalls++
	f.lastEmail, f.lastPassword = email, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.snap = session.Session{Token: "tok", User: &models.User{ID: "u1", Username: "alice", Email: email}}
	return nil
}

func (f *fakeSession) Register(_ context.Context, username, email, password string) error {
	f.registerCalls++
	f.lastUsername, f.lastEmail, f.lastPassword = username, email, password
	return f.registerErr
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalls++
	f.snap = session.Session{}
	return f.logoutErr
}

func (f *fakeSession) ValidateSession(context.Context) error {
	f.validateCalls++
	return f.validateErr
}

func (f *fakeSession) Snapshot() session.Session { return f.snap }

type fakeProducts struct {
	list    []models.Product
	listErr error
	get     *models.Product
	getErr  error
	saved   *models.Product
	saveErr error
	delErr  error

	calls  []string
	lastID string
	lastIn models.ProductInput
}

func (f *fakeProducts) List(context.Context) ([]models.Product, error) {
	f.calls = append(f.calls, "List")
	return f.list, f.listErr
}

func (f *fakeProducts) Get(_ context.Context, id string) (*models.Product, error) {
	f.calls = append(f.calls, "Get")
	f.lastID = id
	return f.get, f.getErr
}

func (f *fakeProducts) Create(_ context.Context, in models.ProductInput) (*models.Product, error) {
	f.calls = append(f.calls, "Create")
	f.lastIn = in
	return f.saved, f.saveErr
}

func (f *fakeProducts) Update(_ context.Context, id string, in models.ProductInput) (*models.Product, error) {
	f.calls = append(f.calls, "Update")
	f.lastID, f.lastIn = id, in
	return f.saved, f.saveErr
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "Delete")
	f.lastID = id
	return f.delErr
}

type fakeCategories struct {
	list    []models.Category
	listErr error
	saved   *models.Category
	saveErr error
	delErr  error

	calls  []string
	lastID string
	lastIn models.CategoryInput
}

func (f *fakeCategories) List(context.Context) ([]models.Category, error) {
	f.calls = append(f.calls, "List")
	return f.list, f.listErr
}

func (f *fakeCategories) Get(_ context.Context, id string) (*models.Category, error) {
	f.calls = append(f.calls, "Get")
	f.lastID = id
	return f.saved, f.saveErr
}

func (f *fakeCategories) Create(_ context.Context, in models.CategoryInput) (*models.Category, error) {
	f.calls = append(f.calls, "Create")
	f.lastIn = in
	return f.saved, f.saveErr
}

func (f *fakeCategories) Update(_ context.Context, id string, in models.CategoryInput) (*models.Category, error) {
	f.calls = append(f.calls, "Update")
	f.lastID, f.lastIn = id, in
	return f.saved, f.saveErr
}

func (f *fakeCategories) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "Delete")
	f.lastID = id
	return f.delErr
}

type fakeProfile struct {
	loaded    *models.User
	loadErr   error
	updated   *models.User
	updateErr error

	updateCalls int
	lastIn      models.ProfileInput
}

func (f *fakeProfile) Load(context.Context) (*models.User, error) { return f.loaded, f.loadErr }

func (f *fakeProfile) Update(_ context.Context, in models.ProfileInput) (*models.User, error) {
	f.updateCalls++
	f.lastIn = in
	return f.updated, f.updateErr
}

type fakeMedia struct{}

func (fakeMedia) Resolve(_ context.Context, ref, placeholder string) string {
	if ref == "" {
		return placeholder
	}
	return "http://files/" + ref
}

var (
	_ services.ProductService  = (*fakeProducts)(nil)
	_ services.CategoryService = (*fakeCategories)(nil)
	_ services.ProfileService  = (*fakeProfile)(nil)
	_ execIface                = (*App)(nil)
)

// ------------ helpers ------------

type testDeps struct {
	session    Session
	products   *fakeProducts
	categories *fakeCategories
	profile    *fakeProfile
}

// newTestApp builds an App reading the given lines. Passwords are read from
// the same input because stdin is treated as not a terminal.
func newTestApp(t *testing.T, d testDeps, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()

	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	if d.session == nil {
		d.session = signedIn("alice")
	}
	if d.products == nil {
		d.products = &fakeProducts{}
	}
	if d.categories == nil {
		d.categories = &fakeCategories{}
	}
	if d.profile == nil {
		d.profile = &fakeProfile{}
	}

	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}
	out := &bytes.Buffer{}
	app := NewApp(Deps{
		Session:    d.session,
		Products:   d.products,
		Categories: d.categories,
		Profile:    d.profile,
		Media:      fakeMedia{},
	}, strings.NewReader(input), out)
	return app, out
}

// ------------ tests ------------

func TestRun_ValidatesSessionBeforePrompt(t *testing.T) {
	s := signedIn("alice")
	app, out := newTestApp(t, testDeps{session: s}, "exit")

	app.Run(context.Background())

	assert.Equal(t, 1, s.validateCalls)
	assert.Contains(t, out.String(), "Signed in as alice")
	assert.Contains(t, out.String(), "store (alice)> ")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRun_AnonymousPrompt(t *testing.T) {
	s := &fakeSession{}
	app, out := newTestApp(t, testDeps{session: s}, "help")

	app.Run(context.Background())

	assert.Contains(t, out.String(), "store> ")
	assert.Contains(t, out.String(), helpAnonymous)
}

func TestStatus(t *testing.T) {
	app, _ := newTestApp(t, testDeps{session: signedIn("bob")})
	assert.Equal(t, "(bob)", app.status())

	app, _ = newTestApp(t, testDeps{session: &fakeSession{}})
	assert.Equal(t, "", app.status())
}
