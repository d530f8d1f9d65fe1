package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) rec(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	return f.rec("register", nil)
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.rec("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.rec("logout", nil)
}
func (f *fakeExec) Products(_ context.Context, a []string) error      { return f.rec("products", a) }
func (f *fakeExec) Show(_ context.Context, a []string) error          { return f.rec("show", a) }
func (f *fakeExec) AddProduct(context.Context) error                  { return f.rec("addproduct", nil) }
func (f *fakeExec) EditProduct(_ context.Context, a []string) error   { return f.rec("editproduct", a) }
func (f *fakeExec) DeleteProduct(_ context.Context, a []string) error { return f.rec("deleteproduct", a) }
func (f *fakeExec) Categories(context.Context) error                  { return f.rec("categories", nil) }
func (f *fakeExec) AddCategory(context.Context) error                 { return f.rec("addcategory", nil) }
func (f *fakeExec) EditCategory(_ context.Context, a []string) error  { return f.rec("editcategory", a) }
func (f *fakeExec) DeleteCategory(_ context.Context, a []string) error {
	return f.rec("deletecategory", a)
}
func (f *fakeExec) Dashboard(context.Context) error   { return f.rec("dashboard", nil) }
func (f *fakeExec) Featured(context.Context) error    { return f.rec("featured", nil) }
func (f *fakeExec) Profile(context.Context) error     { return f.rec("profile", nil) }
func (f *fakeExec) EditProfile(context.Context) error { return f.rec("editprofile", nil) }

func runLines(exec *fakeExec, lines ...string) string {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	status := func() string {
		if exec.loggedIn {
			return "(alice)"
		}
		return ""
	}
	runREPL(context.Background(), exec, status, r, &out)
	return out.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}

	out := runLines(exec,
		"help",
		"login",
		"help",
		"l -s price-asc",
		"products -q desk",
		"show p1",
		"addproduct",
		"editproduct p1",
		"deleteproduct p1",
		"categories",
		"addcategory",
		"editcategory Office",
		"deletecategory c1",
		"dashboard",
		"featured",
		"profile",
		"editprofile",
		"logout",
		"exit",
	)

	want := []string{
		"login", "products", "products", "show", "addproduct", "editproduct", "deleteproduct",
		"categories", "addcategory", "editcategory", "deletecategory",
		"dashboard", "featured", "profile", "editprofile", "logout",
	}
	assert.Equal(t, want, exec.calls)
	assert.Equal(t, []string{"-s", "price-asc"}, exec.args[1])
	assert.Equal(t, []string{"p1"}, exec.args[3])

	assert.Contains(t, out, helpAnonymous)
	assert.Contains(t, out, helpSignedIn)
	assert.Contains(t, out, "store> ")
	assert.Contains(t, out, "store (alice)> ")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRunREPL_ProtectedCommandsNeedLogin(t *testing.T) {
	exec := &fakeExec{}

	out := runLines(exec, "products", "deleteproduct p1", "profile", "logout", "quit")

	assert.Empty(t, exec.calls)
	assert.Equal(t, 4, strings.Count(out, "Please log in to continue."))
}

func TestRunREPL_UnknownAndBlank(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	out := runLines(exec, "", "   ", "foobar", "exit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Unknown command: foobar")
}

func TestRunREPL_EOFEndsLoop(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	runLines(exec, "dashboard")

	require.Equal(t, []string{"dashboard"}, exec.calls)
}
