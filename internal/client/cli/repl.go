package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Products(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context, args []string) error
	DeleteProduct(ctx context.Context, args []string) error

	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	EditCategory(ctx context.Context, args []string) error
	DeleteCategory(ctx context.Context, args []string) error

	Dashboard(ctx context.Context) error
	Featured(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpSignedIn  = "Available commands: products|l [-q text] [-c category] [-s name|price-asc|price-desc|newest], " +
		"show <id>, addproduct, editproduct <id>, deleteproduct <id>, " +
		"categories, addcategory, editcategory <name|id>, deletecategory <name|id>, " +
		"dashboard, featured, profile, editprofile, logout, exit"
)

// protected lists the commands that need a signed-in user.
var protected = map[string]bool{
	"products": true, "l": true, "show": true,
	"addproduct": true, "editproduct": true, "deleteproduct": true,
	"categories": true, "addcategory": true, "editcategory": true, "deletecategory": true,
	"dashboard": true, "featured": true, "profile": true, "editprofile": true,
	"logout": true,
}

// runREPL reads commands from reader until "exit"/"quit" or end of input.
// The prompt is "store> " or "store (<user>)> " depending on statusFn.
//
// Errors returned by command handlers are ignored here; handlers print
// their own banners so one failing command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if status := statusFn(); status != "" {
			fmt.Fprintf(w, "store %s> ", status)
		} else {
			fmt.Fprint(w, "store> ")
		}

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if protected[cmd] && !a.isLoggedIn() {
			fmt.Fprintln(w, "Please log in to continue.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpSignedIn)
			} else {
				fmt.Fprintln(w, helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "products", "l":
			_ = a.Products(ctx, args)
		case "show":
			_ = a.Show(ctx, args)
		case "addproduct":
			_ = a.AddProduct(ctx)
		case "editproduct":
			_ = a.EditProduct(ctx, args)
		case "deleteproduct":
			_ = a.DeleteProduct(ctx, args)

		case "categories":
			_ = a.Categories(ctx)
		case "addcategory":
			_ = a.AddCategory(ctx)
		case "editcategory":
			_ = a.EditCategory(ctx, args)
		case "deletecategory":
			_ = a.DeleteCategory(ctx, args)

		case "dashboard":
			_ = a.Dashboard(ctx)
		case "featured":
			_ = a.Featured(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "editprofile":
			_ = a.EditProfile(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
