package forms

import "strings"

const (
	MsgPasswordMismatch = "Passwords do not match"
	MsgPasswordTooShort = "Password must be at least 6 characters long"
	MsgInvalidEmail     = "Please enter a valid email address"
	MsgAllRequired      = "All fields are required"
	MsgLoginRequired    = "Email and password are required"
)

type RegisterForm struct {
	Username        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"min=6"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

var registerRules = []rule{
	{field: "ConfirmPassword", tag: "eqfield", message: MsgPasswordMismatch},
	{field: "Password", tag: "min", message: MsgPasswordTooShort},
	{field: "Email", tag: "email", message: MsgInvalidEmail},
	{tag: "required", message: MsgAllRequired},
}

// Validate checks, in order: confirmation matches, password length, email
// shape, presence of username and email.
func (f *RegisterForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	return check(f, registerRules)
}

type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

var loginRules = []rule{
	{tag: "required", message: MsgLoginRequired},
}

func (f *LoginForm) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return check(f, loginRules)
}
