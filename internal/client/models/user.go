package models

import (
	"encoding/json"
	"time"
)

// User is replaced wholesale on every update, never patched.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	var w struct {
		docID
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		Avatar    string    `json:"avatar"`
		CreatedAt time.Time `json:"createdAt"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*u = User{
		ID:        w.value(),
		Username:  w.Username,
		Email:     w.Email,
		Avatar:    w.Avatar,
		CreatedAt: w.CreatedAt,
	}
	return nil
}

// LoginResult is the body of a successful login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
