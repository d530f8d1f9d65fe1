package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storeadmin/internal/client/client"
	"github.com/dmitrijs2005/storeadmin/internal/client/forms"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// ErrNoUserID means there is no signed-in user to act on.
var ErrNoUserID = errors.New("user id not found")

// MsgNoUserID is shown for ErrNoUserID.
const MsgNoUserID = "User ID not found. Please log in again."

// UserSession is the part of the session the profile service reads and
// updates.
type UserSession interface {
	TokenSource
	User() *models.User
	UpdateUser(user models.User) bool
}

type ProfileService interface {
	// Load fetches the signed-in user's record and refreshes the session.
	Load(ctx context.Context) (*models.User, error)
	// Update saves the profile and stores the server's record in the session.
	Update(ctx context.Context, in models.ProfileInput) (*models.User, error)
}

type profileService struct {
	client  client.Client
	session UserSession
}

func NewProfileService(c client.Client, s UserSession) ProfileService {
	return &profileService{client: c, session: s}
}

func (s *profileService) userID() (string, error) {
	u := s.session.User()
	if u == nil || u.ID == "" {
		return "", ErrNoUserID
	}
	return u.ID, nil
}

func (s *profileService) Load(ctx context.Context) (*models.User, error) {
	id, err := s.userID()
	if err != nil {
		return nil, err
	}

	u, err := s.client.GetUser(ctx, s.session.Token(), id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	s.session.UpdateUser(*u)
	return u, nil
}

// Update is last write wins: nothing guards against a concurrent edit of
// the same account.
func (s *profileService) Update(ctx context.Context, in models.ProfileInput) (*models.User, error) {
	id, err := s.userID()
	if err != nil {
		return nil, err
	}
	if err := forms.CheckProfile(in); err != nil {
		return nil, err
	}

	u, err := s.client.UpdateUser(ctx, s.session.Token(), id, in)
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	s.session.UpdateUser(*u)
	return u, nil
}
