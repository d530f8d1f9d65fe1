package cli

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/client/catalog"
	"github.com/dmitrijs2005/storeadmin/internal/client/media"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// Dashboard greets the user and shows product and category counts.
func (a *App) Dashboard(ctx context.Context) error {
	name := "User"
	if s := a.session.Snapshot(); s.User != nil && s.User.Username != "" {
		name = s.User.Username
	}
	a.printf("Welcome back, %s!\n", name)

	products, err := a.products.List(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to load dashboard", false)
	}
	categories, err := a.categories.List(ctx)
	if err != nil {
		return a.fail(ctx, err, "Failed to load dashboard", false)
	}

	stats := catalog.Summarize(products, categories)
	a.printf("Products:   %d\n", stats.Products)
	a.printf("Categories: %d\n", stats.Categories)
	return nil
}

func (a *App) printUser(ctx context.Context, u *models.User) {
	a.printf("Username:     %s\n", u.Username)
	a.printf("Email:        %s\n", u.Email)
	a.printf("Member since: %s\n", formatDate(u.CreatedAt))
	a.printf("Avatar:       %s\n", a.media.Resolve(ctx, u.Avatar, media.AvatarPlaceholder))
}

// Profile shows the signed-in user's record, refreshed from the server.
// If the refresh fails the cached record is shown.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.profile.Load(ctx)
	if err != nil {
		s := a.session.Snapshot()
		if s.User == nil || s.User.ID == "" {
			return a.fail(ctx, err, "", false)
		}
		a.log.Warn(ctx, "failed to load user profile", "error", err)
		u = s.User
	}
	a.printUser(ctx, u)
	return nil
}

// EditProfile prompts for username, email and an optional avatar image.
func (a *App) EditProfile(ctx context.Context) error {
	var cur models.User
	if s := a.session.Snapshot(); s.User != nil {
		cur = *s.User
	}

	username, err := GetTextWithDefault(a.reader, "Username", cur.Username, a.out)
	if err != nil {
		return err
	}
	email, err := GetTextWithDefault(a.reader, "Email", cur.Email, a.out)
	if err != nil {
		return err
	}
	avatarPath, err := getSimpleText(a.reader, "Avatar image file (empty to keep)", a.out)
	if err != nil {
		return err
	}

	in := models.ProfileInput{Username: username, Email: email}
	if avatarPath != "" {
		upload, err := loadUpload(avatarPath)
		if err != nil {
			return a.fail(ctx, err, "", false)
		}
		in.Avatar = upload
	}

	u, err := a.profile.Update(ctx, in)
	if err != nil {
		return a.fail(ctx, err, "Failed to update profile", true)
	}

	a.println("Profile updated successfully!")
	a.printUser(ctx, u)
	return nil
}
