// Package services contains the application services behind the CLI:
// products, categories and the signed-in user's profile.
//
// Services read the current token from the session on every call and
// validate input locally, so an invalid form never reaches the network.
package services
