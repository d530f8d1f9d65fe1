// Package media turns the server's file references (product images, user
// avatars) into URLs the user can open.
package media

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/logging"
)

const (
	ProductPlaceholder = "https://via.placeholder.com/500x400?text=No+Image"
	AvatarPlaceholder  = "https://via.placeholder.com/150x150?text=Avatar"
)

type Resolver struct {
	base string
	http *http.Client
	log  logging.Logger
}

// NewResolver serves files from uploadsBase, e.g. http://localhost:5000/uploads.
func NewResolver(uploadsBase string, log logging.Logger) (*Resolver, error) {
	u, err := url.Parse(uploadsBase)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid uploads base URL %q", uploadsBase)
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Resolver{base: strings.TrimRight(u.String(), "/"), http: &http.Client{}, log: log}, nil
}

// URL returns the address of ref under the uploads base, or placeholder when
// ref is empty. Absolute http(s) references are returned as is.
func (r *Resolver) URL(ref, placeholder string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return placeholder
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	u, err := url.JoinPath(r.base, strings.TrimLeft(ref, "/"))
	if err != nil {
		return placeholder
	}
	return u
}

// Resolve is URL plus a HEAD probe; a reference that does not load resolves
// to placeholder.
func (r *Resolver) Resolve(ctx context.Context, ref, placeholder string) string {
	u := r.URL(ref, placeholder)
	if u == placeholder {
		return u
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
	if err != nil {
		return placeholder
	}
	resp, err := r.http.Do(req)
	if err != nil {
		r.log.Debug(ctx, "media probe failed", "url", u, "error", err)
		return placeholder
	}
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.log.Debug(ctx, "media not available", "url", u, "status", resp.StatusCode)
		return placeholder
	}
	return u
}
