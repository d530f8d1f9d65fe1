// Package client talks to the store REST API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): auth,
//     products, categories and users.
//  2. An HTTP implementation (see HTTPClient) that builds every request
//     from the token passed to the call, tags it with an X-Request-ID, and
//     turns non-2xx responses into *APIError.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite file holding the session token.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. *APIError matches ErrUnauthorized
// (401/403) and ErrNotFound (404) under errors.Is. UserMessage extracts
// what should be shown to a person. Nothing is retried.
package client
