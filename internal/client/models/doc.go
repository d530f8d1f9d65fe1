// Package models defines the records exchanged with the store API and the
// inputs the CLI collects for them.
//
// The API is backed by a document store and is loose about shapes: ids come
// as "_id" or "id", and a product's categories are either bare ids or
// embedded category documents. Unmarshalling normalizes both at the
// boundary so the rest of the client never branches on shape.
package models
