// Package cache is a BadgerDB-backed key/value store for memoized
// intermediate results such as candidate sets.
//
// Values are stored as JSON. A Store satisfies candidate.Store.
package cache
