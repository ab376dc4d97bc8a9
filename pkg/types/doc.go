// Package types defines the record, column, view-state and dataset types
// shared by the tabview engine, its storage backend and the CLI, along with
// the standard errors they return.
package types
