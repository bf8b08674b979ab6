// Package provider contains generic plumbing for runtime-selected backend
// adapters: a typed registry of factories and instances, selection
// strategies, and a manager that combines the two.
//
// The inference package builds its adapter registry on top of these
// generics; nothing here is specific to a single backend.
package provider
