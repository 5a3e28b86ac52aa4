// Package jot is the composition root for the jot note-taking engine.
//
// It connects the core domain (notes, tags, derived views, events) with
// the storage adapters using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Jot treats a personal note collection as a tiny local database: two
// collections (notes and tags), persisted wholesale through a synchronous
// key-value storage adapter, with filtering, sorting and tag aggregation
// derived in memory. The core is storage-agnostic; the default adapter
// keeps one JSON (or YAML) file per collection in a data directory.
//
// Features:
//
//   - **Derived views**: search, tag filter and pin-first sorting are
//     recomputed from source state, never persisted.
//   - **Resilient loading**: absent or corrupt storage degrades to an
//     empty collection instead of an error.
//   - **Observable**: commands publish events; Workspace.Watch subscribes
//     with glob patterns, and external file changes trigger reloads.
//   - **Extensible**: any backend implementing core.Storage plugs in.
//
// Usage:
//
//	ws, err := jot.Open("~/.jot", jot.WithLogger(logger))
//	if err != nil { ... }
//	note := ws.Notes.Add(ctx, "Groceries", "milk, eggs", nil)
//	ws.Notes.SetSearchTerm("milk")
//	for _, n := range ws.Notes.View() { ... }
package jot
