// Package registry is the process-wide list of live tables: the place
// the low-memory handler iterates to solicit and release memory from
// every one of them, without the handler or the list itself knowing
// anything about a Table's internals.
//
// Member keeps the dependency one-directional: the root colortable
// package implements Member and registers each Table it creates; this
// package never imports colortable, so there is no cycle.
//
// Traversal holds the registry's own mutex only long enough to copy
// the current member list; each member is then solicited/released
// outside that lock, via a non-blocking attempt that declines instead
// of waiting if the member is busy.
package registry
