// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package datastate models the lifecycle of a decrypted vault projection: a
// value that starts out loading, may be refreshed while stale data is shown,
// and degrades gracefully on failure by keeping the last good snapshot.
package datastate

// Status discriminates the [DataState] variants.
type Status int

const (
	// StatusLoading means no data has been produced yet.
	StatusLoading Status = iota
	// StatusPending means a refresh is running; the previous snapshot is
	// still attached.
	StatusPending
	// StatusLoaded means the attached data is current.
	StatusLoaded
	// StatusError means the last refresh failed; the previous snapshot, if
	// any, is retained.
	StatusError
	// StatusNoNetwork is an error state scoped to connectivity failures so
	// consumers can render an offline affordance.
	StatusNoNetwork
)

// DataState wraps one projection value together with its lifecycle status.
// Error and NoNetwork retain the last known good data when available.
type DataState[T any] struct {
	status Status
	data   *T
	err    error
}

// Loading returns the initial state with no data.
func Loading[T any]() DataState[T] {
	return DataState[T]{status: StatusLoading}
}

// Pending returns a refreshing state carrying the previous snapshot.
func Pending[T any](data T) DataState[T] {
	return DataState[T]{status: StatusPending, data: &data}
}

// Loaded returns a resolved state carrying current data.
func Loaded[T any](data T) DataState[T] {
	return DataState[T]{status: StatusLoaded, data: &data}
}

// Error returns a failed state. prev, when non-nil, preserves the last good
// snapshot.
func Error[T any](err error, prev *T) DataState[T] {
	return DataState[T]{status: StatusError, data: prev, err: err}
}

// NoNetwork returns a connectivity-failure state. prev, when non-nil,
// preserves the last good snapshot.
func NoNetwork[T any](prev *T) DataState[T] {
	return DataState[T]{status: StatusNoNetwork, data: prev}
}

// Status returns the lifecycle variant.
func (d DataState[T]) Status() Status { return d.status }

// Err returns the failure attached to an Error state, nil otherwise.
func (d DataState[T]) Err() error { return d.err }

// Data returns the attached snapshot and whether one is present.
func (d DataState[T]) Data() (T, bool) {
	if d.data == nil {
		var zero T
		return zero, false
	}
	return *d.data, true
}

// DataPtr returns the attached snapshot pointer, nil when absent. The pointer
// is shared; callers must not mutate through it.
func (d DataState[T]) DataPtr() *T { return d.data }

// IsResolved reports whether the state is terminal for the current refresh
// cycle (Loaded, Error or NoNetwork).
func (d DataState[T]) IsResolved() bool {
	switch d.status {
	case StatusLoaded, StatusError, StatusNoNetwork:
		return true
	default:
		return false
	}
}

// PendingOrLoading demotes the state at the start of a refresh: Loaded data
// becomes Pending, everything else falls back to Loading.
func (d DataState[T]) PendingOrLoading() DataState[T] {
	if data, ok := d.Data(); ok {
		return Pending(data)
	}
	return Loading[T]()
}

// Map converts the attached data, preserving status and error.
func Map[T, R any](d DataState[T], fn func(T) R) DataState[R] {
	out := DataState[R]{status: d.status, err: d.err}
	if d.data != nil {
		mapped := fn(*d.data)
		out.data = &mapped
	}
	return out
}
