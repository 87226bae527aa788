package watcher

import "github.com/pkg/errors"

// ErrWatcherClosed is returned when an operation reaches a watcher whose
// owner has already closed it.
var ErrWatcherClosed = errors.New("watcher is closed")
