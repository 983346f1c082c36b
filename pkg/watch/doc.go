// Package watch revalidates OCPI payload files as they change on disk.
// It wraps fsnotify with recursive directory registration, extension
// filtering and per-file debouncing.
package watch
