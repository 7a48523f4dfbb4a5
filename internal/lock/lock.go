// Package lock provides cross-process mutual exclusion using flock(2).
//
// The lock bounds one tmux style sync at a time across every pane that may
// invoke the tool concurrently. Acquisition is non-blocking: a loser must
// not retry, since the concurrent holder will achieve the same visual
// result. The lock is tied to the holding process's file descriptor, so the
// kernel releases it automatically if the process dies without unlocking;
// no staleness heuristic is needed.
package lock

import (
	"fmt"
	"os"
	"strconv"
	"syscall"
)

// FileLock provides non-blocking cross-process mutual exclusion on a
// single lock file path.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a FileLock for the given path. The file is created
// on first acquisition attempt.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path}
}

// Path returns the lock file location.
func (fl *FileLock) Path() string {
	return fl.path
}

// TryLock attempts to acquire the lock without blocking.
// Returns true if the lock was acquired, false if it is held by another
// process. On success the holder's PID is written into the lock file for
// diagnostics; the content is never consulted for lock decisions.
func (fl *FileLock) TryLock() (bool, error) {
	f, err := os.OpenFile(fl.path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return false, fmt.Errorf("open lock file: %w", err)
	}

	err = syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	if err != nil {
		_ = f.Close()
		if err == syscall.EWOULDBLOCK {
			return false, nil
		}
		return false, fmt.Errorf("flock: %w", err)
	}

	// Diagnostic only.
	_ = f.Truncate(0)
	_, _ = f.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0)

	fl.file = f
	return true, nil
}

// Unlock releases the lock and closes the lock file.
// Safe to call multiple times and safe to call when the lock was never
// acquired.
func (fl *FileLock) Unlock() error {
	if fl.file == nil {
		return nil
	}

	if err := syscall.Flock(int(fl.file.Fd()), syscall.LOCK_UN); err != nil {
		_ = fl.file.Close()
		fl.file = nil
		return fmt.Errorf("funlock: %w", err)
	}

	err := fl.file.Close()
	fl.file = nil
	return err
}
