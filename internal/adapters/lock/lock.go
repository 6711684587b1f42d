// Package lock guards the data directory so that only one pomo process mutates it at a time.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/renato0307/pomo/internal/logging"
)

// ErrHeld is returned when another process owns the lock
var ErrHeld = errors.New("data directory is locked by another pomo process")

// FileLock is an exclusive advisory lock on a file
type FileLock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path without blocking. The lock file records the owner pid.
func Acquire(path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		owner := readOwner(file)
		file.Close()
		if owner != "" {
			return nil, fmt.Errorf("%w (pid %s)", ErrHeld, owner)
		}
		return nil, ErrHeld
	}

	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0)
	}

	logging.Logger.Debug("Lock acquired", "path", path)
	return &FileLock{file: file, path: path}, nil
}

func readOwner(file *os.File) string {
	buf := make([]byte, 32)
	n, _ := file.ReadAt(buf, 0)
	return strings.TrimSpace(string(buf[:n]))
}

// Release unlocks and closes the lock file
func (l *FileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := unlockFile(l.file)
	closeErr := l.file.Close()
	l.file = nil
	logging.Logger.Debug("Lock released", "path", l.path)
	return errors.Join(err, closeErr)
}
