// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// BackupSuffix is appended to a file's path for its pre-rewrite copy.
const BackupSuffix = ".bak"

// 📊 FileStatus represents what happened to a file during a run
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // Content changed and was written back
	StatusUnchanged            // Read, but nothing to replace
	StatusSkipped              // Matched an ignore pattern, never read
	StatusFailed               // Read or write failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo is the outcome recorded for one file
type FileInfo struct {
	Path         string     // Path as walked or configured
	Status       FileStatus // Outcome
	Replacements int        // Number of substrings replaced
	Reason       string     // Why the file was left alone, if it was
	Error        error      // Failure for StatusFailed
}

// 📈 Summary counts outcomes across a run
type Summary struct {
	Modified  int
	Unchanged int
	Skipped   int
	Failed    int
}

// Total is the number of files tracked.
func (s Summary) Total() int {
	return s.Modified + s.Unchanged + s.Skipped + s.Failed
}

// 💾 Store is the file access operations need
type Store interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
	Track(ctx context.Context, info FileInfo)
}

// 🔧 Options configures a Manager
type Options struct {
	DryRun bool // Never write; still report
	Backup bool // Copy the original to <path>.bak before overwriting
}

// 🔧 Manager implements Store against the local filesystem
type Manager struct {
	opts Options

	mu    sync.Mutex
	files []FileInfo
}

var _ Store = (*Manager)(nil)

// 🏭 New creates a new status manager
func New(opts Options) *Manager {
	return &Manager{opts: opts}
}

// DryRun reports whether writes are suppressed.
func (m *Manager) DryRun() bool {
	return m.opts.DryRun
}

// 📖 ReadFile reads the whole file
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// ✍️ WriteFile overwrites an existing file in place, keeping its mode.
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	logger := zerolog.Ctx(ctx)

	if m.opts.DryRun {
		logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("dry run, not writing")
		return nil
	}

	// Linked assets are rewritten at their target so the link survives.
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errors.Errorf("resolving file: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return errors.Errorf("checking file: %w", err)
	}

	if m.opts.Backup {
		if err := m.BackupFile(ctx, path); err != nil {
			return errors.Errorf("backing up file: %w", err)
		}
	}

	if err := writeFileAtomic(target, content, info.Mode().Perm()); err != nil {
		return err
	}

	logger.Debug().Str("path", path).Str("target", target).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

// 🗄️ BackupFile copies path to path+BackupSuffix, replacing any older backup
func (m *Manager) BackupFile(ctx context.Context, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return errors.Errorf("opening file: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return errors.Errorf("checking file: %w", err)
	}

	backupPath := path + BackupSuffix
	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating backup: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return errors.Errorf("copying to backup: %w", err)
	}

	if err := dst.Close(); err != nil {
		return errors.Errorf("closing backup: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Str("backup", backupPath).Msg("backed up file")
	return nil
}

// writeFileAtomic writes to a hidden sibling temp file and renames it over path.
func writeFileAtomic(path string, content []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 📌 Track records the outcome for a file
func (m *Manager) Track(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files = append(m.files, info)

	event := zerolog.Ctx(ctx).Debug()
	if info.Error != nil {
		event = zerolog.Ctx(ctx).Warn().Err(info.Error)
	}
	event.Str("path", info.Path).
		Stringer("status", info.Status).
		Int("replacements", info.Replacements).
		Str("reason", info.Reason).
		Msg("tracked file")
}

// Files returns tracked outcomes in the order they were recorded.
func (m *Manager) Files() []FileInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	files := make([]FileInfo, len(m.files))
	copy(files, m.files)
	return files
}

// Summary counts tracked outcomes.
func (m *Manager) Summary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	var s Summary
	for _, f := range m.files {
		switch f.Status {
		case StatusModified:
			s.Modified++
		case StatusUnchanged:
			s.Unchanged++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
