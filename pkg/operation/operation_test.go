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

package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/unitytweak/pkg/config"
	"github.com/walteh/unitytweak/pkg/log"
	"github.com/walteh/unitytweak/pkg/status"
)

// 🔧 MockStore is a mock implementation of status.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	result := m.Called(ctx, path)
	content, _ := result.Get(0).([]byte)
	return content, result.Error(1)
}

func (m *MockStore) WriteFile(ctx context.Context, path string, content []byte) error {
	result := m.Called(ctx, path, content)
	return result.Error(0)
}

func (m *MockStore) Track(ctx context.Context, info status.FileInfo) {
	m.Called(ctx, info)
}

// 📖 recordingStore wraps a real Manager and remembers every path read
type recordingStore struct {
	*status.Manager
	reads []string
}

func (r *recordingStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	r.reads = append(r.reads, path)
	return r.Manager.ReadFile(ctx, path)
}

// 🧪 testEnv is a project directory with a logger capturing console output
type testEnv struct {
	ctx     context.Context
	dir     string
	cfg     *config.Config
	files   *status.Manager
	console *bytes.Buffer
	logger  *log.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Project = dir

	zlog := zerolog.New(zerolog.NewTestWriter(t))
	console := &bytes.Buffer{}

	return &testEnv{
		ctx:     zlog.WithContext(context.Background()),
		dir:     dir,
		cfg:     cfg,
		files:   status.New(status.Options{}),
		console: console,
		logger:  log.New(console, zlog, false),
	}
}

func (e *testEnv) options(store status.Store) Options {
	if store == nil {
		store = e.files
	}
	return Options{Config: e.cfg, Files: store, Logger: e.logger}
}

func (e *testEnv) write(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (e *testEnv) read(t *testing.T, rel string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(e.dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(content)
}
