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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/unitytweak/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const settingsPath = "ProjectSettings/ProjectSettings.asset"

const settingsBefore = `PlayerSettings:
  stripEngineCode: 1
  managedStrippingLevel: {}
  il2cppCompilerConfiguration: {}
`

const settingsAfter = `PlayerSettings:
  stripEngineCode: 1
  managedStrippingLevel:
    Android: 3
    Standalone: 3
  il2cppCompilerConfiguration: {}
`

func TestStrippingOperation(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		level       int
		platforms   []string
		want        string
		wantConsole string
		wantStatus  status.FileStatus
	}{
		{
			name:        "replaces_placeholder",
			content:     settingsBefore,
			level:       3,
			want:        settingsAfter,
			wantConsole: "Updated Managed Stripping Level to High\n",
			wantStatus:  status.StatusModified,
		},
		{
			name:        "already_set",
			content:     settingsAfter,
			level:       3,
			want:        settingsAfter,
			wantConsole: "Could not find managedStrippingLevel: {} to replace. It might be already set.\n",
			wantStatus:  status.StatusUnchanged,
		},
		{
			name:        "custom_level_and_platforms",
			content:     "  managedStrippingLevel: {}\n",
			level:       2,
			platforms:   []string{"iPhone", "Android"},
			want:        "  managedStrippingLevel:\n    iPhone: 2\n    Android: 2\n",
			wantConsole: "Updated Managed Stripping Level to Medium\n",
			wantStatus:  status.StatusModified,
		},
		{
			name:        "empty_file",
			content:     "",
			level:       3,
			want:        "",
			wantConsole: "Could not find managedStrippingLevel: {} to replace. It might be already set.\n",
			wantStatus:  status.StatusUnchanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.cfg.Stripping.Level = tt.level
			if tt.platforms != nil {
				env.cfg.Stripping.Platforms = tt.platforms
			}
			env.write(t, settingsPath, tt.content)

			op := NewStrippingOperation(env.options(nil))
			require.NoError(t, op.Execute(env.ctx))

			assert.Equal(t, tt.want, env.read(t, settingsPath))
			assert.Equal(t, tt.wantConsole, env.console.String())

			files := env.files.Files()
			require.Len(t, files, 1)
			assert.Equal(t, tt.wantStatus, files[0].Status)
		})
	}
}

func TestStrippingOperation_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	env.write(t, settingsPath, settingsBefore)

	op := NewStrippingOperation(env.options(nil))
	require.NoError(t, op.Execute(env.ctx))
	require.NoError(t, op.Execute(env.ctx))

	assert.Equal(t, settingsAfter, env.read(t, settingsPath))
	assert.Equal(t,
		"Updated Managed Stripping Level to High\n"+
			"Could not find managedStrippingLevel: {} to replace. It might be already set.\n",
		env.console.String())
	assert.NotContains(t, env.read(t, settingsPath), "managedStrippingLevel: {}")
}

func TestStrippingOperation_NoWriteWithoutMarker(t *testing.T) {
	env := newTestEnv(t)
	path := env.write(t, settingsPath, settingsAfter)

	store := &MockStore{}
	store.On("ReadFile", mock.Anything, path).Return([]byte(settingsAfter), nil)
	store.On("Track", mock.Anything, mock.Anything).Return()

	op := NewStrippingOperation(env.options(store))
	require.NoError(t, op.Execute(env.ctx))

	store.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestStrippingOperation_MissingFile(t *testing.T) {
	tests := []struct {
		name            string
		continueOnError bool
		wantFailedLine  bool
	}{
		{name: "aborts_by_default"},
		{name: "reports_when_continuing", continueOnError: true, wantFailedLine: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.cfg.ContinueOnError = tt.continueOnError

			op := NewStrippingOperation(env.options(nil))
			err := op.Execute(env.ctx)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "reading file")

			assert.Equal(t, tt.wantFailedLine, strings.HasPrefix(env.console.String(), "Failed: "))
			assert.Equal(t, 1, env.files.Summary().Failed)
		})
	}
}

func TestStrippingOperation_WriteFailure(t *testing.T) {
	env := newTestEnv(t)
	path := env.write(t, settingsPath, settingsBefore)

	store := &MockStore{}
	store.On("ReadFile", mock.Anything, path).Return([]byte(settingsBefore), nil)
	store.On("WriteFile", mock.Anything, path, []byte(settingsAfter)).Return(errors.New("read-only file system"))
	store.On("Track", mock.Anything, mock.Anything).Return()

	op := NewStrippingOperation(env.options(store))
	err := op.Execute(env.ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only file system")
	assert.Empty(t, env.console.String(), "success is only reported after the write")
}

func TestStrippingOperation_Backup(t *testing.T) {
	env := newTestEnv(t)
	path := env.write(t, settingsPath, settingsBefore)

	op := NewStrippingOperation(env.options(status.New(status.Options{Backup: true})))
	require.NoError(t, op.Execute(env.ctx))

	assert.Equal(t, settingsAfter, env.read(t, settingsPath))
	assert.FileExists(t, path+status.BackupSuffix)
	assert.Equal(t, settingsBefore, env.read(t, settingsPath+status.BackupSuffix))
}
