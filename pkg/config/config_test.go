//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(path string, env map[string]string) *realManager {
	return &realManager{
		configPath: path,
		getenv:     func(k string) string { return env[k] },
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid config",
			config: Config{Repositories: []string{"https://github.com/", "https://gitlab.com/hooks"}, CloneTimeout: "30s"},
		},
		{
			name:    "no repositories",
			config:  Config{},
			wantErr: ErrNoRepositories,
		},
		{
			name:    "relative repository",
			config:  Config{Repositories: []string{"github.com/"}},
			wantErr: ErrInvalidRepositoryURL,
		},
		{
			name:    "bad timeout",
			config:  Config{Repositories: []string{DefaultRepository}, CloneTimeout: "soon"},
			wantErr: ErrInvalidCloneTimeout,
		},
		{
			name:    "negative timeout",
			config:  Config{Repositories: []string{DefaultRepository}, CloneTimeout: "-1s"},
			wantErr: ErrInvalidCloneTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_RepositoryURLs_AddsTrailingSlash(t *testing.T) {
	config := Config{Repositories: []string{"https://gitlab.com/hooks", "https://github.com/"}}

	urls, err := config.RepositoryURLs()
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Equal(t, "https://gitlab.com/hooks/", urls[0].String())
	assert.Equal(t, "https://github.com/", urls[1].String())
}

func TestConfig_CloneTimeoutDuration(t *testing.T) {
	d, err := (&Config{}).CloneTimeoutDuration()
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = (&Config{CloneTimeout: "1m30s"}).CloneTimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)
}

func TestRealManager_DefaultConfig(t *testing.T) {
	manager := newTestManager("/nonexistent/config.yaml", nil)
	config := manager.DefaultConfig()

	assert.Equal(t, []string{DefaultRepository}, config.Repositories)
	assert.Empty(t, config.CacheDir)
}

func TestRealManager_DefaultConfig_EnvOverride(t *testing.T) {
	manager := newTestManager("/nonexistent/config.yaml", map[string]string{CacheDirEnv: "/tmp/tackle-cache"})
	config := manager.DefaultConfig()

	assert.Equal(t, "/tmp/tackle-cache", config.CacheDir)
}

func TestRealManager_GetConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "repositories:\n  - https://gitlab.com/hooks/\n  - https://github.com/\ncache_dir: /var/cache/tackle\nclone_timeout: 45s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := newTestManager(path, nil).GetConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://gitlab.com/hooks/", "https://github.com/"}, config.Repositories)
	assert.Equal(t, "/var/cache/tackle", config.CacheDir)
	assert.Equal(t, "45s", config.CloneTimeout)
}

func TestRealManager_GetConfig_DefaultsRepositories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_dir: /var/cache/tackle\n"), 0644))

	config, err := newTestManager(path, map[string]string{CacheDirEnv: "/env/cache"}).GetConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultRepository}, config.Repositories)
	assert.Equal(t, "/env/cache", config.CacheDir)
}

func TestRealManager_GetConfig_NotFound(t *testing.T) {
	_, err := newTestManager(filepath.Join(t.TempDir(), "missing.yaml"), nil).GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotInitialized)
}

func TestRealManager_GetConfig_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repositories: [unterminated\n"), 0644))

	_, err := newTestManager(path, nil).GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	manager := newTestManager(filepath.Join(t.TempDir(), "missing.yaml"), nil)

	config, err := manager.GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultRepository}, config.Repositories)
}

func TestRealManager_GetConfigWithFallback_InvalidFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clone_timeout: soon\n"), 0644))

	_, err := newTestManager(path, nil).GetConfigWithFallback()
	assert.ErrorIs(t, err, ErrInvalidCloneTimeout)
}

func TestRealManager_SaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	manager := newTestManager(path, nil)

	want := Config{Repositories: []string{"https://gitlab.com/hooks/"}, CloneTimeout: "10s"}
	require.NoError(t, manager.SaveConfig(want))

	got, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, path, manager.GetConfigPath())
}
