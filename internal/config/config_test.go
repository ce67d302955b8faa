package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GITDOJO_PROFILE", "/tmp/p.yml")
	t.Setenv("GITDOJO_DB", "/tmp/h.db")
	t.Setenv("GITDOJO_REPO_DIR", "practice")
	t.Setenv("GITDOJO_HINT_AFTER", "5")
	t.Setenv("GITDOJO_LOG_LEVEL", "debug")
	t.Setenv("GITDOJO_NO_HISTORY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/p.yml", cfg.ProfilePath)
	assert.Equal(t, "/tmp/h.db", cfg.DBPath)
	assert.Equal(t, "practice", cfg.RepoDir)
	assert.Equal(t, 5, cfg.HintAfter)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoHistory)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("GITDOJO_HINT_AFTER", "lots")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.HintAfter = -1
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.RepoDir = ""
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Defaults().Validate())
}

func TestValidate_PracticeDirMustNotHoldUserData(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	profileDir := t.TempDir()

	tests := []struct {
		name    string
		repoDir string
		profile string
	}{
		{"working directory", ".", ".profile.yml"},
		{"parent of working directory", filepath.Dir(wd), ".profile.yml"},
		{"home directory", home, ".profile.yml"},
		{"profile directory", profileDir, filepath.Join(profileDir, ".profile.yml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.RepoDir = tt.repoDir
			cfg.ProfilePath = tt.profile
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Defaults()
	cfg.RepoDir = filepath.Join(profileDir, "practice")
	cfg.ProfilePath = filepath.Join(profileDir, ".profile.yml")
	assert.NoError(t, cfg.Validate())
}
