//go:build unit

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/sur/pkg/fs"
	fsmocks "github.com/lerenn/sur/pkg/fs/mocks"
	"github.com/lerenn/sur/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "empty config",
			config: Config{},
		},
		{
			name:   "known kinds",
			config: Config{Kinds: []string{"image", "color"}},
		},
		{
			name:    "unknown kind",
			config:  Config{Kinds: []string{"image", "font"}},
			wantErr: ErrInvalidKinds,
		},
		{
			name:    "empty excluded source",
			config:  Config{Exclude: Exclude{Sources: []string{""}}},
			wantErr: ErrEmptySourcePath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Rules(t *testing.T) {
	config := Config{
		Exclude: Exclude{
			Sources:   []string{"App/Generated.swift", "/abs/Legacy.swift"},
			Resources: []string{"AppIcon"},
			Assets:    []string{"Onboarding"},
		},
		Kinds: []string{"color"},
	}

	rules, err := config.Rules(fs.NewFS(), "/project")
	require.NoError(t, err)

	assert.True(t, rules.IsSourceExcluded("/project/App/Generated.swift"))
	assert.True(t, rules.IsSourceExcluded("/abs/Legacy.swift"))
	assert.True(t, rules.IsResourceExcluded("AppIcon"))
	assert.True(t, rules.IsAssetExcluded("Onboarding"))
	assert.Equal(t, []resource.Kind{resource.KindColor}, rules.EnabledKinds())
}

func TestConfig_Rules_DefaultKinds(t *testing.T) {
	rules, err := Config{}.Rules(fs.NewFS(), "/project")
	require.NoError(t, err)

	assert.Equal(t, resource.AllKinds(), rules.EnabledKinds())
}

func TestRealManager_GetConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, FileName)

	validYAML := `exclude:
  sources:
    - App/Generated.swift
  resources:
    - AppIcon
  assets:
    - Onboarding
kinds:
  - image
`
	require.NoError(t, os.WriteFile(configPath, []byte(validYAML), 0644))

	manager := NewManager(NewManagerParams{ConfigPath: configPath})
	config, err := manager.GetConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{"App/Generated.swift"}, config.Exclude.Sources)
	assert.Equal(t, []string{"AppIcon"}, config.Exclude.Resources)
	assert.Equal(t, []string{"Onboarding"}, config.Exclude.Assets)
	assert.Equal(t, []string{"image"}, config.Kinds)
	assert.Equal(t, configPath, manager.GetConfigPath())
}

func TestRealManager_GetConfig_FileNotFound(t *testing.T) {
	manager := NewManager(NewManagerParams{ConfigPath: "/nonexistent/path/sur.yml"})
	_, err := manager.GetConfig()

	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestRealManager_GetConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, FileName)
	require.NoError(t, os.WriteFile(configPath, []byte("exclude: [unterminated"), 0644))

	manager := NewManager(NewManagerParams{ConfigPath: configPath})
	_, err := manager.GetConfig()

	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_GetConfig_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Exists("/project/sur.yml").Return(true, nil)
	mockFS.EXPECT().ReadFile("/project/sur.yml").Return(nil, errors.New("permission denied"))

	manager := NewManager(NewManagerParams{FS: mockFS, ConfigPath: "/project/sur.yml"})
	_, err := manager.GetConfig()

	assert.ErrorContains(t, err, "permission denied")
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, FileName)
	require.NoError(t, os.WriteFile(configPath, []byte("kinds: [font]\n"), 0644))

	manager := NewManager(NewManagerParams{ConfigPath: configPath})

	// An invalid file falls back to the default configuration
	config, err := manager.GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, manager.DefaultConfig(), config)

	// A missing file too
	manager = NewManager(NewManagerParams{ConfigPath: filepath.Join(tempDir, "missing.yml")})
	config, err = manager.GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, Config{}, config)
}
