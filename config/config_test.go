package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "./tradebook.json", cfg.Journal.File)
	assert.Equal(t, "Default", cfg.Journal.DefaultAccount)
	assert.True(t, cfg.Display.Color)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  Default(),
			wantErr: false,
		},
		{
			name: "missing file",
			config: &Config{
				Journal: JournalConfig{DefaultAccount: "Default"},
			},
			wantErr: true,
			errMsg:  "journal.file is required",
		},
		{
			name: "missing default account",
			config: &Config{
				Journal: JournalConfig{File: "./tradebook.json"},
			},
			wantErr: true,
			errMsg:  "journal.default_account is required",
		},
		{
			name: "padded default account",
			config: &Config{
				Journal: JournalConfig{File: "./tradebook.json", DefaultAccount: " Default "},
			},
			wantErr: true,
			errMsg:  "journal.default_account must not have surrounding whitespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradebook.yaml")
	payload := `
journal:
  file: /tmp/journal.json
  default_account: Padrão
display:
  color: false
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/journal.json", cfg.Journal.File)
	assert.Equal(t, "Padrão", cfg.Journal.DefaultAccount)
	assert.False(t, cfg.Display.Color)
}

func TestLoadFromFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradebook.json")
	payload := `{"journal": {"file": "./data.json", "default_account": "Default"}, "display": {"color": true}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./data.json", cfg.Journal.File)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradebook.yaml")

	cfg := Default()
	cfg.Journal.DefaultAccount = "Live"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
