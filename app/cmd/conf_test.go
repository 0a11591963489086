package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prepareConfFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "damlink.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := prepareConfFile(t, `
dam:
  address: https://dam.example.com
  account_key: secret
p4:
  binary: /usr/local/bin/p4
  port: perforce:1666
  user: dev
`)
		cfg, err := ReadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "https://dam.example.com", cfg.DAM.Address)
		assert.Equal(t, "secret", cfg.DAM.AccountKey)
		assert.Equal(t, "/usr/local/bin/p4", cfg.P4.Binary)
		assert.Equal(t, "perforce:1666", cfg.P4.Port)
		assert.Equal(t, "dev", cfg.P4.User)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("not a yaml", func(t *testing.T) {
		path := prepareConfFile(t, `{{{`)
		_, err := ReadConfig(path)
		assert.Error(t, err)
	})
}

func TestAssemble(t *testing.T) {
	t.Run("flags win over file", func(t *testing.T) {
		path := prepareConfFile(t, `
dam:
  address: https://file.example.com
  account_key: file-key
p4:
  user: file-user
`)
		cfg, err := assemble(path,
			DAMOpts{Address: "https://flag.example.com", Timeout: 15 * time.Second},
			P4Opts{Port: "perforce:1666"})
		require.NoError(t, err)

		assert.Equal(t, "https://flag.example.com", cfg.DAM.Address)
		assert.Equal(t, 15*time.Second, cfg.DAM.Timeout)
		assert.Equal(t, "file-key", cfg.DAM.AccountKey)
		assert.Equal(t, "file-user", cfg.P4.User)
		assert.Equal(t, "perforce:1666", cfg.P4.Port)
	})

	t.Run("defaults filled", func(t *testing.T) {
		cfg, err := assemble("", DAMOpts{}, P4Opts{})
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.DAM.Timeout)
		assert.Equal(t, "p4", cfg.P4.Binary)
		assert.Empty(t, cfg.DAM.Address)
		assert.Empty(t, cfg.DAM.AccountKey)
	})

	t.Run("bad file location", func(t *testing.T) {
		_, err := assemble("/definitely/not/there.yml", DAMOpts{}, P4Opts{})
		assert.Error(t, err)
	})
}
