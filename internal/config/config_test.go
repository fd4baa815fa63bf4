package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("正常系: yaml と環境変数を読み込む", func(t *testing.T) {
		dir := t.TempDir()
		yaml := `
database:
  driver: sqlite
  url: "file:dream.db"
server:
  port: ":9090"
analysis:
  strict_upsert: true
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
		t.Setenv("APP_ANALYSIS_LEGACY_DURATION_FOLD", "true")
		t.Setenv("AUTH_ENABLED", "false")

		require.NoError(t, LoadConfig(dir))

		assert.Equal(t, "sqlite", Cfg.Database.Driver)
		assert.Equal(t, "file:dream.db", Cfg.Database.URL)
		assert.Equal(t, ":9090", Cfg.Server.Port)
		assert.True(t, Cfg.Analysis.StrictUpsert)
		assert.True(t, Cfg.Analysis.LegacyDurationFold)
		assert.False(t, Cfg.Auth.Enabled)
		assert.Equal(t, DefaultRecomputeConcurrency, Cfg.Analysis.RecomputeConcurrency)
	})

	t.Run("正常系: 設定ファイルなしはデフォルト値", func(t *testing.T) {
		require.NoError(t, LoadConfig(t.TempDir()))

		assert.Equal(t, DefaultServerPort, Cfg.Server.Port)
		assert.Equal(t, DefaultDatabaseDriver, Cfg.Database.Driver)
		assert.Equal(t, DefaultLogLevel, Cfg.Log.Level)
		assert.True(t, Cfg.Auth.Enabled)
	})
}
