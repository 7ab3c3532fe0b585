package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal(50051, cfg.Server.Port)
	s.Equal(30*time.Second, cfg.Server.ShutdownTimeout)
	s.Equal(config.StorageMemory, cfg.Storage.Driver)
	s.Equal(time.Duration(0), cfg.Storage.Redis.TTL)
	s.Equal("info", cfg.Logging.Level)
	s.Equal("json", cfg.Logging.Format)
	s.Equal("default", cfg.Sheet.InitialMethod)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("RPG_SHEET_SERVER_PORT", "6000")
	s.T().Setenv("RPG_SHEET_STORAGE_DRIVER", "redis")
	s.T().Setenv("RPG_SHEET_STORAGE_REDIS_ADDR", "cache:6379")
	s.T().Setenv("RPG_SHEET_STORAGE_REDIS_TTL", "24h")
	s.T().Setenv("RPG_SHEET_LOGGING_FORMAT", "console")

	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal(6000, cfg.Server.Port)
	s.Equal(config.StorageRedis, cfg.Storage.Driver)
	s.Equal("cache:6379", cfg.Storage.Redis.Addr)
	s.Equal(24*time.Hour, cfg.Storage.Redis.TTL)
	s.Equal("console", cfg.Logging.Format)
}

func (s *ConfigTestSuite) TestFile() {
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
server:
  port: 7000
logging:
  level: debug
sheet:
  initial_method: 4d6_drop_lowest
`), 0o600))

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal(7000, cfg.Server.Port)
	s.Equal("debug", cfg.Logging.Level)
	s.Equal("4d6_drop_lowest", cfg.Sheet.InitialMethod)
	s.Equal(config.StorageMemory, cfg.Storage.Driver)
}

func (s *ConfigTestSuite) TestMissingFile() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "absent.yaml"))
	s.Error(err)
}

func (s *ConfigTestSuite) TestInvalidValuesAreReportedTogether() {
	s.T().Setenv("RPG_SHEET_LOGGING_LEVEL", "loud")
	s.T().Setenv("RPG_SHEET_SHEET_INITIAL_METHOD", "2d20")
	s.T().Setenv("RPG_SHEET_SERVER_PORT", "0")

	_, err := config.Load("")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "logging.level")
	s.Contains(err.Error(), "sheet.initial_method")
	s.Contains(err.Error(), "server.port")
}

func validConfig() config.Config {
	return config.Config{
		Server:  config.ServerConfig{Port: 50051},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
		Sheet:   config.SheetConfig{InitialMethod: "default"},
	}
}

func TestValidate_RedisRequiresAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = config.StorageRedis

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.redis.addr")

	cfg.Storage.Redis.Addr = "localhost:6379"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_InitialMethod(t *testing.T) {
	for _, method := range []string{"default", "3d6", "4d6_drop_lowest"} {
		cfg := validConfig()
		cfg.Sheet.InitialMethod = method
		assert.NoError(t, cfg.Validate(), method)
	}

	// explicit needs caller-supplied values, so it cannot be the server default
	cfg := validConfig()
	cfg.Sheet.InitialMethod = "explicit"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet.initial_method")
}

func TestValidate_PortRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Server.Port = rapid.IntRange(-70000, 70000).Draw(t, "port")

		err := cfg.Validate()
		if cfg.Server.Port >= 1 && cfg.Server.Port <= 65535 {
			if err != nil {
				t.Fatalf("port %d rejected: %v", cfg.Server.Port, err)
			}
		} else if err == nil {
			t.Fatalf("port %d accepted", cfg.Server.Port)
		}
	})
}
