package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nlog-format: text\nconsole:\n  no-color: true\n  first-turn: computer\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: every value is taken from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "text", conf.LogFormat)
		assert.True(t, conf.Console.NoColor)
		assert.Equal(t, "computer", conf.Console.FirstTurn)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// Given: no config file and no overriding environment
		unsetEnv(t, "LOG_LEVEL", "LOG_FORMAT", "CONSOLE_NO_COLOR", "CONSOLE_FIRST_TURN")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf := MustLoad(path)

		// Then: defaults apply
		assert.Equal(t, "error", conf.LogLevel)
		assert.Equal(t, "json", conf.LogFormat)
		assert.False(t, conf.Console.NoColor)
		assert.Equal(t, "human", conf.Console.FirstTurn)
	})

	t.Run("Environment overrides the defaults", func(t *testing.T) {
		// Given: LOG_LEVEL is set
		t.Setenv("LOG_LEVEL", "info")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf := MustLoad(path)

		// Then: the variable wins
		assert.Equal(t, "info", conf.LogLevel)
	})

	t.Run("Panics on a malformed file", func(t *testing.T) {
		// Given: a file that is not valid YAML for the config
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("console: [unclosed"), 0o600))

		// Then: loading panics
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Panics on an unknown first turn", func(t *testing.T) {
		// Given: no file and an unsupported opening side in the environment
		t.Setenv("CONSOLE_FIRST_TURN", "bogus")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// Then: loading panics
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Panics on an unknown log level", func(t *testing.T) {
		// Given: an unsupported log level
		t.Setenv("LOG_LEVEL", "loud")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// Then: loading panics
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Panics on an unknown log format in the file", func(t *testing.T) {
		// Given: a file with an unsupported log format
		unsetEnv(t, "LOG_FORMAT")
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-format: xml\n"), 0o600))

		// Then: loading panics
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Ignores the generic NO_COLOR variable", func(t *testing.T) {
		// Given: NO_COLOR set to a value that is not a boolean
		unsetEnv(t, "CONSOLE_NO_COLOR")
		t.Setenv("NO_COLOR", "yes")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		var conf *Config
		assert.NotPanics(t, func() { conf = MustLoad(path) })

		// Then: colours stay on
		require.NotNil(t, conf)
		assert.False(t, conf.Console.NoColor)
	})

	t.Run("CONSOLE_NO_COLOR disables colours", func(t *testing.T) {
		// Given: the console switch in the environment
		t.Setenv("CONSOLE_NO_COLOR", "true")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf := MustLoad(path)

		// Then: colours are off
		assert.True(t, conf.Console.NoColor)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{LogLevel: "info", LogFormat: "json", Console: Console{FirstTurn: "random"}}

	t.Run("Accepts known values", func(t *testing.T) {
		conf := valid
		assert.NoError(t, conf.Validate())
	})

	t.Run("Rejects unknown values", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*Config)
		}{
			{name: "log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
			{name: "log format", mutate: func(c *Config) { c.LogFormat = "xml" }},
			{name: "first turn", mutate: func(c *Config) { c.Console.FirstTurn = "bogus" }},
			{name: "empty first turn", mutate: func(c *Config) { c.Console.FirstTurn = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Given: a config with one bad value
				conf := valid
				tt.mutate(&conf)

				// When: validating
				err := conf.Validate()

				// Then: the sentinel is reported
				require.ErrorIs(t, err, ErrInvalidValue)
			})
		}
	})
}

// unsetEnv clears variables for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
