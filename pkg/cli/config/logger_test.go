package config_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/upmtools/upmpack/pkg/cli/config"
)

func parseLoggerFlags(t *testing.T, args ...string) config.Logger {
	t.Helper()

	var logger config.Logger
	cmd := &cli.Command{
		Name:   "upmpack",
		Flags:  logger.Flags(),
		Action: func(context.Context, *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"upmpack"}, args...)))
	return logger
}

func TestLogger_Flags(t *testing.T) {
	t.Run("defaults keep the console quiet", func(t *testing.T) {
		logger := parseLoggerFlags(t)
		gt.Equal(t, logger.Level, "warn")
		gt.False(t, logger.JSON)
	})

	t.Run("flags", func(t *testing.T) {
		logger := parseLoggerFlags(t, "--log-level", "debug", "--log-json")
		gt.Equal(t, logger.Level, "debug")
		gt.True(t, logger.JSON)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("UPMPACK_LOG_LEVEL", "error")
		t.Setenv("UPMPACK_LOG_JSON", "true")
		logger := parseLoggerFlags(t)
		gt.Equal(t, logger.Level, "error")
		gt.True(t, logger.JSON)
	})
}

func TestLogger_Configure_Level(t *testing.T) {
	for _, level := range []string{"debug", "Info", "WARN", "error"} {
		t.Run(level, func(t *testing.T) {
			logger := &config.Logger{Level: level, Output: &bytes.Buffer{}}
			result, err := logger.Configure()
			gt.NoError(t, err)
			gt.Value(t, result).NotEqual(nil)
		})
	}

	for _, level := range []string{"", "verbose", "warning"} {
		t.Run("invalid "+level, func(t *testing.T) {
			logger := &config.Logger{Level: level, Output: &bytes.Buffer{}}
			_, err := logger.Configure()
			gt.Error(t, err)
		})
	}
}

func TestLogger_Configure_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "warn", JSON: true, Output: &buf}

	result, err := logger.Configure()
	gt.NoError(t, err)

	result.Info("Created package draft", "path", "upmpack.toml")
	gt.Equal(t, buf.Len(), 0)

	result.Warn("Manifest warning", "field", "dependencies[1]")
	gt.Equal(t, gjson.Get(buf.String(), "level").String(), "WARN")
	gt.Equal(t, gjson.Get(buf.String(), "msg").String(), "Manifest warning")
	gt.Equal(t, gjson.Get(buf.String(), "field").String(), "dependencies[1]")
}

func TestLogger_Configure_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "info", Output: &buf}

	result, err := logger.Configure()
	gt.NoError(t, err)

	result.Info("Package export complete", "output", "/tmp/out/com.acme.widget")
	gt.String(t, buf.String()).Contains("Package export complete")
	gt.String(t, buf.String()).Contains("com.acme.widget")
}

func TestLogger_Configure_RedactsEmail(t *testing.T) {
	type author struct {
		Name  string
		Email string
	}

	var buf bytes.Buffer
	logger := &config.Logger{
		Level:  "info",
		JSON:   true,
		Output: &buf,
	}

	result, err := logger.Configure()
	gt.NoError(t, err)

	result.Info("export", "author", author{Name: "Pixel Wizards", Email: "support@pixelwizards.ca"})
	gt.String(t, buf.String()).Contains("Pixel Wizards")
	gt.String(t, buf.String()).NotContains("support@pixelwizards.ca")
}
