package command

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"

	"github.com/posternapp/postern/internal/config"
)

type configKey struct{}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dev"
	}
	return ver
}

func loadConfig(ctx context.Context) (config.Config, *slog.Logger, error) {
	cfg, ok := ctx.Value(configKey{}).(config.Config)
	if !ok {
		return cfg, nil, errors.New("config file resolution failed")
	}
	return cfg, slog.Default(), nil
}
