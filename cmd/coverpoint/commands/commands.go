// Package commands implements CLI command handlers for coverpoint.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/coverpoint/coverpoint/internal/batch"
	"github.com/coverpoint/coverpoint/internal/config"
	"github.com/coverpoint/coverpoint/internal/cricsheet"
	"github.com/coverpoint/coverpoint/internal/registry"
	"github.com/coverpoint/coverpoint/pkg/persist"
)

// Command errors.
var (
	// ErrReplayFailures indicates at least one match feed failed to replay.
	ErrReplayFailures = errors.New("some matches failed to replay")
	// ErrValidationFailures indicates at least one feed failed validation.
	ErrValidationFailures = errors.New("some feeds failed validation")
	// ErrBadOutputName indicates an export target with an unknown extension.
	ErrBadOutputName = errors.New(`output name must end in ".json" or ".json.lz4"`)
)

// runtime bundles the loaded config, reference tables and logger shared
// by the replay and export commands.
type runtime struct {
	cfg    *config.Config
	tables *config.Tables
	logger *slog.Logger
}

func loadRuntime(configPath string) (*runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	tables, err := config.LoadTables()
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:    cfg,
		tables: tables,
		logger: cfg.Logging.NewLogger(os.Stderr),
	}, nil
}

// loadJob reads and decodes one match feed plus its player registry.
// Without a registry file the playing elevens stand in for player info.
func (rt *runtime) loadJob(path, registryPath string) (batch.Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return batch.Job{}, fmt.Errorf("read feed: %w", err)
	}

	data, err := cricsheet.DecodeMatch(raw)
	if err != nil {
		return batch.Job{}, err
	}

	if !rt.tables.KnownTeamType(data.Info.TeamType) {
		rt.logger.Warn("unknown team type", slog.String("feed", path), slog.String("team_type", data.Info.TeamType))
	}

	if !rt.tables.KnownMatchType(data.Info.MatchType) {
		rt.logger.Warn("unknown match type", slog.String("feed", path), slog.String("match_type", data.Info.MatchType))
	}

	feed, err := rt.loadFeed(registryPath, data)
	if err != nil {
		return batch.Job{}, err
	}

	return batch.Job{ID: path, Data: data, Feed: feed}, nil
}

func (rt *runtime) loadFeed(registryPath string, data *cricsheet.MatchData) (*registry.Feed, error) {
	if registryPath == "" {
		return registry.FallbackFeed(data.Info.Players), nil
	}

	raw, err := os.ReadFile(registryPath)
	if err != nil {
		return nil, fmt.Errorf("read registry feed: %w", err)
	}

	return registry.DecodeFeed(raw)
}

// codecFor maps a config codec name to its persist implementation.
func codecFor(name string) persist.Codec {
	if name == config.CodecLZ4 {
		return persist.NewLZ4Codec()
	}

	return persist.NewJSONCodec()
}

// feedBasename strips the feed extension for use as a save basename.
func feedBasename(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// paint wraps text in a color attribute when accents are enabled.
func paint(colorize bool, attr color.Attribute, text string) string {
	if !colorize {
		return text
	}

	return color.New(attr).Sprint(text)
}
