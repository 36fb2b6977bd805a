// Package config loads patchflow settings from defaults, an optional YAML
// file and PATCHFLOW_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/rhessysweb/patchflow/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. PATCHFLOW_RASTER_DIR.
const EnvPrefix = "PATCHFLOW_"

// ConfigPathEnvVar names a config file when --config is not given.
const ConfigPathEnvVar = "PATCHFLOW_CONFIG"

// DefaultConfigPaths are searched in order when no path is given.
var DefaultConfigPaths = []string{
	"patchflow.yaml",
	"patchflow.yml",
}

// Config is the complete patchflow configuration.
type Config struct {
	Raster     RasterConfig     `koanf:"raster"`
	Projection ProjectionConfig `koanf:"projection"`
	FlowTable  FlowTableConfig  `koanf:"flowtable"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// RasterConfig locates the patch, zone and hillslope layers.
type RasterConfig struct {
	// Dir holds one exported text raster per layer.
	Dir string `koanf:"dir"`
	// Format is grass-ascii (r.out.ascii) or esri-ascii (AAIGrid).
	Format string `koanf:"format" validate:"oneof=grass-ascii esri-ascii"`
	// Extension is appended to layer names to build file names.
	Extension  string `koanf:"extension"`
	PatchLayer string `koanf:"patch_layer" validate:"required"`
	ZoneLayer  string `koanf:"zone_layer" validate:"required"`
	HillLayer  string `koanf:"hill_layer" validate:"required"`
}

// ProjectionConfig describes the projected CRS of the rasters.
type ProjectionConfig struct {
	UTMZone  int  `koanf:"utm_zone" validate:"min=1,max=60"`
	Northern bool `koanf:"northern"`
}

// FlowTableConfig tunes the codec and checker.
type FlowTableConfig struct {
	StrictHeader   bool    `koanf:"strict_header"`
	GammaTolerance float64 `koanf:"gamma_tolerance" validate:"gte=0"`
}

// LoggingConfig is passed to logging.Init.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

func defaultConfig() *Config {
	return &Config{
		Raster: RasterConfig{
			Dir:        "",
			Format:     "grass-ascii",
			Extension:  ".asc",
			PatchLayer: "patch",
			ZoneLayer:  "zone",
			HillLayer:  "hillslope",
		},
		Projection: ProjectionConfig{
			UTMZone:  18,
			Northern: true,
		},
		FlowTable: FlowTableConfig{
			StrictHeader:   false,
			GammaTolerance: 1e-4,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load builds the configuration. An explicit path must exist; otherwise the
// PATCHFLOW_CONFIG variable and DefaultConfigPaths are tried.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}

		return path, nil
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", nil
}

// envTransformFunc maps PATCHFLOW_RASTER_PATCH_LAYER to raster.patch_layer.
// Section names never contain underscores, so only the first one splits.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "config" {
		return ""
	}

	return strings.Replace(key, "_", ".", 1)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return errors.New(strings.Join(msgs, "; "))
}

// LayerSet returns the configured layer names.
func (r RasterConfig) LayerSet() model.LayerSet {
	return model.LayerSet{Patch: r.PatchLayer, Zone: r.ZoneLayer, Hill: r.HillLayer}
}
