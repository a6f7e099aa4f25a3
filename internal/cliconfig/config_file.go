package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML decoding. Bools are pointers so
// that absent keys do not override defaults.
type FileConfig struct {
	Output       string  `toml:"output"`
	OutDir       string  `toml:"out_dir"`
	Window       int     `toml:"window"`
	Step         int     `toml:"step"`
	FsInterp     float64 `toml:"fs_interp"`
	MinSamples   int     `toml:"min_samples"`
	ArtifactLow  float64 `toml:"artifact_low"`
	ArtifactHigh float64 `toml:"artifact_high"`
	Labelling    string  `toml:"labelling"`
	Threshold    float64 `toml:"threshold"`
	Age          int     `toml:"age"`
	Gender       string  `toml:"gender"`
	Workers      int     `toml:"workers"`
	Watch        string  `toml:"watch"`
	Verbose      *bool   `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given
// path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig

	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}

	return fc, nil
}

// DefaultConfigPath returns ~/.hrvfeat/config.toml when the user home
// directory is accessible, otherwise an empty string.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".hrvfeat", "config.toml")
	}

	return ""
}

// ApplyFileConfig applies configuration from a file to the Config
// struct, respecting flags that were explicitly set.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("out", fc.Output, &cfg.Output)
	s.setString("out-dir", fc.OutDir, &cfg.OutDir)
	s.setString("labelling", fc.Labelling, &cfg.Labelling)
	s.setString("gender", fc.Gender, &cfg.Gender)
	s.setString("watch", fc.Watch, &cfg.Watch)

	s.setInt("window", fc.Window, &cfg.Window)
	s.setInt("step", fc.Step, &cfg.Step)
	s.setInt("min-samples", fc.MinSamples, &cfg.MinSamples)
	s.setInt("age", fc.Age, &cfg.Age)
	s.setInt("workers", fc.Workers, &cfg.Workers)

	s.setFloat("fs-interp", fc.FsInterp, &cfg.FsInterp)
	s.setFloat("artifact-low", fc.ArtifactLow, &cfg.ArtifactLow)
	s.setFloat("artifact-high", fc.ArtifactHigh, &cfg.ArtifactHigh)
	s.setFloat("threshold", fc.Threshold, &cfg.Threshold)

	s.setBool("verbose", fc.Verbose, &cfg.Verbose)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
