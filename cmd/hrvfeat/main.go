package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/cwbudde/algo-hrv/dataset"
	"github.com/cwbudde/algo-hrv/hrv"
	"github.com/cwbudde/algo-hrv/internal/cliconfig"
)

const longHelp = `hrvfeat turns beat-to-beat RR interval recordings into windowed
heart-rate-variability feature matrices.

Each input CSV holds one subject's RR intervals in milliseconds, one
value per line (a header row is skipped automatically). Recordings are
cleaned of non-physiological intervals, cut into overlapping windows,
and reduced to time-domain, frequency-domain, and geometric features
plus a binary stress label per window.

Configuration is layered from defaults, an optional TOML file,
HRVFEAT_* environment variables, and command-line flags, in ascending
precedence.`

var exampleUsage = strings.TrimSpace(`
  hrvfeat --out features.csv subject1.csv subject2.csv
  hrvfeat --labelling fixed --threshold 35 recording.csv
  hrvfeat --watch ./incoming --out-dir ./results
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "hrvfeat [flags] [recording.csv ...]",
		Short:   "Extract windowed HRV feature matrices from RR interval recordings",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.hrvfeat/config.toml),
			// then apply env and flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			// Apply environment variables (HRVFEAT_*). These override
			// file config but are overridden by flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			// Validate and set derived defaults
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Verbose {
				log = log.Level(zerolog.DebugLevel)
			}

			log.Debug().Interface("config", cfg).Msg("configuration")

			bcfg := builderConfig(cfg, log)

			if cfg.Watch != "" {
				return runWatch(log, cfg, bcfg)
			}

			if len(args) == 0 {
				return errors.New("no input files (pass RR recording paths, or --watch a directory)")
			}

			return runOnce(log, cfg, bcfg, args)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.hrvfeat/config.toml)")
	root.Flags().StringVar(&cfg.Output, "out", cfg.Output, "output CSV file for the combined feature matrix")
	root.Flags().StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "output directory for per-recording results in watch mode")

	root.Flags().IntVar(&cfg.Window, "window", cfg.Window, "beats per analysis window")
	root.Flags().IntVar(&cfg.Step, "step", cfg.Step, "stride between windows in beats")
	root.Flags().Float64Var(&cfg.FsInterp, "fs-interp", cfg.FsInterp, "resampling rate for spectral analysis in Hz")
	root.Flags().IntVar(&cfg.MinSamples, "min-samples", cfg.MinSamples, "shortest window accepted for extraction")

	root.Flags().Float64Var(&cfg.ArtifactLow, "artifact-low", cfg.ArtifactLow, "shortest physiological RR interval in ms")
	root.Flags().Float64Var(&cfg.ArtifactHigh, "artifact-high", cfg.ArtifactHigh, "longest physiological RR interval in ms")

	root.Flags().StringVar(&cfg.Labelling, "labelling", cfg.Labelling, "stress labelling protocol: median or fixed")
	root.Flags().Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "stress index cutoff for fixed labelling")

	root.Flags().IntVar(&cfg.Age, "age", cfg.Age, "subject age stamped on every row")
	root.Flags().StringVar(&cfg.Gender, "gender", cfg.Gender, "subject gender stamped on every row (m/f)")

	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "subjects processed concurrently (0 = all CPUs)")
	root.Flags().StringVar(&cfg.Watch, "watch", cfg.Watch, "watch a directory for new recordings instead of running once")
	root.Flags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("hrvfeat")
		os.Exit(1)
	}
}

// builderConfig maps resolved CLI settings onto the dataset pipeline
// configuration.
func builderConfig(cfg cliconfig.Config, log zerolog.Logger) dataset.Config {
	labelling := dataset.LabelMedianSplit
	if cfg.Labelling == cliconfig.LabelFixed {
		labelling = dataset.LabelFixedThreshold
	}

	return dataset.Config{
		Extractor: hrv.Config{
			Window:     cfg.Window,
			Step:       cfg.Step,
			FsInterp:   cfg.FsInterp,
			MinSamples: cfg.MinSamples,
		},
		ArtifactLow:  cfg.ArtifactLow,
		ArtifactHigh: cfg.ArtifactHigh,
		Labelling:    labelling,
		Threshold:    cfg.Threshold,
		Workers:      cfg.Workers,
		Logger:       log,
	}
}

// runOnce reads every input recording as one subject and writes the
// combined feature matrix to cfg.Output.
func runOnce(log zerolog.Logger, cfg cliconfig.Config, bcfg dataset.Config, paths []string) error {
	subjects := make([]dataset.Subject, 0, len(paths))

	for _, path := range paths {
		series, err := dataset.ReadRRFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		subjects = append(subjects, dataset.Subject{
			ID:     subjectID(path),
			Age:    cfg.Age,
			Gender: cfg.Gender,
			RR:     series,
		})
	}

	b := dataset.NewBuilder(bcfg)

	rows, err := b.Build(subjects)
	if err != nil {
		return err
	}

	if err := dataset.WriteMatrixFile(cfg.Output, rows); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	log.Info().
		Int("subjects", len(subjects)).
		Int("rows", len(rows)).
		Str("output", cfg.Output).
		Msg("wrote feature matrix")

	return nil
}

// subjectID derives a subject identifier from a recording path.
func subjectID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
