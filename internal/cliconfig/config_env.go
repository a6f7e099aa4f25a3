package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (HRVFEAT_*). It respects flags that were explicitly set and returns
// an error when a variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("out", os.Getenv("HRVFEAT_OUTPUT"), &cfg.Output)
	s.setString("out-dir", os.Getenv("HRVFEAT_OUT_DIR"), &cfg.OutDir)
	s.setString("labelling", os.Getenv("HRVFEAT_LABELLING"), &cfg.Labelling)
	s.setString("gender", os.Getenv("HRVFEAT_GENDER"), &cfg.Gender)
	s.setString("watch", os.Getenv("HRVFEAT_WATCH"), &cfg.Watch)

	if err := s.setIntFromString("window", os.Getenv("HRVFEAT_WINDOW"), &cfg.Window); err != nil {
		return err
	}

	if err := s.setIntFromString("step", os.Getenv("HRVFEAT_STEP"), &cfg.Step); err != nil {
		return err
	}

	if err := s.setIntFromString("min-samples", os.Getenv("HRVFEAT_MIN_SAMPLES"), &cfg.MinSamples); err != nil {
		return err
	}

	if err := s.setIntFromString("age", os.Getenv("HRVFEAT_AGE"), &cfg.Age); err != nil {
		return err
	}

	if err := s.setIntFromString("workers", os.Getenv("HRVFEAT_WORKERS"), &cfg.Workers); err != nil {
		return err
	}

	if err := s.setFloatFromString("fs-interp", os.Getenv("HRVFEAT_FS_INTERP"), &cfg.FsInterp); err != nil {
		return err
	}

	if err := s.setFloatFromString("artifact-low", os.Getenv("HRVFEAT_ARTIFACT_LOW"), &cfg.ArtifactLow); err != nil {
		return err
	}

	if err := s.setFloatFromString("artifact-high", os.Getenv("HRVFEAT_ARTIFACT_HIGH"), &cfg.ArtifactHigh); err != nil {
		return err
	}

	if err := s.setFloatFromString("threshold", os.Getenv("HRVFEAT_THRESHOLD"), &cfg.Threshold); err != nil {
		return err
	}

	s.setBoolFromString("verbose", os.Getenv("HRVFEAT_VERBOSE"), &cfg.Verbose)

	return nil
}
