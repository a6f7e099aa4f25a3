package cliconfig

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output != "features.csv" {
		t.Errorf("Output = %v, want features.csv", cfg.Output)
	}
	if cfg.OutDir != "." {
		t.Errorf("OutDir = %v, want .", cfg.OutDir)
	}
	if cfg.Window != 60 {
		t.Errorf("Window = %v, want 60", cfg.Window)
	}
	if cfg.Step != 20 {
		t.Errorf("Step = %v, want 20", cfg.Step)
	}
	if cfg.FsInterp != 4.0 {
		t.Errorf("FsInterp = %v, want 4.0", cfg.FsInterp)
	}
	if cfg.MinSamples != 20 {
		t.Errorf("MinSamples = %v, want 20", cfg.MinSamples)
	}
	if cfg.ArtifactLow != 300 || cfg.ArtifactHigh != 2000 {
		t.Errorf("artifact bounds = [%v, %v], want [300, 2000]", cfg.ArtifactLow, cfg.ArtifactHigh)
	}
	if cfg.Labelling != LabelMedian {
		t.Errorf("Labelling = %v, want %v", cfg.Labelling, LabelMedian)
	}
	if cfg.Threshold != 20 {
		t.Errorf("Threshold = %v, want 20", cfg.Threshold)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		config     Config
		wantErr    bool
		wantOutDir string
	}{
		{
			name: "valid median config",
			config: Config{
				Window:       60,
				Step:         20,
				FsInterp:     4,
				MinSamples:   20,
				ArtifactLow:  300,
				ArtifactHigh: 2000,
				Labelling:    LabelMedian,
				Threshold:    20,
			},
			wantErr: false,
		},
		{
			name: "valid fixed config",
			config: Config{
				Window:       120,
				Step:         40,
				FsInterp:     7,
				MinSamples:   30,
				ArtifactLow:  250,
				ArtifactHigh: 2200,
				Labelling:    LabelFixed,
				Threshold:    35.5,
			},
			wantErr: false,
		},
		{
			name: "zero window",
			config: Config{
				Step:         20,
				FsInterp:     4,
				MinSamples:   20,
				ArtifactLow:  300,
				ArtifactHigh: 2000,
				Labelling:    LabelMedian,
				Threshold:    20,
			},
			wantErr: true,
		},
		{
			name: "negative step",
			config: Config{
				Window:       60,
				Step:         -1,
				FsInterp:     4,
				MinSamples:   20,
				ArtifactLow:  300,
				ArtifactHigh: 2000,
				Labelling:    LabelMedian,
				Threshold:    20,
			},
			wantErr: true,
		},
		{
			name: "zero interpolation rate",
			config: Config{
				Window:       60,
				Step:         20,
				MinSamples:   20,
				ArtifactLow:  300,
				ArtifactHigh: 2000,
				Labelling:    LabelMedian,
				Threshold:    20,
			},
			wantErr: true,
		},
		{
			name: "zero min samples",
			config: Config{
				Window:       60,
				Step:         20,
				FsInterp:     4,
				ArtifactLow:  300,
				ArtifactHigh: 2000,
				Labelling:    LabelMedian,
				Threshold:    20,
			},
			wantErr: true,
		},
		{
			name: "inverted artifact bounds",
			config: Config{
				Window:       60,
				Step:         20,
				FsInterp:     4,
				MinSamples:   20,
				ArtifactLow:  2000,
				ArtifactHigh: 300,
				Labelling:    LabelMedian,
				Threshold:    20,
			},
			wantErr: true,
		},
		{
			name: "equal artifact bounds",
			config: Config{
				Window:       60,
				Step:         20,
				FsInterp:     4,
				MinSamples:   20,
				ArtifactLow:  500,
				ArtifactHigh: 500,
				Labelling:    LabelMedian,
				Threshold:    20,
			},
			wantErr: true,
		},
		{
			name: "unknown labelling",
			config: Config{
				Window:       60,
				Step:         20,
				FsInterp:     4,
				MinSamples:   20,
				ArtifactLow:  300,
				ArtifactHigh: 2000,
				Labelling:    "kmeans",
				Threshold:    20,
			},
			wantErr: true,
		},
		{
			name: "zero threshold",
			config: Config{
				Window:       60,
				Step:         20,
				FsInterp:     4,
				MinSamples:   20,
				ArtifactLow:  300,
				ArtifactHigh: 2000,
				Labelling:    LabelFixed,
			},
			wantErr: true,
		},
		{
			name: "empty out dir derives to cwd",
			config: Config{
				Window:       60,
				Step:         20,
				FsInterp:     4,
				MinSamples:   20,
				ArtifactLow:  300,
				ArtifactHigh: 2000,
				Labelling:    LabelMedian,
				Threshold:    20,
			},
			wantErr:    false,
			wantOutDir: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.wantOutDir != "" && tt.config.OutDir != tt.wantOutDir {
				t.Errorf("OutDir = %v, want %v", tt.config.OutDir, tt.wantOutDir)
			}
		})
	}
}
