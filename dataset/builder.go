package dataset

import (
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-hrv/hrv"
	"github.com/cwbudde/algo-hrv/label"
	"github.com/cwbudde/algo-hrv/rr"
)

// Labelling selects how each subject's rows are turned into binary
// stress labels.
type Labelling int

const (
	// LabelMedianSplit thresholds at the subject's own median stress
	// index (default).
	LabelMedianSplit Labelling = iota
	// LabelFixedThreshold applies one fixed cutoff to every subject.
	LabelFixedThreshold
)

// Config holds dataset build parameters. The zero value uses the
// default extractor, the physiological artifact bounds, median-split
// labelling, one worker per CPU, and a disabled logger.
type Config struct {
	Extractor    hrv.Config
	ArtifactLow  float64 // ms; <= 0 picks 300
	ArtifactHigh float64 // ms; <= 0 picks 2000
	Labelling    Labelling
	Threshold    float64 // fixed-threshold cutoff; <= 0 picks 20
	Workers      int     // subjects processed concurrently; <= 0 picks GOMAXPROCS
	Logger       zerolog.Logger
}

// Builder runs the per-subject pipeline and concatenates the results.
type Builder struct {
	cfg   Config
	ext   *hrv.Extractor
	runID string
	log   zerolog.Logger
}

// NewBuilder creates a builder, replacing out-of-range configuration
// values with defaults and stamping a fresh run id.
func NewBuilder(cfg Config) *Builder {
	cfg = normalizeConfig(cfg)
	runID := uuid.NewString()

	return &Builder{
		cfg:   cfg,
		ext:   hrv.NewExtractor(cfg.Extractor),
		runID: runID,
		log:   cfg.Logger.With().Str("run_id", runID).Logger(),
	}
}

// RunID returns the identifier stamped on this builder's log events.
func (b *Builder) RunID() string {
	return b.runID
}

func normalizeConfig(cfg Config) Config {
	if cfg.ArtifactLow <= 0 {
		cfg.ArtifactLow = rr.DefaultArtifactLow
	}

	if cfg.ArtifactHigh <= 0 {
		cfg.ArtifactHigh = rr.DefaultArtifactHigh
	}

	if cfg.Threshold <= 0 {
		cfg.Threshold = label.DefaultFixedThreshold
	}

	return cfg
}

// Build processes all subjects and returns their rows concatenated in
// input order. Subjects whose series fail validation or yield no
// complete window are logged and skipped; only an empty subject list
// is an error.
func (b *Builder) Build(subjects []Subject) ([]Row, error) {
	if len(subjects) == 0 {
		return nil, ErrNoSubjects
	}

	workers := b.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if workers > len(subjects) {
		workers = len(subjects)
	}

	perSubject := make([][]Row, len(subjects))

	if workers == 1 {
		for i := range subjects {
			perSubject[i] = b.buildSubject(subjects[i])
		}
	} else {
		workCh := make(chan int, workers)

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				for i := range workCh {
					perSubject[i] = b.buildSubject(subjects[i])
				}
			}()
		}

		for i := range subjects {
			workCh <- i
		}

		close(workCh)
		wg.Wait()
	}

	total := 0
	for _, rows := range perSubject {
		total += len(rows)
	}

	out := make([]Row, 0, total)
	for _, rows := range perSubject {
		out = append(out, rows...)
	}

	b.log.Info().
		Int("subjects", len(subjects)).
		Int("rows", len(out)).
		Msg("dataset built")

	return out, nil
}

func (b *Builder) buildSubject(s Subject) []Row {
	log := b.log.With().Str("subject", s.ID).Logger()

	if err := s.RR.Validate(); err != nil {
		log.Warn().Err(err).Msg("subject rejected")
		return nil
	}

	kept, artifacts := rr.FilterArtifacts(s.RR, b.cfg.ArtifactLow, b.cfg.ArtifactHigh)

	matrix, stats := b.ext.BuildMatrixStats(kept)
	if len(matrix) == 0 {
		log.Warn().
			Int("beats", len(kept)).
			Int("artifacts", artifacts).
			Msg("no complete windows")

		return nil
	}

	labels := b.labels(hrv.Column(matrix, "si"))
	genderEnc := EncodeGender(s.Gender)

	rows := make([]Row, len(matrix))
	for i, f := range matrix {
		rows[i] = Row{
			Subject:   s.ID,
			Window:    i,
			Features:  f,
			Age:       s.Age,
			GenderEnc: genderEnc,
			Label:     labels[i],
		}
	}

	baseline, stress := label.Counts(labels)
	log.Info().
		Int("beats", len(s.RR)).
		Int("artifacts", artifacts).
		Int("windows", stats.Windows).
		Int("dropped", stats.Dropped).
		Int("spectral_failures", stats.SpectralFailures).
		Int("baseline", baseline).
		Int("stress", stress).
		Msg("subject processed")

	return rows
}

func (b *Builder) labels(si []float64) []int {
	if b.cfg.Labelling == LabelFixedThreshold {
		return label.FixedThreshold(si, b.cfg.Threshold)
	}

	return label.MedianSplit(si)
}
