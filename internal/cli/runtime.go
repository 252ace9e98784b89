package cli

import (
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/zstat/internal/config"
	"github.com/GriffinCanCode/zstat/internal/logging"
	"github.com/GriffinCanCode/zstat/internal/monitoring"
	"github.com/GriffinCanCode/zstat/internal/numerics"
	"github.com/GriffinCanCode/zstat/internal/probability"
	"github.com/GriffinCanCode/zstat/internal/random"
	"github.com/GriffinCanCode/zstat/internal/resample"
)

// Streams are the standard streams a command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Runtime holds the dependencies shared by every command in one process.
type Runtime struct {
	Config     *config.Config
	Logger     *logging.Logger
	Metrics    *monitoring.Metrics
	Evaluator  *numerics.Evaluator
	Calculator *probability.Calculator
	Normalizer *resample.Normalizer
	RunID      string
	Streams    Streams
}

// NewRuntime wires logging, metrics and the numerics stack from cfg.
// Logs go to streams.Err, or to stderr when it is nil.
func NewRuntime(cfg *config.Config, streams Streams) (*Runtime, error) {
	runID := uuid.NewString()

	lc := logging.DefaultConfig()
	lc.Level = cfg.Logging.Level
	lc.Development = cfg.Logging.Development

	var (
		logger *logging.Logger
		err    error
	)
	if streams.Err != nil {
		logger, err = logging.NewWithWriter(lc, streams.Err)
	} else {
		logger, err = logging.New(lc)
	}
	if err != nil {
		return nil, err
	}
	logger = &logging.Logger{Logger: logger.With(zap.String("run_id", runID))}

	metrics := monitoring.NewMetrics()
	eval := numerics.NewEvaluator(numerics.Config{
		MaxIterations: cfg.Numerics.MaxIterations,
		Epsilon:       cfg.Numerics.Epsilon,
	}, logger.Logger).WithObserver(metrics)
	calc := probability.NewCalculator(eval)

	return &Runtime{
		Config:     cfg,
		Logger:     logger,
		Metrics:    metrics,
		Evaluator:  eval,
		Calculator: calc,
		Normalizer: resample.NewNormalizer(calc, logger.Logger),
		RunID:      runID,
		Streams:    streams,
	}, nil
}

// Random returns a fresh stream seeded from NORMALIZE_SEED.
func (rt *Runtime) Random() random.Source {
	return random.New(rt.Config.Sampling.Seed)
}

// Close flushes metrics and the logger.
func (rt *Runtime) Close() error {
	var err error
	if path := rt.Config.Metrics.TextfilePath; path != "" {
		if err = rt.Metrics.WriteTextfile(path); err != nil {
			rt.Logger.Error("Failed to write metrics", zap.String("path", path), zap.Error(err))
		}
	}
	// Sync on a terminal stderr can fail harmlessly
	_ = rt.Logger.Sync()
	return err
}
