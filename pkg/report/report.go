package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/gilchrisn/graph-datasets/pkg/chart"
	"github.com/gilchrisn/graph-datasets/pkg/config"
	"github.com/gilchrisn/graph-datasets/pkg/normalizer"
	"github.com/gilchrisn/graph-datasets/pkg/regression"
	"github.com/gilchrisn/graph-datasets/pkg/sizes"
	"github.com/gilchrisn/graph-datasets/pkg/timings"
	"github.com/gilchrisn/graph-datasets/pkg/utils"
)

var ErrNoTimings = errors.New("no timing files found")

// Result contains the measured points, the fitted model and the charts written
type Result struct {
	Points    []chart.Point
	Model     regression.Model
	Files     []string
	RuntimeMS int64
}

// Builder joins timing files with the size store and renders the
// running-time charts
type Builder struct {
	Paths  config.Paths
	Chart  chart.Options
	logger zerolog.Logger
}

// NewBuilder creates a builder over the given layout
func NewBuilder(paths config.Paths, logger zerolog.Logger) *Builder {
	return &Builder{
		Paths:  paths,
		Chart:  chart.DefaultOptions(paths.ImageDir),
		logger: logger,
	}
}

// Build summarizes every timing file, fits time against n + m and renders
// the charts. A dataset that has timings but no size entry gets one computed
// from its edge list and persisted before use.
func (b *Builder) Build() (*Result, error) {
	startTime := time.Now()

	names, err := timings.List(b.Paths.TimesDir)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTimings, b.Paths.TimesDir)
	}

	store, err := sizes.Load(b.Paths.SizesFile)
	if err != nil {
		return nil, err
	}

	timed := make(map[string]bool, len(names))
	for _, name := range names {
		timed[name] = true
	}
	for _, name := range store.Names() {
		if !timed[name] {
			b.logger.Debug().Str("dataset", name).Msg("Size recorded but no timing file, skipping")
		}
	}

	points := make([]chart.Point, 0, len(names))
	xs := make([]float64, 0, len(names))
	ys := make([]float64, 0, len(names))

	for _, name := range names {
		size, ok := store[name]
		if !ok {
			size, err = b.computeSize(name)
			if err != nil {
				return nil, err
			}
			store[name] = size
		}

		summary, err := timings.Load(b.Paths.TimesDir, name)
		if err != nil {
			return nil, err
		}

		b.logger.Debug().
			Str("dataset", name).
			Int("samples", summary.Samples).
			Str("size", humanize.Comma(int64(size.Total()))).
			Float64("mean_ns", summary.Mean).
			Msg("Timing summarized")

		pt := chart.Point{
			Name:     name,
			Size:     float64(size.Total()),
			Mean:     summary.Mean,
			ErrorBar: summary.ErrorBar,
		}
		points = append(points, pt)
		xs = append(xs, pt.Size)
		ys = append(ys, pt.Mean)
	}

	model, err := regression.Fit(xs, ys)
	switch {
	case errors.Is(err, regression.ErrTooFewPoints), errors.Is(err, regression.ErrDegenerate):
		b.logger.Warn().Err(err).Msg("Sizes do not determine a slope, using a flat line at the mean time")
		model = regression.Flat(ys)
	case err != nil:
		return nil, fmt.Errorf("failed to fit running times: %w", err)
	}
	b.logger.Info().
		Float64("slope", model.Slope).
		Float64("intercept", model.Intercept).
		Float64("r2", model.R2).
		Msg("Linear regression fitted")

	files, err := chart.Render(points, model, b.Chart)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		b.logger.Info().Str("path", f).Msg("Chart written")
	}

	return &Result{
		Points:    points,
		Model:     model,
		Files:     files,
		RuntimeMS: time.Since(startTime).Milliseconds(),
	}, nil
}

// computeSize counts the normalized edge list of name and records it in the
// store file
func (b *Builder) computeSize(name string) (sizes.Size, error) {
	path := normalizer.EdgeListPath(b.Paths.InputDir, name)
	if err := utils.CheckFilesExist(path); err != nil {
		return sizes.Size{}, fmt.Errorf("no size recorded for %s and no edge list to compute it: %w", name, err)
	}

	g, err := normalizer.ReadEdgeList(path)
	if err != nil {
		return sizes.Size{}, fmt.Errorf("failed to size %s: %w", name, err)
	}

	size := sizes.Size{N: g.NumNodes(), M: g.NumEdges()}
	if _, err := sizes.Update(b.Paths.SizesFile, name, size); err != nil {
		return sizes.Size{}, err
	}

	b.logger.Info().
		Str("dataset", name).
		Str("nodes", humanize.Comma(int64(size.N))).
		Str("edges", humanize.Comma(int64(size.M))).
		Msg("Missing size computed from edge list")
	return size, nil
}
