package scenario

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/observability"
	"wildfire-ca/internal/risk"
	"wildfire-ca/internal/sims/firespread"
	rngcore "wildfire-ca/pkg/core"
)

// StepRecord is one hour of a run: the weather that was applied and the
// metrics of the grid after the step.
type StepRecord struct {
	Hour    int                `json:"hour"`
	Weather firespread.Weather `json:"weather"`
	Metrics firespread.Metrics `json:"metrics"`
}

// Run is the outcome of one scenario. It is owned by the caller once Run
// returns and is not touched by the driver again.
type Run struct {
	Seed        int64              `json:"seed"`
	Ignition    firespread.Cell    `json:"ignition"`
	Base        firespread.Weather `json:"base_weather"`
	Hours       int                `json:"duration_hours"`
	InitialRisk float64            `json:"initial_risk,omitempty"`
	Steps       []StepRecord       `json:"hourly_progression"`
	StartedAt   time.Time          `json:"started_at"`
	FinishedAt  time.Time          `json:"finished_at"`

	FinalGrid *core.FloatGrid    `json:"-"`
	Terrain   firespread.Terrain `json:"-"`
}

// FinalState returns the last recorded step. ok is false when the run has no
// steps, which is the case for a non-positive duration.
func (r *Run) FinalState() (StepRecord, bool) {
	if r == nil || len(r.Steps) == 0 {
		return StepRecord{}, false
	}
	return r.Steps[len(r.Steps)-1], true
}

// StepObserver is notified after every step of a run. The grid is the live
// engine grid and is only valid for the duration of the call. Returning an
// error aborts the run.
type StepObserver interface {
	ObserveStep(run *Run, rec StepRecord, grid *core.FloatGrid) error
}

// StepObserverFunc adapts a function to StepObserver.
type StepObserverFunc func(run *Run, rec StepRecord, grid *core.FloatGrid) error

// ObserveStep calls fn.
func (fn StepObserverFunc) ObserveStep(run *Run, rec StepRecord, grid *core.FloatGrid) error {
	return fn(run, rec, grid)
}

// Driver runs scenarios. Every run builds its own engine and random streams,
// so a Driver may serve concurrent callers provided its observers are safe
// for concurrent use.
type Driver struct {
	cfg       firespread.Config
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
	estimator risk.Estimator
	observers []StepObserver
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics records run and step metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(d *Driver) { d.metrics = m }
}

// WithClock sets the time source used for timestamps and durations.
func WithClock(c clockwork.Clock) Option {
	return func(d *Driver) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithEstimator evaluates the base weather with e before each run.
func WithEstimator(e risk.Estimator) Option {
	return func(d *Driver) { d.estimator = e }
}

// WithObservers appends step observers.
func WithObservers(obs ...StepObserver) Option {
	return func(d *Driver) { d.observers = append(d.observers, obs...) }
}

// NewDriver returns a Driver for the given simulation config.
func NewDriver(cfg firespread.Config, opts ...Option) *Driver {
	d := &Driver{
		cfg:    cfg,
		logger: slog.Default(),
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the simulation config used for new runs.
func (d *Driver) Config() firespread.Config { return d.cfg }

// Run simulates hours steps from ignition under base weather using the
// configured seed.
func (d *Driver) Run(ignition firespread.Cell, base firespread.Weather, hours int) (*Run, error) {
	return d.RunSeed(d.cfg.Seed, ignition, base, hours)
}

// RunRequest maps the request coordinates onto the grid and runs it.
func (d *Driver) RunRequest(req Request) (*Run, error) {
	cell := GridCellForCoordinates(req.Lat, req.Lng, d.sizeOf())
	return d.Run(cell, req.Weather, req.DurationHours)
}

func (d *Driver) sizeOf() core.Size { return core.Size{W: d.cfg.Width, H: d.cfg.Height} }

// RunSeed is Run with an explicit seed. The ignition cell is clamped into the
// grid. A non-positive duration yields a run without steps. Invalid grid
// dimensions fail before anything is simulated.
func (d *Driver) RunSeed(seed int64, ignition firespread.Cell, base firespread.Weather, hours int) (*Run, error) {
	cfg := d.cfg
	cfg.Seed = seed
	engine, err := firespread.NewEngine(cfg)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	jitter := NewJitter(rngcore.NewRNGStream(seed, rngcore.StreamWeather))

	if hours < 0 {
		hours = 0
	}
	run := &Run{
		Seed:      seed,
		Ignition:  engine.Ignite(ignition),
		Base:      base,
		Hours:     hours,
		Steps:     make([]StepRecord, 0, hours),
		StartedAt: d.clock.Now(),
		Terrain:   engine.Terrain(),
	}
	if d.estimator != nil {
		run.InitialRisk = d.estimator.Estimate(risk.Features{
			Temperature:   base.Temperature,
			Humidity:      base.Humidity,
			WindSpeed:     base.WindSpeed,
			WindDirection: base.WindDirection,
		})
	}
	if d.metrics != nil {
		d.metrics.RunsStarted.Inc()
	}
	d.logger.Info("run started",
		"seed", seed,
		"row", run.Ignition.Row,
		"col", run.Ignition.Col,
		"hours", hours,
	)

	for hour := 0; hour < hours; hour++ {
		weather := jitter.Next(base)

		stepStart := d.clock.Now()
		metrics := engine.Step(weather)
		elapsed := d.clock.Since(stepStart)

		rec := StepRecord{Hour: hour, Weather: weather, Metrics: metrics}
		run.Steps = append(run.Steps, rec)
		d.recordStep(rec, elapsed)

		for _, obs := range d.observers {
			if err := obs.ObserveStep(run, rec, engine.Grid()); err != nil {
				run.FinalGrid = engine.Snapshot()
				run.FinishedAt = d.clock.Now()
				return run, fmt.Errorf("scenario: observer at hour %d: %w", hour, err)
			}
		}
	}

	run.FinalGrid = engine.Snapshot()
	run.FinishedAt = d.clock.Now()
	if d.metrics != nil {
		d.metrics.RunsCompleted.Inc()
		d.metrics.RunDuration.Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())
	}

	attrs := []any{"seed", seed, "steps", len(run.Steps)}
	if final, ok := run.FinalState(); ok {
		attrs = append(attrs,
			"burned_area_ha", final.Metrics.BurnedAreaHectares,
			"perimeter_km", final.Metrics.FirePerimeterKM,
		)
	}
	d.logger.Info("run finished", attrs...)
	return run, nil
}

func (d *Driver) recordStep(rec StepRecord, elapsed time.Duration) {
	d.logger.Debug("step",
		"hour", rec.Hour,
		"temperature", rec.Weather.Temperature,
		"humidity", rec.Weather.Humidity,
		"wind_speed", rec.Weather.WindSpeed,
		"burned_cells", rec.Metrics.BurnedCells,
		"new_ignitions", rec.Metrics.NewIgnitions,
	)
	if d.metrics == nil {
		return
	}
	d.metrics.StepsTotal.Inc()
	d.metrics.Ignitions.Add(float64(rec.Metrics.NewIgnitions))
	d.metrics.StepDuration.Observe(elapsed.Seconds())
	d.metrics.BurnedAreaHectares.Set(rec.Metrics.BurnedAreaHectares)
	d.metrics.FirePerimeterKM.Set(rec.Metrics.FirePerimeterKM)
}
