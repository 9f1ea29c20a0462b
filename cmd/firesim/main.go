// Command firesim runs one wildfire spread scenario headlessly and prints the
// hourly progression. Optional outputs are a PNG chart, an AVI recording, a
// Prometheus textfile and a Kafka topic of step records.
//
// Usage:
//
//	go run ./cmd/firesim -lat 29.6 -lng 79.5 -hours 12 -wind-dir SW \
//	  -chart progression.png -video run.avi
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	kafkaadapter "wildfire-ca/internal/adapter/kafka"
	"wildfire-ca/internal/config"
	"wildfire-ca/internal/core"
	"wildfire-ca/internal/observability"
	"wildfire-ca/internal/render"
	"wildfire-ca/internal/risk"
	"wildfire-ca/internal/scenario"
	"wildfire-ca/internal/sims/firespread"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(cfg)

	def := scenario.DefaultRequest()
	lat := flag.Float64("lat", def.Lat, "ignition latitude")
	lng := flag.Float64("lng", def.Lng, "ignition longitude")
	hours := flag.Int("hours", cfg.DurationHours, "simulated hours")
	temp := flag.Float64("temperature", def.Weather.Temperature, "base temperature (°C)")
	humidity := flag.Float64("humidity", def.Weather.Humidity, "base relative humidity (%)")
	windSpeed := flag.Float64("wind-speed", def.Weather.WindSpeed, "base wind speed (km/h)")
	windDir := flag.String("wind-dir", "NE", "wind direction as a compass label or degrees")
	seed := flag.Int64("seed", cfg.Seed, "seed for terrain, spread and weather")
	size := flag.Int("size", cfg.GridSize, "grid width and height")
	chartPath := flag.String("chart", "", "write a PNG chart of the progression to this path")
	videoPath := flag.String("video", "", "write an MJPEG AVI of the grid to this path")
	videoScale := flag.Int("video-scale", 4, "pixels per cell in the video")
	videoFPS := flag.Int("video-fps", 2, "video frames per second")
	metricsFile := flag.String("metrics-file", "", "write Prometheus metrics in text format to this path")
	asJSON := flag.Bool("json", false, "print the run as JSON instead of a table")
	var overrides kvList
	flag.Var(&overrides, "set", "engine parameter override in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{
		"size": strconv.Itoa(*size),
		"seed": strconv.FormatInt(*seed, 10),
	}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			logger.Warn("ignoring malformed override", "value", kv)
			continue
		}
		opts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	simCfg := firespread.FromMap(opts)

	req := scenario.Request{
		Lat:           *lat,
		Lng:           *lng,
		DurationHours: *hours,
		Weather: firespread.Weather{
			WindSpeed:     *windSpeed,
			WindDirection: parseDirection(*windDir),
			Temperature:   *temp,
			Humidity:      *humidity,
		},
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	driverOpts := []scenario.Option{
		scenario.WithLogger(logger),
		scenario.WithMetrics(metrics),
		scenario.WithEstimator(risk.FWIEstimator{}),
	}

	var video *render.VideoRecorder
	if *videoPath != "" {
		video, err = render.NewVideoRecorder(*videoPath, core.Size{W: simCfg.Width, H: simCfg.Height}, *videoScale, *videoFPS)
		if err != nil {
			logger.Error("failed to create video", "error", err)
			os.Exit(1)
		}
		driverOpts = append(driverOpts, scenario.WithObservers(video))
	}

	var publisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		publisher = kafkaadapter.NewPublisher(cfg, logger, metrics)
		driverOpts = append(driverOpts, scenario.WithObservers(publisher))
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	run, runErr := scenario.NewDriver(simCfg, driverOpts...).RunRequest(req)

	if video != nil {
		if err := video.Close(); err != nil {
			logger.Error("video close error", "error", err)
		}
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}
	if runErr != nil {
		logger.Error("run failed", "error", runErr)
		os.Exit(1)
	}

	assessment := risk.Assess(nil, featuresFor(req.Weather))
	if *asJSON {
		err = writeJSON(os.Stdout, run, assessment)
	} else {
		err = writeTable(os.Stdout, run, assessment)
	}
	if err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(1)
	}

	if *chartPath != "" {
		if err := writeChart(*chartPath, run); err != nil {
			logger.Error("failed to write chart", "error", err)
			os.Exit(1)
		}
		logger.Info("chart written", "path", *chartPath)
	}
	if *metricsFile != "" {
		if err := prometheus.WriteToTextfile(*metricsFile, registry); err != nil {
			logger.Error("failed to write metrics", "error", err)
			os.Exit(1)
		}
	}
}

func parseDirection(s string) float64 {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return scenario.CompassDegrees(s)
}

func featuresFor(w firespread.Weather) risk.Features {
	f := risk.DefaultFeatures()
	f.Temperature = w.Temperature
	f.Humidity = w.Humidity
	f.WindSpeed = w.WindSpeed
	f.WindDirection = w.WindDirection
	return f
}

func writeChart(path string, run *scenario.Run) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.ProgressionChart(f, run.Steps, 800, 400); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, run *scenario.Run, a risk.Assessment) error {
	out := struct {
		*scenario.Run
		Risk risk.Assessment `json:"risk_assessment"`
	}{run, a}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, run *scenario.Run, a risk.Assessment) error {
	fmt.Fprintf(w, "ignition row %d col %d, seed %d, %d hours\n", run.Ignition.Row, run.Ignition.Col, run.Seed, run.Hours)
	fmt.Fprintf(w, "risk %.3f (%s), fire weather index %.3f\n\n", a.EnsembleRisk, a.Category, a.FireWeatherIndex)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "hour\ttemp °C\thumidity %\twind km/h\tburned ha\tperimeter km\tintensity\tnew cells\t")
	for _, rec := range run.Steps {
		fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t%.1f\t%.2f\t%.2f\t%.3f\t%d\t\n",
			rec.Hour+1,
			rec.Weather.Temperature,
			rec.Weather.Humidity,
			rec.Weather.WindSpeed,
			rec.Metrics.BurnedAreaHectares,
			rec.Metrics.FirePerimeterKM,
			rec.Metrics.FireIntensity,
			rec.Metrics.NewIgnitions,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if final, ok := run.FinalState(); ok {
		fmt.Fprintf(w, "\nfinal: %.2f ha burned, %.2f km perimeter\n", final.Metrics.BurnedAreaHectares, final.Metrics.FirePerimeterKM)
	} else {
		fmt.Fprintln(w, "\nno steps simulated")
	}
	for _, r := range a.Recommendations {
		fmt.Fprintf(w, "- %s\n", r)
	}
	return nil
}
