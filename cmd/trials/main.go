package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"wildfire-ca/internal/config"
	"wildfire-ca/internal/observability"
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
	trials := flag.Int("trials", 20, "number of independent runs")
	hours := flag.Int("hours", cfg.DurationHours, "simulated hours per run")
	size := flag.Int("size", cfg.GridSize, "grid width and height")
	seed := flag.Int64("seed", cfg.Seed, "seed of the first run; run i uses seed+i")
	lat := flag.Float64("lat", def.Lat, "ignition latitude")
	lng := flag.Float64("lng", def.Lng, "ignition longitude")
	temp := flag.Float64("temperature", def.Weather.Temperature, "base temperature (°C)")
	humidity := flag.Float64("humidity", def.Weather.Humidity, "base relative humidity (%)")
	windSpeed := flag.Float64("wind-speed", def.Weather.WindSpeed, "base wind speed (km/h)")
	windDir := flag.Float64("wind-dir", def.Weather.WindDirection, "wind direction in degrees")
	asJSON := flag.Bool("json", false, "print the summary as JSON")
	var overrides kvList
	flag.Var(&overrides, "set", "engine parameter override in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{
		"size": strconv.Itoa(*size),
		"seed": strconv.FormatInt(*seed, 10),
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		opts[parts[0]] = parts[1]
	}
	simCfg := firespread.FromMap(opts)

	req := scenario.Request{
		Lat:           *lat,
		Lng:           *lng,
		DurationHours: *hours,
		Weather: firespread.Weather{
			WindSpeed:     *windSpeed,
			WindDirection: *windDir,
			Temperature:   *temp,
			Humidity:      *humidity,
		},
	}

	// Per-run logging would drown the summary.
	quiet := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	summary, err := scenario.NewDriver(simCfg, scenario.WithLogger(quiet)).Trials(req, *trials)
	if err != nil {
		logger.Error("trials failed", "error", err)
		os.Exit(1)
	}
	logger.Info("trials finished", "trials", summary.Trials, "hours", len(summary.Hours))

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			logger.Error("failed to write output", "error", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%d trials, seeds %d..%d\n\n", summary.Trials, summary.Seeds[0], summary.Seeds[len(summary.Seeds)-1])
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "hour\tburned ha\tstd ha\tperimeter km\tintensity\tnew cells\t")
	for _, h := range summary.Hours {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.3f\t%.1f\t\n",
			h.Hour+1, h.MeanBurnedArea, h.StdDevBurnedArea, h.MeanPerimeter, h.MeanIntensity, h.MeanNewIgnitions)
	}
	tw.Flush()
}
