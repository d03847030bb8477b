// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aislenav/gridgraph"
	"github.com/katalvlaran/aislenav/internal/config"
	"github.com/katalvlaran/aislenav/internal/logging"
	"github.com/katalvlaran/aislenav/internal/metrics"
	"github.com/katalvlaran/aislenav/route"
	"github.com/katalvlaran/aislenav/tsp"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// input is the request document: a route request plus an optional
// pre-built occupancy grid (rows of 0/1).
type input struct {
	route.Request
	Rows [][]int `json:"grid,omitempty"`
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:           "aislenav",
		Short:         "Plan shopping routes over store floor plans",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&rf.configPath, "config", os.Getenv("AISLENAV_CONFIG"), "YAML configuration file")
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&rf.logFormat, "log-format", "", "override log format (text, json)")

	root.AddCommand(newPlanCmd(rf), newRasterCmd(rf), newConfigCmd(rf))

	return root
}

// setup loads configuration and builds the logger, applying flag overrides.
func (rf *rootFlags) setup(stderr io.Writer) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(rf.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if rf.logLevel != "" {
		cfg.Log.Level = rf.logLevel
	}
	if rf.logFormat != "" {
		cfg.Log.Format = rf.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}
	cfg.Log.Writer = stderr

	return cfg, logging.New(cfg.Log), nil
}

func newPlanCmd(rf *rootFlags) *cobra.Command {
	var (
		inPath      string
		outPath     string
		format      string
		categories  string
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute an ordered route with per-leg paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "json" && format != "geojson" {
				return fmt.Errorf("unknown format %q", format)
			}
			cfg, log, err := rf.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			req, err := readInput(inPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if categories != "" {
				req.Stops = route.SelectStops(req.Stops, splitList(categories))
			}

			reg := prometheus.NewRegistry()
			m, err := metrics.New(reg)
			if err != nil {
				return err
			}
			opts, err := plannerOptions(cfg, log, m)
			if err != nil {
				return err
			}

			plan, err := route.New(opts...).Plan(cmd.Context(), req)
			if err != nil {
				return err
			}
			if metricsFile != "" {
				if err = metrics.WriteTextfile(metricsFile, reg); err != nil {
					log.Warn("metrics textfile not written", "path", metricsFile, "err", err)
				}
			}

			var doc any = plan
			if format == "geojson" {
				doc = plan.GeoJSON()
			}

			return writeJSON(outPath, cmd.OutOrStdout(), doc)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&inPath, "input", "i", "-", "request JSON file, - for stdin")
	f.StringVarP(&outPath, "output", "o", "-", "output file, - for stdout")
	f.StringVar(&format, "format", "json", "output format: json or geojson")
	f.StringVar(&categories, "categories", "", "comma-separated categories to visit")
	f.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

func newRasterCmd(rf *rootFlags) *cobra.Command {
	var (
		inPath string
		buffer int
		window string
	)
	cmd := &cobra.Command{
		Use:   "raster",
		Short: "Rasterize the layout and print the occupancy grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := rf.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			req, err := readInput(inPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if buffer < 0 {
				buffer = cfg.Buffer.Radius
			}

			opts, err := plannerOptions(cfg, log, nil)
			if err != nil {
				return err
			}
			planner := route.New(opts...)
			if window != "" {
				x, y, w, h, err := parseWindow(window)
				if err != nil {
					return err
				}
				g, err := planner.Window(cmd.Context(), req, x, y, w, h)
				if err != nil {
					return err
				}
				log.Info("window ready", "x", x, "y", y, "width", w, "height", h, "occupied", g.Count())
				_, err = io.WriteString(cmd.OutOrStdout(), g.String())

				return err
			}
			g, scale, err := planner.Layout(cmd.Context(), req)
			if err != nil {
				return err
			}
			if g, err = gridgraph.Buffer(g, buffer); err != nil {
				return err
			}
			regions := gridgraph.FreeRegions(g)
			log.Info("grid ready",
				"width", g.Width, "height", g.Height, "scale", scale,
				"occupied", g.Count(), "regions", regions.Count)
			_, err = io.WriteString(cmd.OutOrStdout(), g.String())

			return err
		},
	}
	cmd.Flags().StringVarP(&inPath, "input", "i", "-", "request JSON file, - for stdin")
	cmd.Flags().IntVar(&buffer, "buffer", -1, "wall buffer radius, -1 uses the configured radius")
	cmd.Flags().StringVar(&window, "window", "", "print only the full-resolution window x,y,w,h, unbuffered")

	return cmd
}

func newConfigCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := rf.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}

// plannerOptions maps configuration onto route options.
func plannerOptions(cfg config.Config, log *slog.Logger, m *metrics.Metrics) ([]route.Option, error) {
	algo, err := tsp.ParseAlgorithm(cfg.Solver.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("solver.algorithm %q: %w", cfg.Solver.Algorithm, err)
	}

	return []route.Option{
		route.WithLogger(log),
		route.WithMetrics(m),
		route.WithMargin(cfg.Grid.Margin),
		route.WithMaxCells(cfg.Grid.MaxCells),
		route.WithBatching(cfg.Grid.BatchSize, cfg.Grid.YieldEvery),
		route.WithMaxSide(cfg.Grid.MaxSide),
		route.WithSimplifyTolerance(cfg.Extract.SimplifyTolerance),
		route.WithBufferRadius(cfg.Buffer.Radius),
		route.WithClearRadius(cfg.Buffer.ClearRadius),
		route.WithWorkers(cfg.Pathfind.Workers),
		route.WithStrictCorners(cfg.Pathfind.StrictCorners),
		route.WithAlgorithm(algo),
		route.WithTwoOptMaxSweeps(cfg.Solver.MaxSweeps),
		route.WithTimeLimit(cfg.Solver.TimeLimit),
	}, nil
}

func readInput(path string, stdin io.Reader) (route.Request, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return route.Request{}, err
		}
		defer f.Close()
		r = f
	}

	var in input
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&in); err != nil {
		return route.Request{}, fmt.Errorf("decode request: %w", err)
	}
	if len(in.Rows) > 0 {
		g, err := gridgraph.FromRows(in.Rows)
		if err != nil {
			return route.Request{}, fmt.Errorf("decode grid: %w", err)
		}
		in.Request.Grid = g
	}

	return in.Request, nil
}

func writeJSON(path string, stdout io.Writer, v any) error {
	w := stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// parseWindow reads "x,y,w,h".
func parseWindow(s string) (x, y, w, h int, err error) {
	parts := splitList(s)
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("window %q: want x,y,w,h", s)
	}
	var v [4]int
	for i, part := range parts {
		if v[i], err = strconv.Atoi(part); err != nil {
			return 0, 0, 0, 0, fmt.Errorf("window %q: %w", s, err)
		}
	}

	return v[0], v[1], v[2], v[3], nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
