// Package pipeline wires image loading, background estimation, contour
// extraction and streak classification into a single detection run.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/astrokit/streakfinder/internal/contour"
	"github.com/astrokit/streakfinder/internal/imaging"
	"github.com/astrokit/streakfinder/internal/report"
	"github.com/astrokit/streakfinder/pkg/geometry"
	"github.com/astrokit/streakfinder/pkg/streak"
)

// debug mirrors the STREAKFINDER_LOG_LEVEL environment variable checked by
// the command line entry point.
var debug = os.Getenv("STREAKFINDER_LOG_LEVEL") == "debug"

// maxClipIters bounds the background clipping passes. Sigma clipping of a
// sky frame settles within a few iterations.
const maxClipIters = 5

// Config collects every knob of a detection run.
type Config struct {
	// ContourThreshold scales the clipped background deviation into the
	// contour level: level = std * ContourThreshold.
	ContourThreshold float64 `json:"contour_threshold"`

	// ClipSigma is the width of the sigma clipping window used for
	// background estimation.
	ClipSigma float64 `json:"clip_sigma"`

	// SmoothSigma is the optional Gaussian smoothing width in pixels
	// applied before analysis. Zero disables smoothing.
	SmoothSigma float64 `json:"smooth_sigma"`

	// Params are the shape filtering and linking parameters.
	Params streak.Params `json:"params"`

	// OutputDir is the parent directory for reports. Empty means the
	// current directory.
	OutputDir string `json:"output_dir"`
}

// DefaultConfig returns the settings used when no overrides are given.
func DefaultConfig() Config {
	return Config{
		ContourThreshold: 3,
		ClipSigma:        3,
		Params:           streak.DefaultParams(),
	}
}

// Detector runs the detection pipeline with a fixed configuration.
type Detector struct {
	cfg Config
}

// New returns a Detector for the given configuration.
func New(cfg Config) *Detector {
	return &Detector{cfg: cfg}
}

// Result describes one processed frame.
type Result struct {
	// Input is the path of the processed file.
	Input string `json:"input"`

	// Width and Height are the frame dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Noise holds the sigma-clipped background statistics.
	Noise imaging.NoiseStats `json:"noise"`

	// Threshold is the contour level derived from the noise estimate,
	// relative to the subtracted background.
	Threshold float64 `json:"threshold"`

	// ContourCount is the number of contours traced before filtering.
	ContourCount int `json:"contour_count"`

	// Edges are the streak candidates that survived filtering, with
	// their connectivity assigned.
	Edges []streak.Edge `json:"edges"`

	// Elapsed is the wall clock duration of the run.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Run processes a single image file.
//
// The stages are fixed: load the frame, estimate the background with sigma
// clipping, subtract the background median, trace contours at
// std*ContourThreshold, quantify each contour, filter for streak-like
// shapes and link collinear fragments.
func (d *Detector) Run(path string) (*Result, error) {
	start := time.Now()

	grid, err := imaging.Load(path, imaging.LoadOptions{SmoothSigma: d.cfg.SmoothSigma})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	noise := imaging.SigmaClippedStats(grid.Pix, d.cfg.ClipSigma, maxClipIters)
	grid.Subtract(noise.Median)
	level := noise.Std * d.cfg.ContourThreshold

	contours := contour.FindContours(grid, level)
	edges := streak.Detect(contours, d.cfg.Params)

	res := &Result{
		Input:        path,
		Width:        grid.Width,
		Height:       grid.Height,
		Noise:        noise,
		Threshold:    level,
		ContourCount: len(contours),
		Edges:        edges,
		Elapsed:      time.Since(start),
	}

	log.Printf("%s: %d contours, %d streak edges in %s",
		filepath.Base(path), res.ContourCount, len(res.Edges), res.Elapsed.Round(time.Millisecond))
	if debug {
		min, max := grid.MinMax()
		log.Printf("%s: %dx%d, background median %.2f std %.2f, contour level %.2f, residual range [%.2f, %.2f]",
			filepath.Base(path), res.Width, res.Height, noise.Median, noise.Std, level, min, max)
	}
	return res, nil
}

// StreakSummary describes one linked chain of streak edges.
type StreakSummary struct {
	// Root is the index of the edge no other edge links to; the chain is
	// walked from here.
	Root int `json:"root"`

	// Members lists the edge indices of the chain in walk order, root
	// first.
	Members []int `json:"members"`

	// Box is the union of the member bounding boxes.
	Box geometry.Rect `json:"box"`
}

// Streaks groups the result's edges into chains, one summary per chain.
// An edge without links forms a chain of one.
func (r *Result) Streaks() ([]StreakSummary, error) {
	roots := streak.ChainRoots(r.Edges)
	summaries := make([]StreakSummary, 0, len(roots))
	for _, root := range roots {
		members, err := streak.Chain(r.Edges, root.Index)
		if err != nil {
			return nil, err
		}
		box, err := streak.ChainBox(r.Edges, root.Index)
		if err != nil {
			return nil, err
		}
		s := StreakSummary{Root: root.Index, Box: box, Members: make([]int, 0, len(members))}
		for _, m := range members {
			s.Members = append(s.Members, m.Index)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// WriteReport writes the plain text report for a result.
//
// Reports land under the configured output directory, in a subdirectory
// named after the input file without its extension, as streaks.txt. The
// directory is created as needed. Returns the report path.
func (d *Detector) WriteReport(res *Result) (string, error) {
	base := filepath.Base(res.Input)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	parent := d.cfg.OutputDir
	if parent == "" {
		parent = "."
	}
	dir := filepath.Join(parent, base)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, "streaks.txt")
	if err := report.WriteFile(path, res.Edges); err != nil {
		return "", err
	}
	return path, nil
}
