package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/astrokit/streakfinder/internal/pipeline"
)

var (
	flagJSON     bool
	flagNoReport bool
)

var detectCmd = &cobra.Command{
	Use:   "detect <image> [<image>...]",
	Short: "Detect streaks in one or more images",
	Long: `Detect runs the full pipeline on each input: background estimation,
contour tracing, shape filtering and fragment linking. Inputs are processed
concurrently and results are printed in input order.

Unless --no-report is given, a plain text report (streaks.txt) is written to
a directory named after each input file, optionally under --output.

Supported inputs are FITS files (.fits, .fit, .fts) and common raster
formats such as PNG, JPEG, GIF, TIFF and BMP.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetect,
}

func init() {
	def := pipeline.DefaultConfig()

	f := detectCmd.Flags()
	f.Float64(cfgKeyContourThreshold, def.ContourThreshold, "contour level in units of background sigma")
	f.Float64(cfgKeyClipSigma, def.ClipSigma, "sigma clipping bound for background estimation")
	f.Float64(cfgKeySmoothSigma, def.SmoothSigma, "Gaussian smoothing sigma in pixels (0 disables)")
	f.Int(cfgKeyMinPoints, def.Params.MinPoints, "minimum contour points per edge")
	f.Float64(cfgKeyShapeMax, def.Params.ShapeFactorMax, "maximum shape factor (1 is a circle)")
	f.Float64(cfgKeyRadiusDevMin, def.Params.RadiusDeviationMin, "minimum radius deviation")
	f.Float64(cfgKeyAreaMin, def.Params.AreaMin, "minimum edge area in square pixels")
	f.Float64(cfgKeyAreaMax, def.Params.AreaMax, "maximum edge area in square pixels (0 disables)")
	f.Float64(cfgKeyPerimeterMin, def.Params.PerimeterMin, "minimum edge perimeter in pixels (0 disables)")
	f.Float64(cfgKeySlopeTolerance, def.Params.SlopeToleranceDeg, "maximum slope difference between linked edges, degrees")
	f.Float64(cfgKeyOffsetMax, def.Params.MaxColinearOffset, "maximum perpendicular offset between linked edges, pixels")
	f.String(cfgKeyOutput, def.OutputDir, "parent directory for report output (default: the current directory)")
	f.BoolVar(&flagJSON, "json", false, "print results as JSON")
	f.BoolVar(&flagNoReport, "no-report", false, "do not write streaks.txt reports")
}

// detectOutput is the per-input payload of the JSON output.
type detectOutput struct {
	*pipeline.Result
	Streaks    []pipeline.StreakSummary `json:"streaks"`
	ReportPath string                   `json:"report_path,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	v, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	det := pipeline.New(pipelineConfig(v))

	type outcome struct {
		res *pipeline.Result
		err error
	}
	outcomes := make([]outcome, len(args))

	var wg sync.WaitGroup
	for i, path := range args {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			res, err := det.Run(path)
			outcomes[i] = outcome{res: res, err: err}
		}(i, path)
	}
	wg.Wait()

	outputs := make([]detectOutput, 0, len(args))
	var failed int
	for i, out := range outcomes {
		if out.err != nil {
			failed++
			log.Printf("%s: %v", args[i], out.err)
			continue
		}

		streaks, err := out.res.Streaks()
		if err != nil {
			failed++
			log.Printf("%s: %v", args[i], err)
			continue
		}

		o := detectOutput{Result: out.res, Streaks: streaks}
		if !flagNoReport {
			path, err := det.WriteReport(out.res)
			if err != nil {
				failed++
				log.Printf("%s: %v", args[i], err)
				continue
			}
			o.ReportPath = path
		}
		outputs = append(outputs, o)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outputs); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	} else {
		for _, o := range outputs {
			printResult(o)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(args))
	}
	return nil
}

// printResult writes the human-readable summary for one input to stdout.
func printResult(o detectOutput) {
	fmt.Printf("%s: %d contours, %d streak edges, %d streaks\n",
		o.Input, o.ContourCount, len(o.Edges), len(o.Streaks))
	for _, s := range o.Streaks {
		fmt.Printf("  streak at (%.1f, %.1f) size %.1fx%.1f, edges %v\n",
			s.Box.X, s.Box.Y, s.Box.Width, s.Box.Height, s.Members)
	}
	if o.ReportPath != "" {
		fmt.Printf("  report: %s\n", o.ReportPath)
	}
}
