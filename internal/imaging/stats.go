package imaging

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// NoiseStats summarizes the sky background of a grid.
type NoiseStats struct {
	// Mean is the mean of the surviving samples.
	Mean float64 `json:"mean"`

	// Median is the empirical median of the surviving samples.
	Median float64 `json:"median"`

	// Std is the sample standard deviation of the surviving samples.
	Std float64 `json:"std"`
}

// SigmaClippedStats estimates background statistics robust to bright
// sources.
//
// The estimate iterates up to maxIters times: compute the median and
// standard deviation of the surviving samples, then discard samples
// farther than sigma standard deviations from the median. Iteration stops
// early once no sample is discarded. NaN samples are excluded before the
// first pass; an empty or all-NaN input yields a zero NoiseStats.
//
// Parameters:
//   - values: Input samples. The slice is not modified.
//   - sigma: Clip width in standard deviations. Typical value is 3.
//   - maxIters: Upper bound on clipping passes.
//
// Returns:
//   - NoiseStats: Statistics of the samples that survived clipping.
func SigmaClippedStats(values []float64, sigma float64, maxIters int) NoiseStats {
	work := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			work = append(work, v)
		}
	}
	if len(work) == 0 {
		return NoiseStats{}
	}
	sort.Float64s(work)

	var stats NoiseStats
	for iter := 0; ; iter++ {
		stats.Median = stat.Quantile(0.5, stat.Empirical, work, nil)
		if len(work) < 2 {
			stats.Mean = work[0]
			stats.Std = 0
			break
		}
		stats.Mean, stats.Std = stat.MeanStdDev(work, nil)
		if iter >= maxIters {
			break
		}

		lo := stats.Median - sigma*stats.Std
		hi := stats.Median + sigma*stats.Std
		from := sort.Search(len(work), func(i int) bool { return work[i] >= lo })
		to := sort.Search(len(work), func(i int) bool { return work[i] > hi })
		if from == 0 && to == len(work) {
			break
		}
		if to-from < 1 {
			break
		}
		work = work[from:to]
	}
	return stats
}
