package engine

import (
	"time"

	"github.com/montanaflynn/stats"
)

// Summary describes how the passes of one Think call grew.
type Summary struct {
	// BranchingFactor is the geometric mean of the node count growth between
	// consecutive depths. Zero with fewer than two passes.
	BranchingFactor float64       `json:"branchingFactor"`
	MeanNodes       float64       `json:"meanNodes"`
	MedianElapsed   time.Duration `json:"medianElapsed"`
}

func Summarize(its []Iteration) Summary {
	var summary Summary
	if len(its) == 0 {
		return summary
	}

	nodes := make(stats.Float64Data, 0, len(its))
	elapsed := make(stats.Float64Data, 0, len(its))
	growth := make(stats.Float64Data, 0, len(its))
	for i, it := range its {
		nodes = append(nodes, float64(it.Nodes))
		elapsed = append(elapsed, float64(it.Elapsed))
		if i > 0 && its[i-1].Nodes > 0 {
			growth = append(growth, float64(it.Nodes)/float64(its[i-1].Nodes))
		}
	}

	if mean, err := stats.Mean(nodes); err == nil {
		summary.MeanNodes = mean
	}
	if median, err := stats.Median(elapsed); err == nil {
		summary.MedianElapsed = time.Duration(median)
	}
	if len(growth) > 0 {
		if gm, err := stats.GeometricMean(growth); err == nil {
			summary.BranchingFactor = gm
		}
	}
	return summary
}
