package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]Iteration{
		{Depth: 1, Nodes: 10, Elapsed: time.Millisecond},
		{Depth: 2, Nodes: 100, Elapsed: 3 * time.Millisecond},
		{Depth: 3, Nodes: 1000, Elapsed: 20 * time.Millisecond},
	})
	assert.InDelta(t, 10.0, s.BranchingFactor, 1e-9)
	assert.InDelta(t, 370.0, s.MeanNodes, 1e-9)
	assert.Equal(t, 3*time.Millisecond, s.MedianElapsed)
}

func TestSummarizeSinglePass(t *testing.T) {
	s := Summarize([]Iteration{{Depth: 2, Nodes: 400}})
	assert.Zero(t, s.BranchingFactor)
	assert.Equal(t, 400.0, s.MeanNodes)
	assert.Zero(t, Summarize(nil))
}
