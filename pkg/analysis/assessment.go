// Package analysis turns a clock-face selection into the categorical inputs
// of the surgical-failure risk model.
package analysis

import (
	"fmt"

	"github.com/philipparndt/rdclock/pkg/clock"
	"github.com/philipparndt/rdclock/pkg/hours"
	"github.com/philipparndt/rdclock/pkg/selection"
)

// Assessment bundles everything the risk model and the result panel need
type Assessment struct {
	Detachment     Extent
	BreakLocation  BreakLocation
	DetachmentText string
	TearText       string
	CoveredHours   clock.HourSet
	InferiorHours  int
	Total          bool
	SegmentCount   int
}

// Assess evaluates a selection snapshot. Hover state is ignored.
func Assess(state selection.State) *Assessment {
	covered := hours.DetachmentHours(state.Detachment)

	return &Assessment{
		Detachment:     categorize(covered),
		BreakLocation:  BreakLocationCategory(state.Tears),
		DetachmentText: hours.Format(covered),
		TearText:       hours.FormatTears(state.Tears),
		CoveredHours:   covered,
		InferiorHours:  countInferior(covered),
		Total:          covered.Len() >= TotalDetachmentHours,
		SegmentCount:   state.Detachment.Len(),
	}
}

// Summary renders the assessment as a few lines of text
func (a *Assessment) Summary() string {
	return fmt.Sprintf(
		"Detachment: %s\nTears: %s\nExtent category: %s\nBreak location: %s\nInferior hours: %d",
		a.DetachmentText,
		a.TearText,
		a.Detachment,
		a.BreakLocation,
		a.InferiorHours,
	)
}
