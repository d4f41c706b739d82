package pricing

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrServiceNotSelected = errors.New("no service selected")
	ErrServiceNotFound    = errors.New("service offering not found")
	ErrInvalidComplexity  = errors.New("complexity rank out of range")
	ErrInvalidTimeline    = errors.New("timeline rank out of range")
)

// CostEstimate is the full breakdown for one estimate computation. It is
// derived on demand and never persisted.

type CostEstimate struct {
	ServiceID            string  `json:"service_id"`
	ServiceName          string  `json:"service_name"`
	BasePrice            float64 `json:"base_price"`
	FeatureCost          float64 `json:"feature_cost"`
	ComplexityMultiplier float64 `json:"complexity_multiplier"`
	TimelineMultiplier   float64 `json:"timeline_multiplier"`
	TotalCost            float64 `json:"total_cost"`
}

// EstimateCost computes the cost breakdown for a service plus selected
// add-ons under the given complexity/timeline ranks.
//
// Unknown feature ids contribute zero (treated as not selected); an unknown
// service id is an error. The total is rounded half-up so the displayed and
// stored totals always agree.
func EstimateCost(serviceID string, featureIDs []string, complexityRank, timelineRank int) (CostEstimate, error) {
	if serviceID == "" {
		return CostEstimate{}, ErrServiceNotSelected
	}
	svc, ok := FindService(serviceID)
	if !ok {
		return CostEstimate{}, ErrServiceNotFound
	}
	cm, ok := ComplexityMultiplier(complexityRank)
	if !ok {
		return CostEstimate{}, ErrInvalidComplexity
	}
	tm, ok := TimelineMultiplier(timelineRank)
	if !ok {
		return CostEstimate{}, ErrInvalidTimeline
	}

	featureCost := 0.0
	seen := map[string]bool{}
	for _, id := range featureIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if f, ok := FindFeature(id); ok {
			featureCost += f.Price
		}
	}

	total := roundHalfUp((svc.BasePrice + featureCost) * cm * tm)

	return CostEstimate{
		ServiceID:            svc.ID,
		ServiceName:          svc.Name,
		BasePrice:            svc.BasePrice,
		FeatureCost:          featureCost,
		ComplexityMultiplier: cm,
		TimelineMultiplier:   tm,
		TotalCost:            total,
	}, nil
}

// roundHalfUp rounds to the nearest integer with .5 going up. Totals are
// non-negative, so flooring x+0.5 is exact.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// EstimatorState is the caller-owned selection backing the cost calculator
// UI. It is a plain value; nothing here is shared or persisted.

type EstimatorState struct {
	ServiceID      string
	selectedIDs    map[string]struct{}
	ComplexityRank int
	TimelineRank   int
}

// NewEstimatorState returns the initial state: no service, no features,
// both ranks at 1.
func NewEstimatorState() EstimatorState {
	return EstimatorState{
		selectedIDs:    map[string]struct{}{},
		ComplexityRank: MinComplexityRank,
		TimelineRank:   MinTimelineRank,
	}
}

// ToggleFeature flips membership of a feature id in the selection. Toggling
// twice restores the prior selection exactly.
func (s *EstimatorState) ToggleFeature(id string) {
	if s.selectedIDs == nil {
		s.selectedIDs = map[string]struct{}{}
	}
	if _, ok := s.selectedIDs[id]; ok {
		delete(s.selectedIDs, id)
		return
	}
	s.selectedIDs[id] = struct{}{}
}

// SelectedFeatures returns the selected ids in stable (sorted) order.
func (s *EstimatorState) SelectedFeatures() []string {
	out := make([]string, 0, len(s.selectedIDs))
	for id := range s.selectedIDs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Reset clears the state back to its initial values and discards any
// previously computed estimate.
func (s *EstimatorState) Reset() {
	*s = NewEstimatorState()
}

// Estimate computes the breakdown for the current selection.
func (s *EstimatorState) Estimate() (CostEstimate, error) {
	return EstimateCost(s.ServiceID, s.SelectedFeatures(), s.ComplexityRank, s.TimelineRank)
}
