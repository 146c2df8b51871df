// Package stats derives per-farm counts from the current store state.
// Read-only, recomputed per call.
package stats

import (
	"time"

	"arboria/pkg/apperr"
	interrepo "arboria/pkg/intervention/repository"
	treerepo "arboria/pkg/tree/repository"
)

const recentPlantingWindow = 30 * 24 * time.Hour

type Summary struct {
	Total               int            `json:"total"`
	Good                int            `json:"good"`
	Fair                int            `json:"fair"`
	Poor                int            `json:"poor"`
	Dead                int            `json:"dead"`
	ByHealth            map[string]int `json:"by_health"`
	SpeciesCount        map[string]int `json:"species_count"`
	RecentPlantings     int            `json:"recent_plantings"`
	TotalInterventions  int            `json:"total_interventions"`
	InterventionsByType map[string]int `json:"interventions_by_type"`
}

type Aggregator struct {
	trees         treerepo.TreeRepository
	interventions interrepo.InterventionRepository
	now           func() time.Time
}

func New(trees treerepo.TreeRepository, interventions interrepo.InterventionRepository) *Aggregator {
	return &Aggregator{trees: trees, interventions: interventions, now: time.Now}
}

func (a *Aggregator) Statistics(farmID string) (*Summary, error) {
	trees, err := a.trees.List(farmID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "list trees", err)
	}

	s := &Summary{
		Total:               len(trees),
		ByHealth:            map[string]int{},
		SpeciesCount:        map[string]int{},
		InterventionsByType: map[string]int{},
	}

	treeIDs := make([]string, 0, len(trees))
	cutoff := a.now().Add(-recentPlantingWindow)
	for _, t := range trees {
		treeIDs = append(treeIDs, t.ID)

		health := t.Health
		if health == "" {
			health = "good"
		}
		// unknown health values land under their literal key
		s.ByHealth[health]++
		switch health {
		case "good":
			s.Good++
		case "fair":
			s.Fair++
		case "poor":
			s.Poor++
		case "dead":
			s.Dead++
		}

		species := t.Species
		if species == "" {
			species = "Unknown"
		}
		s.SpeciesCount[species]++

		if d, ok := parsePlantDate(t.PlantDate); ok && d.After(cutoff) {
			s.RecentPlantings++
		}
	}

	ivs, err := a.interventions.ListByTreeIDs(treeIDs)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "list interventions", err)
	}
	s.TotalInterventions = len(ivs)
	for _, iv := range ivs {
		t := iv.Type
		if t == "" {
			t = "other"
		}
		s.InterventionsByType[t]++
	}
	return s, nil
}

var plantDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parsePlantDate is deliberately lenient: offline clients store the date in a
// few shapes, and a bad date only means the tree is skipped for the
// recent-plantings count.
func parsePlantDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range plantDateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
