// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nps

import (
	"math"

	"github.com/danielhkuo/quickly-nps/models"
)

// Category is the NPS bucket a score falls into
type Category string

const (
	Promoter  Category = "promoter"
	Passive   Category = "passive"
	Detractor Category = "detractor"
)

// Category boundaries of the NPS methodology
const (
	PromoterMin = 9
	PassiveMin  = 7
)

// Categorize maps a 0-10 score to its category.
// Out-of-range scores still land in the nearest bucket.
func Categorize(score int) Category {
	if score >= PromoterMin {
		return Promoter
	}
	if score >= PassiveMin {
		return Passive
	}
	return Detractor
}

// ComputeStats aggregates a response collection. It has no side effects.
func ComputeStats(responses []models.Response) models.Stats {
	if len(responses) == 0 {
		return models.Stats{}
	}

	counts := make(map[Category]int, 3)
	for _, r := range responses {
		counts[Categorize(r.Score)]++
	}

	total := len(responses)
	pProm := percentage(counts[Promoter], total)
	pPass := percentage(counts[Passive], total)
	pDet := percentage(counts[Detractor], total)

	return models.Stats{
		Total:          total,
		Promoters:      pProm,
		Passives:       pPass,
		Detractors:     pDet,
		NPS:            models.NewNPS(pProm - pDet),
		PromoterCount:  counts[Promoter],
		PassiveCount:   counts[Passive],
		DetractorCount: counts[Detractor],
	}
}

// percentage rounds 100*count/total half away from zero.
// Each category is rounded on its own; no remainder redistribution.
func percentage(count, total int) int {
	return int(math.Round(100 * float64(count) / float64(total)))
}
