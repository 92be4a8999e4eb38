// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package nps computes Net Promoter Score statistics.

# Categories

Scores map to fixed buckets:

	9-10  promoter
	7-8   passive
	0-6   detractor

# Computation

	stats := nps.ComputeStats(responses)

Each category percentage is round(100 * count / total), rounded half
away from zero, so 12.5 becomes 13. The NPS is the promoter percentage
minus the detractor percentage, in [-100, 100]. Because every
percentage is rounded separately the three need not add up to 100.

With no responses, every field is zero and the NPS is the "no data"
sentinel (see models.NPSValue).
*/
package nps
