package service

import (
	"math"

	"github.com/AngelaMMoreno/testbot.git/internal/models"
)

// wrongPenalty is the fraction of a point each wrong answer subtracts.
const wrongPenalty = 1.0 / 3.0

// Grade is the linear negative-marking grade on a 0..10 scale. Unanswered
// questions count only through the denominator.
func Grade(ok, fail, total int) float64 {
	if total <= 0 {
		return 0
	}
	raw := (float64(ok) - wrongPenalty*float64(fail)) / float64(total)
	if raw < 0 {
		raw = 0
	}
	return raw * 10
}

func directScore(plan *models.ExamPlan) float64 {
	p1 := float64(plan.P1Correct) - wrongPenalty*float64(plan.P1Wrong)
	if p1 < 0 {
		p1 = 0
	}
	p2 := float64(plan.P2Correct) - wrongPenalty*float64(plan.P2Wrong)
	if p2 < 0 {
		p2 = 0
	}
	return p1 + plan.Part2Weight*p2
}

// rawMax is the best achievable direct score for a source of the given
// size: one point per part-1 question, Part2Weight per part-2 question.
func rawMax(plan *models.ExamPlan, total int) float64 {
	part1 := total
	if part1 > plan.Part1Size {
		part1 = plan.Part1Size
	}
	part2 := total - part1
	return float64(part1) + plan.Part2Weight*float64(part2)
}

// cutoffScore locates the score whose rank first reaches the reference
// headcount in a historical table: the exact entry when present, linear
// interpolation between the bracketing entries otherwise. The result
// never drops below the floor. Entries are ordered best first.
func cutoffScore(entries []models.ScoreEntry, referenceRank int, floor float64) float64 {
	if len(entries) == 0 {
		return floor
	}

	cutoff := entries[len(entries)-1].Score
	for i, entry := range entries {
		if entry.Rank == referenceRank {
			cutoff = entry.Score
			break
		}
		if entry.Rank > referenceRank {
			if i == 0 {
				cutoff = entry.Score
				break
			}
			prev := entries[i-1]
			span := float64(entry.Rank - prev.Rank)
			frac := float64(referenceRank-prev.Rank) / span
			cutoff = prev.Score + frac*(entry.Score-prev.Score)
			break
		}
	}

	if cutoff < floor {
		cutoff = floor
	}
	return cutoff
}

// normalizedScore maps a raw score onto 0..scaleMax, anchoring the
// cutoff at the midpoint: linear from 0 to scaleMax/2 below the cutoff,
// linear from scaleMax/2 to scaleMax between cutoff and rawMax.
func normalizedScore(raw, cutoff, rawMax, scaleMax float64) float64 {
	half := scaleMax / 2
	if raw < cutoff {
		if cutoff <= 0 {
			return 0
		}
		return half * raw / cutoff
	}
	if rawMax <= cutoff {
		return half
	}
	return half + half*(raw-cutoff)/(rawMax-cutoff)
}

// estimateRank inverse-interpolates a raw score against a historical
// table: rank 1 at or above the best score, one past the worst rank
// below the worst score, linear interpolation in between.
func estimateRank(entries []models.ScoreEntry, raw float64) int {
	if len(entries) == 0 {
		return 0
	}
	if raw >= entries[0].Score {
		return entries[0].Rank
	}
	worst := entries[len(entries)-1]
	if raw < worst.Score {
		return worst.Rank + 1
	}

	for i := 1; i < len(entries); i++ {
		upper := entries[i-1]
		lower := entries[i]
		if raw >= lower.Score {
			span := upper.Score - lower.Score
			if span <= 0 {
				return lower.Rank
			}
			frac := (upper.Score - raw) / span
			return upper.Rank + int(math.Round(frac*float64(lower.Rank-upper.Rank)))
		}
	}

	return worst.Rank
}

// ExamOutcome computes the full simulacro breakdown for a finished exam
// run over a source of the given original size.
func ExamOutcome(plan *models.ExamPlan, total, unanswered int) models.ExamResult {
	result := models.ExamResult{
		Part1Correct: plan.P1Correct,
		Part1Wrong:   plan.P1Wrong,
		Part2Correct: plan.P2Correct,
		Part2Wrong:   plan.P2Wrong,
		Unanswered:   unanswered,
		ScaleMax:     plan.ScaleMax,
	}

	result.DirectScore = directScore(plan)
	result.RawMax = rawMax(plan, total)

	floor := plan.FloorFraction * result.RawMax

	var cutoffs []float64
	for _, table := range plan.Tables {
		cutoffs = append(cutoffs, cutoffScore(table.Entries, plan.ReferenceRank, floor))
		result.Ranks = append(result.Ranks, models.RankEstimate{
			Table: table.Name,
			Rank:  estimateRank(table.Entries, result.DirectScore),
		})
	}

	switch len(cutoffs) {
	case 0:
		fallback := result.RawMax / 2
		if fallback < floor {
			fallback = floor
		}
		result.CutoffOptimistic = fallback
		result.CutoffPessimistic = fallback
	case 1:
		result.CutoffOptimistic = cutoffs[0]
		result.CutoffPessimistic = cutoffs[0]
	default:
		result.CutoffOptimistic = math.Min(cutoffs[0], cutoffs[1])
		result.CutoffPessimistic = math.Max(cutoffs[0], cutoffs[1])
	}
	result.CutoffMean = (result.CutoffOptimistic + result.CutoffPessimistic) / 2

	result.Normalized = normalizedScore(result.DirectScore, result.CutoffMean, result.RawMax, plan.ScaleMax)

	switch {
	case result.DirectScore < floor:
		result.Verdict = models.VerdictFail
	case result.DirectScore >= result.CutoffPessimistic:
		result.Verdict = models.VerdictPass
	case result.DirectScore >= result.CutoffOptimistic:
		result.Verdict = models.VerdictBorderline
	default:
		result.Verdict = models.VerdictFail
	}

	return result
}
