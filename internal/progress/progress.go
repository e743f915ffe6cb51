// Package progress turns raw completion counts into a per-goal growth
// score and its symbolic growth stage.
package progress

import "aaru/internal/model"

// Each habit contributes a fixed quota of completions toward its goal.
const completionQuota = 10

type Stage string

const (
	StageSeed    Stage = "seed"
	StageSprout  Stage = "sprout"
	StageSapling Stage = "sapling"
	StageTree    Stage = "tree"
)

// Growth computes the 0-100 saturating growth score for goalID from the
// habits attached to it. All completions count equally across all time:
// no decay, no recency weighting, no per-frequency normalization. A goal
// with no habits scores 0.
func Growth(goalID string, habits []model.Habit) float64 {
	var habitCount, completions int
	for i := range habits {
		if habits[i].GoalID != goalID {
			continue
		}
		habitCount++
		completions += len(habits[i].CompletedDates)
	}
	if habitCount == 0 {
		return 0
	}
	target := float64(habitCount * completionQuota)
	score := float64(completions) / target * 100
	if score > 100 {
		return 100
	}
	return score
}

// StageFor maps a growth score to its stage symbol. The thresholds are a
// fixed UI contract: 0 is a seed, below 30 a sprout, below 70 a sapling,
// anything above a tree.
func StageFor(growth float64) Stage {
	switch {
	case growth == 0:
		return StageSeed
	case growth < 30:
		return StageSprout
	case growth < 70:
		return StageSapling
	default:
		return StageTree
	}
}
