package models

// ScoreEntry is one row of a historical score→rank table. Entries are
// ordered best first: rank 1 carries the highest score.
type ScoreEntry struct {
	Score float64 `mapstructure:"score"`
	Rank  int     `mapstructure:"rank"`
}

type ScoreTable struct {
	Name    string       `mapstructure:"name"`
	Entries []ScoreEntry `mapstructure:"entries"`
}

// ExamPlan is the scoring configuration plus the per-part counters of a
// running simulated exam. Part 1 is the first Part1Size questions of the
// source; the remainder is part 2, weighted by Part2Weight.
type ExamPlan struct {
	Part1Size     int
	Part2Weight   float64
	ScaleMax      float64
	FloorFraction float64
	ReferenceRank int
	Tables        []ScoreTable

	// Position maps question ids to their 0-based index in the full
	// original source, which decides part membership.
	Position map[int64]int

	P1Correct int
	P1Wrong   int
	P2Correct int
	P2Wrong   int
}

func (p *ExamPlan) InPart1(questionID int64) bool {
	return p.Position[questionID] < p.Part1Size
}

type Verdict string

const (
	VerdictFail       Verdict = "fail"
	VerdictBorderline Verdict = "borderline"
	VerdictPass       Verdict = "pass"
)

type RankEstimate struct {
	Table string
	Rank  int
}

// ExamResult is the full simulacro breakdown for a finished exam run.
type ExamResult struct {
	Part1Correct int
	Part1Wrong   int
	Part2Correct int
	Part2Wrong   int
	Unanswered   int

	DirectScore float64
	RawMax      float64

	CutoffOptimistic  float64
	CutoffPessimistic float64
	CutoffMean        float64

	Normalized float64
	ScaleMax   float64

	Ranks   []RankEstimate
	Verdict Verdict
}
