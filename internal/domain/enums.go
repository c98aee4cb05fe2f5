package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles  StrategyTier = iota // singles / sole candidates
	StrategyPairs                        // naked/hidden pairs
	StrategyAdvanced                     // pointing/claiming, triples, etc.
)

// Outcome is the three-valued result of a solve: a complete assignment
// was found, the search space was exhausted without one, or the search
// stopped early on a canceled context. Unsolvable is a legitimate
// answer, not an error.
type Outcome int

const (
	Solved Outcome = iota
	Unsolvable
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	default:
		return "aborted"
	}
}
