package model

type ProblemDifficulty string

const (
	DifficultyEasy   ProblemDifficulty = "Easy"
	DifficultyMedium ProblemDifficulty = "Medium"
	DifficultyHard   ProblemDifficulty = "Hard"
)

// Problem is a single catalog entry. The catalog is built once at startup
// and never mutated, so values are shared freely between handlers.
// WorkingSolution is only populated on the detail view.
type Problem struct {
	ID              int               `json:"id"`
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Difficulty      ProblemDifficulty `json:"difficulty"`
	Tags            []string          `json:"tags"`
	SolvedCount     int               `json:"solvedCount"`
	SuccessRate     int               `json:"successRate"`
	Description     string            `json:"description"`
	InputFormat     string            `json:"inputFormat"`
	OutputFormat    string            `json:"outputFormat"`
	Constraints     string            `json:"constraints"`
	Examples        []Example         `json:"examples"`
	Hints           []string          `json:"hints"`
	StarterCode     string            `json:"starterCode"`
	WorkingSolution string            `json:"workingSolution,omitempty"`
}

type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}
