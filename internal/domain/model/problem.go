package model

import (
	"time"
)

type ProblemDifficulty string
type ProblemCategory string

const (
	DifficultyEasy   ProblemDifficulty = "easy"
	DifficultyMedium ProblemDifficulty = "medium"
	DifficultyHard   ProblemDifficulty = "hard"
	DifficultyExpert ProblemDifficulty = "expert"
)

const (
	CategoryArrays             ProblemCategory = "arrays"
	CategoryStrings            ProblemCategory = "strings"
	CategorySorting            ProblemCategory = "sorting"
	CategorySearching          ProblemCategory = "searching"
	CategoryDynamicProgramming ProblemCategory = "dynamic-programming"
	CategoryGreedy             ProblemCategory = "greedy"
	CategoryGraphs             ProblemCategory = "graphs"
	CategoryTrees              ProblemCategory = "trees"
	CategoryMath               ProblemCategory = "math"
	CategoryImplementation     ProblemCategory = "implementation"
)

// AllDifficulties is ordered from easiest to hardest; limits grow along it.
var AllDifficulties = []ProblemDifficulty{
	DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert,
}

var AllCategories = []ProblemCategory{
	CategoryArrays, CategoryStrings, CategorySorting, CategorySearching,
	CategoryDynamicProgramming, CategoryGreedy, CategoryGraphs, CategoryTrees,
	CategoryMath, CategoryImplementation,
}

type TestCase struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	IsHidden bool   `json:"is_hidden,omitempty"`
}

type Problem struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Slug           string            `json:"slug"`
	Description    string            `json:"description"`
	Difficulty     ProblemDifficulty `json:"difficulty"`
	Categories     []ProblemCategory `json:"categories"`
	Constraints    string            `json:"constraints"`
	InputFormat    string            `json:"input_format"`
	OutputFormat   string            `json:"output_format"`
	SampleInput    string            `json:"sample_input"`
	SampleOutput   string            `json:"sample_output"`
	Explanation    string            `json:"explanation,omitempty"`
	TestCases      []TestCase        `json:"test_cases"`
	TimeLimit      int               `json:"time_limit_ms"`
	MemoryLimit    int               `json:"memory_limit_kb"`
	CreatedBy      string            `json:"created_by"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      *time.Time        `json:"updated_at,omitempty"`
	ExpectedOutput string            `json:"expected_output"`
}
