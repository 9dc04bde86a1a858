// Package catalog holds the static reference data (seed problems, badge
// table, demo users and teams) and the procedural generator that fills the
// problem catalog up to its configured size.
package catalog

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"codearena/internal/domain/model"
)

var titlePrefixes = []string{
	"Maximum", "Minimum", "Find", "Optimize", "Compute", "Solve",
	"Analyze", "Design", "Implement", "Build", "Transform", "Simulate",
	"Dynamic", "Greedy", "Recursive", "Iterative", "Parallel", "Distributed",
	"Efficient", "Fast", "Smart", "Adaptive", "Multidimensional", "Linear",
	"Nonlinear", "Probabilistic", "Statistical", "Geometric", "Algebraic", "Combinatorial",
}

var titleSuffixes = []string{
	"Sequence", "Array", "String", "Tree", "Graph", "Path",
	"Structure", "Algorithm", "Strategy", "Problem", "System", "Pattern",
	"Network", "Matrix", "Vector", "Set", "Queue", "Stack",
	"Heap", "Hash Table", "Binary Tree", "Subsequence", "Subarray", "Substring",
	"Permutation", "Combination", "Transformation", "Mapping", "Function", "Relation",
}

var constraintsByDifficulty = map[model.ProblemDifficulty]string{
	model.DifficultyEasy:   "1 <= n <= 10^3\n1 <= a[i] <= 10^4",
	model.DifficultyMedium: "1 <= n <= 10^5\n1 <= a[i] <= 10^6",
	model.DifficultyHard:   "1 <= n <= 10^6\n1 <= a[i] <= 10^9",
	model.DifficultyExpert: "1 <= n <= 10^7\n1 <= a[i] <= 10^18",
}

var timeLimitByDifficulty = map[model.ProblemDifficulty]int{
	model.DifficultyEasy:   1000,
	model.DifficultyMedium: 2000,
	model.DifficultyHard:   3000,
	model.DifficultyExpert: 5000,
}

var memoryLimitByDifficulty = map[model.ProblemDifficulty]int{
	model.DifficultyEasy:   256000,
	model.DifficultyMedium: 512000,
	model.DifficultyHard:   1024000,
	model.DifficultyExpert: 2048000,
}

var difficultyWords = map[model.ProblemDifficulty]string{
	model.DifficultyEasy:   "an easy",
	model.DifficultyMedium: "a medium",
	model.DifficultyHard:   "a hard",
	model.DifficultyExpert: "an expert",
}

// GeneratedExpectedOutput is the grading sentinel shared by every
// procedurally generated problem; only seed problems carry a pattern tied to
// an actual solution.
const GeneratedExpectedOutput = "solution"

func TimeLimitFor(d model.ProblemDifficulty) int {
	return timeLimitByDifficulty[d]
}

func MemoryLimitFor(d model.ProblemDifficulty) int {
	return memoryLimitByDifficulty[d]
}

func ConstraintsFor(d model.ProblemDifficulty) string {
	return constraintsByDifficulty[d]
}

// DifficultyForIndex assigns difficulty by contiguous index bands: the lowest
// 30% of IDs are easy, the next 30% medium, the next 25% hard, and the
// remaining 15% expert. For the default 10000-problem catalog the cutoffs are
// 3000, 6000 and 8500.
func DifficultyForIndex(id, total int) model.ProblemDifficulty {
	switch {
	case id < total*30/100:
		return model.DifficultyEasy
	case id < total*60/100:
		return model.DifficultyMedium
	case id < total*85/100:
		return model.DifficultyHard
	default:
		return model.DifficultyExpert
	}
}

// Generator synthesizes the catalog entries following the seed set. The
// random source is explicit so catalog generation is reproducible for a
// given seed.
type Generator struct {
	total int
	rng   *rand.Rand
}

func NewGenerator(total int, seed int64) *Generator {
	if total < 1 {
		total = 1
	}
	return &Generator{
		total: total,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Generate returns the full catalog: the hand-authored seed problems
// followed by dense sequential generated entries up to the target count.
// IDs are unique and contiguous starting at 1.
func (g *Generator) Generate() []model.Problem {
	problems := SeedProblems()
	for id := len(problems) + 1; id <= g.total; id++ {
		problems = append(problems, g.generateProblem(id))
	}
	return problems
}

func (g *Generator) generateProblem(id int) model.Problem {
	difficulty := DifficultyForIndex(id, g.total)
	categories := g.pickCategories()
	title := g.makeTitle(id)

	createdBy := "owner"
	if id%2 == 0 {
		createdBy = "admin"
	}

	return model.Problem{
		ID:           strconv.Itoa(id),
		Title:        title,
		Slug:         slug.Make(title),
		Description:  makeDescription(difficulty, categories),
		Difficulty:   difficulty,
		Categories:   categories,
		Constraints:  constraintsByDifficulty[difficulty],
		InputFormat:  makeInputFormat(difficulty),
		OutputFormat: "Output one or more integers describing the answer.\nEach result goes on its own line.",
		SampleInput:  "5\n1 2 3 4 5",
		SampleOutput: "15",
		TestCases: []model.TestCase{
			{Input: "5\n1 2 3 4 5", Output: "15"},
			{Input: "3\n10 20 30", Output: "60"},
		},
		TimeLimit:      timeLimitByDifficulty[difficulty],
		MemoryLimit:    memoryLimitByDifficulty[difficulty],
		CreatedBy:      createdBy,
		CreatedAt:      time.Date(2024, time.January, id/100, 0, 0, 0, 0, time.UTC),
		ExpectedOutput: GeneratedExpectedOutput,
	}
}

// pickCategories samples 2-3 distinct categories from the fixed set.
func (g *Generator) pickCategories() []model.ProblemCategory {
	n := g.rng.Intn(2) + 2
	picked := make([]model.ProblemCategory, 0, n)
	for _, idx := range g.rng.Perm(len(model.AllCategories))[:n] {
		picked = append(picked, model.AllCategories[idx])
	}
	return picked
}

func (g *Generator) makeTitle(id int) string {
	prefix := titlePrefixes[g.rng.Intn(len(titlePrefixes))]
	suffix := titleSuffixes[g.rng.Intn(len(titleSuffixes))]
	return fmt.Sprintf("%s %s %d", prefix, suffix, id)
}

func makeDescription(difficulty model.ProblemDifficulty, categories []model.ProblemCategory) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return fmt.Sprintf(`This is %s difficulty problem covering %s. Read the requirements carefully and design an efficient solution.

Background:
You are given a data structure with n elements that must be processed through a specific set of operations.

Requirements:
1. Implement the required algorithm or data structure operations.
2. Keep the time and space complexity within the stated limits.
3. Handle all edge cases and special inputs.

Follow-up:
- Is there a more optimal approach?
- How would the solution handle very large inputs?
- How well does the approach scale?`,
		difficultyWords[difficulty], strings.Join(names, ", "))
}

func makeInputFormat(difficulty model.ProblemDifficulty) string {
	base := "The first line contains an integer n, the input size.\nThe second line contains n space-separated integers."
	if difficulty != model.DifficultyEasy {
		base += "\nAdditional input lines may follow; see the samples for the exact format."
	}
	return base
}
