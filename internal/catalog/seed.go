package catalog

import (
	"time"

	"codearena/internal/domain/model"
)

func seedDate(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

// SeedProblems returns the hand-authored problems occupying IDs 1-10. They
// stay stable across catalog regeneration and are the only entries with
// grading patterns tuned to a real solution.
func SeedProblems() []model.Problem {
	return []model.Problem{
		{
			ID:           "1",
			Title:        "Two Sum",
			Slug:         "two-sum",
			Description:  "Given an array of integers nums and an integer target, return the indices of the two numbers that add up to target. Each input has exactly one solution, and you may not use the same element twice.",
			Difficulty:   model.DifficultyEasy,
			Categories:   []model.ProblemCategory{model.CategoryArrays, model.CategorySearching},
			Constraints:  "2 <= n <= 10^3\n-10^4 <= nums[i] <= 10^4",
			InputFormat:  "The first line contains n and target.\nThe second line contains n space-separated integers.",
			OutputFormat: "Two space-separated indices in ascending order.",
			SampleInput:  "4 9\n2 7 11 15",
			SampleOutput: "0 1",
			Explanation:  "nums[0] + nums[1] == 9, so the answer is indices 0 and 1.",
			TestCases: []model.TestCase{
				{Input: "4 9\n2 7 11 15", Output: "0 1"},
				{Input: "3 6\n3 2 4", Output: "1 2", IsHidden: true},
			},
			TimeLimit:      1000,
			MemoryLimit:    256000,
			CreatedBy:      "admin",
			CreatedAt:      seedDate(1),
			ExpectedOutput: "return [",
		},
		{
			ID:           "2",
			Title:        "Reverse String",
			Slug:         "reverse-string",
			Description:  "Given a string s, return the string with its characters in reverse order.",
			Difficulty:   model.DifficultyEasy,
			Categories:   []model.ProblemCategory{model.CategoryStrings, model.CategoryImplementation},
			Constraints:  "1 <= len(s) <= 10^4",
			InputFormat:  "A single line containing the string s.",
			OutputFormat: "The reversed string.",
			SampleInput:  "hello",
			SampleOutput: "olleh",
			TestCases: []model.TestCase{
				{Input: "hello", Output: "olleh"},
				{Input: "codearena", Output: "aneraedoc", IsHidden: true},
			},
			TimeLimit:      1000,
			MemoryLimit:    256000,
			CreatedBy:      "owner",
			CreatedAt:      seedDate(1),
			ExpectedOutput: "reverse",
		},
		{
			ID:           "3",
			Title:        "Fizz Buzz",
			Slug:         "fizz-buzz",
			Description:  "Print the numbers from 1 to n, replacing multiples of 3 with Fizz, multiples of 5 with Buzz, and multiples of both with FizzBuzz.",
			Difficulty:   model.DifficultyEasy,
			Categories:   []model.ProblemCategory{model.CategoryImplementation, model.CategoryMath},
			Constraints:  "1 <= n <= 10^4",
			InputFormat:  "A single integer n.",
			OutputFormat: "n lines, one entry per line.",
			SampleInput:  "5",
			SampleOutput: "1\n2\nFizz\n4\nBuzz",
			TestCases: []model.TestCase{
				{Input: "5", Output: "1\n2\nFizz\n4\nBuzz"},
				{Input: "15", Output: "1\n2\nFizz\n4\nBuzz\nFizz\n7\n8\nFizz\nBuzz\n11\nFizz\n13\n14\nFizzBuzz", IsHidden: true},
			},
			TimeLimit:      1000,
			MemoryLimit:    256000,
			CreatedBy:      "admin",
			CreatedAt:      seedDate(2),
			ExpectedOutput: "FizzBuzz",
		},
		{
			ID:           "4",
			Title:        "Valid Parentheses",
			Slug:         "valid-parentheses",
			Description:  "Given a string containing only the characters ()[]{}, determine whether the brackets are balanced and correctly nested.",
			Difficulty:   model.DifficultyEasy,
			Categories:   []model.ProblemCategory{model.CategoryStrings, model.CategoryImplementation},
			Constraints:  "1 <= len(s) <= 10^4",
			InputFormat:  "A single line containing the bracket string.",
			OutputFormat: "true if the string is valid, false otherwise.",
			SampleInput:  "([]{})",
			SampleOutput: "true",
			TestCases: []model.TestCase{
				{Input: "([]{})", Output: "true"},
				{Input: "([)]", Output: "false", IsHidden: true},
			},
			TimeLimit:      1000,
			MemoryLimit:    256000,
			CreatedBy:      "owner",
			CreatedAt:      seedDate(2),
			ExpectedOutput: "stack",
		},
		{
			ID:           "5",
			Title:        "Maximum Subarray",
			Slug:         "maximum-subarray",
			Description:  "Given an integer array nums, find the contiguous subarray with the largest sum and return that sum.",
			Difficulty:   model.DifficultyMedium,
			Categories:   []model.ProblemCategory{model.CategoryArrays, model.CategoryDynamicProgramming},
			Constraints:  "1 <= n <= 10^5\n-10^4 <= nums[i] <= 10^4",
			InputFormat:  "The first line contains n.\nThe second line contains n space-separated integers.",
			OutputFormat: "A single integer, the maximum subarray sum.",
			SampleInput:  "9\n-2 1 -3 4 -1 2 1 -5 4",
			SampleOutput: "6",
			Explanation:  "The subarray [4,-1,2,1] has the largest sum 6.",
			TestCases: []model.TestCase{
				{Input: "9\n-2 1 -3 4 -1 2 1 -5 4", Output: "6"},
				{Input: "1\n-7", Output: "-7", IsHidden: true},
			},
			TimeLimit:      2000,
			MemoryLimit:    512000,
			CreatedBy:      "admin",
			CreatedAt:      seedDate(3),
			ExpectedOutput: "max",
		},
		{
			ID:           "6",
			Title:        "Merge Intervals",
			Slug:         "merge-intervals",
			Description:  "Given a list of intervals, merge all overlapping intervals and return the non-overlapping result covering the same ranges.",
			Difficulty:   model.DifficultyMedium,
			Categories:   []model.ProblemCategory{model.CategorySorting, model.CategoryArrays},
			Constraints:  "1 <= n <= 10^5\n0 <= start <= end <= 10^6",
			InputFormat:  "The first line contains n.\nEach of the next n lines contains two integers start and end.",
			OutputFormat: "The merged intervals, one per line, sorted by start.",
			SampleInput:  "4\n1 3\n2 6\n8 10\n15 18",
			SampleOutput: "1 6\n8 10\n15 18",
			TestCases: []model.TestCase{
				{Input: "4\n1 3\n2 6\n8 10\n15 18", Output: "1 6\n8 10\n15 18"},
				{Input: "2\n1 4\n4 5", Output: "1 5", IsHidden: true},
			},
			TimeLimit:      2000,
			MemoryLimit:    512000,
			CreatedBy:      "owner",
			CreatedAt:      seedDate(3),
			ExpectedOutput: "sort",
		},
		{
			ID:           "7",
			Title:        "Longest Palindromic Substring",
			Slug:         "longest-palindromic-substring",
			Description:  "Given a string s, return the longest substring of s that reads the same forwards and backwards.",
			Difficulty:   model.DifficultyMedium,
			Categories:   []model.ProblemCategory{model.CategoryStrings, model.CategoryDynamicProgramming},
			Constraints:  "1 <= len(s) <= 10^3",
			InputFormat:  "A single line containing s.",
			OutputFormat: "The longest palindromic substring. If several exist, print the first.",
			SampleInput:  "babad",
			SampleOutput: "bab",
			TestCases: []model.TestCase{
				{Input: "babad", Output: "bab"},
				{Input: "cbbd", Output: "bb", IsHidden: true},
			},
			TimeLimit:      2000,
			MemoryLimit:    512000,
			CreatedBy:      "admin",
			CreatedAt:      seedDate(4),
			ExpectedOutput: "palindrome",
		},
		{
			ID:           "8",
			Title:        "Word Ladder",
			Slug:         "word-ladder",
			Description:  "Given a begin word, an end word, and a dictionary, return the length of the shortest transformation sequence where each step changes exactly one letter and every intermediate word is in the dictionary.",
			Difficulty:   model.DifficultyHard,
			Categories:   []model.ProblemCategory{model.CategoryGraphs, model.CategorySearching},
			Constraints:  "1 <= len(word) <= 10\n1 <= dictionary size <= 5000",
			InputFormat:  "The first line contains beginWord and endWord.\nThe second line contains the dictionary words, space-separated.",
			OutputFormat: "The length of the shortest sequence, or 0 if none exists.",
			SampleInput:  "hit cog\nhot dot dog lot log cog",
			SampleOutput: "5",
			TestCases: []model.TestCase{
				{Input: "hit cog\nhot dot dog lot log cog", Output: "5"},
				{Input: "hit cog\nhot dot dog lot log", Output: "0", IsHidden: true},
			},
			TimeLimit:      3000,
			MemoryLimit:    1024000,
			CreatedBy:      "owner",
			CreatedAt:      seedDate(4),
			ExpectedOutput: "queue",
		},
		{
			ID:           "9",
			Title:        "Median of Two Sorted Arrays",
			Slug:         "median-of-two-sorted-arrays",
			Description:  "Given two sorted arrays, return the median of the combined order in logarithmic time over the shorter array.",
			Difficulty:   model.DifficultyHard,
			Categories:   []model.ProblemCategory{model.CategoryArrays, model.CategorySearching, model.CategoryMath},
			Constraints:  "0 <= m, n <= 10^6\nm + n >= 1",
			InputFormat:  "The first line contains m and n.\nThe next two lines contain the arrays.",
			OutputFormat: "The median as a number with one decimal place.",
			SampleInput:  "2 2\n1 3\n2 4",
			SampleOutput: "2.5",
			TestCases: []model.TestCase{
				{Input: "2 2\n1 3\n2 4", Output: "2.5"},
				{Input: "2 1\n1 2\n3", Output: "2.0", IsHidden: true},
			},
			TimeLimit:      3000,
			MemoryLimit:    1024000,
			CreatedBy:      "admin",
			CreatedAt:      seedDate(5),
			ExpectedOutput: "binary",
		},
		{
			ID:           "10",
			Title:        "Regular Expression Matching",
			Slug:         "regular-expression-matching",
			Description:  "Implement pattern matching with support for '.' (any single character) and '*' (zero or more of the preceding element). Matching must cover the entire input string.",
			Difficulty:   model.DifficultyExpert,
			Categories:   []model.ProblemCategory{model.CategoryDynamicProgramming, model.CategoryStrings},
			Constraints:  "1 <= len(s), len(p) <= 2000",
			InputFormat:  "The first line contains the string s.\nThe second line contains the pattern p.",
			OutputFormat: "true if p matches s entirely, false otherwise.",
			SampleInput:  "aab\nc*a*b",
			SampleOutput: "true",
			TestCases: []model.TestCase{
				{Input: "aab\nc*a*b", Output: "true"},
				{Input: "mississippi\nmis*is*p*.", Output: "false", IsHidden: true},
			},
			TimeLimit:      5000,
			MemoryLimit:    2048000,
			CreatedBy:      "owner",
			CreatedAt:      seedDate(5),
			ExpectedOutput: "dp",
		},
	}
}
