// Package judge defines the grading capability. The interface stays stable
// so a sandboxed executor can replace the naive strategy without touching
// the stores.
package judge

import (
	"strings"

	"codearena/internal/domain/model"
)

type Strategy interface {
	Grade(code string, problem *model.Problem) model.SubmissionStatus
}

// SubstringStrategy accepts a submission iff the code contains the problem's
// expected-output pattern as a literal substring. No code is compiled or run.
type SubstringStrategy struct{}

func (SubstringStrategy) Grade(code string, problem *model.Problem) model.SubmissionStatus {
	if strings.Contains(code, problem.ExpectedOutput) {
		return model.StatusAccepted
	}
	return model.StatusWrongAnswer
}
