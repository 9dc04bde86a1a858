package judge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codearena/internal/domain/model"
)

func TestSubstringStrategy(t *testing.T) {
	problem := &model.Problem{ID: "1", ExpectedOutput: "return ["}
	strategy := SubstringStrategy{}

	assert.Equal(t, model.StatusAccepted, strategy.Grade("return [1,2]", problem))
	assert.Equal(t, model.StatusWrongAnswer, strategy.Grade("print(42)", problem))

	// Grading is deterministic: same inputs, same verdict.
	for i := 0; i < 5; i++ {
		assert.Equal(t, model.StatusAccepted, strategy.Grade("return [1,2]", problem))
	}
}
