package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseAnswerNormalization(t *testing.T) {
	t.Run("single value round trips", func(t *testing.T) {
		r := NewResponse("uc-1", "C1", SingleAnswer("YES"))
		a := r.Answer(QuestionTypeSingle)
		assert.Equal(t, AnswerKindSingle, a.Kind)
		assert.Equal(t, "YES", a.Code)
		assert.False(t, a.IsZero())
	})

	t.Run("empty record yields zero answer", func(t *testing.T) {
		r := &Response{UsecaseID: "uc-1", QuestionCode: "C1"}
		assert.True(t, r.Answer(QuestionTypeSingle).IsZero())
		assert.True(t, r.Answer(QuestionTypeMulti).IsZero())
		assert.True(t, r.Answer(QuestionTypeConditional).IsZero())
	})

	t.Run("mismatched slot yields zero answer", func(t *testing.T) {
		r := &Response{UsecaseID: "uc-1", QuestionCode: "B1", SingleValue: "EMPLOYMENT"}
		assert.True(t, r.Answer(QuestionTypeMulti).IsZero())
	})

	t.Run("conditional reads main slot with detail", func(t *testing.T) {
		r := NewResponse("uc-1", "D4", ConditionalAnswer("YES", map[string]string{"measures": "weekly review"}))
		a := r.Answer(QuestionTypeConditional)
		assert.Equal(t, AnswerKindConditional, a.Kind)
		assert.Equal(t, "YES", a.Code)
		assert.Equal(t, "weekly review", a.Detail["measures"])
	})

	t.Run("conditional falls back to single slot", func(t *testing.T) {
		r := &Response{UsecaseID: "uc-1", QuestionCode: "D2", SingleValue: "NOT_APPLICABLE"}
		a := r.Answer(QuestionTypeConditional)
		assert.Equal(t, "NOT_APPLICABLE", a.Code)
		assert.False(t, a.IsZero())
	})

	t.Run("mismatched detail arrays zip to the shorter side", func(t *testing.T) {
		r := &Response{
			UsecaseID:         "uc-1",
			QuestionCode:      "E3",
			ConditionalMain:   "OVER_45M",
			ConditionalKeys:   []string{"designation", "orphan"},
			ConditionalValues: []string{"notified"},
		}
		a := r.Answer(QuestionTypeConditional)
		require.Len(t, a.Detail, 1)
		assert.Equal(t, "notified", a.Detail["designation"])
	})

	t.Run("unknown question type yields zero answer", func(t *testing.T) {
		r := NewResponse("uc-1", "C1", SingleAnswer("YES"))
		assert.True(t, r.Answer(QuestionType("mystery")).IsZero())
	})
}

func TestNewResponsePopulatesOneSlot(t *testing.T) {
	single := NewResponse("uc-1", "C1", SingleAnswer("NO"))
	assert.Equal(t, "NO", single.SingleValue)
	assert.Empty(t, single.MultipleCodes)
	assert.Empty(t, single.ConditionalMain)

	multi := NewResponse("uc-1", "B1", MultiAnswer("EMPLOYMENT", "EDUCATION"))
	assert.Empty(t, multi.SingleValue)
	assert.Equal(t, []string{"EMPLOYMENT", "EDUCATION"}, multi.MultipleCodes)

	cond := NewResponse("uc-1", "D3", ConditionalAnswer("YES", map[string]string{"registry": "EU-DB-123"}))
	assert.Equal(t, "YES", cond.ConditionalMain)
	require.Len(t, cond.ConditionalKeys, 1)
	require.Len(t, cond.ConditionalValues, 1)
	assert.Equal(t, "registry", cond.ConditionalKeys[0])
	assert.Equal(t, "EU-DB-123", cond.ConditionalValues[0])
}

func TestAnswerValueHasDetail(t *testing.T) {
	assert.False(t, ConditionalAnswer("YES", nil).HasDetail())
	assert.False(t, ConditionalAnswer("YES", map[string]string{"measures": "   "}).HasDetail())
	assert.True(t, ConditionalAnswer("YES", map[string]string{"measures": "audits"}).HasDetail())
}

func TestAnswerValueDisplay(t *testing.T) {
	assert.Equal(t, "YES", SingleAnswer("YES").Display())
	assert.Equal(t, "EMPLOYMENT, EDUCATION", MultiAnswer("EMPLOYMENT", "EDUCATION").Display())
	assert.Equal(t, "OVER_45M", ConditionalAnswer("OVER_45M", nil).Display())
	assert.Equal(t, "", AnswerValue{}.Display())
}
