package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiactcheck/internal/catalog"
	"aiactcheck/internal/model"
)

func realScorer(t *testing.T) *Scorer {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return NewScorer(cat)
}

// syntheticScorer builds a scorer over a minimal catalog so impact mechanics
// can be tested in isolation from the shipped dataset
func syntheticScorer(t *testing.T) *Scorer {
	t.Helper()
	cat, err := catalog.Parse([]byte(`
questions:
  - code: Q-A
    text: single choice probe
    type: single_choice
    required: true
    options:
      - {code: A1, label: worse, score_impact: -5}
      - {code: A2, label: neutral, score_impact: 0}
  - code: Q-M
    text: multi choice probe
    type: multi_choice
    required: true
    options:
      - {code: M1, label: bad, score_impact: -5}
      - {code: M2, label: worse, score_impact: -10}
      - {code: M3, label: neutral, score_impact: 0}
  - code: Q-P
    text: bonus probe
    type: multi_choice
    required: true
    options:
      - {code: P1, label: small bonus, score_impact: 2}
      - {code: P2, label: big bonus, score_impact: 5}
`))
	require.NoError(t, err)
	return NewScorer(cat)
}

func response(code string, a model.AnswerValue) *model.Response {
	return model.NewResponse("uc-1", code, a)
}

func TestCalculateSingleNegativeImpact(t *testing.T) {
	s := syntheticScorer(t)

	result := s.Calculate("uc-1", []*model.Response{
		response("Q-A", model.SingleAnswer("A1")),
	})

	assert.Equal(t, 95, result.Score)
	assert.Equal(t, model.BaseScore, result.MaxScore)
	require.Len(t, result.Breakdown, 1)
	assert.Equal(t, "Q-A", result.Breakdown[0].QuestionID)
	assert.Equal(t, -5, result.Breakdown[0].ScoreImpact)
	assert.Equal(t, "A1", result.Breakdown[0].AnswerValue)
	assert.Empty(t, result.Breakdown[0].CategoryID)
	assert.Equal(t, 1, result.Version)
}

func TestCalculateIsDeterministic(t *testing.T) {
	s := realScorer(t)
	responses := []*model.Response{
		response("C1", model.SingleAnswer("NO")),
		response("B1", model.MultiAnswer("EMPLOYMENT", "EDUCATION")),
		response("D4", model.ConditionalAnswer("YES", map[string]string{"measures": "review"})),
	}

	first := s.Calculate("uc-1", responses)
	second := s.Calculate("uc-1", responses)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.RiskLevel, second.RiskLevel)
	assert.Equal(t, first.Breakdown, second.Breakdown)
	assert.Equal(t, first.CategoryScores, second.CategoryScores)
}

func TestCalculateEmptyInput(t *testing.T) {
	s := realScorer(t)

	for _, responses := range [][]*model.Response{nil, {}} {
		result := s.Calculate("uc-1", responses)
		assert.Equal(t, model.BaseScore, result.Score)
		assert.Empty(t, result.Breakdown)
		require.Len(t, result.CategoryScores, len(model.ScoringCategories()))
		for _, cs := range result.CategoryScores {
			assert.Equal(t, 100, cs.Percentage)
			assert.Equal(t, 0, cs.QuestionCount)
		}
	}
}

func TestCalculateMultiChoiceWorstCaseWins(t *testing.T) {
	s := syntheticScorer(t)

	result := s.Calculate("uc-1", []*model.Response{
		response("Q-M", model.MultiAnswer("M1", "M2", "M3")),
	})

	assert.Equal(t, 90, result.Score, "minimum impact is retained, not the sum")
	require.Len(t, result.Breakdown, 1)
	assert.Equal(t, -10, result.Breakdown[0].ScoreImpact)
	assert.Contains(t, result.Breakdown[0].Reasoning, "worst impact -10 retained")
}

func TestCalculateDuplicateCodesDoNotDoubleCount(t *testing.T) {
	s := syntheticScorer(t)

	result := s.Calculate("uc-1", []*model.Response{
		response("Q-M", model.MultiAnswer("M2", "M2", "M2")),
	})

	assert.Equal(t, 90, result.Score)
}

func TestCalculatePositiveMultiRetainsLeastPositive(t *testing.T) {
	s := syntheticScorer(t)

	result := s.Calculate("uc-1", []*model.Response{
		response("Q-P", model.MultiAnswer("P1", "P2")),
	})

	assert.Equal(t, 102, result.Score)
}

func TestCalculateScoreFloorsAtZero(t *testing.T) {
	s := realScorer(t)

	result := s.Calculate("uc-1", []*model.Response{
		response("B1", model.MultiAnswer("BIOMETRICS")),
		response("B1.1", model.MultiAnswer("SOCIAL_SCORING")),
		response("B2", model.MultiAnswer("SUBLIMINAL_MANIPULATION")),
		response("B2.1", model.MultiAnswer("DECISIONS_LEGAL_EFFECT")),
		response("C2", model.SingleAnswer("NO")),
		response("C3", model.SingleAnswer("NO")),
		response("D1", model.MultiAnswer("SPECIAL_CATEGORY")),
		response("D2", model.ConditionalAnswer("NO", nil)),
		response("D4", model.ConditionalAnswer("NO", nil)),
		response("F1", model.SingleAnswer("NO")),
	})

	assert.Equal(t, 0, result.Score)
	assert.GreaterOrEqual(t, result.Score, 0)
}

func TestCalculateCategoryIndependence(t *testing.T) {
	s := realScorer(t)

	// C1 is attributed to technical robustness only
	result := s.Calculate("uc-1", []*model.Response{
		response("C1", model.SingleAnswer("NO")),
	})

	assert.Equal(t, 90, result.Score)
	for _, cs := range result.CategoryScores {
		if cs.CategoryID == string(model.CategoryTechnicalRobustness) {
			assert.Equal(t, 90, cs.Score)
			assert.Equal(t, 90, cs.Percentage)
			assert.Equal(t, 1, cs.QuestionCount)
			continue
		}
		assert.Equal(t, 100, cs.Percentage, "category %s must be untouched", cs.CategoryID)
		assert.Equal(t, 0, cs.QuestionCount)
	}
}

func TestCalculateCategoryPercentageMayExceedHundred(t *testing.T) {
	s := realScorer(t)

	// Every technical robustness answer carries a bonus: +5 +5 +3 +3
	result := s.Calculate("uc-1", []*model.Response{
		response("C1", model.SingleAnswer("YES")),
		response("C2", model.SingleAnswer("YES_CONTINUOUS")),
		response("C3", model.SingleAnswer("YES")),
		response("C4", model.SingleAnswer("YES")),
	})

	assert.Equal(t, 116, result.Score)
	for _, cs := range result.CategoryScores {
		if cs.CategoryID == string(model.CategoryTechnicalRobustness) {
			assert.Equal(t, 116, cs.Score)
			assert.Equal(t, 116, cs.Percentage, "percentages are deliberately not clamped at 100")
			assert.Equal(t, 4, cs.QuestionCount)
		}
	}
}

func TestCalculateIgnoresUnknownQuestionCodes(t *testing.T) {
	s := realScorer(t)

	known := []*model.Response{response("C1", model.SingleAnswer("NO"))}
	withUnknown := append([]*model.Response{
		response("X99", model.SingleAnswer("WHAT")),
	}, known...)

	assert.Equal(t, s.Calculate("uc-1", known).Score, s.Calculate("uc-1", withUnknown).Score)
}

func TestCalculateSkipsEmptyAnswerSlots(t *testing.T) {
	s := realScorer(t)

	result := s.Calculate("uc-1", []*model.Response{
		{UsecaseID: "uc-1", QuestionCode: "C1"},                           // no slot populated
		{UsecaseID: "uc-1", QuestionCode: "B1", SingleValue: "EMPLOYMENT"}, // wrong slot for multi
	})

	assert.Equal(t, model.BaseScore, result.Score)
	assert.Empty(t, result.Breakdown)
}

func TestCalculateZeroImpactLeftOutOfBreakdown(t *testing.T) {
	s := realScorer(t)

	result := s.Calculate("uc-1", []*model.Response{
		response("E2", model.SingleAnswer("NO")), // 0 impact
		response("C1", model.SingleAnswer("NO")), // -10 impact
	})

	require.Len(t, result.Breakdown, 1)
	assert.Equal(t, "C1", result.Breakdown[0].QuestionID)

	// zero-impact answers still count toward their category
	for _, cs := range result.CategoryScores {
		if cs.CategoryID == string(model.CategoryHumanOversight) {
			assert.Equal(t, 1, cs.QuestionCount)
			assert.Equal(t, 100, cs.Percentage)
		}
	}
}

func TestCalculateConditionalDetailNeverAffectsScore(t *testing.T) {
	s := realScorer(t)

	plain := s.Calculate("uc-1", []*model.Response{
		response("D4", model.ConditionalAnswer("YES", map[string]string{"measures": "short"})),
	})
	verbose := s.Calculate("uc-1", []*model.Response{
		response("D4", model.ConditionalAnswer("YES", map[string]string{"measures": "a very long description of oversight"})),
	})

	assert.Equal(t, plain.Score, verbose.Score)
	assert.Equal(t, 106, plain.Score)
}

func TestCalculateRecoversToSafeDefault(t *testing.T) {
	s := realScorer(t)

	result := s.Calculate("uc-1", []*model.Response{nil})

	assert.Equal(t, model.BaseScore, result.Score)
	assert.Empty(t, result.Breakdown)
	assert.Empty(t, result.CategoryScores)
	assert.Equal(t, 1, result.Version)
}

func TestCalculateBreakdownCarriesCategory(t *testing.T) {
	s := realScorer(t)

	result := s.Calculate("uc-1", []*model.Response{
		response("F1", model.SingleAnswer("NO")),
	})

	require.Len(t, result.Breakdown, 1)
	assert.Equal(t, string(model.CategoryTransparency), result.Breakdown[0].CategoryID)
	assert.Equal(t, -12, result.Breakdown[0].ScoreImpact)
}
