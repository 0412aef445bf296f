// Package scoring converts recorded responses into a compliance score, a
// per-category breakdown and a risk classification. All computations are
// pure functions of (catalog, responses).
package scoring

import (
	"fmt"
	"log"
	"strings"
	"time"

	"aiactcheck/internal/catalog"
	"aiactcheck/internal/model"
)

// Scorer computes score results against a fixed catalog
type Scorer struct {
	catalog *catalog.Catalog
}

// NewScorer creates a scorer over the given catalog
func NewScorer(c *catalog.Catalog) *Scorer {
	return &Scorer{catalog: c}
}

type categoryAccum struct {
	totalImpact   int
	questionCount int
}

// Calculate computes the score result for a use case. It never returns an
// error: malformed responses are skipped, and any unexpected failure yields
// the neutral default result so one bad record cannot block the caller from
// seeing a score.
func (s *Scorer) Calculate(usecaseID string, responses []*model.Response) (result *model.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("score calculation failed for usecase %s: %v", usecaseID, r)
			result = safeDefault(usecaseID)
		}
	}()

	globalScore := model.BaseScore
	accums := make(map[model.CategoryID]*categoryAccum)
	for _, c := range model.ScoringCategories() {
		accums[c.ID] = &categoryAccum{}
	}

	var breakdown []model.BreakdownEntry
	for _, r := range responses {
		q, ok := s.catalog.Get(r.QuestionCode)
		if !ok {
			continue
		}
		answer := r.Answer(q.Type)
		if answer.IsZero() {
			continue
		}

		impact, reasoning := questionImpact(q, answer)
		globalScore += impact

		catID, mapped := model.CategoryForQuestion(q.Code)
		if mapped {
			acc := accums[catID]
			if acc != nil {
				acc.totalImpact += impact
				acc.questionCount++
			}
		}

		if impact != 0 {
			entry := model.BreakdownEntry{
				QuestionID:   q.Code,
				QuestionText: q.Text,
				AnswerValue:  answer.Display(),
				ScoreImpact:  impact,
				Reasoning:    reasoning,
			}
			if mapped {
				entry.CategoryID = string(catID)
			}
			breakdown = append(breakdown, entry)
		}
	}

	if globalScore < 0 {
		globalScore = 0
	}

	categoryScores := make([]model.CategoryScore, 0, len(model.ScoringCategories()))
	for _, info := range model.ScoringCategories() {
		acc := accums[info.ID]
		score := model.BaseScore + acc.totalImpact
		if score < 0 {
			score = 0
		}
		categoryScores = append(categoryScores, model.CategoryScore{
			CategoryID:    string(info.ID),
			Name:          info.Name,
			Score:         score,
			Max:           model.BaseScore,
			Percentage:    roundPercent(score, model.BaseScore),
			QuestionCount: acc.questionCount,
			Color:         info.Color,
			Icon:          info.Icon,
		})
	}

	return &model.ScoreResult{
		UsecaseID:      usecaseID,
		Score:          globalScore,
		MaxScore:       model.BaseScore,
		RiskLevel:      s.ClassifyRiskLevel(responses),
		Breakdown:      breakdown,
		CategoryScores: categoryScores,
		CalculatedAt:   time.Now().UTC(),
		Version:        1,
	}
}

// questionImpact resolves the signed point impact of one answered question
// and a human-readable explanation of where it came from.
func questionImpact(q *model.Question, a model.AnswerValue) (int, string) {
	switch q.Type {
	case model.QuestionTypeSingle, model.QuestionTypeConditional:
		impact := 0
		if opt, ok := q.Option(a.Code); ok {
			impact = opt.ScoreImpact
		}
		return impact, fmt.Sprintf("selected %q (%+d points)", a.Code, impact)

	case model.QuestionTypeMulti, model.QuestionTypeTags:
		// Worst case wins: the minimum impact across every selected option
		// is retained, never the sum. Duplicates are harmless.
		var parts []string
		impact := 0
		first := true
		for _, code := range a.Codes {
			opt, ok := q.Option(code)
			if !ok {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s (%+d)", code, opt.ScoreImpact))
			if first || opt.ScoreImpact < impact {
				impact = opt.ScoreImpact
			}
			first = false
		}
		if len(parts) == 0 {
			return 0, "no recognised options selected"
		}
		return impact, fmt.Sprintf("selected %s; worst impact %+d retained", strings.Join(parts, ", "), impact)

	default:
		return 0, ""
	}
}

func roundPercent(score, max int) int {
	if max == 0 {
		return 0
	}
	// round half away from zero; score is never negative here
	return (score*100 + max/2) / max
}

func safeDefault(usecaseID string) *model.ScoreResult {
	return &model.ScoreResult{
		UsecaseID:      usecaseID,
		Score:          model.BaseScore,
		MaxScore:       model.BaseScore,
		RiskLevel:      model.RiskLevelMinimal,
		Breakdown:      []model.BreakdownEntry{},
		CategoryScores: []model.CategoryScore{},
		CalculatedAt:   time.Now().UTC(),
		Version:        1,
	}
}
