package scoring

import "aiactcheck/internal/model"

// high-risk screening questions and the content generation question used by
// the classification rules
const (
	domainQuestion   = "B1"
	activityQuestion = "B2"
	interactQuestion = "E2"
	contentQuestion  = "E4"
)

// ClassifyRiskLevel derives the AI Act risk classification from the recorded
// responses. Eliminatory options mark prohibited practices; any non-"NONE"
// selection on the risk screening questions marks high risk; systems that
// face natural persons or generate content carry transparency duties
// (limited risk); everything else is minimal risk.
func (s *Scorer) ClassifyRiskLevel(responses []*model.Response) model.RiskLevel {
	limited := false
	high := false

	for _, r := range responses {
		if r == nil {
			continue
		}
		q, ok := s.catalog.Get(r.QuestionCode)
		if !ok {
			continue
		}
		answer := r.Answer(q.Type)
		if answer.IsZero() {
			continue
		}

		for _, code := range selectedCodes(answer) {
			opt, ok := q.Option(code)
			if !ok {
				continue
			}
			if opt.IsEliminatory {
				return model.RiskLevelUnacceptable
			}
			if code == "NONE" {
				continue
			}
			switch q.Code {
			case domainQuestion, activityQuestion:
				high = true
			case contentQuestion:
				limited = true
			case interactQuestion:
				if code == "YES" {
					limited = true
				}
			}
		}
	}

	switch {
	case high:
		return model.RiskLevelHigh
	case limited:
		return model.RiskLevelLimited
	default:
		return model.RiskLevelMinimal
	}
}

func selectedCodes(a model.AnswerValue) []string {
	switch a.Kind {
	case model.AnswerKindSingle, model.AnswerKindConditional:
		return []string{a.Code}
	case model.AnswerKindMulti:
		return a.Codes
	default:
		return nil
	}
}
