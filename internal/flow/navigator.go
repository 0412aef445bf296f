// Package flow implements the questionnaire state machine: which question
// follows which, given the answers recorded so far.
package flow

import (
	"math"

	"aiactcheck/internal/catalog"
	"aiactcheck/internal/model"
)

// StartQuestion is the fixed entry state of the questionnaire
const StartQuestion = "A1"

// noneOption is the "none of the above" code shared by the risk screening
// questions
const noneOption = "NONE"

// riskScreenQuestions are the four questions whose answers gate the risk
// management block at C1
var riskScreenQuestions = [4]string{"B1", "B1.1", "B2", "B2.1"}

// transition computes the next question code from the full answer set.
// Empty string means the questionnaire ends here.
type transition func(answers map[string]model.AnswerValue) string

func static(next string) transition {
	return func(map[string]model.AnswerValue) string { return next }
}

// Navigator walks the question graph. All methods are pure; malformed input
// blocks progression or terminates the flow, it never errors.
type Navigator struct {
	catalog     *catalog.Catalog
	transitions map[string]transition
}

// NewNavigator builds the transition table over the given catalog
func NewNavigator(c *catalog.Catalog) *Navigator {
	n := &Navigator{catalog: c}
	n.transitions = map[string]transition{
		"A1": func(a map[string]model.AnswerValue) string {
			switch a["A1"].Code {
			case "PROVIDER":
				return "A1.1"
			case "DEPLOYER":
				return "A1.2"
			default:
				return ""
			}
		},
		"A1.1": static("B1"),
		"A1.2": static("B1"),
		"B1":   static("B1.1"),
		"B1.1": static("B2"),
		"B2":   static("B2.1"),
		"B2.1": static("C1"),
		"C1": func(a map[string]model.AnswerValue) string {
			switch a["C1"].Code {
			case "YES":
				return "D1"
			case "NO":
				if allRiskAnswersNone(a) {
					return "D1"
				}
				return "C2"
			default:
				return ""
			}
		},
		"C2": static("C3"),
		"C3": static("C4"),
		"C4": static("D1"),
		"D1": static("D2"),
		"D2": static("D3"),
		"D3": static("D4"),
		"D4": static("E1"),
		"E1": static("E2"),
		"E2": static("E3"),
		"E3": static("E4"),
		"E4": static("F1"),
		"F1": static("F2"),
		"F2": static(""),
	}
	return n
}

// allRiskAnswersNone reports whether every risk screening question was
// answered with exactly the single "none of the above" option
func allRiskAnswersNone(answers map[string]model.AnswerValue) bool {
	for _, code := range riskScreenQuestions {
		a := answers[code]
		if len(a.Codes) != 1 || a.Codes[0] != noneOption {
			return false
		}
	}
	return true
}

// Next returns the question following current given the recorded answers.
// ok is false when the questionnaire ends, including for unknown current
// codes.
func (n *Navigator) Next(current string, answers map[string]model.AnswerValue) (string, bool) {
	t, ok := n.transitions[current]
	if !ok {
		return "", false
	}
	next := t(answers)
	if next == "" {
		return "", false
	}
	return next, true
}

// Progress returns absolute progress for the current question: its 1-based
// lexicographic rank over the catalog size. Because codes sort in flow order,
// this is monotonically non-decreasing along every valid path, regardless of
// which questions a path skips.
func (n *Navigator) Progress(current string) model.Progress {
	total := n.catalog.Len()
	rank := n.catalog.Rank(current)
	p := model.Progress{Current: rank, Total: total}
	if total > 0 && rank > 0 {
		p.Percentage = int(math.Round(float64(rank) / float64(total) * 100))
	}
	return p
}

// PreviousFromHistory returns the element immediately before current in a
// caller-maintained history list
func (n *Navigator) PreviousFromHistory(current string, history []string) (string, bool) {
	for i, code := range history {
		if code == current {
			if i == 0 {
				return "", false
			}
			return history[i-1], true
		}
	}
	return "", false
}

// BuildPath replays the transition table from the start state until it
// reaches current or the flow ends, returning the codes visited. Used to
// rebuild navigation history from persisted answers.
func (n *Navigator) BuildPath(current string, answers map[string]model.AnswerValue) []string {
	path := []string{StartQuestion}
	cur := StartQuestion
	for cur != current {
		next, ok := n.Next(cur, answers)
		if !ok {
			break
		}
		path = append(path, next)
		cur = next
		if len(path) > n.catalog.Len()+1 {
			break
		}
	}
	return path
}

// CanProceed reports whether the answer is complete enough to advance past
// the question. Conditional answers additionally need a non-empty detail
// value when the selected option requires one.
func (n *Navigator) CanProceed(q *model.Question, a model.AnswerValue) bool {
	if q == nil {
		return false
	}
	switch q.Type {
	case model.QuestionTypeSingle:
		return a.Kind == model.AnswerKindSingle && a.Code != ""
	case model.QuestionTypeMulti, model.QuestionTypeTags:
		return a.Kind == model.AnswerKindMulti && len(a.Codes) > 0
	case model.QuestionTypeConditional:
		if a.Kind != model.AnswerKindSingle && a.Kind != model.AnswerKindConditional {
			return false
		}
		if a.Code == "" {
			return false
		}
		if q.RequiresDetail(a.Code) {
			return a.HasDetail()
		}
		return true
	default:
		return false
	}
}
