package model

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeSingle      QuestionType = "single_choice"    // one option code
	QuestionTypeMulti       QuestionType = "multi_choice"     // set of option codes
	QuestionTypeTags        QuestionType = "tag_multi_choice" // set of option codes, tag-style UI
	QuestionTypeConditional QuestionType = "conditional"      // one option code, may require detail fields
)

// Option is a selectable answer for a question
type Option struct {
	Code            string         `json:"code" yaml:"code"`
	Label           string         `json:"label" yaml:"label"`
	ScoreImpact     int            `json:"scoreImpact" yaml:"score_impact"`
	CategoryImpacts map[string]int `json:"categoryImpacts,omitempty" yaml:"category_impacts,omitempty"` // reserved
	IsEliminatory   bool           `json:"isEliminatory,omitempty" yaml:"is_eliminatory,omitempty"`
	UniqueAnswer    bool           `json:"uniqueAnswer,omitempty" yaml:"unique_answer,omitempty"` // reserved
}

// ConditionalField is a free-text detail field attached to a conditional question
type ConditionalField struct {
	Key         string `json:"key" yaml:"key"`
	Label       string `json:"label" yaml:"label"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Question is a single questionnaire entry. Codes are dotted hierarchical
// strings (e.g. "A1.1") chosen so that lexicographic order matches flow order.
type Question struct {
	Code              string             `json:"code" yaml:"code"`
	Text              string             `json:"text" yaml:"text"`
	Type              QuestionType       `json:"type" yaml:"type"`
	Options           []Option           `json:"options" yaml:"options"`
	Required          bool               `json:"required" yaml:"required"`
	ConditionalFields []ConditionalField `json:"conditionalFields,omitempty" yaml:"conditional_fields,omitempty"`
	// DetailOn lists option codes whose selection requires at least one
	// non-empty conditional field value before the answer is complete.
	DetailOn []string `json:"detailOn,omitempty" yaml:"detail_on,omitempty"`
}

// Option returns the option with the given code, if present
func (q *Question) Option(code string) (*Option, bool) {
	for i := range q.Options {
		if q.Options[i].Code == code {
			return &q.Options[i], true
		}
	}
	return nil, false
}

// RequiresDetail reports whether selecting the given option code requires
// at least one non-empty conditional field value
func (q *Question) RequiresDetail(code string) bool {
	for _, c := range q.DetailOn {
		if c == code {
			return true
		}
	}
	return false
}
