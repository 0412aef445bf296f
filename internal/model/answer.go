package model

import (
	"strings"
	"time"
)

// AnswerKind tags the shape of an AnswerValue
type AnswerKind int

const (
	AnswerKindNone AnswerKind = iota
	AnswerKindSingle
	AnswerKindMulti
	AnswerKindConditional
)

// AnswerValue is the normalized, in-memory answer for one question.
// Exactly one shape is populated depending on Kind; the zero value means
// "not answered".
type AnswerValue struct {
	Kind   AnswerKind        `json:"kind"`
	Code   string            `json:"code,omitempty"`   // single / conditional selected code
	Codes  []string          `json:"codes,omitempty"`  // multi / tags
	Detail map[string]string `json:"detail,omitempty"` // conditional field values
}

// SingleAnswer builds a single-choice answer
func SingleAnswer(code string) AnswerValue {
	return AnswerValue{Kind: AnswerKindSingle, Code: code}
}

// MultiAnswer builds a multi-choice or tag answer
func MultiAnswer(codes ...string) AnswerValue {
	return AnswerValue{Kind: AnswerKindMulti, Codes: codes}
}

// ConditionalAnswer builds a conditional answer with optional detail values
func ConditionalAnswer(code string, detail map[string]string) AnswerValue {
	return AnswerValue{Kind: AnswerKindConditional, Code: code, Detail: detail}
}

// IsZero reports whether the answer carries no usable payload
func (a AnswerValue) IsZero() bool {
	switch a.Kind {
	case AnswerKindSingle, AnswerKindConditional:
		return a.Code == ""
	case AnswerKindMulti:
		return len(a.Codes) == 0
	default:
		return true
	}
}

// HasDetail reports whether at least one conditional field value is non-empty
func (a AnswerValue) HasDetail() bool {
	for _, v := range a.Detail {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Display renders the answer value for score breakdowns
func (a AnswerValue) Display() string {
	switch a.Kind {
	case AnswerKindSingle, AnswerKindConditional:
		return a.Code
	case AnswerKindMulti:
		return strings.Join(a.Codes, ", ")
	default:
		return ""
	}
}

// Response is the stored record of one answered question for a use case.
// Exactly one answer slot is populated depending on the question's type;
// readers must tolerate empty or inconsistent slots.
type Response struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	UsecaseID         string    `json:"usecaseId" bson:"usecaseId"`
	QuestionCode      string    `json:"questionCode" bson:"questionCode"`
	SingleValue       string    `json:"singleValue,omitempty" bson:"singleValue,omitempty"`
	MultipleCodes     []string  `json:"multipleCodes,omitempty" bson:"multipleCodes,omitempty"`
	ConditionalMain   string    `json:"conditionalMain,omitempty" bson:"conditionalMain,omitempty"`
	ConditionalKeys   []string  `json:"conditionalKeys,omitempty" bson:"conditionalKeys,omitempty"`
	ConditionalValues []string  `json:"conditionalValues,omitempty" bson:"conditionalValues,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}

// NewResponse converts a normalized answer into its storage shape
func NewResponse(usecaseID, questionCode string, a AnswerValue) *Response {
	r := &Response{
		UsecaseID:    usecaseID,
		QuestionCode: questionCode,
	}
	switch a.Kind {
	case AnswerKindSingle:
		r.SingleValue = a.Code
	case AnswerKindMulti:
		r.MultipleCodes = a.Codes
	case AnswerKindConditional:
		r.ConditionalMain = a.Code
		for k, v := range a.Detail {
			r.ConditionalKeys = append(r.ConditionalKeys, k)
			r.ConditionalValues = append(r.ConditionalValues, v)
		}
	}
	return r
}

// Answer normalizes the record for a question of the given declared type.
// Missing or mismatched slots yield a zero AnswerValue rather than an error.
func (r *Response) Answer(t QuestionType) AnswerValue {
	switch t {
	case QuestionTypeSingle:
		if r.SingleValue == "" {
			return AnswerValue{}
		}
		return SingleAnswer(r.SingleValue)
	case QuestionTypeMulti, QuestionTypeTags:
		if len(r.MultipleCodes) == 0 {
			return AnswerValue{}
		}
		return MultiAnswer(r.MultipleCodes...)
	case QuestionTypeConditional:
		// A bare code may land in either slot depending on the caller.
		code := r.ConditionalMain
		if code == "" {
			code = r.SingleValue
		}
		if code == "" {
			return AnswerValue{}
		}
		detail := make(map[string]string)
		for i, k := range r.ConditionalKeys {
			if i >= len(r.ConditionalValues) {
				break
			}
			detail[k] = r.ConditionalValues[i]
		}
		return ConditionalAnswer(code, detail)
	default:
		return AnswerValue{}
	}
}
