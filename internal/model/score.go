package model

import "time"

// BaseScore is the starting point pool shared by the global score and every
// category sub-score.
const BaseScore = 100

// RiskLevel is the AI Act risk classification of a use case
type RiskLevel string

const (
	RiskLevelMinimal      RiskLevel = "minimal"
	RiskLevelLimited      RiskLevel = "limited"
	RiskLevelHigh         RiskLevel = "high"
	RiskLevelUnacceptable RiskLevel = "unacceptable"
)

// BreakdownEntry explains the contribution of one answered question
type BreakdownEntry struct {
	QuestionID   string `json:"questionId" bson:"questionId"`
	QuestionText string `json:"questionText" bson:"questionText"`
	AnswerValue  string `json:"answerValue" bson:"answerValue"`
	ScoreImpact  int    `json:"scoreImpact" bson:"scoreImpact"`
	Reasoning    string `json:"reasoning" bson:"reasoning"`
	CategoryID   string `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
}

// CategoryScore is the independent sub-score of one compliance dimension.
// Every category starts from the same BaseScore; categories are separate
// lenses on the point pool, not a partition of the global score.
type CategoryScore struct {
	CategoryID    string `json:"categoryId" bson:"categoryId"`
	Name          string `json:"name" bson:"name"`
	Score         int    `json:"score" bson:"score"`
	Max           int    `json:"max" bson:"max"`
	Percentage    int    `json:"percentage" bson:"percentage"`
	QuestionCount int    `json:"questionCount" bson:"questionCount"`
	Color         string `json:"color" bson:"color"`
	Icon          string `json:"icon" bson:"icon"`
}

// ScoreResult is the full output of one score calculation. The scorer always
// emits Version 1; the persistence layer owns version continuity across
// recomputations for the same use case.
type ScoreResult struct {
	UsecaseID      string           `json:"usecaseId" bson:"usecaseId"`
	Score          int              `json:"score" bson:"score"`
	MaxScore       int              `json:"maxScore" bson:"maxScore"`
	RiskLevel      RiskLevel        `json:"riskLevel" bson:"riskLevel"`
	Breakdown      []BreakdownEntry `json:"scoreBreakdown" bson:"scoreBreakdown"`
	CategoryScores []CategoryScore  `json:"categoryScores" bson:"categoryScores"`
	CalculatedAt   time.Time        `json:"calculatedAt" bson:"calculatedAt"`
	Version        int              `json:"version" bson:"version"`
}

// Progress reports absolute questionnaire progress: the 1-based rank of the
// current question in the lexicographically ordered catalog over the catalog
// size.
type Progress struct {
	Current    int `json:"current"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
