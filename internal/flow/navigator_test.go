package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiactcheck/internal/catalog"
	"aiactcheck/internal/model"
)

func newNavigator(t *testing.T) *Navigator {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return NewNavigator(cat)
}

// walk follows Next from the start state until the flow terminates
func walk(nav *Navigator, answers map[string]model.AnswerValue) []string {
	path := []string{StartQuestion}
	cur := StartQuestion
	for {
		next, ok := nav.Next(cur, answers)
		if !ok {
			return path
		}
		path = append(path, next)
		cur = next
	}
}

// answerSet builds a full answer map for one traversal scenario
func answerSet(role, doc string, riskNone bool) map[string]model.AnswerValue {
	a := map[string]model.AnswerValue{
		"A1":   model.SingleAnswer(role),
		"A1.1": model.SingleAnswer("YES"),
		"A1.2": model.SingleAnswer("YES"),
		"C1":   model.SingleAnswer(doc),
		"C2":   model.SingleAnswer("YES_CONTINUOUS"),
		"C3":   model.SingleAnswer("YES"),
		"C4":   model.SingleAnswer("YES"),
		"D1":   model.MultiAnswer("PERSONAL"),
		"D2":   model.ConditionalAnswer("NO", nil),
		"D3":   model.ConditionalAnswer("NO", nil),
		"D4":   model.ConditionalAnswer("NO", nil),
		"E1":   model.SingleAnswer("NO"),
		"E2":   model.SingleAnswer("YES"),
		"E3":   model.SingleAnswer("UNDER_10K"),
		"E4":   model.MultiAnswer("TEXT"),
		"F1":   model.SingleAnswer("YES"),
		"F2":   model.SingleAnswer("YES"),
	}
	if riskNone {
		a["B1"] = model.MultiAnswer("NONE")
		a["B1.1"] = model.MultiAnswer("NONE")
		a["B2"] = model.MultiAnswer("NONE")
		a["B2.1"] = model.MultiAnswer("NONE")
	} else {
		a["B1"] = model.MultiAnswer("EMPLOYMENT")
		a["B1.1"] = model.MultiAnswer("PROFILING")
		a["B2"] = model.MultiAnswer("NONE")
		a["B2.1"] = model.MultiAnswer("DECISIONS_LEGAL_EFFECT")
	}
	return a
}

func TestNextBranchesOnRole(t *testing.T) {
	nav := newNavigator(t)

	tests := []struct {
		name     string
		answer   model.AnswerValue
		wantNext string
		wantOK   bool
	}{
		{"provider branch", model.SingleAnswer("PROVIDER"), "A1.1", true},
		{"deployer branch", model.SingleAnswer("DEPLOYER"), "A1.2", true},
		{"neither terminates", model.SingleAnswer("NEITHER"), "", false},
		{"unanswered terminates", model.AnswerValue{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := nav.Next("A1", map[string]model.AnswerValue{"A1": tt.answer})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestNextDocumentationRule(t *testing.T) {
	nav := newNavigator(t)

	t.Run("documentation skips risk management block", func(t *testing.T) {
		next, ok := nav.Next("C1", answerSet("PROVIDER", "YES", false))
		require.True(t, ok)
		assert.Equal(t, "D1", next)
	})

	t.Run("no documentation with risk enters block", func(t *testing.T) {
		next, ok := nav.Next("C1", answerSet("PROVIDER", "NO", false))
		require.True(t, ok)
		assert.Equal(t, "C2", next)
	})

	t.Run("no documentation but all screens none still skips", func(t *testing.T) {
		next, ok := nav.Next("C1", answerSet("PROVIDER", "NO", true))
		require.True(t, ok)
		assert.Equal(t, "D1", next)
	})

	t.Run("none plus another selection does not skip", func(t *testing.T) {
		a := answerSet("PROVIDER", "NO", true)
		a["B2"] = model.MultiAnswer("NONE", "EMOTION_RECOGNITION")
		next, ok := nav.Next("C1", a)
		require.True(t, ok)
		assert.Equal(t, "C2", next)
	})

	t.Run("unrecognised answer terminates", func(t *testing.T) {
		a := answerSet("PROVIDER", "MAYBE", false)
		_, ok := nav.Next("C1", a)
		assert.False(t, ok)
	})
}

func TestNextUnknownQuestionTerminates(t *testing.T) {
	nav := newNavigator(t)
	_, ok := nav.Next("Z9", answerSet("PROVIDER", "YES", false))
	assert.False(t, ok)
}

func TestWalkCoversExpectedPaths(t *testing.T) {
	nav := newNavigator(t)

	shortTail := []string{"D1", "D2", "D3", "D4", "E1", "E2", "E3", "E4", "F1", "F2"}
	longTail := append([]string{"C2", "C3", "C4"}, shortTail...)

	tests := []struct {
		name    string
		answers map[string]model.AnswerValue
		want    []string
	}{
		{
			"provider with documentation",
			answerSet("PROVIDER", "YES", false),
			append([]string{"A1", "A1.1", "B1", "B1.1", "B2", "B2.1", "C1"}, shortTail...),
		},
		{
			"deployer without documentation",
			answerSet("DEPLOYER", "NO", false),
			append([]string{"A1", "A1.2", "B1", "B1.1", "B2", "B2.1", "C1"}, longTail...),
		},
		{
			"provider without documentation but no risk",
			answerSet("PROVIDER", "NO", true),
			append([]string{"A1", "A1.1", "B1", "B1.1", "B2", "B2.1", "C1"}, shortTail...),
		},
		{
			"deployer without documentation but no risk",
			answerSet("DEPLOYER", "NO", true),
			append([]string{"A1", "A1.2", "B1", "B1.1", "B2", "B2.1", "C1"}, shortTail...),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, walk(nav, tt.answers))
		})
	}
}

func TestProgressMonotonicAlongEveryPath(t *testing.T) {
	nav := newNavigator(t)

	scenarios := []map[string]model.AnswerValue{
		answerSet("PROVIDER", "YES", false),
		answerSet("PROVIDER", "NO", false),
		answerSet("PROVIDER", "NO", true),
		answerSet("DEPLOYER", "YES", false),
		answerSet("DEPLOYER", "NO", false),
		answerSet("DEPLOYER", "NO", true),
	}

	for _, answers := range scenarios {
		path := walk(nav, answers)
		last := -1
		for _, code := range path {
			p := nav.Progress(code)
			require.GreaterOrEqual(t, p.Percentage, last,
				"progress must not decrease at %s on path %v", code, path)
			last = p.Percentage
		}
		assert.Equal(t, 100, nav.Progress(path[len(path)-1]).Percentage)
	}
}

func TestProgressValues(t *testing.T) {
	nav := newNavigator(t)

	total := 21
	p := nav.Progress("A1")
	assert.Equal(t, model.Progress{Current: 1, Total: total, Percentage: 5}, p)

	p = nav.Progress("F2")
	assert.Equal(t, model.Progress{Current: total, Total: total, Percentage: 100}, p)

	p = nav.Progress("unknown")
	assert.Equal(t, model.Progress{Current: 0, Total: total, Percentage: 0}, p)
}

func TestBuildPathRoundTrip(t *testing.T) {
	nav := newNavigator(t)

	answers := answerSet("DEPLOYER", "NO", false)
	full := walk(nav, answers)

	for _, current := range full {
		path := nav.BuildPath(current, answers)
		require.NotEmpty(t, path)
		assert.Equal(t, current, path[len(path)-1])

		// Replaying Next over the reconstructed path yields the same sequence
		for i := 0; i < len(path)-1; i++ {
			next, ok := nav.Next(path[i], answers)
			require.True(t, ok)
			assert.Equal(t, path[i+1], next)
		}
	}
}

func TestBuildPathStopsAtTerminal(t *testing.T) {
	nav := newNavigator(t)

	answers := map[string]model.AnswerValue{"A1": model.SingleAnswer("NEITHER")}
	path := nav.BuildPath("F2", answers)
	assert.Equal(t, []string{"A1"}, path)
}

func TestPreviousFromHistory(t *testing.T) {
	nav := newNavigator(t)
	history := []string{"A1", "A1.1", "B1"}

	prev, ok := nav.PreviousFromHistory("B1", history)
	require.True(t, ok)
	assert.Equal(t, "A1.1", prev)

	_, ok = nav.PreviousFromHistory("A1", history)
	assert.False(t, ok)

	_, ok = nav.PreviousFromHistory("F2", history)
	assert.False(t, ok)
}

func TestCanProceed(t *testing.T) {
	nav := newNavigator(t)
	cat, err := catalog.New()
	require.NoError(t, err)

	get := func(code string) *model.Question {
		q, ok := cat.Get(code)
		require.True(t, ok)
		return q
	}

	tests := []struct {
		name     string
		question *model.Question
		answer   model.AnswerValue
		want     bool
	}{
		{"nil question", nil, model.SingleAnswer("YES"), false},
		{"single answered", get("C1"), model.SingleAnswer("YES"), true},
		{"single empty", get("C1"), model.SingleAnswer(""), false},
		{"single wrong shape", get("C1"), model.MultiAnswer("YES"), false},
		{"multi answered", get("B1"), model.MultiAnswer("EMPLOYMENT"), true},
		{"multi empty", get("B1"), model.MultiAnswer(), false},
		{"multi wrong shape", get("B1"), model.SingleAnswer("EMPLOYMENT"), false},
		{"tags answered", get("D1"), model.MultiAnswer("PERSONAL"), true},
		{"conditional without detail requirement", get("D4"), model.SingleAnswer("NO"), true},
		{"conditional yes missing detail", get("D4"), model.ConditionalAnswer("YES", nil), false},
		{"conditional yes empty detail", get("D4"), model.ConditionalAnswer("YES", map[string]string{"measures": "  "}), false},
		{"conditional yes with detail", get("D4"), model.ConditionalAnswer("YES", map[string]string{"measures": "human review"}), true},
		{"conditional other needs detail", get("D4"), model.ConditionalAnswer("OTHER", nil), false},
		{"conditional other with detail", get("D4"), model.ConditionalAnswer("OTHER", map[string]string{"measures": "audit trail"}), true},
		{"conditional bare yes still gated", get("D2"), model.SingleAnswer("YES"), false},
		{"conditional large volume needs designation", get("E3"), model.ConditionalAnswer("OVER_45M", nil), false},
		{"conditional empty code", get("D2"), model.ConditionalAnswer("", nil), false},
		{"unanswered", get("C1"), model.AnswerValue{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nav.CanProceed(tt.question, tt.answer))
		})
	}
}
