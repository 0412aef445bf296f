// Package catalog loads the static questionnaire dataset and serves question
// definitions by code. A Catalog is immutable after construction and safe for
// concurrent reads.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"aiactcheck/internal/model"
)

//go:embed questions.yaml
var rawDataset []byte

// Catalog is the parsed, validated question set
type Catalog struct {
	byCode  map[string]*model.Question
	ordered []*model.Question
}

type dataset struct {
	Questions []model.Question `yaml:"questions"`
}

// New parses and validates the embedded dataset
func New() (*Catalog, error) {
	return Parse(rawDataset)
}

// Parse builds a Catalog from a raw YAML dataset. It fails on the first
// malformed entry rather than serving partial questions.
func Parse(data []byte) (*Catalog, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse question dataset: %w", err)
	}
	if len(ds.Questions) == 0 {
		return nil, fmt.Errorf("question dataset is empty")
	}

	c := &Catalog{byCode: make(map[string]*model.Question, len(ds.Questions))}
	for i := range ds.Questions {
		q := &ds.Questions[i]
		if err := validate(q); err != nil {
			return nil, fmt.Errorf("question %q: %w", q.Code, err)
		}
		if _, dup := c.byCode[q.Code]; dup {
			return nil, fmt.Errorf("duplicate question code %q", q.Code)
		}
		c.byCode[q.Code] = q
		c.ordered = append(c.ordered, q)
	}

	sort.Slice(c.ordered, func(i, j int) bool {
		return c.ordered[i].Code < c.ordered[j].Code
	})
	return c, nil
}

func validate(q *model.Question) error {
	if q.Code == "" {
		return fmt.Errorf("missing code")
	}
	if q.Text == "" {
		return fmt.Errorf("missing text")
	}
	switch q.Type {
	case model.QuestionTypeSingle, model.QuestionTypeMulti, model.QuestionTypeTags, model.QuestionTypeConditional:
	case "":
		return fmt.Errorf("missing type")
	default:
		return fmt.Errorf("unknown type %q", q.Type)
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("no options")
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if o.Code == "" {
			return fmt.Errorf("option with empty code")
		}
		if seen[o.Code] {
			return fmt.Errorf("duplicate option code %q", o.Code)
		}
		seen[o.Code] = true
	}
	if q.Type != model.QuestionTypeConditional && (len(q.ConditionalFields) > 0 || len(q.DetailOn) > 0) {
		return fmt.Errorf("conditional fields on non-conditional question")
	}
	for _, code := range q.DetailOn {
		if !seen[code] {
			return fmt.Errorf("detail_on references unknown option %q", code)
		}
	}
	if len(q.DetailOn) > 0 && len(q.ConditionalFields) == 0 {
		return fmt.Errorf("detail_on without conditional fields")
	}
	return nil
}

// Get returns the question with the given code
func (c *Catalog) Get(code string) (*model.Question, bool) {
	q, ok := c.byCode[code]
	return q, ok
}

// Exists reports whether a question code is part of the catalog
func (c *Catalog) Exists(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// AllOrdered returns every question sorted lexicographically by code. The
// dotted code convention makes this ordering match the questionnaire flow.
func (c *Catalog) AllOrdered() []*model.Question {
	out := make([]*model.Question, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of questions in the catalog
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Rank returns the 1-based position of a code in the ordered catalog, or 0 if
// the code is unknown
func (c *Catalog) Rank(code string) int {
	for i, q := range c.ordered {
		if q.Code == code {
			return i + 1
		}
	}
	return 0
}

var (
	defaultMu  sync.Mutex
	defaultCat *Catalog
)

// Default returns the process-wide catalog, parsing the embedded dataset on
// first use only.
func Default() (*Catalog, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCat != nil {
		return defaultCat, nil
	}
	c, err := New()
	if err != nil {
		return nil, err
	}
	defaultCat = c
	return c, nil
}

// ResetDefault clears the memoized default catalog. Test isolation only.
func ResetDefault() {
	defaultMu.Lock()
	defaultCat = nil
	defaultMu.Unlock()
}
