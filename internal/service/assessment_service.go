package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"aiactcheck/internal/cache"
	"aiactcheck/internal/catalog"
	"aiactcheck/internal/flow"
	"aiactcheck/internal/model"
	"aiactcheck/internal/repository"
)

var (
	ErrUsecaseNotFound  = errors.New("use case not found")
	ErrUnknownQuestion  = errors.New("unknown question code")
	ErrIncompleteAnswer = errors.New("answer is incomplete for its question type")
)

// AssessmentService drives the questionnaire: it records answers, computes
// progress and reconstructs the navigation path from stored responses.
type AssessmentService struct {
	usecaseRepo  repository.UsecaseRepo
	responseRepo repository.ResponseRepo
	scoreCache   cache.ScoreCache
	catalog      *catalog.Catalog
	navigator    *flow.Navigator
	broadcaster  Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	usecaseRepo repository.UsecaseRepo,
	responseRepo repository.ResponseRepo,
	scoreCache cache.ScoreCache,
	cat *catalog.Catalog,
	navigator *flow.Navigator,
) *AssessmentService {
	return &AssessmentService{
		usecaseRepo:  usecaseRepo,
		responseRepo: responseRepo,
		scoreCache:   scoreCache,
		catalog:      cat,
		navigator:    navigator,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SaveAnswerResult is returned after an answer is recorded
type SaveAnswerResult struct {
	NextQuestion string         `json:"nextQuestion,omitempty"`
	Completed    bool           `json:"completed"`
	Progress     model.Progress `json:"progress"`
}

// SaveAnswer validates and upserts one answer, then reports the next
// question and the updated progress
func (s *AssessmentService) SaveAnswer(ctx context.Context, usecaseID, questionCode string, answer model.AnswerValue) (*SaveAnswerResult, error) {
	usecase, err := s.usecaseRepo.GetByID(ctx, usecaseID)
	if err != nil {
		return nil, fmt.Errorf("load use case: %w", err)
	}
	if usecase == nil {
		return nil, ErrUsecaseNotFound
	}

	question, ok := s.catalog.Get(questionCode)
	if !ok {
		return nil, ErrUnknownQuestion
	}
	if !s.navigator.CanProceed(question, answer) {
		return nil, ErrIncompleteAnswer
	}

	if err := s.responseRepo.Upsert(ctx, model.NewResponse(usecaseID, questionCode, answer)); err != nil {
		return nil, fmt.Errorf("save answer: %w", err)
	}

	// A stored score no longer matches the answer set
	if err := s.scoreCache.Invalidate(ctx, usecaseID); err != nil {
		log.Printf("invalidate score cache for %s: %v", usecaseID, err)
	}

	answers, err := s.Answers(ctx, usecaseID)
	if err != nil {
		return nil, err
	}

	next, ok := s.navigator.Next(questionCode, answers)
	result := &SaveAnswerResult{
		NextQuestion: next,
		Completed:    !ok,
		Progress:     s.navigator.Progress(questionCode),
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUsecase(usecaseID, "answer_saved", map[string]interface{}{
			"questionCode": questionCode,
			"nextQuestion": next,
			"progress":     result.Progress,
		})
	}

	return result, nil
}

// Answers loads the full normalized answer set for a use case
func (s *AssessmentService) Answers(ctx context.Context, usecaseID string) (map[string]model.AnswerValue, error) {
	responses, err := s.responseRepo.GetByUsecase(ctx, usecaseID)
	if err != nil {
		return nil, fmt.Errorf("load responses: %w", err)
	}

	answers := make(map[string]model.AnswerValue, len(responses))
	for _, r := range responses {
		q, ok := s.catalog.Get(r.QuestionCode)
		if !ok {
			continue
		}
		a := r.Answer(q.Type)
		if a.IsZero() {
			continue
		}
		answers[r.QuestionCode] = a
	}
	return answers, nil
}

// CurrentQuestion walks the flow from the start and returns the first
// unanswered question, or nil when the questionnaire is complete
func (s *AssessmentService) CurrentQuestion(ctx context.Context, usecaseID string) (*model.Question, error) {
	answers, err := s.Answers(ctx, usecaseID)
	if err != nil {
		return nil, err
	}

	current := flow.StartQuestion
	for {
		if _, answered := answers[current]; !answered {
			q, _ := s.catalog.Get(current)
			return q, nil
		}
		next, ok := s.navigator.Next(current, answers)
		if !ok {
			return nil, nil
		}
		current = next
	}
}

// Progress returns absolute progress for a question code
func (s *AssessmentService) Progress(current string) model.Progress {
	return s.navigator.Progress(current)
}

// Path rebuilds the ordered list of questions visited to reach current,
// replaying the flow against the stored answers
func (s *AssessmentService) Path(ctx context.Context, usecaseID, current string) ([]string, error) {
	answers, err := s.Answers(ctx, usecaseID)
	if err != nil {
		return nil, err
	}
	return s.navigator.BuildPath(current, answers), nil
}
