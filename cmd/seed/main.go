// Command seed inserts a demo use case with a fully answered questionnaire,
// useful for exercising the score endpoints against a local stack.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aiactcheck/internal/catalog"
	"aiactcheck/internal/config"
	"aiactcheck/internal/model"
	"aiactcheck/internal/repository"
)

func main() {
	cfg := config.Load()

	if _, err := catalog.Default(); err != nil {
		log.Fatalf("Failed to load question catalog: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	usecaseRepo := repository.NewUsecaseRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	ownerID := os.Getenv("SEED_OWNER_ID")
	if ownerID == "" {
		ownerID = "assessor_demo"
	}

	usecaseID, err := usecaseRepo.Create(ctx, &model.UseCase{
		OwnerID:     ownerID,
		Name:        "Resume Screening Assistant",
		Description: "Ranks incoming job applications and drafts rejection emails.",
	})
	if err != nil {
		log.Fatalf("Failed to create use case: %v", err)
	}

	answers := []struct {
		code   string
		answer model.AnswerValue
	}{
		{"A1", model.SingleAnswer("PROVIDER")},
		{"A1.1", model.SingleAnswer("YES")},
		{"B1", model.MultiAnswer("EMPLOYMENT")},
		{"B1.1", model.MultiAnswer("PROFILING")},
		{"B2", model.MultiAnswer("NONE")},
		{"B2.1", model.MultiAnswer("DECISIONS_LEGAL_EFFECT")},
		{"C1", model.SingleAnswer("NO")},
		{"C2", model.SingleAnswer("YES_PARTIAL")},
		{"C3", model.SingleAnswer("PARTIALLY")},
		{"C4", model.SingleAnswer("YES")},
		{"D1", model.MultiAnswer("PERSONAL")},
		{"D2", model.ConditionalAnswer("YES", map[string]string{"procedures": "annual bias audit"})},
		{"D3", model.SingleAnswer("NO")},
		{"D4", model.ConditionalAnswer("YES", map[string]string{"measures": "recruiter reviews every ranking"})},
		{"E1", model.SingleAnswer("NO")},
		{"E2", model.SingleAnswer("YES")},
		{"E3", model.SingleAnswer("UNDER_10K")},
		{"E4", model.MultiAnswer("TEXT")},
		{"F1", model.SingleAnswer("YES")},
		{"F2", model.SingleAnswer("YES")},
	}

	for _, a := range answers {
		if err := responseRepo.Upsert(ctx, model.NewResponse(usecaseID, a.code, a.answer)); err != nil {
			log.Fatalf("Failed to seed answer %s: %v", a.code, err)
		}
	}

	fmt.Printf("Seeded use case %s with %d answers\n", usecaseID, len(answers))
}
