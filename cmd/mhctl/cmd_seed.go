package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"mindhealth/internal/model"
	"mindhealth/internal/service"
)

var seedQuestions = []struct {
	id, text string
	answers  []string
}{
	{"q1", "¿Cómo te has sentido esta semana?", []string{"bien, tranquilo", "algo triste y cansado", "con mucho estrés en el trabajo"}},
	{"q2", "¿Cómo has dormido?", []string{"descansé bien", "me cuesta dormir, insomnio", ""}},
	{"q3", "¿Algo te ha preocupado?", []string{"nada en especial", "me preocupa el futuro", "estoy enojado con todo"}},
}

func newSeedCommand() *cobra.Command {
	var (
		userID string
		count  int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo assessments for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("--user is required")
			}
			if count <= 0 {
				return errors.New("--count must be positive")
			}

			ctx := cmd.Context()
			stores, _, err := openStores(ctx)
			if err != nil {
				return err
			}
			defer stores.Close(ctx)

			status := service.NewStatusService(stores.Assessments, nil, nil)
			svc := service.NewAssessmentService(stores.Assessments, status)

			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			now := time.Now().UTC()
			for i := count - 1; i >= 0; i-- {
				rec := demoAssessment(rng, now.Add(-time.Duration(i)*24*time.Hour))
				if _, _, err := svc.Submit(ctx, userID, rec); err != nil {
					return fmt.Errorf("seeding assessment: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d assessments for %s\n", count, userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id to seed")
	cmd.Flags().IntVar(&count, "count", 5, "Number of assessments")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed")

	return cmd
}

// demoAssessment builds a plausible classifier output for every seed question.
func demoAssessment(rng *rand.Rand, at time.Time) *model.AssessmentRecord {
	rec := &model.AssessmentRecord{Timestamp: at.Format(time.RFC3339)}
	for _, q := range seedQuestions {
		var scores model.EmotionVector
		var sum float64
		for i := range scores {
			scores[i] = rng.Float64()
			sum += scores[i]
		}
		best := model.EmotionAngry
		for i := range scores {
			scores[i] /= sum
			if scores[i] > scores[best] {
				best = model.Emotion(i)
			}
		}

		rec.SummarizedResults = append(rec.SummarizedResults, model.QuestionResult{
			QuestionID:   q.id,
			QuestionText: q.text,
			Summary:      model.EmotionSummary{TotalFrames: 30 + rng.IntN(60)},
			PredictedEmotion: &model.PredictedEmotion{
				CategoryName: best.String(),
				Score:        scores[best],
				AllScores:    scores[:],
			},
			UserAnswer: q.answers[rng.IntN(len(q.answers))],
		})
	}
	return rec
}
