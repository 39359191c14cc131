package usecase

import (
	"context"

	"github.com/ayushgupta5924/quickbucks/internal/analytics"
	"github.com/ayushgupta5924/quickbucks/internal/model"
)

// Insights runs the insight engine over the caller's task history.
// Results are cached per user with a short TTL.
func (uc *implUseCase) Insights(ctx context.Context, sc model.Scope) (analytics.InsightsOutput, error) {
	if cached, ok := uc.cache.Get(sc.UserID); ok {
		return analytics.InsightsOutput{Insights: cached}, nil
	}

	tasks, err := uc.taskRepo.ListAllTasks(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Insights ListAllTasks: %v", err)
		return analytics.InsightsOutput{}, err
	}

	insights := uc.engine.Generate(uc.now(), tasks)
	uc.cache.Add(sc.UserID, insights)

	return analytics.InsightsOutput{Insights: insights}, nil
}
