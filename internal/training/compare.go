package training

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"ascend/internal/models"
)

// GenerateAll строит программы всеми тремя типами периодизации параллельно.
// Генерация чистая, поэтому общие входные данные читаются без блокировок.
func GenerateAll(
	ctx context.Context,
	weeks int,
	byDay models.ExercisesByDay,
	selectedDays []models.Weekday,
) (map[models.PeriodizationType]*models.Program, error) {
	var mu sync.Mutex
	programs := make(map[models.PeriodizationType]*models.Program, len(models.PeriodizationTypes))

	grp, ctx := errgroup.WithContext(ctx)
	for _, t := range models.PeriodizationTypes {
		t := t
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			program, err := Generate(t, weeks, byDay, selectedDays)
			if err != nil {
				return err
			}
			mu.Lock()
			programs[t] = program
			mu.Unlock()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return programs, nil
}
