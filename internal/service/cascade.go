package service

import (
	"context"

	"go.uber.org/zap"

	"uatf-curricular/backend/internal/repository"
	"uatf-curricular/backend/pkg/storage"
)

// cascadePlan everything owned by a set of programs or redesigns
type cascadePlan struct {
	programIDs  []string
	redesignIDs []string
	progressIDs []string
	storageKeys []string
}

// cascader deletes a catalog or redesign subtree: stored files first, then rows in one transaction.
type cascader struct {
	repo   *repository.Repository
	store  storage.Storage
	logger *zap.Logger
}

func (c *cascader) planPrograms(ctx context.Context, programIDs []string) (*cascadePlan, error) {
	redesignIDs, err := c.repo.Redesign.ListIDsByProgramIDs(ctx, programIDs)
	if err != nil {
		return nil, err
	}
	plan, err := c.planRedesigns(ctx, redesignIDs)
	if err != nil {
		return nil, err
	}
	plan.programIDs = programIDs
	return plan, nil
}

func (c *cascader) planRedesigns(ctx context.Context, redesignIDs []string) (*cascadePlan, error) {
	progressIDs, err := c.repo.Progress.ListIDsByRedesignIDs(ctx, redesignIDs)
	if err != nil {
		return nil, err
	}
	evidences, err := c.repo.Evidence.ListByProgressIDs(ctx, progressIDs)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(evidences))
	for _, e := range evidences {
		keys = append(keys, e.StorageKey)
	}
	return &cascadePlan{
		redesignIDs: redesignIDs,
		progressIDs: progressIDs,
		storageKeys: keys,
	}, nil
}

// execute removes the files of plan, then its rows and finally whatever last deletes
// (the campus, faculty, program or redesign itself) inside a single transaction.
// A storage failure aborts before any row is touched.
func (c *cascader) execute(ctx context.Context, plan *cascadePlan, last func(tx *repository.Repository) error) error {
	for _, key := range plan.storageKeys {
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Error("delete stored evidence failed", zap.String("key", key), zap.Error(err))
			return ErrStorageFailure.Wrap(err)
		}
	}

	return c.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Evidence.DeleteByProgressIDs(ctx, plan.progressIDs); err != nil {
			return err
		}
		if err := tx.Progress.DeleteByRedesignIDs(ctx, plan.redesignIDs); err != nil {
			return err
		}
		if err := tx.Redesign.DeleteByIDs(ctx, plan.redesignIDs); err != nil {
			return err
		}
		if err := tx.Program.DeleteByIDs(ctx, plan.programIDs); err != nil {
			return err
		}
		if last != nil {
			return last(tx)
		}
		return nil
	})
}
