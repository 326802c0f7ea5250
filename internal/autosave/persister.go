package autosave

import (
	"context"

	"go-shiftplan/internal/shift"

	"go.uber.org/zap"
)

// shiftPersister applies drained batches through the shift mutation
// pipeline. Structural rejections of individual edits are logged and
// skipped rather than failing the batch: an edit the validator refuses
// will never become valid by retrying.
type shiftPersister struct {
	service shift.Service
	logger  *zap.Logger
}

func NewShiftPersister(service shift.Service, logger ...*zap.Logger) Persister {
	l := zap.L().Named("autosave.persister")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("autosave.persister")
	}
	return &shiftPersister{service: service, logger: l}
}

func (p *shiftPersister) Persist(ctx context.Context, batch []Mutation) error {
	for _, m := range batch {
		var err error
		switch m.Op {
		case OpCreate:
			_, err = p.service.Create(ctx, m.RestaurantID, *m.Create)
		case OpUpdate:
			_, err = p.service.Update(ctx, m.RestaurantID, m.ShiftID, *m.Update)
		case OpDelete:
			err = p.service.Delete(ctx, m.RestaurantID, m.ShiftID)
		}
		if err != nil {
			p.logger.Warn("autosaved mutation rejected",
				zap.String("employee_id", m.Key.EmployeeID),
				zap.Int("day", m.Key.Day),
				zap.String("op", string(m.Op)),
				zap.Error(err),
			)
		}
	}
	return nil
}
