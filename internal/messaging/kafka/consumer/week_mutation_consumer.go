package consumer

import (
	"context"
	"encoding/json"

	"go-shiftplan/internal/events"
	"go-shiftplan/internal/summary"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeWeekMutations evicts cached weekly summaries for an employee-week
// after a committed shift mutation. Eviction is best-effort: summary cache
// keys embed a content hash, so a missed eviction can only leave a dead
// entry behind, never a wrong answer.
func ConsumeWeekMutations(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.week_mutations")
	log.Info("week mutation consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("week mutation consumer stopped")
				return
			}
			log.Error("fetch week mutation message failed", zap.Error(err))
			continue
		}

		var event events.WeekMutationAppliedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode week mutation event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		prefix := summary.SummaryKeyForWeek(event.EmployeeID, event.WeekStart)
		if err := evictByPrefix(ctx, rdb, prefix); err != nil {
			log.Error("evict summary cache failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("week_start", event.WeekStart),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit week mutation message failed", zap.Error(err))
			continue
		}

		log.Info("summary cache evicted",
			zap.String("event_type", event.EventType),
			zap.String("employee_id", event.EmployeeID),
			zap.String("week_start", event.WeekStart),
		)
	}
}

func evictByPrefix(ctx context.Context, rdb *redis.Client, prefix string) error {
	iter := rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}
