package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/logger"
	"github.com/sbilibin2017/gw-whiskey-collection/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=activity.go -destination=mock_activity.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

func newActivity(activityType string, userID, whiskeyID, entityID int64) models.Activity {
	return models.Activity{
		ActivityID: uuid.NewString(),
		Type:       activityType,
		UserID:     userID,
		WhiskeyID:  whiskeyID,
		EntityID:   entityID,
		Timestamp:  time.Now().Unix(),
	}
}

// publishActivity hands an activity to the Kafka writer. Failures are logged and
// never fail the request that produced the activity.
func publishActivity(ctx context.Context, w KafkaWriter, activity models.Activity) {
	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "activity_id", activity.ActivityID)
		return
	}

	data, err := json.Marshal(activity)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity for Kafka", "activity_id", activity.ActivityID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(activity.UserID, 10)),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity to Kafka", "activity_id", activity.ActivityID, "error", err)
	} else {
		logger.Log.Infow("Activity sent to Kafka writer", "activity_id", activity.ActivityID, "type", activity.Type)
	}
}
