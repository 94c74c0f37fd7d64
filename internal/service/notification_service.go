package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-service/internal/events"
)

const notificationTTL = 7 * 24 * time.Hour

// NotificationService tells property owners about new inquiries. Each
// notification lands on a per-owner Redis list the dashboard can poll;
// delivery failures are logged and dropped, never surfaced to the
// request that triggered them.
type NotificationService struct {
	dispatcher events.Dispatcher
	redis      *redis.Client
	logger     *zap.Logger
}

// NewNotificationService creates the service. A nil redis client
// degrades to log-only notifications.
func NewNotificationService(dispatcher events.Dispatcher, redisClient *redis.Client, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		redis:      redisClient,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to the events that produce notifications.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInquiryCreated, n.handleInquiryCreated)
}

func (n *NotificationService) handleInquiryCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InquiryPayload)
	if !ok {
		return nil
	}
	n.logger.Info("InquiryCreated",
		zap.String("inquiry_id", payload.InquiryID),
		zap.String("property_id", payload.PropertyID),
		zap.String("owner_id", payload.PropertyOwnerID))

	n.pushOwnerNotification(ctx, payload)
	return nil
}

func (n *NotificationService) pushOwnerNotification(ctx context.Context, payload events.InquiryPayload) {
	if n.redis == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	key := "notifications:" + payload.PropertyOwnerID
	if err := n.redis.LPush(ctx, key, body).Err(); err != nil {
		n.logger.Warn("owner notification push failed", zap.Error(err))
		return
	}
	_ = n.redis.Expire(ctx, key, notificationTTL).Err()
}
