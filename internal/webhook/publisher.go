package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "incident_webhook_events"
)

const (
	EventIncidentCreated = "incident.created"
	EventStatusChanged   = "incident.status_changed"
	EventTeamAssigned    = "incident.team_assigned"
)

// IncidentEvent - структура для данных вебхука
type IncidentEvent struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	IncidentKey string    `json:"incident_key"`
	ReportID    string    `json:"report_id"`
	Category    string    `json:"category,omitempty"`
	Severity    string    `json:"severity,omitempty"`
	Status      string    `json:"status,omitempty"`
	Team        string    `json:"team,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish ставит событие в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
