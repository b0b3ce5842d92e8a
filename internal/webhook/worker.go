package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Songmu/retry"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergensys/internal/config"
	"github.com/sirupsen/logrus"
)

// requeueTimeout ограничивает возврат события в очередь при остановке
const requeueTimeout = 2 * time.Second

// webhookQueue - операции Redis, нужные воркеру; реализуется *redis.Client
type webhookQueue interface {
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	queue      webhookQueue
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	w := &WebhookWorker{
		logger: logger,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
	if redisClient != nil {
		w.queue = redisClient
	}
	return w
}

// Run обрабатывает очередь вебхуков до отмены контекста
func (w *WebhookWorker) Run(ctx context.Context) error {
	w.logger.Info("Starting webhook worker...")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping webhook worker.")
			return nil
		default:
		}

		// BRPOP блокируется не дольше секунды, чтобы вовремя заметить отмену
		result, err := w.queue.BRPop(ctx, time.Second, webhookQueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
			time.Sleep(w.cfg.WebhookTimeout)
			continue
		}

		// result[0] - ключ, result[1] - значение
		payload := result[1]
		var event IncidentEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
			continue
		}

		w.processWebhookEvent(ctx, event, payload)
	}
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event IncidentEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":     event.ID,
		"event_type":   event.Type,
		"incident_key": event.IncidentKey,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	attempts := w.cfg.WebhookMaxRetries
	if attempts < 1 {
		attempts = 1
	}
	attempt := 0
	delivered := false
	err := retry.Retry(uint(attempts), w.cfg.WebhookBaseDelay, func() error {
		attempt++
		if ctx.Err() != nil {
			return nil
		}
		if err := w.deliver(ctx, rawPayload); err != nil {
			log.WithError(err).Warnf("Webhook delivery attempt %d/%d failed", attempt, attempts)
			return err
		}
		delivered = true
		return nil
	})
	switch {
	case delivered:
		log.Info("Webhook delivered successfully.")
	case ctx.Err() != nil:
		log.Warn("Shutdown interrupted webhook delivery, requeueing event")
		w.requeue(log, rawPayload)
	case err != nil:
		log.WithError(err).Errorf("Failed to deliver webhook for event after %d attempts.", attempts)
	}
}

// requeue возвращает событие в голову очереди, чтобы следующий запуск отправил его первым
func (w *WebhookWorker) requeue(log *logrus.Entry, rawPayload string) {
	if w.queue == nil {
		log.Error("Webhook queue is not configured, event dropped")
		return
	}
	// контекст воркера уже отменен
	ctx, cancel := context.WithTimeout(context.Background(), requeueTimeout)
	defer cancel()
	if err := w.queue.RPush(ctx, webhookQueueKey, rawPayload).Err(); err != nil {
		log.WithError(err).Error("Failed to requeue webhook event, event dropped")
	}
}

func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint responded with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
