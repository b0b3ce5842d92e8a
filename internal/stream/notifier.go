package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

type ChangeKind string

const (
	ChangeCreated  ChangeKind = "created"
	ChangeStatus   ChangeKind = "status"
	ChangeTeam     ChangeKind = "team"
	ChangeNote     ChangeKind = "note"
	ChangeLocation ChangeKind = "location"
	ChangeMedia    ChangeKind = "media"
)

// ChangeEvent - уведомление о записи в хранилище. Получатель всегда перечитывает всю коллекцию.
type ChangeEvent struct {
	IncidentKey string     `json:"incidentKey"`
	Kind        ChangeKind `json:"kind"`
	At          time.Time  `json:"at"`
}

// Conn - часть *nats.Conn, нужная уведомителю
type Conn interface {
	Publish(subj string, data []byte) error
	Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error)
}

// Notifier публикует и слушает уведомления об изменениях коллекции инцидентов
type Notifier struct {
	conn    Conn
	subject string
	logger  *logrus.Logger
}

func NewNotifier(conn Conn, subject string, logger *logrus.Logger) *Notifier {
	return &Notifier{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}
}

// Publish отправляет уведомление; доставка at-most-once
func (n *Notifier) Publish(_ context.Context, event ChangeEvent) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}
	if err := n.conn.Publish(n.subject, payload); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

// Subscribe вызывает handler на каждое сообщение. Нечитаемое сообщение тоже считается изменением.
func (n *Notifier) Subscribe(handler func(ChangeEvent)) (func() error, error) {
	sub, err := n.conn.Subscribe(n.subject, func(msg *nats.Msg) {
		var event ChangeEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			n.logger.WithError(err).WithField("subject", msg.Subject).Warn("Malformed change event, reloading anyway")
		}
		handler(event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", n.subject, err)
	}

	n.logger.WithField("subject", n.subject).Info("Subscribed to incident change stream")
	return func() error {
		if sub == nil {
			return nil
		}
		return sub.Unsubscribe()
	}, nil
}
