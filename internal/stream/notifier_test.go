package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn доставляет опубликованное сообщение подписчикам синхронно
type fakeConn struct {
	handlers   map[string][]nats.MsgHandler
	publishErr error
	published  [][]byte
}

func newFakeConn() *fakeConn {
	return &fakeConn{handlers: make(map[string][]nats.MsgHandler)}
}

func (f *fakeConn) Publish(subj string, data []byte) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, data)
	for _, h := range f.handlers[subj] {
		h(&nats.Msg{Subject: subj, Data: data})
	}
	return nil
}

func (f *fakeConn) Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error) {
	f.handlers[subj] = append(f.handlers[subj], cb)
	return nil, nil
}

func newTestNotifier(conn Conn) *Notifier {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewNotifier(conn, "incidents.changed", logger)
}

func TestNotifier_PublishSubscribe(t *testing.T) {
	conn := newFakeConn()
	n := newTestNotifier(conn)

	var got []ChangeEvent
	unsubscribe, err := n.Subscribe(func(e ChangeEvent) { got = append(got, e) })
	require.NoError(t, err)

	at := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	require.NoError(t, n.Publish(context.Background(), ChangeEvent{IncidentKey: "k1", Kind: ChangeStatus, At: at}))

	require.Len(t, got, 1)
	assert.Equal(t, ChangeEvent{IncidentKey: "k1", Kind: ChangeStatus, At: at}, got[0])
	assert.NoError(t, unsubscribe())

	var wire map[string]any
	require.NoError(t, json.Unmarshal(conn.published[0], &wire))
	assert.Equal(t, "k1", wire["incidentKey"])
	assert.Equal(t, "status", wire["kind"])
}

func TestNotifier_PublishStampsTime(t *testing.T) {
	conn := newFakeConn()
	n := newTestNotifier(conn)

	require.NoError(t, n.Publish(context.Background(), ChangeEvent{IncidentKey: "k1", Kind: ChangeCreated}))

	var e ChangeEvent
	require.NoError(t, json.Unmarshal(conn.published[0], &e))
	assert.False(t, e.At.IsZero())
}

func TestNotifier_MalformedMessageStillTriggers(t *testing.T) {
	conn := newFakeConn()
	n := newTestNotifier(conn)

	calls := 0
	_, err := n.Subscribe(func(ChangeEvent) { calls++ })
	require.NoError(t, err)

	for _, h := range conn.handlers["incidents.changed"] {
		h(&nats.Msg{Subject: "incidents.changed", Data: []byte("{not json")})
	}
	assert.Equal(t, 1, calls)
}

func TestNotifier_PublishError(t *testing.T) {
	conn := newFakeConn()
	conn.publishErr = errors.New("nats: connection closed")
	n := newTestNotifier(conn)

	err := n.Publish(context.Background(), ChangeEvent{IncidentKey: "k1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection closed")
}
