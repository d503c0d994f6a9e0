package kafka_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-pms/internal/events"
	"go-pms/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	payload := events.AparFinalizedEvent{EventType: events.EventAparFinalized, AparID: "a-1", FinalScore: 40}

	ev, err := kafka.NewOutboxEvent("rid-1", "apar", "a-1", events.EventAparFinalized, events.AparLifecycleTopic, payload)

	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
	assert.Equal(t, events.AparLifecycleTopic, ev.Topic)

	var decoded events.AparFinalizedEvent
	require.NoError(t, json.Unmarshal(ev.Payload, &decoded))
	assert.Equal(t, 40.0, decoded.FinalScore)
}

func TestNewOutboxEvent_RequiresTopic(t *testing.T) {
	_, err := kafka.NewOutboxEvent("", "kpi", "k-1", "x", "", map[string]string{"a": "b"})
	assert.EqualError(t, err, "outbox topic is required")
}

func TestValidateOutboxEvent_Status(t *testing.T) {
	err := kafka.ValidateOutboxEvent(kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: "weird"})
	assert.EqualError(t, err, "invalid outbox status: weird")
}

func TestOutboxRepository_CreateUsesTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ev, err := kafka.NewOutboxEvent("rid", "kpi", "k-1", events.EventKPIUpdateReviewed, events.KPILifecycleTopic, map[string]string{"action": "approve"})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(ev.ID, "rid", "kpi", "k-1", events.EventKPIUpdateReviewed, events.KPILifecycleTopic, ev.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, kafka.NewOutboxRepository(db).WithTx(tx).Create(context.Background(), ev))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}
