package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	event := NewChangeEvent(EntityItem, ActionUpserted, 5, "Paracetamol", "alice")

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got ChangeEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.EventType != "item.upserted" || got.EntityID != 5 || got.Name != "Paracetamol" {
			return errors.New("unexpected event payload")
		}
		return nil
	})

	p := NewPublisherWithProducer(producer, "")
	require.NoError(t, p.Publish(context.Background(), event))
	require.NoError(t, p.Close())
}

func TestPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer, TopicInventoryChanges)
	err := p.Publish(context.Background(), NewChangeEvent(EntityUnit, ActionDeleted, 1, "Box", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestEventTypes(t *testing.T) {
	types := EventTypes()
	assert.Len(t, types, 9)
	assert.Contains(t, types, "category.upserted")
	assert.Contains(t, types, "unit.updated")
	assert.Contains(t, types, "item.deleted")
}

func TestNopPublisher(t *testing.T) {
	var p EventPublisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), ChangeEvent{}))
	assert.NoError(t, p.Close())
}
