package archive

import (
	"context"
	"fmt"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
)

// AMQPArchiver publishes the month's records as one durable batch message.
// Whatever consumes the queue owns the actual offload.
type AMQPArchiver struct {
	client *amqp.Client
}

func NewAMQPArchiver(client *amqp.Client) *AMQPArchiver {
	return &AMQPArchiver{client: client}
}

func (a *AMQPArchiver) Archive(ctx context.Context, scope core.Scope, records []core.Transaction) error {
	wire := make([]amqp.ArchivedRecord, len(records))
	for i, r := range records {
		wire[i] = amqp.ArchivedRecord{
			ID:          r.ID,
			Kind:        string(r.Kind),
			Category:    r.Category,
			AmountCents: r.Amount.Cents,
			Note:        r.Note,
			Period:      string(r.Period),
			CreatedAt:   r.CreatedAt,
		}
	}

	msg := amqp.NewArchiveBatchMessage(scope.Month, scope.Year, wire)
	if err := a.client.PublishArchiveBatch(ctx, msg); err != nil {
		return fmt.Errorf("publish archive batch: %w", err)
	}
	return nil
}
