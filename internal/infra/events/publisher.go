// Package events publishes appointment lifecycle events to RabbitMQ so
// notification workers (reminders, WhatsApp confirmations) can react without
// coupling to the API process.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
)

// DefaultExchange is used when no exchange is configured.
const DefaultExchange = "agenda.events"

const (
	routingKeyCreated   = "appointment.created"
	routingKeyCancelled = "appointment.cancelled"

	publishTimeout = 5 * time.Second
)

// appointmentEvent is the wire shape of both lifecycle events.
type appointmentEvent struct {
	AppointmentID int64  `json:"appointment_id"`
	ClientID      int64  `json:"client_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	Service       string `json:"service"`
	OccurredAt    string `json:"occurred_at"`
}

// Publisher emits events through a topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher connects to RabbitMQ and declares the exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("events: declare exchange: %w", err)
	}

	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

// AppointmentCreated publishes the creation event.
func (p *Publisher) AppointmentCreated(ctx context.Context, appointment *domain.Appointment) error {
	return p.publish(ctx, routingKeyCreated, appointment)
}

// AppointmentCancelled publishes the cancellation event.
func (p *Publisher) AppointmentCancelled(ctx context.Context, appointment *domain.Appointment) error {
	return p.publish(ctx, routingKeyCancelled, appointment)
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

func (p *Publisher) publish(ctx context.Context, routingKey string, appointment *domain.Appointment) error {
	event := appointmentEvent{
		AppointmentID: appointment.ID,
		ClientID:      appointment.ClientID,
		Date:          appointment.Date.Format(domain.DateFormat),
		StartTime:     appointment.StartTime.String(),
		Service:       appointment.Service,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal %s: %w", routingKey, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("events: publish %s: %w", routingKey, err)
	}

	return nil
}
