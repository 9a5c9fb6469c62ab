package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/staymarket/booking-service/internal/domain"
)

const (
	exchangeName = "bookings"
	exchangeKind = "topic"
)

// Publisher публикует события бронирований в RabbitMQ
// Exchange типа topic: подписчики фильтруют события по routing key
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher подключается к брокеру и объявляет exchange
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: channel: %v", ErrConnect, err)
	}

	if err := channel.ExchangeDeclare(exchangeName, exchangeKind, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("%w: exchange declare: %v", ErrConnect, err)
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// BookingCreated публикует событие о создании заявки
func (p *Publisher) BookingCreated(ctx context.Context, booking *domain.Booking) error {
	return p.publish(ctx, RoutingKeyBookingCreated, newBookingCreatedEvent(booking))
}

// BookingDecided публикует событие о решении владельца
func (p *Publisher) BookingDecided(ctx context.Context, booking *domain.Booking) error {
	return p.publish(ctx, RoutingKeyBookingDecided, newBookingDecidedEvent(booking))
}

func (p *Publisher) publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrPublish, err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		exchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, routingKey, err)
	}

	return nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
