// Package amqp publica eventos de notificación a RabbitMQ para los gateways
// externos de SMS/WhatsApp.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/FilaVirtual-api/internal/application/usecase"
	"github.com/jhoicas/FilaVirtual-api/pkg/logger"
)

var _ usecase.NotificationPublisher = (*Publisher)(nil)

// Publisher mantiene la conexión y el canal AMQP y publica sobre un exchange
// fanout declarado de forma idempotente al conectar.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *logger.Logger
}

// NewPublisher conecta al broker y declara el exchange fanout durable.
func NewPublisher(url, exchange string, log *logger.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("conectar a rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("abrir canal: %w", err)
	}
	if err := ch.ExchangeDeclare(
		exchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declarar exchange %s: %w", exchange, err)
	}
	log.Info().Str("exchange", exchange).Msg("Publicador de notificaciones conectado a RabbitMQ")
	return &Publisher{conn: conn, channel: ch, exchange: exchange, log: log}, nil
}

// PublishNotification serializa el evento y lo publica como mensaje
// persistente. El routing key queda vacío: el exchange es fanout.
func (p *Publisher) PublishNotification(ctx context.Context, event usecase.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("serializar evento: %w", err)
	}
	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		"", // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publicar notificación %s: %w", event.NotificationID, err)
	}
	return nil
}

// Close cierra canal y conexión en orden.
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
