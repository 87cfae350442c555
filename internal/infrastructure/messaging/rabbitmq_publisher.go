package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// publishChannel is the part of *amqp.Channel the publisher uses.
type publishChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQPublisher publishes booking events to a topic exchange with the
// routing key "reserva.<tipo>".
type RabbitMQPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  publishChannel
	exchange string
}

var _ interfaces.IReservaEventPublisher = (*RabbitMQPublisher)(nil)

func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Printf("[messaging][rabbitmq] connected exchange=%s", exchange)
	return &RabbitMQPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func RoutingKey(tipo entities.TipoEventoReserva) string {
	return "reserva." + string(tipo)
}

func (p *RabbitMQPublisher) Publicar(ctx context.Context, evento entities.ReservaEvento) {
	if err := ctx.Err(); err != nil {
		log.Printf("[messaging][rabbitmq] evento descartado tipo=%s reserva_id=%s err=%v", evento.Tipo, evento.ReservaID, err)
		return
	}

	body, err := json.Marshal(evento)
	if err != nil {
		log.Printf("[messaging][rabbitmq] marshal failed tipo=%s reserva_id=%s err=%v", evento.Tipo, evento.ReservaID, err)
		return
	}

	p.mu.Lock()
	err = p.channel.Publish(
		p.exchange,
		RoutingKey(evento.Tipo),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    evento.Timestamp,
			Type:         string(evento.Tipo),
			Body:         body,
		},
	)
	p.mu.Unlock()
	if err != nil {
		log.Printf("[messaging][rabbitmq] publish failed tipo=%s reserva_id=%s err=%v", evento.Tipo, evento.ReservaID, err)
		return
	}
	log.Printf("[messaging][rabbitmq] published key=%s reserva_id=%s", RoutingKey(evento.Tipo), evento.ReservaID)
}

func (p *RabbitMQPublisher) Close() error {
	if c, ok := p.channel.(*amqp.Channel); ok {
		if err := c.Close(); err != nil {
			log.Printf("[messaging][rabbitmq] channel close failed err=%v", err)
		}
	}
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
