package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"foodapp/internal/usecase"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	OrdersExchange = "orders_topic"

	RoutingKeyOrderCreated       = "order.created"
	RoutingKeyOrderStatusChanged = "order.status_changed"
)

// 注文イベントをRabbitMQのtopic exchangeに送る
type RabbitMQPublisher struct {
	url string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewRabbitMQPublisher(url string) (*RabbitMQPublisher, error) {
	p := &RabbitMQPublisher{url: url}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// 接続してexchangeを宣言する。muを持った状態で呼ぶ
func (p *RabbitMQPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	p.conn = conn
	if err := p.openChannel(); err != nil {
		_ = conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

// 今の接続の上にchannelを開き直す。muを持った状態で呼ぶ
func (p *RabbitMQPublisher) openChannel() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		OrdersExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	); err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare %s exchange: %w", OrdersExchange, err)
	}
	p.channel = ch
	return nil
}

// 接続かchannelが切れていたら1回だけ繋ぎ直す。muを持った状態で呼ぶ
func (p *RabbitMQPublisher) ensureChannel() error {
	if p.conn == nil || p.conn.IsClosed() {
		return p.connect()
	}
	// publishのプロトコルエラー等でchannelだけ閉じることがある
	if p.channel == nil || p.channel.IsClosed() {
		return p.openChannel()
	}
	return nil
}

func (p *RabbitMQPublisher) OrderCreated(ctx context.Context, ev usecase.OrderCreatedEvent) error {
	return p.publish(ctx, RoutingKeyOrderCreated, ev)
}

func (p *RabbitMQPublisher) OrderStatusChanged(ctx context.Context, ev usecase.OrderStatusChangedEvent) error {
	return p.publish(ctx, RoutingKeyOrderStatusChanged, ev)
}

func (p *RabbitMQPublisher) publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		OrdersExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	slog.DebugContext(ctx, "order event published",
		slog.String("exchange", OrdersExchange),
		slog.String("routing_key", routingKey),
		slog.Int("size", len(body)),
	)
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
