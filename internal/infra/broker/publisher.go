package broker

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublisherClosed = errs.New("publisher is closed")

// Publisher delivers outbox payloads to a topic exchange.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// dialer opens a connection and a channel with the exchange declared.
type dialer func(url, exchange string) (channel, io.Closer, error)

// amqpPublisher redials lazily after the broker drops the connection; the
// outbox keeps undelivered jobs until a later tick succeeds.
type amqpPublisher struct {
	mu       sync.Mutex
	dial     dialer
	url      string
	exchange string
	conn     io.Closer
	ch       channel
	closed   bool
}

// NewPublisher falls back to a logging publisher when no broker URL is configured.
func NewPublisher(cfg config.BrokerConfig) (Publisher, error) {
	if cfg.URL == "" {
		slog.Info("AMQP_URL not set, outbox messages will only be logged")
		return LogPublisher{}, nil
	}
	return newAMQPPublisher(cfg, dialAMQP)
}

func newAMQPPublisher(cfg config.BrokerConfig, dial dialer) (*amqpPublisher, error) {
	p := &amqpPublisher{dial: dial, url: cfg.URL, exchange: cfg.Exchange}
	if err := p.connectLocked(); err != nil {
		return nil, err
	}
	return p, nil
}

func dialAMQP(url, exchange string) (channel, io.Closer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open broker channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrapf(err, "failed to declare exchange %s", exchange)
	}
	return ch, conn, nil
}

func (p *amqpPublisher) connectLocked() error {
	ch, conn, err := p.dial(p.url, p.exchange)
	if err != nil {
		return err
	}
	p.ch, p.conn = ch, conn
	return nil
}

// resetLocked drops the current channel so the next Publish redials.
func (p *amqpPublisher) resetLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}
	if p.ch == nil || p.ch.IsClosed() {
		p.resetLocked()
		if err := p.connectLocked(); err != nil {
			return errs.Wrapf(err, "broker unavailable, %s not published", routingKey)
		}
		slog.Info("broker connection re-established", "exchange", p.exchange)
	}

	err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		p.resetLocked()
		return errs.Wrapf(err, "failed to publish %s", routingKey)
	}
	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	var err error
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		err = p.conn.Close()
	}
	p.ch, p.conn = nil, nil
	return err
}

type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, routingKey string, body []byte) error {
	slog.Info("outbox message", "routing_key", routingKey, "payload", string(body))
	return nil
}

func (LogPublisher) Close() error { return nil }
