package jetstream

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/wt-exchange/internal/adapter"
	"github.com/feral-file/wt-exchange/internal/domain"
	"github.com/feral-file/wt-exchange/internal/logger"
	"github.com/feral-file/wt-exchange/internal/messaging"
)

const DEFAULT_SUBJECT_PREFIX = "economy"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL string
	// StreamName is the stream declared over {SubjectPrefix}.> on connect. Empty skips the declaration.
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc            adapter.NatsConn
	js            adapter.JetStream
	subjectPrefix string
	json          adapter.JSON
	signer        messaging.Signer
}

// NewPublisher connects to NATS and declares the events stream.
// signer may be nil, in which case events are published unsigned.
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON, signer messaging.Signer) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = DEFAULT_SUBJECT_PREFIX
	}

	if cfg.StreamName != "" {
		_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:       cfg.StreamName,
			Subjects:   []string{prefix + ".>"},
			Duplicates: 2 * time.Minute,
		})
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("failed to declare stream %s: %w", cfg.StreamName, err)
		}
	}

	return &publisher{
		nc:            nc,
		js:            js,
		subjectPrefix: prefix,
		json:          jsonAdapter,
		signer:        signer,
	}, nil
}

// PublishEvent publishes an economy event to NATS JetStream.
// The event id doubles as the JetStream message id so retries are deduplicated.
func (p *publisher) PublishEvent(ctx context.Context, event *domain.Event) error {
	logger.DebugCtx(ctx, "Publishing Nats event", zap.String("id", event.ID), zap.String("type", string(event.Type)))

	msg := nats.NewMsg(p.buildSubject(event))

	if p.signer != nil {
		signed, err := p.signer.Sign(event)
		if err != nil {
			return fmt.Errorf("failed to sign event: %w", err)
		}
		msg.Data = signed.Payload
		msg.Header.Set(messaging.SIGNATURE_HEADER, signed.Signature)
		msg.Header.Set(messaging.TIMESTAMP_HEADER, strconv.FormatInt(signed.Timestamp, 10))
	} else {
		data, err := p.json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		msg.Data = data
	}

	if _, err := p.js.PublishMsg(ctx, msg, jetstream.WithMsgID(event.ID)); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject returns {prefix}.{event type}, e.g. economy.offer.accepted
func (p *publisher) buildSubject(event *domain.Event) string {
	return fmt.Sprintf("%s.%s", p.subjectPrefix, event.Type)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
