package lampfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"berlinClock/pkg/berlinClockCore"
)

// ErrPublishInFlight is returned when a face is offered while the
// previous one is still on its way to the broker.
var ErrPublishInFlight = errors.New("lamp feed publish already in flight")

// FaceTopic builds the topic a clock publishes its face to.
// Pattern: {prefix}/{client_id}/face
func FaceTopic(prefix, clientID string) string {
	return fmt.Sprintf("%s/%s/face", prefix, clientID)
}

// Payload is the JSON message sent for every face change
type Payload struct {
	Time    string    `json:"time"`
	Seconds string    `json:"seconds"`
	Hours   [2]string `json:"hours"`
	Minutes [2]string `json:"minutes"`
}

// NewPayload encodes a face as row symbol strings
func NewPayload(f berlinClockCore.Face) Payload {
	return Payload{
		Time:    f.Clock(),
		Seconds: f.Seconds.String(),
		Hours:   [2]string{f.Hours[0].String(), f.Hours[1].String()},
		Minutes: [2]string{f.Minutes[0].String(), f.Minutes[1].String()},
	}
}

// Publisher sends faces to lamp hardware listening on MQTT. A Publisher
// without a client does nothing. Publish is safe to call from several
// goroutines; at most one publish reaches the client at a time.
type Publisher struct {
	client Client
	topic  string
	qos    byte
	logger *slog.Logger

	mu        sync.Mutex // held for the whole client publish
	last      berlinClockCore.Face
	published bool
}

// NewPublisher creates a publisher sending to topic over client
func NewPublisher(client Client, topic string, qos byte, logger *slog.Logger) *Publisher {
	return &Publisher{
		client: client,
		topic:  topic,
		qos:    qos,
		logger: logger,
	}
}

// Disabled returns a publisher that drops every face
func Disabled() *Publisher {
	return &Publisher{}
}

// Enabled reports whether faces are actually sent
func (p *Publisher) Enabled() bool {
	return p.client != nil
}

// Topic returns the topic faces are published to
func (p *Publisher) Topic() string {
	return p.topic
}

// Start connects the underlying client
func (p *Publisher) Start(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.client.Connect(ctx)
}

// Publish sends f unless it shows the same lamps as the last face sent.
// It returns ErrPublishInFlight instead of waiting behind another publish.
func (p *Publisher) Publish(f berlinClockCore.Face) error {
	if !p.Enabled() {
		return nil
	}
	if !p.mu.TryLock() {
		return ErrPublishInFlight
	}
	defer p.mu.Unlock()

	if p.published && p.last.Equal(f) {
		return nil
	}

	payload, err := json.Marshal(NewPayload(f))
	if err != nil {
		return fmt.Errorf("failed to encode face: %w", err)
	}

	if err := p.client.Publish(p.topic, p.qos, true, payload); err != nil {
		return err
	}

	p.last = f
	p.published = true
	p.logger.Debug("Published face", "topic", p.topic, "time", f.Clock())
	return nil
}

// Close disconnects the underlying client
func (p *Publisher) Close() {
	if !p.Enabled() {
		return
	}
	p.client.Disconnect()
}
