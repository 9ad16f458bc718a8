package lampfeed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"berlinClock/pkg/berlinClockCore"
)

// ClientID returns the configured client ID or a generated one
func ClientID(cfg *berlinClockCore.Config) string {
	if cfg.MQTT.ClientID != "" {
		return cfg.MQTT.ClientID
	}
	return "berlin-clock-" + uuid.NewString()[:8]
}

// pahoClient is the feed's Client over paho. Every token wait is bounded
// by timeout: with auto-reconnect a lost broker leaves IsConnected true
// and queued publishes never complete.
type pahoClient struct {
	paho    pahomqtt.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewClient creates the MQTT client for a lamp feed
func NewClient(cfg *berlinClockCore.Config, clientID string, logger *slog.Logger) Client {
	logger = logger.With("broker", cfg.MQTTAddress(), "client_id", clientID)

	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.MQTTAddress()).
		SetClientID(clientID).
		SetUsername(cfg.MQTT.User).
		SetPassword(cfg.MQTT.Password).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetMaxReconnectInterval(30 * time.Second).
		SetConnectTimeout(cfg.PublishTimeout()).
		SetWriteTimeout(cfg.PublishTimeout()).
		SetOnConnectHandler(func(pahomqtt.Client) {
			logger.Info("Lamp feed connected")
		}).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			logger.Warn("Lamp feed lost broker connection", "error", err)
		})

	return &pahoClient{
		paho:    pahomqtt.NewClient(opts),
		timeout: cfg.PublishTimeout(),
		logger:  logger,
	}
}

func (p *pahoClient) Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	token := p.paho.Connect()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("connect to MQTT broker: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("connect to MQTT broker: %w", ctx.Err())
	}
}

func (p *pahoClient) Disconnect() {
	p.paho.Disconnect(250)
}

// Publish waits at most the configured timeout for the broker
func (p *pahoClient) Publish(topic string, qos byte, retained bool, payload []byte) error {
	token := p.paho.Publish(topic, qos, retained, payload)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("publish to %s: no broker acknowledgement after %s", topic, p.timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

func (p *pahoClient) IsConnected() bool {
	return p.paho.IsConnected()
}
