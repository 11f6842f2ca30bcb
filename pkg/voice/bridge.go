package voice

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/hugohenrick/virtual-assistant/internal/config"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

// queueSize é quantas falas uma sessão pode acumular antes de descartar
const queueSize = 16

// DefaultIdleTimeout é quanto um worker de sessão espera por novas falas antes de encerrar
const DefaultIdleTimeout = 10 * time.Minute

// Processor processa um turno da conversa
type Processor interface {
	ProcessMessage(ctx context.Context, sessionID, message string) (*intent.ActionResult, error)
}

// Publisher publica uma resposta no broker
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// Utterance é uma fala reconhecida; o payload também pode ser texto puro
type Utterance struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Reply é a resposta publicada para cada fala
type Reply struct {
	SessionID string               `json:"session_id"`
	Input     string               `json:"input"`
	Result    *intent.ActionResult `json:"result,omitempty"`
	Error     string               `json:"error,omitempty"`
}

// Bridge liga as falas recebidas por MQTT ao assistente. As falas de uma
// mesma sessão são processadas na ordem de chegada.
type Bridge struct {
	prefix    string
	processor Processor
	publisher Publisher
	logger    logger.Logger

	idleTimeout time.Duration

	mu     sync.Mutex
	queues map[string]chan string
	closed bool
	wg     sync.WaitGroup
	ctx    context.Context
}

// NewBridge cria uma nova Bridge
func NewBridge(prefix string, processor Processor, publisher Publisher, log logger.Logger) *Bridge {
	return &Bridge{
		prefix:      prefix,
		processor:   processor,
		publisher:   publisher,
		logger:      log,
		queues:      make(map[string]chan string),
		idleTimeout: DefaultIdleTimeout,
		ctx:         context.Background(),
	}
}

// SetIdleTimeout define após quanto tempo sem falas o worker de uma sessão é liberado
func (b *Bridge) SetIdleTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultIdleTimeout
	}
	b.mu.Lock()
	b.idleTimeout = d
	b.mu.Unlock()
}

// Sessions retorna quantas sessões têm um worker ativo
func (b *Bridge) Sessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queues)
}

// HandleMessage recebe uma fala do tópico informado
func (b *Bridge) HandleMessage(topic string, payload []byte) {
	sessionID, err := ParseSessionID(topic, b.prefix)
	if err != nil {
		b.logger.Warn("Skipping invalid utterance topic", "topic", topic, "error", err)
		return
	}

	text := decodeUtterance(payload)
	if text == "" {
		return
	}

	// o envio acontece sob b.mu para não competir com Close
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		b.logger.Debug("Voice bridge closed, dropping utterance", "session_id", sessionID)
		return
	}

	queue, ok := b.queues[sessionID]
	if !ok {
		queue = make(chan string, queueSize)
		b.queues[sessionID] = queue
		b.wg.Add(1)
		go b.worker(sessionID, queue, b.idleTimeout)
	}

	select {
	case queue <- text:
	default:
		b.logger.Warn("Utterance queue full, dropping", "session_id", sessionID)
	}
}

// Close recusa novas falas e encerra os workers depois de esvaziar as filas
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for id, queue := range b.queues {
		close(queue)
		delete(b.queues, id)
	}
	b.mu.Unlock()
	b.wg.Wait()
}

func (b *Bridge) worker(sessionID string, queue chan string, idle time.Duration) {
	defer b.wg.Done()

	timer := time.NewTimer(idle)
	defer timer.Stop()

	for {
		select {
		case text, ok := <-queue:
			if !ok {
				return
			}
			b.process(sessionID, text)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(idle)
		case <-timer.C:
			if b.release(sessionID, queue) {
				return
			}
			timer.Reset(idle)
		}
	}
}

// release remove a fila ociosa da sessão. Retorna false se chegou fala
// nova ou se Close já assumiu a fila.
func (b *Bridge) release(sessionID string, queue chan string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.queues[sessionID] != queue || len(queue) > 0 {
		return false
	}
	delete(b.queues, sessionID)
	b.logger.Debug("Voice session released", "session_id", sessionID)
	return true
}

func (b *Bridge) process(sessionID, text string) {
	ctx, cancel := context.WithTimeout(b.ctx, time.Minute)
	defer cancel()

	reply := Reply{SessionID: sessionID, Input: text}
	result, err := b.processor.ProcessMessage(ctx, sessionID, text)
	if err != nil {
		reply.Error = err.Error()
	} else {
		reply.Result = result
	}

	body, err := json.Marshal(reply)
	if err != nil {
		b.logger.Error("Failed to encode reply", "session_id", sessionID, "error", err)
		return
	}
	if err := b.publisher.Publish(TopicReply(b.prefix, sessionID), body); err != nil {
		b.logger.Error("Failed to publish reply", "session_id", sessionID, "error", err)
	}
}

func decodeUtterance(payload []byte) string {
	var u Utterance
	if err := json.Unmarshal(payload, &u); err == nil {
		return strings.TrimSpace(u.Text)
	}
	return strings.TrimSpace(string(payload))
}

// Client mantém a conexão MQTT da ponte de voz
type Client struct {
	cfg    config.MQTTConfig
	client paho.Client
	bridge *Bridge
	logger logger.Logger
}

// NewClient cria o cliente MQTT que alimenta o assistente
func NewClient(cfg config.MQTTConfig, processor Processor, log logger.Logger) *Client {
	c := &Client{cfg: cfg, logger: log}
	c.bridge = NewBridge(cfg.TopicPrefix, processor, c, log)
	c.bridge.SetIdleTimeout(cfg.IdleTimeout)
	return c
}

// Start conecta ao broker e assina as falas; desconecta quando ctx termina
func (c *Client) Start(ctx context.Context) error {
	opts := paho.NewClientOptions().
		AddBroker(c.cfg.Broker).
		SetClientID(c.cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetOrderMatters(false)

	if c.cfg.Username != "" {
		opts.SetUsername(c.cfg.Username)
		opts.SetPassword(c.cfg.Password)
	}

	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		c.logger.Error("MQTT connection lost", "error", err)
	})
	// reassina após reconectar
	opts.SetOnConnectHandler(func(client paho.Client) {
		token := client.Subscribe(TopicUtterances(c.cfg.TopicPrefix), 1, c.handle)
		if token.Wait() && token.Error() != nil {
			c.logger.Error("MQTT subscribe failed", "error", token.Error())
			return
		}
		c.logger.Info("Voice bridge subscribed", "topic", TopicUtterances(c.cfg.TopicPrefix))
	})

	c.client = paho.NewClient(opts)
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	go func() {
		<-ctx.Done()
		c.client.Disconnect(250)
		c.bridge.Close()
	}()

	return nil
}

// Publish implementa Publisher
func (c *Client) Publish(topic string, payload []byte) error {
	token := c.client.Publish(topic, 1, false, payload)
	token.Wait()
	return token.Error()
}

func (c *Client) handle(_ paho.Client, msg paho.Message) {
	c.bridge.HandleMessage(msg.Topic(), msg.Payload())
}
