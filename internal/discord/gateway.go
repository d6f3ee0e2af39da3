package discord

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type GatewayState string

const (
	GatewayStateConnecting   GatewayState = "CONNECTING"
	GatewayStateConnected    GatewayState = "CONNECTED"
	GatewayStateDisconnected GatewayState = "DISCONNECTED"
	GatewayStateFailed       GatewayState = "FAILED"
)

type MessageHandler func(message *Message)

type InteractionHandler func(interaction *Interaction)

type ReadyHandler func(ready *Ready)

// Gateway maintains the websocket session with the platform gateway:
// identify, heartbeat, event dispatch, bounded reconnect.
type Gateway struct {
	wsURL   string
	token   string
	intents int

	conn    *websocket.Conn
	connMu  sync.Mutex
	state   GatewayState
	stateMu sync.RWMutex

	onMessage     MessageHandler
	onInteraction InteractionHandler
	onReady       ReadyHandler

	lastSequence         int64
	seqMu                sync.Mutex
	reconnectAttempts    int
	maxReconnectAttempts int
	reconnectDelay       time.Duration

	logger   *zap.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewGateway(wsURL, token string, maxReconnectAttempts int, reconnectDelay time.Duration, logger *zap.Logger) *Gateway {
	return &Gateway{
		wsURL:                wsURL,
		token:                token,
		intents:              GatewayIntents,
		state:                GatewayStateDisconnected,
		maxReconnectAttempts: maxReconnectAttempts,
		reconnectDelay:       reconnectDelay,
		logger:               logger,
		stopCh:               make(chan struct{}),
	}
}

func (g *Gateway) OnMessageCreate(handler MessageHandler) {
	g.onMessage = handler
}

func (g *Gateway) OnInteractionCreate(handler InteractionHandler) {
	g.onInteraction = handler
}

func (g *Gateway) OnReady(handler ReadyHandler) {
	g.onReady = handler
}

func (g *Gateway) State() GatewayState {
	g.stateMu.RLock()
	defer g.stateMu.RUnlock()
	return g.state
}

func (g *Gateway) setState(state GatewayState) {
	g.stateMu.Lock()
	g.state = state
	g.stateMu.Unlock()
}

// Connect dials the gateway and starts the session. Handlers must be set
// before calling Connect.
func (g *Gateway) Connect(ctx context.Context) error {
	if g.State() == GatewayStateConnected || g.State() == GatewayStateConnecting {
		g.logger.Warn("Gateway already connected or connecting")
		return nil
	}
	g.setState(GatewayStateConnecting)

	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.DialContext(ctx, g.wsURL, nil)
	if err != nil {
		g.logger.Error("Failed to connect gateway", zap.Error(err))
		g.setState(GatewayStateFailed)
		g.scheduleReconnect(ctx)
		return err
	}

	g.connMu.Lock()
	g.conn = conn
	g.connMu.Unlock()
	g.setState(GatewayStateConnected)
	g.reconnectAttempts = 0

	g.logger.Info("Gateway connected", zap.String("url", g.wsURL))

	g.wg.Add(1)
	go g.listen(ctx, conn)

	return nil
}

func (g *Gateway) listen(ctx context.Context, conn *websocket.Conn) {
	defer g.wg.Done()
	defer g.logger.Info("Gateway listener stopped")

	heartbeatStop := make(chan struct{})
	defer close(heartbeatStop)

	for {
		select {
		case <-ctx.Done():
			return
		case <-g.stopCh:
			return
		default:
			_, raw, err := conn.ReadMessage()
			if err != nil {
				select {
				case <-g.stopCh:
					return
				default:
				}
				g.logger.Error("Gateway read error", zap.Error(err))
				g.setState(GatewayStateDisconnected)
				g.scheduleReconnect(ctx)
				return
			}

			var payload GatewayPayload
			if err := json.Unmarshal(raw, &payload); err != nil {
				g.logger.Error("Failed to parse gateway payload", zap.Error(err))
				continue
			}
			g.handlePayload(ctx, conn, &payload, heartbeatStop)
		}
	}
}

func (g *Gateway) handlePayload(ctx context.Context, conn *websocket.Conn, payload *GatewayPayload, heartbeatStop <-chan struct{}) {
	if payload.Sequence != nil {
		g.seqMu.Lock()
		g.lastSequence = *payload.Sequence
		g.seqMu.Unlock()
	}

	switch payload.Op {
	case OpHello:
		var hello Hello
		if err := json.Unmarshal(payload.Data, &hello); err != nil {
			g.logger.Error("Failed to parse hello", zap.Error(err))
			return
		}
		g.startHeartbeat(conn, time.Duration(hello.HeartbeatInterval)*time.Millisecond, heartbeatStop)
		g.identify(conn)
	case OpHeartbeatAck:
		// expected, nothing to do
	case OpHeartbeat:
		g.sendHeartbeat(conn)
	case OpReconnect, OpInvalidSession:
		g.logger.Warn("Gateway requested reconnect", zap.Int("op", payload.Op))
		_ = conn.Close()
	case OpDispatch:
		g.dispatch(payload)
	}
}

func (g *Gateway) dispatch(payload *GatewayPayload) {
	switch payload.Type {
	case "READY":
		var ready Ready
		if err := json.Unmarshal(payload.Data, &ready); err != nil {
			g.logger.Error("Failed to parse READY", zap.Error(err))
			return
		}
		if g.onReady != nil {
			g.onReady(&ready)
		}
	case "MESSAGE_CREATE":
		var message Message
		if err := json.Unmarshal(payload.Data, &message); err != nil {
			g.logger.Error("Failed to parse MESSAGE_CREATE", zap.Error(err))
			return
		}
		if g.onMessage != nil {
			g.onMessage(&message)
		}
	case "INTERACTION_CREATE":
		var interaction Interaction
		if err := json.Unmarshal(payload.Data, &interaction); err != nil {
			g.logger.Error("Failed to parse INTERACTION_CREATE", zap.Error(err))
			return
		}
		if g.onInteraction != nil {
			g.onInteraction(&interaction)
		}
	}
}

func (g *Gateway) identify(conn *websocket.Conn) {
	identify := Identify{
		Token:   g.token,
		Intents: g.intents,
		Properties: IdentifyProperties{
			OS:      "linux",
			Browser: "clow-discord-bot-go",
			Device:  "clow-discord-bot-go",
		},
	}
	if err := g.sendPayload(conn, OpIdentify, identify); err != nil {
		g.logger.Error("Failed to identify", zap.Error(err))
	}
}

func (g *Gateway) startHeartbeat(conn *websocket.Conn, interval time.Duration, stop <-chan struct{}) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-g.stopCh:
				return
			case <-ticker.C:
				g.sendHeartbeat(conn)
			}
		}
	}()
}

func (g *Gateway) sendHeartbeat(conn *websocket.Conn) {
	g.seqMu.Lock()
	seq := g.lastSequence
	g.seqMu.Unlock()
	if err := g.sendPayload(conn, OpHeartbeat, seq); err != nil {
		g.logger.Error("Failed to send heartbeat", zap.Error(err))
	}
}

func (g *Gateway) sendPayload(conn *websocket.Conn, op int, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	g.connMu.Lock()
	defer g.connMu.Unlock()
	return conn.WriteJSON(GatewayPayload{Op: op, Data: raw})
}

func (g *Gateway) scheduleReconnect(ctx context.Context) {
	select {
	case <-g.stopCh:
		return
	default:
	}

	if g.reconnectAttempts >= g.maxReconnectAttempts {
		g.logger.Error("Max reconnect attempts reached, giving up",
			zap.Int("attempts", g.reconnectAttempts))
		g.setState(GatewayStateFailed)
		return
	}
	g.reconnectAttempts++

	g.logger.Info("Scheduling gateway reconnect",
		zap.Int("attempt", g.reconnectAttempts),
		zap.Duration("delay", g.reconnectDelay))

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		select {
		case <-ctx.Done():
		case <-g.stopCh:
		case <-time.After(g.reconnectDelay):
			g.setState(GatewayStateDisconnected)
			_ = g.Connect(ctx)
		}
	}()
}

// Close tears the session down and waits for the listener goroutines.
func (g *Gateway) Close() {
	g.stopOnce.Do(func() {
		close(g.stopCh)
		g.connMu.Lock()
		if g.conn != nil {
			_ = g.conn.Close()
		}
		g.connMu.Unlock()
	})
	g.wg.Wait()
	g.setState(GatewayStateDisconnected)
}
