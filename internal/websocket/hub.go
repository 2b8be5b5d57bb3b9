package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/internal/pkg/serverutils"
	"sahasrayogam-be/internal/service"
	"sahasrayogam-be/internal/viewer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	MessageTypeResults = "results"
	MessageTypeError   = "error"

	clusterChannel = "viewer_events"
)

// clusterEvent carries a session's new state to the other instances.
type clusterEvent struct {
	Origin    string       `json:"origin"`
	SessionId string       `json:"session_id"`
	State     viewer.State `json:"state"`
}

type Hub struct {
	id string

	// Registered clients: session id -> connections (one per tab)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	// closed once Run returns
	done     chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex

	viewers service.IViewerService

	// Redis connection for cross-instance session sync, optional
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(viewers service.IViewerService, rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		id:         uuid.NewString(),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string][]*Client),
		viewers:    viewers,
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })

	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.add(client)
		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

// Register hands client to the running hub. It reports false once the hub
// has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister detaches client. After the hub has stopped it returns without
// waiting.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Done is closed when Run returns.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) add(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sessionId := client.Viewer.Id()
	h.clients[sessionId] = append(h.clients[sessionId], client)
	h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": sessionId})
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sessionId := client.Viewer.Id()
	clients, ok := h.clients[sessionId]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			h.clients[sessionId] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[sessionId]) == 0 {
		delete(h.clients, sessionId)
		h.logger.Info("Hub", "Session has no more clients", map[string]interface{}{"session_id": sessionId})
	}
}

// ClientCount is the number of live connections on this instance.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, clients := range h.clients {
		n += len(clients)
	}
	return n
}

// HandleCommand applies one viewer command sent by client and answers with
// the new view. Other connections of the same session follow along.
func (h *Hub) HandleCommand(client *Client, raw []byte) {
	var cmd dto.ViewerCommand
	if err := json.Unmarshal(raw, &cmd); err != nil {
		h.sendError(client, "Malformed command")
		return
	}
	if err := serverutils.ValidateRequest(cmd); err != nil {
		h.sendError(client, err.Error())
		return
	}
	if err := h.viewers.Apply(client.Viewer, &cmd); err != nil {
		h.logger.Warn("Hub", "Viewer command rejected", map[string]interface{}{"session_id": client.Viewer.Id(), "type": cmd.Type, "error": err})
		h.sendError(client, err.Error())
		return
	}

	h.sendView(client)
	h.syncSession(client)
}

// SendView pushes the client's current view.
func (h *Hub) SendView(client *Client) {
	h.sendView(client)
}

// Refresh hands the loaded collection to every local viewer and pushes
// fresh results.
func (h *Hub) Refresh() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for _, client := range clients {
			h.viewers.Sync(client.Viewer)
			h.sendView(client)
		}
	}
}

// ListenCollectionEvents refreshes all viewers whenever the collection
// topic fires. It returns when messages is closed.
func (h *Hub) ListenCollectionEvents(messages <-chan *message.Message) {
	for msg := range messages {
		var status dto.StatusResponse
		if err := json.Unmarshal(msg.Payload, &status); err != nil {
			h.logger.Warn("Hub", "Unreadable collection event", map[string]interface{}{"error": err})
		}
		h.logger.Info("Hub", "Collection loaded, refreshing viewers", map[string]interface{}{"source": status.Source, "total": status.Total})
		h.Refresh()
		msg.Ack()
	}
}

func (h *Hub) syncSession(origin *Client) {
	sessionId := origin.Viewer.Id()
	state := origin.Viewer.State()

	h.applyState(sessionId, state, origin)

	if h.rdb != nil {
		payload, _ := json.Marshal(clusterEvent{Origin: h.id, SessionId: sessionId, State: state})
		if err := h.rdb.Publish(context.Background(), clusterChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to publish session state", map[string]interface{}{"error": err})
		}
	}
}

// applyState moves every local connection of sessionId, except skip, to
// state and pushes their views.
func (h *Hub) applyState(sessionId string, state viewer.State, skip *Client) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients[sessionId] {
		if client == skip {
			continue
		}
		h.restore(client.Viewer, state)
		h.viewers.Sync(client.Viewer)
		h.sendView(client)
	}
}

func (h *Hub) restore(controller *viewer.Controller, state viewer.State) {
	if err := controller.SetCategory(state.Category); err != nil {
		h.logger.Warn("Hub", "Ignoring invalid category in session state", map[string]interface{}{
			"session_id": controller.Id(),
			"category":   state.Category,
			"error":      err,
		})
	}
	controller.SetField(state.Field)
	controller.SetQuery(state.Query)
}

func (h *Hub) sendView(client *Client) {
	h.deliver(client, dto.ViewerMessage{Type: MessageTypeResults, Data: client.Viewer.View()})
}

func (h *Hub) sendError(client *Client, message string) {
	h.deliver(client, dto.ViewerMessage{Type: MessageTypeError, Data: message})
}

// deliver drops the message when the client's buffer is full; the next
// view supersedes it anyway.
func (h *Hub) deliver(client *Client, msg dto.ViewerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal viewer message", map[string]interface{}{"error": err})
		return
	}
	select {
	case client.Send <- data:
	default:
		h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"session_id": client.Viewer.Id()})
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event clusterEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				h.logger.Warn("Hub", "Redis msg parse error", map[string]interface{}{"error": err})
				continue
			}
			if event.Origin == h.id {
				continue
			}
			h.applyState(event.SessionId, event.State, nil)
		}
	}
}
