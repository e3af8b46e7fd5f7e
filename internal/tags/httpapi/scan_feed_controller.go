package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"tagback-server/internal/infra/async"
	"tagback-server/internal/infra/httpserver"
	shareddomain "tagback-server/internal/shared_kernel/domain"
	tagsDomain "tagback-server/internal/tags/domain"
	"tagback-server/internal/tags/httpapi/internal"
	"tagback-server/internal/tags/usecases"
	"time"

	"github.com/gorilla/websocket"
)

const (
	ScanFeedMessageScan    = "scan"
	ScanFeedMessageHistory = "scan_history"

	_historySize   = 10
	_pingInterval  = 54 * time.Second
	_readDeadline  = 60 * time.Second
	_writeDeadline = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ScanFeedMessage is pushed to owners watching an item live.
type ScanFeedMessage struct {
	Type      string    `json:"type"`
	ItemID    string    `json:"itemId"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type feedSubscription struct {
	conn   *websocket.Conn
	itemID string
	mu     sync.Mutex
}

func (s *feedSubscription) writeJSON(message any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(_writeDeadline))
	return s.conn.WriteJSON(message)
}

func (s *feedSubscription) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(_writeDeadline))
	return s.conn.WriteMessage(websocket.PingMessage, nil)
}

// ScanFeedController streams scans of one item to its owner over a websocket.
type ScanFeedController struct {
	broker     async.InternalBroker
	scans      usecases.ScanService
	clients    map[*websocket.Conn]*feedSubscription
	clientsMux sync.RWMutex
	register   chan *feedSubscription
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewScanFeedController(broker async.InternalBroker, scans usecases.ScanService) *ScanFeedController {
	ctx, cancel := context.WithCancel(context.Background())

	c := &ScanFeedController{
		broker:     broker,
		scans:      scans,
		clients:    make(map[*websocket.Conn]*feedSubscription),
		register:   make(chan *feedSubscription),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	go c.run()

	return c
}

var _ httpserver.Controller = (*ScanFeedController)(nil)

func (c *ScanFeedController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/items/{id}/scans", httpserver.RequireUser(c.handleWebSocket))
}

func (c *ScanFeedController) handleWebSocket(w http.ResponseWriter, r *http.Request, userID string) {
	itemID := shareddomain.ID(r.PathValue("id"))

	// ownership is checked before upgrading so errors stay plain HTTP
	history, _, err := c.scans.ListItemScans(r.Context(), shareddomain.ID(userID), itemID, usecases.Pagination{Limit: _historySize})
	if err != nil {
		replyOwnerError(w, err, listScansErrMessage)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	slog.Info("scan feed connection established",
		slog.String("remote_addr", r.RemoteAddr),
		slog.String("item_id", itemID.String()))

	subscription := &feedSubscription{conn: conn, itemID: itemID.String()}

	select {
	case c.register <- subscription:
	case <-c.ctx.Done():
		conn.Close()
		return
	}

	c.sendHistory(subscription, history)

	go c.handlePingPong(subscription)
	go c.handleClient(conn)
}

func (c *ScanFeedController) handleClient(conn *websocket.Conn) {
	defer func() {
		select {
		case c.unregister <- conn:
		case <-c.ctx.Done():
		}
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(_readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(_readDeadline))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("scan feed read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("scan feed connection closed", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (c *ScanFeedController) handlePingPong(subscription *feedSubscription) {
	ticker := time.NewTicker(_pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if err := subscription.ping(); err != nil {
				return
			}
		}
	}
}

func (c *ScanFeedController) run() {
	subscription, err := c.broker.Subscribe(usecases.ScanTopic)
	if err != nil {
		slog.Error("failed to subscribe to tag scans", slog.String("error", err.Error()))
		return
	}
	defer c.broker.Unsubscribe(usecases.ScanTopic, subscription)

	for {
		select {
		case <-c.ctx.Done():
			return

		case <-subscription.Done:
			return

		case client := <-c.register:
			c.clientsMux.Lock()
			c.clients[client.conn] = client
			total := len(c.clients)
			c.clientsMux.Unlock()
			slog.Info("scan feed client registered",
				slog.String("item_id", client.itemID),
				slog.Int("total_clients", total))

		case conn := <-c.unregister:
			c.clientsMux.Lock()
			if client, ok := c.clients[conn]; ok {
				delete(c.clients, conn)
				conn.Close()
				slog.Info("scan feed client unregistered",
					slog.String("item_id", client.itemID),
					slog.Int("total_clients", len(c.clients)))
			}
			c.clientsMux.Unlock()

		case msg := <-subscription.Receiver:
			if msg.Event != usecases.TagScannedEvent {
				continue
			}
			if scan, ok := msg.Value.(tagsDomain.Scan); ok {
				c.sendToItemClients(scan.ItemID.String(), ScanFeedMessage{
					Type:      ScanFeedMessageScan,
					ItemID:    scan.ItemID.String(),
					Timestamp: scan.CreatedAt,
					Data:      internal.ToScanResponse(scan),
				})
			}
		}
	}
}

func (c *ScanFeedController) sendToItemClients(itemID string, message ScanFeedMessage) {
	c.clientsMux.RLock()
	failed := make([]*websocket.Conn, 0)
	for conn, client := range c.clients {
		if client.itemID != itemID {
			continue
		}
		if err := client.writeJSON(message); err != nil {
			slog.Error("failed to write to scan feed client",
				slog.String("item_id", itemID),
				slog.String("error", err.Error()))
			failed = append(failed, conn)
		}
	}
	c.clientsMux.RUnlock()

	if len(failed) == 0 {
		return
	}

	c.clientsMux.Lock()
	for _, conn := range failed {
		if _, ok := c.clients[conn]; ok {
			delete(c.clients, conn)
			conn.Close()
		}
	}
	c.clientsMux.Unlock()
}

func (c *ScanFeedController) sendHistory(subscription *feedSubscription, history []tagsDomain.Scan) {
	data := make([]internal.ScanResponse, len(history))
	for i, scan := range history {
		data[i] = internal.ToScanResponse(scan)
	}

	err := subscription.writeJSON(ScanFeedMessage{
		Type:      ScanFeedMessageHistory,
		ItemID:    subscription.itemID,
		Timestamp: time.Now(),
		Data:      data,
	})
	if err != nil {
		slog.Error("failed to send scan history",
			slog.String("item_id", subscription.itemID),
			slog.String("error", err.Error()))
	}
}

func (c *ScanFeedController) Shutdown() {
	slog.Info("shutting down scan feed controller")
	c.cancel()

	c.clientsMux.Lock()
	for conn := range c.clients {
		conn.Close()
	}
	c.clientsMux.Unlock()
}
