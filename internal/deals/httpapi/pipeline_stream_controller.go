package httpapi

import (
	"context"
	"crm-server/internal/deals/domain"
	"crm-server/internal/deals/httpapi/internal"
	"crm-server/internal/deals/usecases"
	"crm-server/internal/infra/async"
	"crm-server/internal/infra/httpserver"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	sharedhttpapi "crm-server/internal/shared_kernel/httpapi"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	_streamPongWait     = 60 * time.Second
	_streamPingInterval = 54 * time.Second
	_streamWriteWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type pipelineClient struct {
	conn      *websocket.Conn
	owner     shareddomain.ID
	predicate filter.Expr
	writeMu   sync.Mutex
}

func (c *pipelineClient) write(message any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(_streamWriteWait))
	return c.conn.WriteJSON(message)
}

func (c *pipelineClient) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(_streamWriteWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// accepts reports whether the update belongs on this client's board.
// Removals always pass so that boards can drop cards that no longer match.
func (c *pipelineClient) accepts(update domain.PipelineUpdate) bool {
	if update.OwnerID != c.owner {
		return false
	}
	if update.Event == domain.PipelineEventRemoved || update.Deal == nil {
		return true
	}
	return filter.Matches(c.predicate, *update.Deal)
}

// PipelineStreamController pushes pipeline updates to connected boards.
type PipelineStreamController struct {
	broker       async.InternalBroker
	subscription async.Subscription
	customFields usecases.CustomFieldCatalog
	compiler     *filter.Compiler

	clients    map[*websocket.Conn]*pipelineClient
	clientsMux sync.RWMutex
	register   chan *pipelineClient
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewPipelineStreamController(
	broker async.InternalBroker,
	customFields usecases.CustomFieldCatalog,
	loc *time.Location,
) (*PipelineStreamController, error) {
	subscription, err := broker.Subscribe(usecases.PipelineTopic)
	if err != nil {
		return nil, fmt.Errorf("subscribing to pipeline updates: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &PipelineStreamController{
		broker:       broker,
		subscription: subscription,
		customFields: customFields,
		compiler:     filter.NewCompiler(filter.DealCatalog(), loc),
		clients:      make(map[*websocket.Conn]*pipelineClient),
		register:     make(chan *pipelineClient),
		unregister:   make(chan *websocket.Conn),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}

	go c.run()

	return c, nil
}

var _ httpserver.Controller = (*PipelineStreamController)(nil)

func (c *PipelineStreamController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/deals/pipeline/stream", c.handleWebSocket())
}

func (c *PipelineStreamController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, unauthorizedErrMessage, http.StatusUnauthorized)
			return
		}
		filters, err := sharedhttpapi.ParseFilters(httpserver.GetQueryParam(r, "filters"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		catalog, err := c.customFields.Catalog(r.Context(), shareddomain.ID(owner), shareddomain.EntityTypeDeal)
		if err != nil {
			http.Error(w, pipelineErrMessage, http.StatusInternalServerError)
			return
		}
		predicate := c.compiler.Compile(filter.Query{OwnerID: owner, Filters: filters}, catalog.FilterDefinitions())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		client := &pipelineClient{
			conn:      conn,
			owner:     shareddomain.ID(owner),
			predicate: predicate,
		}

		select {
		case c.register <- client:
		case <-c.ctx.Done():
			conn.Close()
			return
		}

		slog.Debug("pipeline stream opened", slog.String("remote_addr", r.RemoteAddr))

		go c.keepAlive(client)
		go c.readLoop(client)
	}
}

// readLoop only watches for the client going away.
func (c *PipelineStreamController) readLoop(client *pipelineClient) {
	defer func() {
		select {
		case c.unregister <- client.conn:
		case <-c.ctx.Done():
		}
		client.conn.Close()
	}()

	client.conn.SetReadLimit(512)
	client.conn.SetReadDeadline(time.Now().Add(_streamPongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(_streamPongWait))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("pipeline stream read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("pipeline stream closed", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (c *PipelineStreamController) keepAlive(client *pipelineClient) {
	ticker := time.NewTicker(_streamPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if err := client.ping(); err != nil {
				return
			}
		}
	}
}

func (c *PipelineStreamController) run() {
	defer close(c.done)

	for {
		select {
		case <-c.ctx.Done():
			return

		case client := <-c.register:
			c.clientsMux.Lock()
			c.clients[client.conn] = client
			total := len(c.clients)
			c.clientsMux.Unlock()
			slog.Debug("pipeline client registered", slog.Int("total_clients", total))

		case conn := <-c.unregister:
			c.clientsMux.Lock()
			delete(c.clients, conn)
			total := len(c.clients)
			c.clientsMux.Unlock()
			slog.Debug("pipeline client unregistered", slog.Int("total_clients", total))

		case message, ok := <-c.subscription.Receiver:
			if !ok {
				return
			}
			update, isUpdate := message.Value.(domain.PipelineUpdate)
			if !isUpdate {
				slog.Error("unexpected pipeline message", slog.String("type", fmt.Sprintf("%T", message.Value)))
				continue
			}
			c.broadcast(update)
		}
	}
}

func (c *PipelineStreamController) broadcast(update domain.PipelineUpdate) {
	response := internal.ToPipelineEventResponse(update)

	c.clientsMux.RLock()
	var failed []*websocket.Conn
	for conn, client := range c.clients {
		if !client.accepts(update) {
			continue
		}
		if err := client.write(response); err != nil {
			slog.Debug("writing pipeline update", slog.String("error", err.Error()))
			failed = append(failed, conn)
		}
	}
	c.clientsMux.RUnlock()

	if len(failed) == 0 {
		return
	}
	c.clientsMux.Lock()
	for _, conn := range failed {
		delete(c.clients, conn)
		conn.Close()
	}
	c.clientsMux.Unlock()
}

// Shutdown closes every stream and stops listening for updates.
func (c *PipelineStreamController) Shutdown() {
	c.cancel()
	<-c.done

	if err := c.broker.Unsubscribe(usecases.PipelineTopic, c.subscription); err != nil {
		slog.Debug("unsubscribing pipeline stream", slog.String("error", err.Error()))
	}

	c.clientsMux.Lock()
	for conn := range c.clients {
		conn.Close()
	}
	c.clients = make(map[*websocket.Conn]*pipelineClient)
	c.clientsMux.Unlock()
}
