package httpapi

import (
	"context"
	"crm-server/internal/infra/async"
	"crm-server/internal/infra/httpserver"
	"crm-server/internal/infra/utils"
	"crm-server/internal/query/filter"
	shareddomain "crm-server/internal/shared_kernel/domain"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	_liveReadLimit    = 64 * 1024
	_livePongWait     = 60 * time.Second
	_livePingInterval = 54 * time.Second
	_liveWriteWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveQuerySource runs one list query for a live session. data is written
// to the client as is.
type LiveQuerySource interface {
	LiveQuery(ctx context.Context, ownerID shareddomain.ID, params ListParams) (data any, total int, err error)
}

// LiveQueryMessage is what a live session writes back.
type LiveQueryMessage struct {
	Type     string `json:"type"`
	Sequence uint64 `json:"sequence"`
	Data     any    `json:"data,omitempty"`
	Total    int    `json:"total"`
	Error    string `json:"error,omitempty"`
}

type liveQueryRequest struct {
	Search  string                `json:"search"`
	Filters []filter.ColumnFilter `json:"filters"`
	Sort    string                `json:"sort"`
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
}

func (r liveQueryRequest) toParams() (ListParams, error) {
	sort, err := ParseSort(r.Sort)
	if err != nil {
		return ListParams{}, err
	}
	pagination := httpserver.DefaultPaginationParams()
	if r.Page > 0 {
		pagination.Page = r.Page
	}
	if r.Limit > 0 && r.Limit <= httpserver.MaxPageLimit {
		pagination.Limit = r.Limit
	}
	return ListParams{
		Search:     r.Search,
		Filters:    r.Filters,
		Sort:       sort,
		Pagination: pagination,
	}, nil
}

// LiveQueryController serves list views over a websocket. Every message from
// the client is a full list query; queries are debounced and only the answer
// to the most recently dispatched one is written back.
type LiveQueryController struct {
	sources   map[string]LiveQuerySource
	delay     time.Duration
	sequencer *async.Sequencer

	mu       sync.Mutex
	sessions map[*liveSession]struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewLiveQueryController serves GET /v1/{resource}/live for every resource
// in sources, e.g. "contacts".
func NewLiveQueryController(delay time.Duration, sources map[string]LiveQuerySource) *LiveQueryController {
	ctx, cancel := context.WithCancel(context.Background())
	return &LiveQueryController{
		sources:   sources,
		delay:     delay,
		sequencer: async.NewSequencer(),
		sessions:  make(map[*liveSession]struct{}),
		ctx:       ctx,
		cancel:    cancel,
	}
}

var _ httpserver.Controller = (*LiveQueryController)(nil)

func (c *LiveQueryController) AddRoutes(router *http.ServeMux) {
	for resource, source := range c.sources {
		router.Handle("GET /v1/"+resource+"/live", c.handleWebSocket(resource, source))
	}
}

func (c *LiveQueryController) handleWebSocket(resource string, source LiveQuerySource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := httpserver.OwnerID(r)
		if err != nil {
			http.Error(w, "missing user", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		session := c.open(conn, resource, shareddomain.ID(owner), source)
		if session == nil {
			conn.Close()
			return
		}

		slog.Debug("live query session opened",
			slog.String("resource", resource),
			slog.String("session", session.key))

		go session.keepAlive()
		go func() {
			session.readLoop()
			c.closeSession(session)
		}()
	}
}

func (c *LiveQueryController) open(conn *websocket.Conn, resource string, owner shareddomain.ID, source LiveQuerySource) *liveSession {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx.Err() != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(c.ctx)
	session := &liveSession{
		key:       resource + ":" + utils.GenerateUUID(),
		owner:     owner,
		source:    source,
		conn:      conn,
		debouncer: async.NewDebouncer(c.delay),
		sequencer: c.sequencer,
		ctx:       ctx,
		cancel:    cancel,
	}
	c.sessions[session] = struct{}{}
	return session
}

func (c *LiveQueryController) closeSession(session *liveSession) {
	c.mu.Lock()
	delete(c.sessions, session)
	c.mu.Unlock()

	session.close()
}

// Shutdown ends every open session and waits for their queries to return.
func (c *LiveQueryController) Shutdown() {
	c.cancel()

	c.mu.Lock()
	sessions := make([]*liveSession, 0, len(c.sessions))
	for session := range c.sessions {
		sessions = append(sessions, session)
	}
	c.sessions = make(map[*liveSession]struct{})
	c.mu.Unlock()

	for _, session := range sessions {
		session.close()
	}
}

type liveSession struct {
	key       string
	owner     shareddomain.ID
	source    LiveQuerySource
	conn      *websocket.Conn
	debouncer *async.Debouncer
	sequencer *async.Sequencer
	ctx       context.Context
	cancel    context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup

	writeMu   sync.Mutex
	closeOnce sync.Once
}

func (s *liveSession) readLoop() {
	s.conn.SetReadLimit(_liveReadLimit)
	s.conn.SetReadDeadline(time.Now().Add(_livePongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(_livePongWait))
		return nil
	})

	for {
		var request liveQueryRequest
		err := s.conn.ReadJSON(&request)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("live query read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("live query session closed", slog.String("session", s.key))
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(_livePongWait))

		params, err := request.toParams()
		if err != nil {
			s.write(LiveQueryMessage{Type: "error", Error: err.Error()})
			continue
		}
		s.debouncer.Trigger(func() {
			s.dispatch(params)
		})
	}
}

// dispatch runs params under a new version. A query still in flight is left
// to finish and its result is dropped once it returns.
func (s *liveSession) dispatch(params ListParams) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	version := s.sequencer.Next(s.key)
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()

		data, total, err := s.source.LiveQuery(s.ctx, s.owner, params)
		if !s.sequencer.IsCurrent(s.key, version) {
			slog.Debug("dropping superseded live query",
				slog.String("session", s.key),
				slog.Uint64("sequence", version))
			return
		}
		if err != nil {
			slog.Error("running live query", slog.String("error", err.Error()))
			s.write(LiveQueryMessage{Type: "error", Sequence: version, Error: "failed to run query"})
			return
		}
		s.write(LiveQueryMessage{Type: "result", Sequence: version, Data: data, Total: total})
	}()
}

func (s *liveSession) write(message LiveQueryMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(_liveWriteWait))
	if err := s.conn.WriteJSON(message); err != nil {
		slog.Debug("writing live query message", slog.String("error", err.Error()))
	}
}

func (s *liveSession) keepAlive() {
	ticker := time.NewTicker(_livePingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.writeMu.Lock()
			s.conn.SetWriteDeadline(time.Now().Add(_liveWriteWait))
			err := s.conn.WriteMessage(websocket.PingMessage, nil)
			s.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (s *liveSession) close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.debouncer.Stop()
		s.cancel()
		s.conn.Close()
		s.wg.Wait()
		s.sequencer.Forget(s.key)
	})
}
