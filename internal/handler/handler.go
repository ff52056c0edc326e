package handler

import (
	"context"
	"sync"
	"time"

	"stockadmin/internal/domain"
	"stockadmin/internal/editor"
	"stockadmin/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	stores     *service.StoreService
	warehouses *service.WarehouseService
	editor     *editor.Editor
	logger     *zap.Logger
	timeout    time.Duration

	// Admin dialogs (one editor session per user)
	sessions   map[int64]*sessionEntry
	sessionMux sync.Mutex
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *editor.Session
	lastSeen time.Time
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	stores *service.StoreService,
	warehouses *service.WarehouseService,
	ed *editor.Editor,
	timeout time.Duration,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		stores:     stores,
		warehouses: warehouses,
		editor:     ed,
		logger:     logger,
		timeout:    timeout,
		sessions:   make(map[int64]*sessionEntry),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/stores", h.handleStoresCommand)
	h.bot.Handle("/warehouses", h.handleWarehousesCommand)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// All inline buttons go through one dispatcher
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// withSession runs fn with the user's session locked
func (h *Handler) withSession(userID int64, fn func(s *editor.Session) error) error {
	h.sessionMux.Lock()
	entry, exists := h.sessions[userID]
	if !exists {
		entry = &sessionEntry{session: h.editor.NewSession()}
		h.sessions[userID] = entry
	}
	h.sessionMux.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.lastSeen = time.Now()
	return fn(entry.session)
}

// PurgeSessions drops sessions idle for longer than ttl and returns how many were dropped
func (h *Handler) PurgeSessions(ttl time.Duration) int {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	cutoff := time.Now().Add(-ttl)
	purged := 0
	for userID, entry := range h.sessions {
		if !entry.mu.TryLock() {
			continue
		}
		if entry.lastSeen.Before(cutoff) {
			delete(h.sessions, userID)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}

// SessionCount returns the number of live sessions
func (h *Handler) SessionCount() int {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	return len(h.sessions)
}

func (h *Handler) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), h.timeout)
}

// points lists stores or warehouses for display
func (h *Handler) points(ctx context.Context, kind domain.Kind) ([]domain.Point, error) {
	var points []domain.Point
	if kind == domain.KindWarehouse {
		whs, err := h.warehouses.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, wh := range whs {
			points = append(points, wh.Point())
		}
		return points, nil
	}

	stores, err := h.stores.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range stores {
		points = append(points, s.Point())
	}
	return points, nil
}

// pointName resolves the display name of a point, falling back to its id
func (h *Handler) pointName(ctx context.Context, kind domain.Kind, id int64) string {
	var (
		name string
		err  error
	)
	if kind == domain.KindWarehouse {
		var wh *domain.Warehouse
		if wh, err = h.warehouses.Get(ctx, id); err == nil {
			name = wh.Name
		}
	} else {
		var store *domain.Store
		if store, err = h.stores.Get(ctx, id); err == nil {
			name = store.Name
		}
	}
	if err != nil {
		h.logger.Warn("Failed to resolve point name",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.Int64("point_id", id),
		)
		return fallbackName(id)
	}
	return name
}
