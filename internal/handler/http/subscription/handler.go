// Package subscription streams change events to websocket clients.
//
// Each connection owns one event bus subscription. The goroutines serving it
// share an errgroup; whichever stops first closes the socket and cancels the
// subscription.
package subscription

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"postboard/internal/eventbus"
	"postboard/internal/handler/http/dto"
	"postboard/internal/handler/http/pathutil"
	"postboard/internal/handler/http/respond"
	"postboard/internal/observability/logging"
	"postboard/internal/repository"
)

const (
	writeWait      = 10 * time.Second
	maxClientFrame = 512
)

var errClientGone = errors.New("client closed connection")

// Subscriber opens event subscriptions. *eventbus.Bus implements it.
type Subscriber interface {
	Subscribe(topic eventbus.Topic) (*eventbus.Subscription, error)
}

// Message is the JSON frame sent for every event.
type Message struct {
	Topic    string            `json:"topic"`
	Mutation eventbus.Mutation `json:"mutation"`
	Data     any               `json:"data"`
}

// Handler serves the subscription routes.
type Handler struct {
	Bus          Subscriber
	Store        repository.Reader
	PingInterval time.Duration

	upgrader websocket.Upgrader
}

// Register mounts the websocket routes on mux.
func Register(mux *http.ServeMux, h *Handler) {
	h.upgrader = websocket.Upgrader{
		// The API carries no credentials, so cross-origin clients are allowed.
		CheckOrigin: func(*http.Request) bool { return true },
	}
	mux.HandleFunc("GET /subscriptions/posts", h.Posts)
	mux.HandleFunc("GET /subscriptions/posts/{id}/comments", h.Comments)
}

// Posts streams CREATED, UPDATED and DELETED events for published posts.
func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, eventbus.PostTopic())
}

// Comments streams comment events for one post. The post must exist.
func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ID(r)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	if _, err := h.Store.GetPost(r.Context(), id); err != nil {
		respond.Err(w, r, err)
		return
	}
	h.stream(w, r, eventbus.CommentTopic(id))
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request, topic eventbus.Topic) {
	logger := logging.FromContext(r.Context()).With(slog.String("topic", topic.String()))

	// Subscribe before the upgrade so no event published after the handshake is missed.
	sub, err := h.Bus.Subscribe(topic)
	if err != nil {
		if errors.Is(err, eventbus.ErrBusClosed) {
			respond.JSON(w, http.StatusServiceUnavailable, respond.ErrorBody{Error: "shutting down"})
			return
		}
		respond.Err(w, r, err)
		return
	}
	defer sub.Cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		logger.Warn("problem initiating websocket", slog.Any("error", err))
		return
	}
	defer conn.Close()

	logger.Info("subscription opened")
	err = h.pump(r.Context(), conn, sub)
	switch {
	case errors.Is(err, errClientGone), errors.Is(err, context.Canceled):
		logger.Info("subscription closed by client")
	case errors.Is(err, eventbus.ErrSubscriptionClosed):
		logger.Info("subscription closed by server")
	default:
		logger.Warn("subscription failed", slog.Any("error", err))
	}
}

// pump runs until the client leaves, the subscription is cancelled or a write fails.
// It always returns a non-nil error describing why it stopped.
func (h *Handler) pump(ctx context.Context, conn *websocket.Conn, sub *eventbus.Subscription) error {
	interval := h.PingInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	pongWait := 2 * interval

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		conn.SetReadLimit(maxClientFrame)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			// Client frames carry nothing; reading drives pong and close handling.
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return err
				}
				return errClientGone
			}
		}
	})

	g.Go(func() error {
		for {
			ev, err := sub.Next(ctx)
			if err != nil {
				return err
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(Message{
				Topic:    sub.Topic().String(),
				Mutation: ev.Mutation,
				Data:     dto.FromEntity(ev.Data),
			}); err != nil {
				return err
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(writeWait))
		// Unblocks the reader.
		_ = conn.Close()
		return ctx.Err()
	})

	return g.Wait()
}
