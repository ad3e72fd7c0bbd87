package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"yakjeong/core/logger"
)

const TypeRoomDeactivate = "room:deactivate"

type RoomDeactivatePayload struct {
	RoomID string `json:"room_id"`
}

// RetentionScheduler is what the room service sees: fire-and-forget
// scheduling of the retention-window deactivation.
type RetentionScheduler interface {
	ScheduleRoomDeactivation(roomID string, after time.Duration) error
}

type Client struct {
	client *asynq.Client
}

func NewClient(redisOpt asynq.RedisClientOpt) *Client {
	return &Client{client: asynq.NewClient(redisOpt)}
}

func (c *Client) ScheduleRoomDeactivation(roomID string, after time.Duration) error {
	payload, err := json.Marshal(RoomDeactivatePayload{RoomID: roomID})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeRoomDeactivate, payload)
	info, err := c.client.Enqueue(task, asynq.ProcessIn(after), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeRoomDeactivate, err)
	}

	logger.Info("scheduled room deactivation",
		"room_id", roomID,
		"task_id", info.ID,
		"process_in", after.String(),
	)
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// DeactivateRoomFunc is supplied by the room module; a missing room is not
// an error here (it may have been removed before the task fired).
type DeactivateRoomFunc func(ctx context.Context, roomID string) error

type Server struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewServer(redisOpt asynq.RedisClientOpt, concurrency int, deactivate DeactivateRoomFunc) *Server {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRoomDeactivate, func(ctx context.Context, t *asynq.Task) error {
		var p RoomDeactivatePayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logger.Error("Worker:RoomDeactivate bad payload", err)
			return nil // not retryable
		}
		if err := deactivate(ctx, p.RoomID); err != nil {
			logger.Error("Worker:RoomDeactivate", "room_id", p.RoomID, "error", err)
			return err
		}
		logger.Info("room deactivated by retention worker", "room_id", p.RoomID)
		return nil
	})

	return &Server{srv: srv, mux: mux}
}

func (s *Server) Start() error {
	return s.srv.Start(s.mux)
}

func (s *Server) Shutdown() {
	s.srv.Shutdown()
}
