package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries the request fields; Cell is a pointer so cell 0 is
// distinguishable from a missing cell.
type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Mode   string         `json:"mode,omitempty"`
	Mark   string         `json:"mark,omitempty"`
	Cell   *int           `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Player  *entity.Player  `json:"player,omitempty"`
	Session *entity.Session `json:"session,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// client wraps a connection with its player identity. Writes are serialized
// because the engine turn is sent from a separate goroutine.
type client struct {
	conn     *websocket.Conn
	playerID string

	writeMu sync.Mutex
}

func (that *client) send(action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	return that.conn.WriteJSON(Message{
		Action:  action,
		Payload: payloadJSON,
	})
}
