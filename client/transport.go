package client

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"chat-client/contract"
)

// dialer abstracts transport establishment so tests can substitute the
// network. Production always dials a websocket.
type dialer interface {
	Dial(ctx context.Context, url string) (contract.ITransport, error)
}

type wsDialer struct {
	handshakeTimeout time.Duration
}

func (d wsDialer) Dial(ctx context.Context, url string) (contract.ITransport, error) {
	wd := websocket.Dialer{HandshakeTimeout: d.handshakeTimeout}
	conn, _, err := wd.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return &wsTransport{conn: conn}, nil
}

// wsTransport adapts a gorilla connection to contract.ITransport.
// Gorilla allows one concurrent writer, so writes are serialized here;
// reads all happen on the client's single read loop.
type wsTransport struct {
	conn *websocket.Conn

	writeMu sync.Mutex
}

func (t *wsTransport) WriteMessage(data []byte) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return t.conn.WriteMessage(websocket.TextMessage, data)
}

func (t *wsTransport) ReadMessage() ([]byte, error) {
	_, data, err := t.conn.ReadMessage()
	return data, err
}

func (t *wsTransport) Close() error {
	return t.conn.Close()
}
