package ws

import "sync"

// JSONWriter is the write half of a websocket connection.
type JSONWriter interface {
	WriteJSON(v interface{}) error
}

// Conn lets several goroutines write to one connection. The websocket
// connection itself accepts a single writer at a time.
type Conn struct {
	mu sync.Mutex
	w  JSONWriter
}

// NewConn wraps w. Wrapping a *Conn returns it unchanged.
func NewConn(w JSONWriter) *Conn {
	if c, ok := w.(*Conn); ok {
		return c
	}
	return &Conn{w: w}
}

func (c *Conn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.WriteJSON(v)
}

// Send marshals payload into a message of type t and writes it.
func (c *Conn) Send(t MessageType, payload interface{}) error {
	msg, err := NewMessage(t, payload)
	if err != nil {
		return err
	}
	return c.WriteJSON(msg)
}
