package ws

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overlapCounter records writes that start while another is still running.
type overlapCounter struct {
	inflight int32
	overlaps int32
	writes   int32
	last     atomic.Value
}

func (o *overlapCounter) WriteJSON(v interface{}) error {
	if atomic.AddInt32(&o.inflight, 1) > 1 {
		atomic.AddInt32(&o.overlaps, 1)
	}
	time.Sleep(time.Millisecond)
	o.last.Store(v)
	atomic.AddInt32(&o.inflight, -1)
	atomic.AddInt32(&o.writes, 1)
	return nil
}

func TestConnSerialisesWriters(t *testing.T) {
	raw := &overlapCounter{}
	conn := NewConn(raw)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, conn.WriteJSON("x"))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(16), atomic.LoadInt32(&raw.writes))
	assert.Zero(t, atomic.LoadInt32(&raw.overlaps))
}

func TestNewConnKeepsExistingWrapper(t *testing.T) {
	conn := NewConn(&overlapCounter{})
	assert.Same(t, conn, NewConn(conn))
}

func TestConnSend(t *testing.T) {
	raw := &overlapCounter{}
	conn := NewConn(raw)
	require.NoError(t, conn.Send(MessageTypeError, ErrorPayload{Error: "boom"}))

	msg, ok := raw.last.Load().(Message)
	require.True(t, ok)
	assert.Equal(t, MessageTypeError, msg.Type)
	var payload ErrorPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "boom", payload.Error)
}
