package ws

import (
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu       sync.Mutex
	messages [][]byte
	closed   bool
	failing  bool
}

func (c *fakeClient) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeClient) received() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

func (c *fakeClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestHub_BroadcastsToClients(t *testing.T) {
	hub := NewHub(quietLogger())
	done := make(chan struct{})
	go hub.Run(done)
	defer close(done)

	good := &fakeClient{}
	broken := &fakeClient{failing: true}
	hub.Register <- good
	hub.Register <- broken

	hub.Publish(map[string]string{"action": "product_created"})

	require.Eventually(t, func() bool { return good.received() == 1 }, time.Second, 10*time.Millisecond)
	require.Eventually(t, broken.isClosed, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, hub.Count())

	var event map[string]string
	require.NoError(t, json.Unmarshal(good.messages[0], &event))
	assert.Equal(t, "product_created", event["action"])
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub(quietLogger())
	done := make(chan struct{})
	go hub.Run(done)
	defer close(done)

	c := &fakeClient{}
	hub.Register <- c
	hub.Unregister <- c

	require.Eventually(t, c.isClosed, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, hub.Count())
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub(quietLogger())

	finished := make(chan struct{})
	go func() {
		for i := 0; i < broadcastBuffer*2; i++ {
			hub.Publish(i)
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
	assert.Len(t, hub.Broadcast, broadcastBuffer)
}

func TestHub_RunClosesClientsOnShutdown(t *testing.T) {
	hub := NewHub(quietLogger())
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		hub.Run(done)
		close(stopped)
	}()

	c := &fakeClient{}
	hub.Register <- c
	close(done)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	assert.True(t, c.isClosed())
	assert.Equal(t, 0, hub.Count())
}

func TestHub_JoinAndLeaveAfterShutdown(t *testing.T) {
	hub := NewHub(quietLogger())
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		hub.Run(done)
		close(stopped)
	}()

	open := &fakeClient{}
	require.True(t, hub.Join(open))
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	close(done)
	<-stopped

	finished := make(chan struct{})
	late := &fakeClient{}
	go func() {
		hub.Leave(open)
		assert.False(t, hub.Join(late))
		hub.Leave(late)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Join or Leave blocked after the hub stopped")
	}
	assert.True(t, open.isClosed())
	assert.True(t, late.isClosed())
}
