package realtime_test

import (
	"sync"
	"testing"

	"gosyncswap/realtime"

	"github.com/stretchr/testify/assert"
)

func TestRegisterUnregister(t *testing.T) {
	hub := realtime.NewHub()
	assert.Equal(t, 0, hub.Count())

	a := realtime.NewClient(nil)
	b := realtime.NewClient(nil)

	hub.Register(a)
	hub.Register(b)
	assert.Equal(t, 2, hub.Count())

	// registering twice is a no-op
	hub.Register(a)
	assert.Equal(t, 2, hub.Count())

	hub.Unregister(a)
	assert.Equal(t, 1, hub.Count())

	// unregistering an unknown client is a no-op
	hub.Unregister(a)
	assert.Equal(t, 1, hub.Count())

	hub.Unregister(b)
	assert.Equal(t, 0, hub.Count())
}

func TestBroadcastEmptyHub(t *testing.T) {
	hub := realtime.NewHub()
	// nothing registered, nothing to deliver, must not panic
	hub.Broadcast(map[string]string{"type": "noop"})
}

func TestConcurrentMembershipChanges(t *testing.T) {
	hub := realtime.NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := realtime.NewClient(nil)
			hub.Register(c)
			hub.Unregister(c)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Count())
}
