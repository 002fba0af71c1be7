package cms

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"devhub/portal/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct{ id int }

func (s *stubClient) Entries(ctx context.Context, q Query) ([]Entry, error) {
	return nil, nil
}

func configured() config.CMSConfig {
	return config.CMSConfig{
		BaseURL:     "https://cdn.example.com",
		APIKey:      "key",
		AccessToken: "token",
		Environment: "production",
	}
}

func TestAccessor_MissingCredentialsReturnsNil(t *testing.T) {
	a := NewAccessor(config.CMSConfig{BaseURL: "https://cdn.example.com"})
	assert.Nil(t, a.Get())
	// Memoized: still nil, no construction attempted later.
	assert.Nil(t, a.Get())
}

func TestAccessor_ConstructionFailureReturnsNil(t *testing.T) {
	cfg := configured()
	cfg.BaseURL = "://not-a-url"
	a := NewAccessor(cfg)
	assert.Nil(t, a.Get())
}

func TestAccessor_MemoizesHandle(t *testing.T) {
	a := NewAccessor(configured())

	var built atomic.Int32
	a.construct = func(config.CMSConfig) (Client, error) {
		built.Add(1)
		return &stubClient{id: int(built.Load())}, nil
	}

	first := a.Get()
	second := a.Get()
	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), built.Load())
}

func TestAccessor_SingleFlightConstruction(t *testing.T) {
	a := NewAccessor(configured())

	var built atomic.Int32
	release := make(chan struct{})
	a.construct = func(config.CMSConfig) (Client, error) {
		built.Add(1)
		<-release // hold every caller inside the first construction
		return &stubClient{}, nil
	}

	const callers = 32
	handles := make([]Client, callers)

	var started, done sync.WaitGroup
	started.Add(callers)
	done.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			started.Done()
			handles[i] = a.Get()
			done.Done()
		}(i)
	}

	started.Wait()
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), built.Load(), "exactly one construction")
	for i := 1; i < callers; i++ {
		assert.Same(t, handles[0], handles[i])
	}
}

func TestAccessor_SingleFlightWithoutCredentials(t *testing.T) {
	a := NewAccessor(config.CMSConfig{})

	const callers = 16
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			assert.Nil(t, a.Get())
		}()
	}
	wg.Wait()
}

func TestAccessor_ResetAllowsReconstruction(t *testing.T) {
	a := NewAccessor(configured())

	var built atomic.Int32
	a.construct = func(config.CMSConfig) (Client, error) {
		built.Add(1)
		return &stubClient{id: int(built.Load())}, nil
	}

	require.NotNil(t, a.Get())
	a.Reset()
	require.NotNil(t, a.Get())
	assert.Equal(t, int32(2), built.Load())
}
