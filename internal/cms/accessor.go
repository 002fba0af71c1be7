package cms

import (
	"sync"

	"devhub/portal/internal/config"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Accessor lazily constructs and memoizes one delivery client for the life
// of the process. Get returns nil when credentials are absent or when
// construction fails; callers treat nil as "use fallback data", never as a
// fault.
//
// Construction is guarded by a single-flight group: the first caller builds
// the client while concurrent callers wait on that same construction, so two
// handles are never created.
type Accessor struct {
	cfg       config.CMSConfig
	construct func(config.CMSConfig) (Client, error)

	group singleflight.Group

	mu     sync.RWMutex
	handle Client
	done   bool
}

func NewAccessor(cfg config.CMSConfig) *Accessor {
	return &Accessor{
		cfg:       cfg,
		construct: newDeliveryClient,
	}
}

// Get returns the memoized client, constructing it on first use.
func (a *Accessor) Get() Client {
	a.mu.RLock()
	if a.done {
		handle := a.handle
		a.mu.RUnlock()
		return handle
	}
	a.mu.RUnlock()

	v, _, _ := a.group.Do("connect", func() (any, error) {
		a.mu.RLock()
		if a.done {
			handle := a.handle
			a.mu.RUnlock()
			return handle, nil
		}
		a.mu.RUnlock()

		var handle Client
		switch {
		case !a.cfg.HasCredentials():
			log.Debug("CMS credentials not configured, running on fallback content")
		default:
			built, err := a.construct(a.cfg)
			if err != nil {
				log.Errorf("Failed to construct delivery client: %v", err)
			} else {
				handle = built
				log.Infof("Delivery client connected to %s (environment %s)", a.cfg.BaseURL, a.cfg.Environment)
			}
		}

		a.mu.Lock()
		a.handle = handle
		a.done = true
		a.mu.Unlock()
		return handle, nil
	})

	if handle, ok := v.(Client); ok {
		return handle
	}
	return nil
}

// Reset clears the memoized handle so the next Get constructs again. Test
// hook; production code never resets.
func (a *Accessor) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handle = nil
	a.done = false
}
