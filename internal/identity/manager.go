package identity

import (
	"context"
	"log"
	"sync"
	"time"

	"rosegold_back_end/internal/models"
)

type State int

const (
	// Initializing: the provider has not reported a session yet.
	Initializing State = iota
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// DefaultSettleTimeout bounds how long an operation waits for the provider
// to deliver the notification for its own change.
const DefaultSettleTimeout = 10 * time.Second

// Manager tracks the application's identity session on top of a Provider.
//
// Provider notifications are the only writer of the cached session, so the
// manager sees changes in exactly the order the provider publishes them.
// Login, Register and Logout return once the notification for their change
// has been applied. Failed operations leave the session untouched. Nothing
// is retried.
type Manager struct {
	provider Provider
	settle   time.Duration

	mu       sync.RWMutex
	state    State
	session  *models.Session
	names    map[string]string
	resolved chan struct{}
	changed  chan struct{}

	startOnce   sync.Once
	closeOnce   sync.Once
	unsubscribe func()
}

func NewManager(p Provider) *Manager {
	return &Manager{
		provider: p,
		settle:   DefaultSettleTimeout,
		state:    Initializing,
		names:    make(map[string]string),
		resolved: make(chan struct{}),
		changed:  make(chan struct{}),
	}
}

// Start subscribes to provider notifications. Only the first call has an effect.
func (m *Manager) Start() {
	m.startOnce.Do(func() {
		unsubscribe := m.provider.Subscribe(m.apply)
		m.mu.Lock()
		m.unsubscribe = unsubscribe
		m.mu.Unlock()
	})
}

// Close drops the provider subscription.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		unsubscribe := m.unsubscribe
		m.unsubscribe = nil
		m.mu.Unlock()
		if unsubscribe != nil {
			unsubscribe()
		}
	})
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Loading is true until the provider has resolved the first session.
func (m *Manager) Loading() bool {
	return m.State() == Initializing
}

func (m *Manager) IsAuthenticated() bool {
	return m.State() == Authenticated
}

// Session returns a copy of the current session, or nil.
func (m *Manager) Session() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneSession(m.session)
}

// Wait blocks until the session is resolved or ctx is done.
func (m *Manager) Wait(ctx context.Context) error {
	select {
	case <-m.resolved:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) Login(ctx context.Context, email, password string) error {
	session, err := m.provider.Login(ctx, email, password)
	if err != nil {
		return AsError(err)
	}
	return m.awaitUser(ctx, session)
}

// Register creates the account and signs it in. The requested name is kept
// as the session's display name whatever the provider reports.
func (m *Manager) Register(ctx context.Context, name, email, password string) error {
	session, err := m.provider.Register(ctx, name, email, password)
	if err != nil {
		return AsError(err)
	}
	if session != nil && name != "" {
		m.mu.Lock()
		m.names[session.ID] = name
		if m.session != nil && m.session.ID == session.ID {
			m.session = m.session.WithName(name)
		}
		m.mu.Unlock()
	}
	return m.awaitUser(ctx, session)
}

func (m *Manager) Logout(ctx context.Context) error {
	if err := m.provider.Logout(ctx); err != nil {
		return AsError(err)
	}
	return m.await(ctx, func(state State, _ *models.Session) bool {
		return state == Anonymous
	})
}

// awaitUser waits until the applied session belongs to want, or until the
// manager is anonymous when want is nil.
func (m *Manager) awaitUser(ctx context.Context, want *models.Session) error {
	if want == nil {
		return m.await(ctx, func(state State, _ *models.Session) bool {
			return state == Anonymous
		})
	}
	return m.await(ctx, func(_ State, current *models.Session) bool {
		return current != nil && current.ID == want.ID
	})
}

// await blocks until done holds for the applied state. A provider that
// never confirms the change yields a network error.
func (m *Manager) await(ctx context.Context, done func(State, *models.Session) bool) error {
	ctx, cancel := context.WithTimeout(ctx, m.settle)
	defer cancel()

	for {
		m.mu.RLock()
		ok := done(m.state, m.session)
		changed := m.changed
		m.mu.RUnlock()
		if ok {
			return nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return NewError(KindNetwork, ctx.Err())
		}
	}
}

func (m *Manager) apply(session *models.Session) {
	m.mu.Lock()
	previous := m.state
	m.session = cloneSession(session)
	if session == nil {
		m.state = Anonymous
	} else {
		m.state = Authenticated
		if name, ok := m.names[session.ID]; ok {
			m.session = m.session.WithName(name)
		}
	}
	if previous == Initializing {
		close(m.resolved)
	}
	close(m.changed)
	m.changed = make(chan struct{})
	current := m.state
	m.mu.Unlock()

	if previous != current {
		log.Printf("🔐 Session %s → %s", previous, current)
	}
}

func cloneSession(s *models.Session) *models.Session {
	if s == nil {
		return nil
	}
	out := &models.Session{ID: s.ID}
	if s.Name != nil {
		name := *s.Name
		out.Name = &name
	}
	if s.Email != nil {
		email := *s.Email
		out.Email = &email
	}
	return out
}
