// Package erpadmin manages the client-side session for the ERP backend:
// a settled view of who is logged in, what they may do, and the
// transitions between anonymous and authenticated.
package erpadmin

import (
	"context"
	"sync"

	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/wasteworks/erpadmin/gateway"
	"github.com/wasteworks/erpadmin/tokenstore"
	"go.opentelemetry.io/otel"
)

const name = "github.com/wasteworks/erpadmin"

// Manager owns the session state. It is an explicit dependency to be
// passed where needed, not process-global, and is safe for concurrent
// use. The zero value is not usable; construct with New.
type Manager struct {
	client AuthClient
	tokens tokenstore.Store

	mu         sync.Mutex
	state      State
	generation uint64
}

// New creates a Manager in the Unknown state. Nothing settles until
// Hydrate or an auth operation runs.
func New(client AuthClient, tokens tokenstore.Store) *Manager {
	return &Manager{
		client: client,
		tokens: tokens,
		state:  Unknown{},
	}
}

// State returns a snapshot of the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// begin opens a state transition and returns its generation. Network
// I/O happens outside the lock; commit applies the result only while
// its generation is still current.
func (m *Manager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++

	return m.generation
}

// commit installs state unless a newer transition began since gen. A
// stale result is discarded, so overlapping transitions settle on the
// last one started rather than the last one to finish.
func (m *Manager) commit(gen uint64, state State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.generation {
		return false
	}
	m.state = state

	return true
}

// Hydrate settles the session from persisted credentials. With no
// stored access token it settles Anonymous without touching the
// network. A stored token is verified against the backend; any
// verification failure clears the stored pair and settles Anonymous
// rather than surfacing, a broken session just means logged out.
func (m *Manager) Hydrate(ctx context.Context) (State, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Manager.Hydrate()")
	defer span.End()

	gen := m.begin()

	if _, ok := m.tokens.Get(); !ok {
		m.commit(gen, Anonymous{})

		return m.State(), nil
	}

	cu, err := m.client.CurrentUser(ctx)
	if err != nil {
		logger.Ctx(ctx).Error(errors.Wrap(err, "AuthClient.CurrentUser()"))
		// Settle Anonymous even when the clear fails, otherwise the
		// session would stay Unknown forever.
		m.commit(gen, Anonymous{})
		if err := m.tokens.Clear(); err != nil {
			return m.State(), errors.Wrap(err, "tokenstore.Store.Clear()")
		}

		return m.State(), nil
	}

	m.commit(gen, Authenticated{
		User:        cu.User,
		Tenant:      cu.Tenant,
		Permissions: NewPermissionSet(cu.Permissions),
	})

	return m.State(), nil
}

// Login authenticates with the backend. On success the session becomes
// Authenticated from the login payload. On failure the state is left
// untouched and the error is returned for display.
func (m *Manager) Login(ctx context.Context, creds gateway.Credentials) (State, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Manager.Login()")
	defer span.End()

	gen := m.begin()

	data, err := m.client.Login(ctx, creds)
	if err != nil {
		return m.State(), errors.Wrap(err, "AuthClient.Login()")
	}

	m.commit(gen, authenticatedFrom(data))

	return m.State(), nil
}

// Register creates an account and tenant, then authenticates the new
// user the same way Login does.
func (m *Manager) Register(ctx context.Context, payload any) (State, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Manager.Register()")
	defer span.End()

	gen := m.begin()

	data, err := m.client.Register(ctx, payload)
	if err != nil {
		return m.State(), errors.Wrap(err, "AuthClient.Register()")
	}

	m.commit(gen, authenticatedFrom(data))

	return m.State(), nil
}

// Logout ends the session. Server-side invalidation is best effort: a
// failure is logged and otherwise ignored. Local state and stored
// tokens are cleared unconditionally.
func (m *Manager) Logout(ctx context.Context) State {
	ctx, span := otel.Tracer(name).Start(ctx, "Manager.Logout()")
	defer span.End()

	gen := m.begin()

	if err := m.client.Logout(ctx); err != nil {
		logger.Ctx(ctx).Error(errors.Wrap(err, "AuthClient.Logout()"))
	}
	if err := m.tokens.Clear(); err != nil {
		logger.Ctx(ctx).Error(errors.Wrap(err, "tokenstore.Store.Clear()"))
	}

	m.commit(gen, Anonymous{})

	return m.State()
}

func authenticatedFrom(data *gateway.AuthData) Authenticated {
	return Authenticated{
		User:        data.User,
		Tenant:      data.Tenant,
		Permissions: NewPermissionSet(data.Permissions),
	}
}
