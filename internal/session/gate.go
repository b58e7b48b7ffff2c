// Package session holds the terminal's staff identity and decides which
// portal areas are reachable. It is a UX gate only; the backend enforces
// authorization on every call.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type Role string

const (
	RoleFrontDesk  Role = "front-desk"
	RoleTechnician Role = "technician"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleFrontDesk, RoleTechnician:
		return Role(s), true
	}
	return "", false
}

// Storage keys; the three values are saved and cleared together.
const (
	KeyToken = "kp_token"
	KeyRole  = "kp_role"
	KeyUser  = "kp_user"
)

var (
	ErrLoginInFlight        = errors.New("session: login already in progress")
	ErrAlreadyAuthenticated = errors.New("session: already authenticated")
	ErrNotAuthenticating    = errors.New("session: no login in progress")
)

type Identity struct {
	Role     Role   `json:"role"`
	Username string `json:"username"`
	Token    string `json:"-"`
}

// Snapshot is the externally visible view of the gate.
type Snapshot struct {
	State    string `json:"state"`
	Role     Role   `json:"role,omitempty"`
	Username string `json:"username,omitempty"`
}

type Gate struct {
	store Storage

	mu       sync.Mutex
	state    State
	identity Identity
}

// Open builds a gate from durable storage. When token, role and username are
// all present it starts authenticated without contacting the backend; a
// revoked token surfaces later through ForceLogout.
func Open(ctx context.Context, store Storage) (*Gate, error) {
	g := &Gate{store: store}
	values, err := store.Load(ctx, KeyToken, KeyRole, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	token, role, user := values[KeyToken], values[KeyRole], values[KeyUser]
	if token != "" && role != "" && user != "" {
		g.state = Authenticated
		g.identity = Identity{Role: Role(role), Username: user, Token: token}
	}
	return g, nil
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := Snapshot{State: g.state.String()}
	if g.state == Authenticated {
		s.Role = g.identity.Role
		s.Username = g.identity.Username
	}
	return s
}

// Identity returns the held identity and whether the gate is authenticated.
func (g *Gate) Identity() (Identity, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Authenticated {
		return Identity{}, false
	}
	return g.identity, true
}

// Token is the bearer credential, empty unless authenticated.
func (g *Gate) Token() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Authenticated {
		return ""
	}
	return g.identity.Token
}

func (g *Gate) BeginLogin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch g.state {
	case Authenticating:
		return ErrLoginInFlight
	case Authenticated:
		return ErrAlreadyAuthenticated
	}
	g.state = Authenticating
	return nil
}

func (g *Gate) CompleteLogin(ctx context.Context, id Identity) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Authenticating {
		return ErrNotAuthenticating
	}
	err := g.store.Save(ctx, map[string]string{
		KeyToken: id.Token,
		KeyRole:  string(id.Role),
		KeyUser:  id.Username,
	})
	if err != nil {
		g.state = Anonymous
		return fmt.Errorf("save session: %w", err)
	}
	g.identity = id
	g.state = Authenticated
	return nil
}

func (g *Gate) FailLogin() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Authenticating {
		g.state = Anonymous
	}
}

func (g *Gate) Logout(ctx context.Context) error {
	return g.clear(ctx)
}

// ForceLogout discards the credential after the backend rejected it. A
// login in flight keeps the gate authenticating; only storage is cleared.
func (g *Gate) ForceLogout(ctx context.Context) error {
	g.mu.Lock()
	if g.state == Authenticating {
		defer g.mu.Unlock()
		if err := g.store.Clear(ctx, KeyToken, KeyRole, KeyUser); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return nil
	}
	g.mu.Unlock()
	return g.clear(ctx)
}

func (g *Gate) clear(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Anonymous
	g.identity = Identity{}
	if err := g.store.Clear(ctx, KeyToken, KeyRole, KeyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Allows reports whether the gate is authenticated with one of roles. An
// empty roles list accepts any authenticated identity.
func (g *Gate) Allows(roles ...Role) bool {
	id, ok := g.Identity()
	if !ok {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r == id.Role {
			return true
		}
	}
	return false
}
