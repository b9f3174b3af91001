// Package local is a self-hosted identity provider: Argon2id password
// hashes in a Directory, HS256 session tokens tracked in a TokenStore.
package local

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"rosegold_back_end/internal/identity"
	"rosegold_back_end/internal/models"
)

const (
	DefaultTokenTTL   = 24 * time.Hour
	MinPasswordLength = 6

	fallbackSecret = "super_secret"
)

type Options struct {
	Secret   string
	TokenTTL time.Duration
}

// Claims are carried by the session token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type Provider struct {
	dir    Directory
	tokens TokenStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	current *models.Session
	token   string
	claims  *Claims
	subs    map[int]*subscriber
	nextSub int
}

var _ identity.Provider = (*Provider)(nil)

func New(dir Directory, tokens TokenStore, opts Options) *Provider {
	secret := opts.Secret
	if secret == "" {
		log.Println("⚠️ JWT_SECRET not set, using the built-in development secret")
		secret = fallbackSecret
	}
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Provider{
		dir:    dir,
		tokens: tokens,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		subs:   make(map[int]*subscriber),
	}
}

func (p *Provider) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return nil, identity.NewError(identity.KindInvalidEmail, nil)
	}
	if len(password) < MinPasswordLength {
		return nil, identity.NewError(identity.KindWeakPassword, nil)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, identity.NewError(identity.KindInternal, err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
	}
	if err := p.dir.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, identity.NewError(identity.KindEmailInUse, err)
		}
		return nil, identity.NewError(identity.KindNetwork, err)
	}

	log.Printf("✅ Account created: %s", user.Email)
	return p.signIn(ctx, user)
}

func (p *Provider) Login(ctx context.Context, email, password string) (*models.Session, error) {
	user, err := p.dir.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, identity.NewError(identity.KindInvalidCredential, nil)
		}
		return nil, identity.NewError(identity.KindNetwork, err)
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		log.Printf("❌ Stored hash for %s is unreadable: %v", user.Email, err)
		return nil, identity.NewError(identity.KindInvalidCredential, nil)
	}
	if !ok {
		return nil, identity.NewError(identity.KindInvalidCredential, nil)
	}

	return p.signIn(ctx, user)
}

func (p *Provider) Logout(ctx context.Context) error {
	p.mu.Lock()
	claims := p.claims
	p.mu.Unlock()

	if claims != nil {
		if err := p.tokens.Revoke(ctx, claims.UserID, claims.ID, p.ttl); err != nil {
			return identity.NewError(identity.KindNetwork, err)
		}
	}

	p.publish(nil, "", nil)
	return nil
}

// Subscribe registers fn and delivers the current session to it from a
// separate goroutine, followed by every later change in order.
func (p *Provider) Subscribe(fn func(*models.Session)) func() {
	sub := newSubscriber(fn)

	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = sub
	sub.push(cloneSession(p.current))
	p.mu.Unlock()

	go sub.run()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
			sub.stop()
		})
	}
}

// Token returns the signed token of the current session, or "".
func (p *Provider) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// Verify parses a session token and checks it has not been revoked.
func (p *Provider) Verify(ctx context.Context, token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if p.tokens.IsRevoked(ctx, claims.ID) {
		return nil, errors.New("session token revoked")
	}
	return claims, nil
}

func (p *Provider) signIn(ctx context.Context, user models.User) (*models.Session, error) {
	now := p.now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, identity.NewError(identity.KindInternal, err)
	}
	if err := p.tokens.Store(ctx, user.ID, claims.ID, p.ttl); err != nil {
		return nil, identity.NewError(identity.KindNetwork, err)
	}

	session := user.Session()
	p.publish(session, token, claims)
	return cloneSession(session), nil
}

// publish swaps the current session and queues a notification for every
// subscriber when it actually changed.
func (p *Provider) publish(session *models.Session, token string, claims *Claims) {
	p.mu.Lock()
	defer p.mu.Unlock()

	changed := !sameSession(p.current, session)
	p.current = session
	p.token = token
	p.claims = claims

	if !changed {
		return
	}
	for _, sub := range p.subs {
		sub.push(cloneSession(session))
	}
}

// ValidEmail requires a non-empty local part, an "@" and a dot somewhere in
// the domain.
func ValidEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1 && !strings.ContainsAny(email, " \t")
}

func sameSession(a, b *models.Session) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && equalPtr(a.Name, b.Name) && equalPtr(a.Email, b.Email)
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cloneSession(s *models.Session) *models.Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Name != nil {
		name := *s.Name
		out.Name = &name
	}
	if s.Email != nil {
		email := *s.Email
		out.Email = &email
	}
	return &out
}

// subscriber delivers queued sessions to fn one at a time.
type subscriber struct {
	fn func(*models.Session)

	mu    sync.Mutex
	queue []*models.Session
	wake  chan struct{}
	done  chan struct{}
}

func newSubscriber(fn func(*models.Session)) *subscriber {
	return &subscriber{
		fn:   fn,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (s *subscriber) push(session *models.Session) {
	s.mu.Lock()
	s.queue = append(s.queue, session)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) stop() {
	close(s.done)
}

func (s *subscriber) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}
		for {
			s.mu.Lock()
			if len(s.queue) == 0 {
				s.mu.Unlock()
				break
			}
			next := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()

			select {
			case <-s.done:
				return
			default:
			}
			s.fn(next)
		}
	}
}
