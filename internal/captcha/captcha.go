package captcha

import (
	"crypto/rand"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Default values, matching the original behavior of the login flow.
const (
	DefaultTTL        = 10 * time.Minute
	DefaultTextLength = 6
)

// charset excludes nothing on purpose: the original generated plain
// base36 text, so 0/O and 1/I confusion is a known UX wart.
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Reasons returned on failed verification.
const (
	ReasonExpired   = "Captcha inválido o expirado"
	ReasonIncorrect = "Captcha incorrecto"
)

type challenge struct {
	text      string
	expiresAt time.Time
}

// Store holds pending captcha challenges in memory. It is constructed once
// at startup and shared by the issue and login handlers; entries are not
// persisted, so a restart invalidates every outstanding challenge.
type Store struct {
	mu      sync.Mutex
	entries map[string]challenge

	ttl     time.Duration
	textLen int
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTTL overrides how long an issued challenge stays valid.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithTextLength overrides the challenge text length.
func WithTextLength(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.textLen = n
		}
	}
}

// WithClock injects a clock, used by tests to control expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty captcha store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]challenge),
		ttl:     DefaultTTL,
		textLen: DefaultTextLength,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue generates a new challenge and returns its opaque id and the text
// the user must type back. It always succeeds.
func (s *Store) Issue() (id, text string) {
	text = randomText(s.textLen)
	id = strings.ReplaceAll(uuid.NewString(), "-", "")

	s.mu.Lock()
	s.entries[id] = challenge{
		text:      text,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()

	return id, text
}

// Verify checks a submitted answer against the stored challenge. Expired
// entries are swept first, then the entry is consumed: a challenge can be
// verified at most once, whether the answer matched or not. Absence and
// mismatch are ordinary negative results, not errors.
func (s *Store) Verify(id, submitted string) (bool, string) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ch := range s.entries {
		if ch.expiresAt.Before(now) {
			delete(s.entries, k)
		}
	}

	ch, ok := s.entries[id]
	if !ok {
		return false, ReasonExpired
	}
	delete(s.entries, id)

	if ch.text != strings.ToUpper(submitted) {
		return false, ReasonIncorrect
	}
	return true, ""
}

// Len reports how many challenges are currently stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func randomText(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(charset)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			b[i] = charset[0]
			continue
		}
		b[i] = charset[idx.Int64()]
	}
	return string(b)
}
