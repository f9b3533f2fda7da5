// Package keystore holds at most one API credential per provider for the
// lifetime of the process. Nothing is persisted.
package keystore

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/anatolykoptev/go_vidpost/internal/engine"
)

// Provider names a credential slot.
type Provider string

const (
	Completion Provider = "completion-provider"
	Transcript Provider = "transcript-provider"
)

// Providers lists every slot in display order.
var Providers = []Provider{Completion, Transcript}

const maskPrefix = "********"

// Status is the observable state of one slot. The secret itself is never exposed.
type Status struct {
	IsSet  bool    `json:"isSet"`
	Masked *string `json:"masked"`
}

// Store is an owned credential set. The zero value is not usable; call New.
type Store struct {
	mu      sync.RWMutex
	secrets map[Provider]string
}

// New returns an empty store.
func New() *Store {
	return &Store{secrets: make(map[Provider]string, len(Providers))}
}

func known(p Provider) bool {
	for _, k := range Providers {
		if k == p {
			return true
		}
	}
	return false
}

// Set stores the trimmed secret, replacing any previous value.
// Blank secrets and unknown providers are rejected and leave the store unchanged.
func (s *Store) Set(p Provider, secret string) error {
	if !known(p) {
		return engine.Errorf(engine.KindInvalidCredential, "invalid credential: unknown provider %q", p)
	}
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return engine.Errorf(engine.KindInvalidCredential, "invalid %s credential: value is empty", p)
	}
	s.mu.Lock()
	s.secrets[p] = secret
	s.mu.Unlock()
	slog.Info("credential set", slog.String("provider", string(p)))
	return nil
}

// Get returns the secret for p, if set.
func (s *Store) Get(p Provider) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.secrets[p]
	return v, ok
}

// Has reports whether p has a credential.
func (s *Store) Has(p Provider) bool {
	_, ok := s.Get(p)
	return ok
}

// Status reports every slot with a masked form of set secrets.
func (s *Store) Status() map[Provider]Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Provider]Status, len(Providers))
	for _, p := range Providers {
		v, ok := s.secrets[p]
		if !ok {
			out[p] = Status{}
			continue
		}
		m := Mask(v)
		out[p] = Status{IsSet: true, Masked: &m}
	}
	return out
}

// Mask returns the fixed prefix followed by the last four characters of secret.
func Mask(secret string) string {
	return maskPrefix + engine.LastRunes(secret, 4)
}

// Seed loads startup values. Blank values are skipped.
func (s *Store) Seed(values map[Provider]string) {
	for _, p := range Providers {
		v := values[p]
		if strings.TrimSpace(v) == "" {
			continue
		}
		if err := s.Set(p, v); err == nil {
			slog.Info("credential initialized from environment", slog.String("provider", string(p)))
		}
	}
}
