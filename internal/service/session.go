package service

import (
	"sync"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
)

// Session owns the process-wide locale selector. Components that need the
// active language (filter labels, order formatting) receive it explicitly
// rather than reading ambient global state.
type Session struct {
	mu   sync.Mutex
	lang domain.Language
}

func NewSession(lang domain.Language) *Session {
	if !lang.Valid() {
		lang = domain.DefaultLanguage
	}
	return &Session{lang: lang}
}

func (s *Session) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLanguage switches the active dictionary; unknown values are rejected
func (s *Session) SetLanguage(lang domain.Language) error {
	if !lang.Valid() {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
	return nil
}
