package session

import (
	"errors"
	"sync"
	"time"

	"SecretVault/internal/crypto"
)

// MinPassphraseLen — минимальная длина кодовой фразы при разблокировке.
const MinPassphraseLen = 8

var (
	// ErrLocked возвращается, когда сессия заблокирована (явно или по таймауту).
	ErrLocked = errors.New("vault is locked")
	// ErrPassphraseTooShort возвращается при попытке разблокировки слишком
	// короткой фразой.
	ErrPassphraseTooShort = errors.New("passphrase must be at least 8 characters")
)

// Session держит производный ключ шифрования в памяти процесса и сбрасывает
// его по явному Lock либо по окну бездействия. Ни фраза, ни ключ никогда
// не попадают в хранилище; объект передаётся явно в каждую операцию,
// работающую с содержимым секретов.
type Session struct {
	mu    sync.Mutex
	key   []byte
	ttl   time.Duration
	timer *time.Timer
}

// New создаёт заблокированную сессию с заданным окном бездействия.
// ttl <= 0 отключает авто-блокировку.
func New(ttl time.Duration) *Session {
	return &Session{ttl: ttl}
}

// Unlock проверяет длину кодовой фразы, выводит из неё ключ и запускает
// таймер бездействия.
func (s *Session) Unlock(passphrase string, salt []byte) error {
	if len(passphrase) < MinPassphraseLen {
		return ErrPassphraseTooShort
	}
	key := crypto.DeriveKey(passphrase, salt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
	s.resetTimerLocked()
	return nil
}

// Key возвращает ключ сессии и продлевает окно бездействия.
// После Lock или истечения окна возвращает ErrLocked.
func (s *Session) Key() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key == nil {
		return nil, ErrLocked
	}
	s.resetTimerLocked()
	return s.key, nil
}

// Touch продлевает окно бездействия без обращения к ключу.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key != nil {
		s.resetTimerLocked()
	}
}

// Lock немедленно сбрасывает ключ.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockLocked()
}

// Unlocked сообщает, доступен ли ключ.
func (s *Session) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key != nil
}

func (s *Session) lockLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	// затираем ключ перед сбросом
	for i := range s.key {
		s.key[i] = 0
	}
	s.key = nil
}

func (s *Session) resetTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.ttl <= 0 {
		return
	}
	s.timer = time.AfterFunc(s.ttl, s.Lock)
}
