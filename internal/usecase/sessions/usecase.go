// Package sessions resolves, reads and persists cookie-keyed sessions.
package sessions

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rf-toolkit/linkbudget/internal/entity"
	"github.com/rf-toolkit/linkbudget/pkg/apperrors"
	"github.com/rf-toolkit/linkbudget/pkg/logger"
)

// Store persists raw session records keyed by session identifier.
type Store interface {
	Load(id string) ([]byte, bool, error)
	Save(id string, data []byte) error
	Delete(id string) error
}

// Feature -.
type Feature interface {
	Resolve(token string) (*entity.Session, error)
	Get(s *entity.Session, key, defaultValue string) (string, error)
	Set(s *entity.Session, key, value string) error
	IsExpired(s *entity.Session) bool
}

// UseCase -.
type UseCase struct {
	store  Store
	expiry time.Duration
	log    logger.Interface
}

// New -.
func New(store Store, expiry time.Duration, log logger.Interface) *UseCase {
	return &UseCase{
		store:  store,
		expiry: expiry,
		log:    log,
	}
}

var (
	ErrSessionsUseCase = apperrors.CreateAppError("SessionsUseCase")

	// nowFunc is a function pointer for better testability.
	nowFunc = time.Now
)

// StorageError flags a failed session load or save.
type StorageError struct {
	Console apperrors.AppError
}

func (e StorageError) Error() string {
	return e.Console.Error()
}

// Wrap -.
func (e StorageError) Wrap(call, function string, err error) StorageError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}

var ErrStorage = StorageError{Console: ErrSessionsUseCase}

// sessionRecord is the on-disk session format: one JSON object per session.
type sessionRecord struct {
	Data         map[string]string `json:"data"`
	LastAccessed int64             `json:"last_accessed"`
}

// Resolve returns the session for the given cookie token. An empty token
// yields a fresh session with a newly generated identifier; a token with no
// persisted state yields a fresh session that reuses the identifier.
func (uc *UseCase) Resolve(token string) (*entity.Session, error) {
	if token == "" {
		return &entity.Session{
			ID:           uuid.NewString(),
			Data:         map[string]string{},
			LastAccessed: nowFunc(),
		}, nil
	}

	raw, found, err := uc.store.Load(token)
	if err != nil {
		return nil, ErrStorage.Wrap("Resolve", "store.Load", err)
	}

	if !found {
		return &entity.Session{
			ID:           token,
			Data:         map[string]string{},
			LastAccessed: nowFunc(),
		}, nil
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, ErrStorage.Wrap("Resolve", "json.Unmarshal", err)
	}

	s := &entity.Session{
		ID:           token,
		Data:         rec.Data,
		LastAccessed: time.Unix(rec.LastAccessed, 0),
	}
	if s.Data == nil {
		s.Data = map[string]string{}
	}

	// An expired session drops its data but keeps the identifier and the
	// stale timestamp: IsExpired stays true until the next write, which is
	// what re-triggers the Set-Cookie on the response.
	if uc.IsExpired(s) {
		s.Data = map[string]string{}
	}

	return s, nil
}

// Get returns the stored value or defaultValue when absent. A hit touches the
// last-accessed time and persists the session; a miss does neither.
func (uc *UseCase) Get(s *entity.Session, key, defaultValue string) (string, error) {
	v, ok := s.Data[key]
	if !ok {
		return defaultValue, nil
	}

	s.LastAccessed = nowFunc()

	if err := uc.persist(s); err != nil {
		return "", err
	}

	return v, nil
}

// Set stores the value, touches the last-accessed time and persists
// immediately (synchronous write-through).
func (uc *UseCase) Set(s *entity.Session, key, value string) error {
	s.Data[key] = value
	s.LastAccessed = nowFunc()

	return uc.persist(s)
}

// IsExpired -.
func (uc *UseCase) IsExpired(s *entity.Session) bool {
	return nowFunc().Sub(s.LastAccessed) > uc.expiry
}

func (uc *UseCase) persist(s *entity.Session) error {
	rec := sessionRecord{
		Data:         s.Data,
		LastAccessed: s.LastAccessed.Unix(),
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return ErrStorage.Wrap("persist", "json.Marshal", err)
	}

	if err := uc.store.Save(s.ID, raw); err != nil {
		return ErrStorage.Wrap("persist", "store.Save", err)
	}

	return nil
}
