// Package memory хранит данные в памяти процесса в раскладке браузерного localStorage:
// у каждого пользователя свое пространство ключей ("user", "userProfile",
// "<action>_cooldown"), значения хранятся строками.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
)

const loginsNamespace = "logins"

// Store реализует domain.UserRepository, domain.ProfileRepository и domain.CooldownRepository
type Store struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]string
	lastUserID int64
	now        func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		namespaces: make(map[string]map[string]string),
		now:        time.Now,
	}
}

// Ping всегда успешен
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Raw возвращает сырое значение ключа
func (s *Store) Raw(namespace, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.namespaces[namespace][key]
	return value, ok
}

func (s *Store) get(namespace, key string) (string, bool) {
	value, ok := s.namespaces[namespace][key]
	return value, ok
}

func (s *Store) set(namespace, key, value string) {
	ns, ok := s.namespaces[namespace]
	if !ok {
		ns = make(map[string]string)
		s.namespaces[namespace] = ns
	}
	ns[key] = value
}

func (s *Store) remove(namespace, key string) {
	ns, ok := s.namespaces[namespace]
	if !ok {
		return
	}
	delete(ns, key)
	if len(ns) == 0 {
		delete(s.namespaces, namespace)
	}
}

// UserNamespace возвращает пространство ключей пользователя
func UserNamespace(userID int64) string {
	return "user:" + strconv.FormatInt(userID, 10)
}

// userRecord формат ключа "user"
type userRecord struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUser создает нового пользователя
func (s *Store) CreateUser(ctx context.Context, login, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.get(loginsNamespace, login); exists {
		return nil, domain.ErrUserExists
	}

	s.lastUserID++
	rec := userRecord{
		ID:           s.lastUserID,
		Email:        login,
		PasswordHash: passwordHash,
		CreatedAt:    s.now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("memory: failed to encode user %q: %w", login, err)
	}

	s.set(UserNamespace(rec.ID), domain.SessionStorageKey, string(data))
	s.set(loginsNamespace, login, strconv.FormatInt(rec.ID, 10))

	return rec.toDomain(), nil
}

// GetUserByLogin получает пользователя по логину
func (s *Store) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rawID, ok := s.get(loginsNamespace, login)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("memory: corrupted login index for %q: %w", login, err)
	}
	return s.userByID(id)
}

// GetUserByID получает пользователя по ID
func (s *Store) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userByID(id)
}

func (s *Store) userByID(id int64) (*domain.User, error) {
	raw, ok := s.get(UserNamespace(id), domain.SessionStorageKey)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	var rec userRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("memory: failed to decode user %d: %w", id, err)
	}
	return rec.toDomain(), nil
}

func (r userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Login:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// GetProfile читает профиль; отсутствующий профиль создается с нулевыми значениями
func (s *Store) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile := &domain.Profile{}
	raw, ok := s.get(UserNamespace(userID), domain.ProfileStorageKey)
	if ok {
		if err := json.Unmarshal([]byte(raw), profile); err != nil {
			return nil, fmt.Errorf("memory: failed to decode profile of user %d: %w", userID, err)
		}
	}
	profile.UserID = userID

	return profile, nil
}

// SaveProfile перезаписывает профиль, если ревизия совпадает с сохраненной.
// При успехе profile.Revision увеличивается.
func (s *Store) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	namespace := UserNamespace(profile.UserID)

	var stored int64
	if raw, ok := s.get(namespace, domain.ProfileStorageKey); ok {
		var current domain.Profile
		if err := json.Unmarshal([]byte(raw), &current); err != nil {
			return fmt.Errorf("memory: failed to decode profile of user %d: %w", profile.UserID, err)
		}
		stored = current.Revision
	}

	if stored != profile.Revision {
		return domain.ErrRevisionConflict
	}

	next := *profile
	next.Revision++
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("memory: failed to encode profile of user %d: %w", profile.UserID, err)
	}

	s.set(namespace, domain.ProfileStorageKey, string(data))
	profile.Revision = next.Revision

	return nil
}

// GetCooldown возвращает срок кулдауна, если он сохранен
func (s *Store) GetCooldown(ctx context.Context, subject, actionID string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.get(subject, domain.CooldownKey(actionID))
	if !ok {
		return time.Time{}, false, nil
	}
	expiresAt, err := parseEpochMillis(raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("memory: invalid cooldown value for %s/%s: %w", subject, actionID, err)
	}
	return expiresAt, true, nil
}

// SetCooldown сохраняет срок кулдауна как epoch-миллисекунды
func (s *Store) SetCooldown(ctx context.Context, subject, actionID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(subject, domain.CooldownKey(actionID), strconv.FormatInt(expiresAt.UnixMilli(), 10))
	return nil
}

// DeleteCooldown удаляет срок кулдауна
func (s *Store) DeleteCooldown(ctx context.Context, subject, actionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(subject, domain.CooldownKey(actionID))
	return nil
}

// ListExpiredCooldowns возвращает истекшие кулдауны
func (s *Store) ListExpiredCooldowns(ctx context.Context, now time.Time, limit int) ([]*domain.Cooldown, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var expired []*domain.Cooldown
	for namespace, keys := range s.namespaces {
		for key, raw := range keys {
			actionID, ok := strings.CutSuffix(key, domain.CooldownKey(""))
			if !ok {
				continue
			}
			expiresAt, err := parseEpochMillis(raw)
			if err != nil || expiresAt.After(now) {
				continue
			}
			expired = append(expired, &domain.Cooldown{Subject: namespace, ActionID: actionID, ExpiresAt: expiresAt})
			if limit > 0 && len(expired) >= limit {
				return expired, nil
			}
		}
	}
	return expired, nil
}

// DeleteExpiredCooldown удаляет кулдаун, только если он уже истек
func (s *Store) DeleteExpiredCooldown(ctx context.Context, subject, actionID string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.get(subject, domain.CooldownKey(actionID))
	if !ok {
		return false, nil
	}
	expiresAt, err := parseEpochMillis(raw)
	if err == nil && expiresAt.After(now) {
		return false, nil
	}
	s.remove(subject, domain.CooldownKey(actionID))
	return true, nil
}

func parseEpochMillis(raw string) (time.Time, error) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}
