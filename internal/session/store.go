// Package session persists the currently authenticated user across process
// restarts. Two keys live in a small key-value table: the login flag and
// the serialized user record.
package session

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
)

const (
	keyLoginFlag   = "is_logged_in"
	keyCurrentUser = "current_user"
)

type record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (record) TableName() string { return "session_state" }

// Store holds the local session. Construct one per process and inject it;
// there is no package-level instance, so tests can run isolated stores in
// parallel.
//
// All mutation replaces the whole record under the lock, so a reader never
// observes a half-applied update. The login flag and the user blob always
// move together.
type Store struct {
	db  *gorm.DB
	log *zap.Logger

	mu       sync.RWMutex
	loggedIn bool
	user     *entities.User

	subMu sync.Mutex
	subs  []chan struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Open creates a store backed by a SQLite file at path.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewWithDB(db, opts...)
}

// NewWithDB creates a store over an existing gorm handle. Used by tests to
// run against an in-memory database.
func NewWithDB(db *gorm.DB, opts ...Option) (*Store, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}
	s := &Store{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s, nil
}

// load restores persisted state. A corrupt user blob is treated as absent,
// not as a fatal error.
func (s *Store) load() {
	var flag record
	if err := s.db.Where("key = ?", keyLoginFlag).First(&flag).Error; err == nil {
		s.loggedIn = flag.Value == "true"
	}

	var blob record
	if err := s.db.Where("key = ?", keyCurrentUser).First(&blob).Error; err != nil {
		return
	}
	var u entities.User
	if err := json.Unmarshal([]byte(blob.Value), &u); err != nil {
		s.log.Warn("discarding undecodable session user blob", zap.Error(err))
		return
	}
	s.user = &u
}

// IsLoggedIn reports whether a user was persisted by a prior login and not
// since logged out.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// CurrentUser returns a copy of the persisted user, or nil when absent.
func (s *Store) CurrentUser() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Login persists the user and raises the login flag.
func (s *Store) Login(u *entities.User) error {
	return s.persist(u, true)
}

// UpdateUser replaces the persisted user without touching the login flag.
func (s *Store) UpdateUser(u *entities.User) error {
	s.mu.RLock()
	flag := s.loggedIn
	s.mu.RUnlock()
	return s.persist(u, flag)
}

func (s *Store) persist(u *entities.User, loggedIn bool) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx, keyCurrentUser, string(raw)); err != nil {
			return err
		}
		return upsert(tx, keyLoginFlag, boolValue(loggedIn))
	})
	if err != nil {
		return err
	}

	copied := *u
	s.user = &copied
	s.loggedIn = loggedIn
	return nil
}

// Logout clears the persisted user, drops the flag, and notifies observers.
func (s *Store) Logout() error {
	s.mu.Lock()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("key = ?", keyCurrentUser).Delete(&record{}).Error; err != nil {
			return err
		}
		return upsert(tx, keyLoginFlag, boolValue(false))
	})
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.user = nil
	s.loggedIn = false
	s.mu.Unlock()

	s.notifyLogout()
	return nil
}

// OnLogout registers an observer notified after every logout. The channel
// is buffered; a slow observer misses coalesced notifications rather than
// blocking the store.
func (s *Store) OnLogout() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()
	return ch
}

func (s *Store) notifyLogout() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func upsert(tx *gorm.DB, key, value string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record{Key: key, Value: value}).Error
}

func boolValue(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
