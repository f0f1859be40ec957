package session

import (
	"database/sql"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/mrlokans/library/internal/config"
)

const sessionKeyFlash = "flash"

const createSessionsTable = `CREATE TABLE IF NOT EXISTS sessions (
	token TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	expiry REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`

// FlashKind selects how a flash message is styled.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashInfo    FlashKind = "info"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot message displayed on the next rendered page.
type Flash struct {
	Kind    FlashKind
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Manager wraps scs.SessionManager with flash helpers.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates the sessions table if needed and returns a configured
// manager. sqlDB is the handle underneath the catalog's gorm connection.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	if _, err := sqlDB.Exec(createSessionsTable); err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)

	lifetime := cfg.Lifetime
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	sm.Lifetime = lifetime

	sm.Cookie.Name = "library_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// SetFlash stores a message for the next page render, replacing any pending one.
func (m *Manager) SetFlash(r *http.Request, kind FlashKind, message string) {
	m.Put(r.Context(), sessionKeyFlash, Flash{Kind: kind, Message: message})
}

// PopFlash returns the pending flash message and clears it.
func (m *Manager) PopFlash(r *http.Request) (Flash, bool) {
	flash, ok := m.Pop(r.Context(), sessionKeyFlash).(Flash)
	return flash, ok
}
