// Package session keeps per-browser state between requests of the web shell.
//
// The only state the catalog needs is the flash message shown after a form
// submission: the POST handler stores it, redirects, and the next GET pops it.
// Sessions are persisted in the "sessions" table of the catalog database
// through scs and its sqlite3store.
//
// # Middleware order
//
// SessionLoadSave must run before any handler that calls SetFlash or PopFlash:
//
//	router.Use(sm.SessionLoadSave())
package session
