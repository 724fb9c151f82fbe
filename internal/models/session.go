// internal/models/session.go
package models

// SessionContext carries the session flags the views need. The discovery
// engine never reads it.
type SessionContext struct {
	Authenticated bool `json:"authenticated"`
	Verified      bool `json:"verified"`
}
