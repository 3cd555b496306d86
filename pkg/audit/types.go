package audit

import (
	"fmt"
	"time"
)

// Result represents the outcome of an audited action.
type Result string

const (
	ResultSuccess Result = "success"
	ResultError   Result = "error"
)

// Entry is a single append-only audit record. Entries are write-once:
// storages only insert, never mutate or delete.
type Entry struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id,omitempty"`
	Action     string         `json:"action"`
	Resource   string         `json:"resource,omitempty"`
	ResourceID string         `json:"resource_id,omitempty"`
	Result     Result         `json:"result"`
	Error      string         `json:"error,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Validate checks if the entry has all required fields.
func (e *Entry) Validate() error {
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrEntryValidation)
	}
	return nil
}

// EntryOption applies configuration to an Entry during creation.
type EntryOption func(*Entry)

// WithUserID sets the acting user on the entry.
func WithUserID(userID string) EntryOption {
	return func(e *Entry) {
		e.UserID = userID
	}
}

// WithResource sets the resource type and ID the action touched.
func WithResource(resource, resourceID string) EntryOption {
	return func(e *Entry) {
		e.Resource = resource
		e.ResourceID = resourceID
	}
}

// WithMetadata attaches a key/value pair to the entry's metadata.
func WithMetadata(key string, value any) EntryOption {
	return func(e *Entry) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]any)
		}
		e.Metadata[key] = value
	}
}
