package jfmt

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FormatStore persists user-created journal formats between sessions.
type FormatStore interface {
	Load() ([]JournalFormat, error)
	Save(formats []JournalFormat) error
}

// Registry holds the built-in journal catalog plus user-created formats.
// Built-ins come first, user formats follow in registration order.
// A Registry is not safe for concurrent use.
type Registry struct {
	formats      []JournalFormat
	builtinCount int
	store        FormatStore
	newID        func() string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithStore attaches a persistence backend. Stored user formats are loaded
// at construction; a failed or corrupt load leaves the built-in catalog
// intact.
func WithStore(store FormatStore) RegistryOption {
	return func(r *Registry) {
		r.store = store
	}
}

// WithIDSource overrides the ID generator for user formats. The generator
// must eventually yield an ID no registered format already uses.
// Panics if generate is nil (programmer error).
func WithIDSource(generate func() string) RegistryOption {
	if generate == nil {
		panic("jfmt: WithIDSource generator must not be nil")
	}
	return func(r *Registry) {
		r.newID = generate
	}
}

// NewRegistry creates a registry seeded with the built-in catalog.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		formats: builtinFormats(),
		newID:   uuid.NewString,
	}
	r.builtinCount = len(r.formats)

	for _, opt := range opts {
		opt(r)
	}

	if r.store != nil {
		if stored, err := r.store.Load(); err == nil {
			r.formats = append(r.formats, stored...)
		}
	}

	return r
}

// Formats returns every registered format, built-ins first.
func (r *Registry) Formats() []JournalFormat {
	formats := make([]JournalFormat, len(r.formats))
	copy(formats, r.formats)
	return formats
}

// UserFormats returns the user-created formats in registration order.
func (r *Registry) UserFormats() []JournalFormat {
	user := make([]JournalFormat, len(r.formats)-r.builtinCount)
	copy(user, r.formats[r.builtinCount:])
	return user
}

// Get returns the format with the given ID.
func (r *Registry) Get(id string) (JournalFormat, error) {
	for _, f := range r.formats {
		if f.ID == id {
			return f, nil
		}
	}
	return JournalFormat{}, fmt.Errorf("%w: %q", ErrUnknownFormat, id)
}

// Lookup resolves a format by exact ID first, then by case-insensitive name.
func (r *Registry) Lookup(idOrName string) (JournalFormat, error) {
	for _, f := range r.formats {
		if f.ID == idOrName {
			return f, nil
		}
	}
	for _, f := range r.formats {
		if strings.EqualFold(f.Name, idOrName) {
			return f, nil
		}
	}
	return JournalFormat{}, fmt.Errorf("%w: %q", ErrUnknownFormat, idOrName)
}

// IsBuiltin reports whether id belongs to the built-in catalog.
func (r *Registry) IsBuiltin(id string) bool {
	for _, f := range r.formats[:r.builtinCount] {
		if f.ID == id {
			return true
		}
	}
	return false
}

// Register adds a user format. The candidate's ID is replaced with a fresh
// one that collides with no registered format. The new format is usable for
// the rest of the session even when persistence fails; the failure comes
// back wrapped in ErrStorePersist alongside the registered format.
func (r *Registry) Register(candidate JournalFormat) (JournalFormat, error) {
	if strings.TrimSpace(candidate.Name) == "" {
		return JournalFormat{}, ErrMissingFormatName
	}

	candidate.ID = r.uniqueID()
	r.formats = append(r.formats, candidate)

	if err := r.persist(); err != nil {
		return candidate, err
	}
	return candidate, nil
}

// Remove deletes a user format by ID and re-persists the remainder.
// Built-in formats cannot be removed.
func (r *Registry) Remove(id string) error {
	for i, f := range r.formats {
		if f.ID != id {
			continue
		}
		if i < r.builtinCount {
			return fmt.Errorf("%w: %q", ErrBuiltinFormat, id)
		}
		r.formats = append(r.formats[:i], r.formats[i+1:]...)
		return r.persist()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, id)
}

// uniqueID generates an ID no registered format uses yet.
func (r *Registry) uniqueID() string {
	for {
		id := r.newID()
		if _, err := r.Get(id); err != nil {
			return id
		}
	}
}

// persist saves the user formats through the store, if one is attached.
func (r *Registry) persist() error {
	if r.store == nil {
		return nil
	}
	if err := r.store.Save(r.UserFormats()); err != nil {
		return fmt.Errorf("%w: %v", ErrStorePersist, err)
	}
	return nil
}
