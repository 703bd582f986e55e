package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/archdash/backend/internal/shared/id"
	"github.com/archdash/backend/internal/shared/types"
)

// Store errors surfaced to handlers.
var (
	ErrNotFound      = errors.New("entry not found")
	ErrDuplicateUser = errors.New("username already exists")
)

// Persister mirrors catalog mutations into durable storage. The in-memory
// store stays authoritative; persistence failures do not fail the mutation.
type Persister interface {
	SaveEntry(entry types.Entry) error
	DeleteEntry(entryID string) error
	SaveUser(user types.User) error
	DeleteUser(username string) error
}

// Store holds the entry and user collections.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]*types.Entry // Protected by mu
	users     map[string]*types.User  // Protected by mu, keyed by username
	persister Persister
	logger    *zap.Logger
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]*types.Entry),
		users:   make(map[string]*types.User),
		logger:  zap.NewNop(),
	}
}

// WithPersister attaches write-through persistence to the store.
func (s *Store) WithPersister(p Persister) *Store {
	s.persister = p
	return s
}

// WithLogger attaches a logger used for persistence warnings.
func (s *Store) WithLogger(logger *zap.Logger) *Store {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Load seeds the store from persisted state. Intended for startup, before
// the HTTP surface is serving; it replaces the current collections.
func (s *Store) Load(entries []types.Entry, users []types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*types.Entry, len(entries))
	for i := range entries {
		e := entries[i]
		s.entries[e.ID] = &e
	}
	s.users = make(map[string]*types.User, len(users))
	for i := range users {
		u := users[i]
		s.users[u.Username] = &u
	}
}

// AddEntry creates a new entry from the input, assigning a fresh ID and
// the current timestamp. Name and Category must be non-empty; the category
// id is not checked against the fixed set — an unknown id simply matches
// no category-scoped view.
func (s *Store) AddEntry(input types.EntryInput) (*types.Entry, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("entry name is required")
	}
	if input.Category == "" {
		return nil, fmt.Errorf("entry category is required")
	}

	entry := &types.Entry{
		ID:             id.NewEntryID().String(),
		Name:           input.Name,
		Description:    input.Description,
		Category:       input.Category,
		PackageName:    input.PackageName,
		InstallCommand: input.InstallCommand,
		ConfigLocation: input.ConfigLocation,
		Notes:          input.Notes,
		IsInstalled:    input.IsInstalled,
		AddedAt:        time.Now(),
	}

	s.mu.Lock()
	s.entries[entry.ID] = entry
	s.mu.Unlock()

	s.persistEntry(*entry)

	entryCopy := *entry
	return &entryCopy, nil
}

// UpdateEntry merges the non-nil patch fields into the entry matching
// entryID. ID and AddedAt are immutable. Returns ErrNotFound if absent.
func (s *Store) UpdateEntry(entryID string, patch types.EntryPatch) (*types.Entry, error) {
	s.mu.Lock()
	entry, ok := s.entries[entryID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	if patch.Name != nil {
		entry.Name = *patch.Name
	}
	if patch.Description != nil {
		entry.Description = *patch.Description
	}
	if patch.Category != nil {
		entry.Category = *patch.Category
	}
	if patch.PackageName != nil {
		entry.PackageName = *patch.PackageName
	}
	if patch.InstallCommand != nil {
		entry.InstallCommand = *patch.InstallCommand
	}
	if patch.ConfigLocation != nil {
		entry.ConfigLocation = *patch.ConfigLocation
	}
	if patch.Notes != nil {
		entry.Notes = *patch.Notes
	}
	if patch.IsInstalled != nil {
		entry.IsInstalled = *patch.IsInstalled
	}

	entryCopy := *entry
	s.mu.Unlock()

	s.persistEntry(entryCopy)

	return &entryCopy, nil
}

// RemoveEntry deletes the entry matching entryID. Returns false if absent;
// the rest of the collection is untouched either way.
func (s *Store) RemoveEntry(entryID string) bool {
	s.mu.Lock()
	_, ok := s.entries[entryID]
	if ok {
		delete(s.entries, entryID)
	}
	s.mu.Unlock()

	if ok && s.persister != nil {
		if err := s.persister.DeleteEntry(entryID); err != nil {
			s.logger.Warn("Failed to persist entry deletion", zap.String("entry_id", entryID), zap.Error(err))
		}
	}
	return ok
}

// Entry retrieves a single entry by ID.
func (s *Store) Entry(entryID string) (*types.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[entryID]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// Entries returns a fresh, filtered, sorted snapshot of the entry
// collection. Filters apply in order: category equality, case-insensitive
// substring match over name and description, then installed status. The
// sort is stable, so identical arguments with no intervening mutation
// always yield identical sequences.
func (s *Store) Entries(filter types.EntryFilter, sortBy types.EntrySort) []types.Entry {
	s.mu.RLock()
	result := make([]types.Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		result = append(result, *entry)
	}
	s.mu.RUnlock()

	if filter.Category != "" {
		result = filterEntries(result, func(e types.Entry) bool {
			return e.Category == filter.Category
		})
	}
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		result = filterEntries(result, func(e types.Entry) bool {
			return strings.Contains(strings.ToLower(e.Name), term) ||
				strings.Contains(strings.ToLower(e.Description), term)
		})
	}
	switch filter.Status {
	case types.StatusInstalled:
		result = filterEntries(result, func(e types.Entry) bool { return e.IsInstalled })
	case types.StatusNotInstalled:
		result = filterEntries(result, func(e types.Entry) bool { return !e.IsInstalled })
	}

	sortEntries(result, sortBy)
	return result
}

// filterEntries keeps the entries matching keep, in place.
func filterEntries(entries []types.Entry, keep func(types.Entry) bool) []types.Entry {
	out := entries[:0]
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// sortEntries orders entries by the requested field and direction. The map
// iteration above is unordered, so entries are first anchored on ID (which
// is creation-ordered) to make the stable sort deterministic.
func sortEntries(entries []types.Entry, sortBy types.EntrySort) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	field := sortBy.Field
	if field == "" {
		field = types.SortByName
	}
	desc := sortBy.Direction == types.SortDesc

	sort.SliceStable(entries, func(i, j int) bool {
		var a, b string
		switch field {
		case types.SortByCategory:
			a, b = string(entries[i].Category), string(entries[j].Category)
		default:
			a, b = entries[i].Name, entries[j].Name
		}
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la == lb {
			// Case-insensitive ties ("Vim" vs "vim") break on the raw
			// strings, so asc and desc stay exact reverses of each other.
			la, lb = a, b
		}
		if desc {
			return lb < la
		}
		return la < lb
	})
}

// AddUser creates a new tracked user. Duplicate usernames are rejected.
func (s *Store) AddUser(user types.User) (*types.User, error) {
	if strings.TrimSpace(user.Username) == "" {
		return nil, fmt.Errorf("username is required")
	}

	s.mu.Lock()
	if _, exists := s.users[user.Username]; exists {
		s.mu.Unlock()
		return nil, ErrDuplicateUser
	}
	stored := user
	s.users[user.Username] = &stored
	s.mu.Unlock()

	if s.persister != nil {
		if err := s.persister.SaveUser(user); err != nil {
			s.logger.Warn("Failed to persist user", zap.String("username", user.Username), zap.Error(err))
		}
	}

	userCopy := stored
	return &userCopy, nil
}

// RemoveUser deletes the user matching username. Returns false if absent.
func (s *Store) RemoveUser(username string) bool {
	s.mu.Lock()
	_, ok := s.users[username]
	if ok {
		delete(s.users, username)
	}
	s.mu.Unlock()

	if ok && s.persister != nil {
		if err := s.persister.DeleteUser(username); err != nil {
			s.logger.Warn("Failed to persist user deletion", zap.String("username", username), zap.Error(err))
		}
	}
	return ok
}

// Users returns all tracked users sorted by username.
func (s *Store) Users() []types.User {
	s.mu.RLock()
	users := make([]types.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	s.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		return users[i].Username < users[j].Username
	})
	return users
}

// Stats recomputes per-category aggregates from the full collection. No
// cached counts: the collection is always the source of truth.
func (s *Store) Stats() types.CatalogStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[types.CategoryType]int)
	installed := make(map[types.CategoryType]int)
	totalInstalled := 0
	for _, entry := range s.entries {
		totals[entry.Category]++
		if entry.IsInstalled {
			installed[entry.Category]++
			totalInstalled++
		}
	}

	counts := make([]types.CategoryCount, 0, len(categories))
	for _, c := range categories {
		counts = append(counts, types.CategoryCount{
			Category:  c.ID,
			Label:     c.Label,
			Total:     totals[c.ID],
			Installed: installed[c.ID],
		})
	}

	return types.CatalogStats{
		TotalEntries:   len(s.entries),
		TotalInstalled: totalInstalled,
		TotalUsers:     len(s.users),
		Categories:     counts,
	}
}

func (s *Store) persistEntry(entry types.Entry) {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveEntry(entry); err != nil {
		s.logger.Warn("Failed to persist entry", zap.String("entry_id", entry.ID), zap.Error(err))
	}
}
