// Package id provides centralized ID generation for the backend.
//
// Entry IDs are prefixed ULIDs ("ent_01H..."): unique for the life of the
// catalog, never reused, and — with monotonic entropy — lexicographically
// ordered by creation time within a process, so listings sorted by ID
// match insertion order.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// EntryID identifies a catalog entry.
type EntryID string

// EntryPrefix marks entry IDs in logs and API payloads.
const EntryPrefix = "ent"

// Generator generates prefixed ULIDs.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by monotonic crypto/rand
// entropy, so IDs minted within the same millisecond still sort in
// generation order.
func NewGenerator() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Useful for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewEntryID generates a new catalog entry ID.
func NewEntryID() EntryID {
	return EntryID(Default().GenerateWithPrefix(EntryPrefix))
}

// String returns the ID as a plain string.
func (id EntryID) String() string { return string(id) }

// IsValidEntryID reports whether s is a well-formed entry ID.
func IsValidEntryID(s string) bool {
	raw, ok := strings.CutPrefix(s, EntryPrefix+"_")
	if !ok {
		return false
	}
	_, err := ulid.Parse(raw)
	return err == nil
}

// Timestamp extracts the creation time embedded in an entry ID.
func Timestamp(s string) (time.Time, error) {
	raw, _ := strings.CutPrefix(s, EntryPrefix+"_")
	parsed, err := ulid.Parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
