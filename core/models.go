package core

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// SourceKind identifies the kind of data source a search runs against.
// It doubles as the match type stamped on results produced from that source.
type SourceKind int

const (
	// SourceFileNames searches file names within the scope directories.
	SourceFileNames SourceKind = iota + 1
	// SourceFileContents searches the decoded text of files within the scope.
	SourceFileContents
	// SourceDatabase searches flattened remote key-value records.
	SourceDatabase
)

// String returns the wire name of the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceFileNames:
		return "file"
	case SourceFileContents:
		return "fileContents"
	case SourceDatabase:
		return "database"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// ParseSourceKind maps a wire name back to a SourceKind.
// Accepts the short aliases used by the CLI.
func ParseSourceKind(s string) (SourceKind, error) {
	switch s {
	case "file", "filename", "name":
		return SourceFileNames, nil
	case "fileContents", "content", "contents":
		return SourceFileContents, nil
	case "database", "db", "record":
		return SourceDatabase, nil
	default:
		return 0, fmt.Errorf("unknown source kind %q", s)
	}
}

// Item is a normalized searchable record produced by a provider.
// Items are created fresh on every fetch, are immutable, and are discarded
// once the enclosing search call returns.
type Item struct {
	// ID uniquely identifies the item. Derived from the locator.
	ID string
	// Data is the searchable text payload: a file name, a decoded file
	// body, or the flattened text of a remote record. Never empty.
	Data string
	// Path locates the item within its source: an absolute file path or
	// "collection/recordKey". Never empty.
	Path string
	// Metadata holds source-specific attributes (fileExtension, lineCount,
	// preview, collection, documentId). Never nil; may be empty.
	Metadata map[string]string
}

// Result is a single scored match. Result lists are always sorted by
// Relevance descending; ties keep encounter order.
type Result struct {
	// MatchType records which kind of source produced the match.
	MatchType SourceKind
	// Path is the locator copied from the matched item.
	Path string
	// Relevance is the strategy-specific score in [0, 1].
	Relevance float64
	// MatchedTerms lists the term(s) that produced this result.
	// Single-element for a single search; used when merging aggregates.
	MatchedTerms []string
	// Context is an optional snippet around the match. Only populated by
	// content-style matches.
	Context string
}

// IDFromLocator generates a deterministic opaque item ID from a locator
// string using BLAKE2b hashing. Identical locators produce identical IDs.
func IDFromLocator(locator string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(locator))
	sum := h.Sum(nil)
	return fmt.Sprintf("%016x", binary.LittleEndian.Uint64(sum))
}
