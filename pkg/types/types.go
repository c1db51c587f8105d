package types

import "strings"

// NormalizeQuery derives the canonical lookup form of a user query. Two
// entries with the same normalized query overwrite each other. Normalization
// is not reversible; the original query text is kept verbatim on the entry.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// CacheEntry represents one cached question/answer pair. The JSON field names
// are the on-disk format contract; entries written by older app versions must
// keep decoding, so these tags never change.
type CacheEntry struct {
	Query        string         `json:"query"`
	Response     string         `json:"response"`
	Timestamp    int64          `json:"timestamp"`
	AccessCount  int64          `json:"accessCount"`
	LastAccessed int64          `json:"lastAccessed"`
	Metadata     *EntryMetadata `json:"metadata,omitempty"`
}

// EntryMetadata carries optional classification and compression details for a
// cache entry. When Compressed is true, the entry's Response holds a base64
// string of gzip-compressed UTF-8 bytes and OriginalSize is the
// pre-compression character length.
type EntryMetadata struct {
	IsFAQ        bool     `json:"isFAQ,omitempty"`
	FAQID        string   `json:"faqId,omitempty"`
	FAQCategory  string   `json:"faqCategory,omitempty"`
	Source       string   `json:"source,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Compressed   bool     `json:"compressed,omitempty"`
	OriginalSize int      `json:"originalSize,omitempty"`
}

// Clone returns a deep copy of the metadata, or nil for nil metadata.
func (m *EntryMetadata) Clone() *EntryMetadata {
	if m == nil {
		return nil
	}
	out := *m
	if m.Tags != nil {
		out.Tags = append([]string(nil), m.Tags...)
	}
	return &out
}

// CacheMatch is the result of a successful cache lookup. Response is always
// the decompressed answer text, never a compressed payload.
type CacheMatch struct {
	Query       string  `json:"query"`
	Response    string  `json:"response"`
	Similarity  float64 `json:"similarity"`
	IsFAQ       bool    `json:"isFAQ,omitempty"`
	FAQID       string  `json:"faqId,omitempty"`
	FAQCategory string  `json:"faqCategory,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// FAQItem is one entry of the static FAQ dataset shipped with the app.
type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// CacheMetadata is the small summary record persisted alongside the entry
// collection. Counters are maintained incrementally on every save and are
// best-effort, not recomputed from a scan.
type CacheMetadata struct {
	LastUpdated    int64 `json:"lastUpdated"`
	TotalEntries   int   `json:"totalEntries"`
	FAQEntries     int   `json:"faqEntries"`
	RegularEntries int   `json:"regularEntries"`
}

// CacheStats represents a diagnostic snapshot of cache state and performance.
type CacheStats struct {
	MemoryEntries     int     `json:"memory_entries"`
	TotalEntries      int     `json:"total_entries"`
	FAQEntries        int     `json:"faq_entries"`
	RegularEntries    int     `json:"regular_entries"`
	QueryIndexSize    int     `json:"query_index_size"`
	FAQIndexSize      int     `json:"faq_index_size"`
	CategoryIndexSize int     `json:"category_index_size"`
	Hits              uint64  `json:"hits"`
	Misses            uint64  `json:"misses"`
	Evictions         uint64  `json:"evictions"`
	HitRate           float64 `json:"hit_rate"`
	Initialized       bool    `json:"initialized"`
	FullyLoaded       bool    `json:"fully_loaded"`
}
