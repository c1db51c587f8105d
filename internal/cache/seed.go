package cache

import (
	"time"

	"github.com/ecocart/assistcache/internal/faq"
	"github.com/ecocart/assistcache/pkg/types"
)

// Seed entry sources recorded in entry metadata.
const (
	sourceFAQSeed    = "faq_seed"
	sourceCommonSeed = "common_seed"
	sourceAssistant  = "assistant"
)

// defaultSeedEntries builds the initial entry set loaded into an empty cache:
// the FAQ corpus plus canned answers for common free-form queries.
func defaultSeedEntries() []types.CacheEntry {
	now := time.Now().UnixMilli()

	entries := make([]types.CacheEntry, 0, len(faq.Items)+len(faq.CommonQueries))
	for _, item := range faq.Items {
		entries = append(entries, types.CacheEntry{
			Query:        item.Question,
			Response:     item.Answer,
			Timestamp:    now,
			AccessCount:  1,
			LastAccessed: now,
			Metadata: &types.EntryMetadata{
				IsFAQ:       true,
				FAQID:       item.ID,
				FAQCategory: item.Category,
				Source:      sourceFAQSeed,
			},
		})
	}
	for _, cq := range faq.CommonQueries {
		entries = append(entries, types.CacheEntry{
			Query:        cq.Query,
			Response:     cq.Answer,
			Timestamp:    now,
			AccessCount:  1,
			LastAccessed: now,
			Metadata: &types.EntryMetadata{
				Source: sourceCommonSeed,
			},
		})
	}
	return entries
}

// recountMetadata derives fresh counters from a full entry set. Used only at
// seed time; afterwards the counters are maintained incrementally and are
// best-effort.
func recountMetadata(entries []types.CacheEntry) types.CacheMetadata {
	meta := types.CacheMetadata{TotalEntries: len(entries)}
	for i := range entries {
		if isFAQEntry(&entries[i]) {
			meta.FAQEntries++
		} else {
			meta.RegularEntries++
		}
	}
	return meta
}
