package suggest

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// cacheEntry is a ranked result kept for one prefix.
// limit is the limit it was computed with.
type cacheEntry struct {
	limit       int
	suggestions []Suggestion
}

// covers reports whether the entry can answer a request for limit results.
// A result shorter than its own limit is already the full match set.
func (e *cacheEntry) covers(limit int) bool {
	return limit <= e.limit || len(e.suggestions) < e.limit
}

// HotCache keeps recently computed completions keyed by normalized prefix.
// Keys live in a patricia trie so a changed word can drop every cached
// prefix of itself in one walk.
type HotCache struct {
	hotTrie     *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	maxEntries  int
	hits        int
	misses      int
	mu          sync.Mutex
}

// NewHotCache returns a cache holding at most maxEntries prefixes.
func NewHotCache(maxEntries int) *HotCache {
	return &HotCache{
		hotTrie:    patricia.NewTrie(),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns a copy of the cached suggestions for prefix, truncated to limit.
func (hc *HotCache) Get(prefix string, limit int) ([]Suggestion, bool) {
	if hc == nil || prefix == "" {
		return nil, false
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	item := hc.hotTrie.Get(patricia.Prefix(prefix))
	if item == nil {
		hc.misses++
		return nil, false
	}
	entry := item.(*cacheEntry)
	if !entry.covers(limit) {
		hc.misses++
		return nil, false
	}

	hc.hits++
	hc.markAccessed(prefix)

	n := min(limit, len(entry.suggestions))
	out := make([]Suggestion, n)
	copy(out, entry.suggestions[:n])
	return out, true
}

// Put stores suggestions computed for prefix with the given limit.
func (hc *HotCache) Put(prefix string, limit int, suggestions []Suggestion) {
	if hc == nil || prefix == "" || hc.maxEntries <= 0 {
		return
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	if _, exists := hc.accessTime[prefix]; !exists && len(hc.accessTime) >= hc.maxEntries {
		hc.evictLRU()
	}

	stored := make([]Suggestion, len(suggestions))
	copy(stored, suggestions)
	hc.hotTrie.Set(patricia.Prefix(prefix), &cacheEntry{limit: limit, suggestions: stored})
	hc.markAccessed(prefix)
}

// Invalidate drops every cached prefix of word.
func (hc *HotCache) Invalidate(word string) {
	if hc == nil {
		return
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	var stale []patricia.Prefix
	err := hc.hotTrie.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, _ patricia.Item) error {
		stale = append(stale, p)
		return nil
	})
	if err != nil {
		log.Errorf("Error walking hot cache prefixes: %v", err)
	}

	for _, p := range stale {
		hc.hotTrie.Delete(p)
		delete(hc.accessTime, string(p))
	}
	if len(stale) > 0 {
		log.Debugf("Invalidated %d cached prefixes of '%s'", len(stale), word)
	}
}

// Clear drops every entry.
func (hc *HotCache) Clear() {
	if hc == nil {
		return
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	hc.hotTrie = patricia.NewTrie()
	hc.accessTime = make(map[string]int64, hc.maxEntries)
}

// Stats returns entry and hit counters.
func (hc *HotCache) Stats() map[string]int {
	if hc == nil {
		return map[string]int{}
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	return map[string]int{
		"hotCacheEntries": len(hc.accessTime),
		"maxHotEntries":   hc.maxEntries,
		"hotCacheHits":    hc.hits,
		"hotCacheMisses":  hc.misses,
	}
}

func (hc *HotCache) markAccessed(prefix string) {
	hc.accessCount++
	hc.accessTime[prefix] = hc.accessCount
}

func (hc *HotCache) evictLRU() {
	var oldest string
	oldestTime := int64(math.MaxInt64)

	for prefix, at := range hc.accessTime {
		if at < oldestTime {
			oldestTime = at
			oldest = prefix
		}
	}

	if oldest != "" {
		hc.hotTrie.Delete(patricia.Prefix(oldest))
		delete(hc.accessTime, oldest)
		log.Debugf("Evicted prefix '%s' from hot cache", oldest)
	}
}
