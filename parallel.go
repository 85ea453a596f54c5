package lingoswap

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// TranslateBatch translates several selections, performing the cache lookups
// in parallel and calling the provider only for the misses. Results are
// returned in input order. Direction is resolved per selection, so a batch
// can mix selections written in either language.
func (a *Assistant) TranslateBatch(ctx context.Context, texts []string) ([]*Result, error) {
	results := make([]*Result, len(texts))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var misses []int

	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()

			pair := a.Resolve(text)

			if strings.TrimSpace(text) == "" {
				mu.Lock()
				results[i] = &Result{
					Output:      text,
					Source:      pair.Source,
					Destination: pair.Destination,
					Mode:        ModeTranslate,
				}
				mu.Unlock()
				return
			}

			if a.cache != nil {
				key := CacheKey(HashText(text), pair, ModeTranslate)
				if cached, ok := a.cache.Get(key); ok {
					mu.Lock()
					results[i] = &Result{
						Output:      cached,
						Source:      pair.Source,
						Destination: pair.Destination,
						Mode:        ModeTranslate,
						Cached:      true,
					}
					mu.Unlock()
					return
				}
			}

			mu.Lock()
			misses = append(misses, i)
			mu.Unlock()
		}(i, text)
	}

	wg.Wait()

	// Provider calls stay sequential (input order) so rate limiting and
	// retry wrappers behave predictably.
	sort.Ints(misses)
	for _, i := range misses {
		result, err := a.assist(ctx, ModeTranslate, texts[i])
		if err != nil {
			return nil, err
		}
		results[i] = result
	}

	return results, nil
}

// ParallelCacheLookup checks the cache for a set of selections concurrently.
// It returns the hits keyed by selection hash and the distinct selections
// that missed, preserving their first-seen order.
func ParallelCacheLookup(cache ResultCache, texts []string, pair LanguagePair, mode Mode) (map[string]string, []string) {
	if cache == nil || len(texts) == 0 {
		return make(map[string]string), texts
	}

	type lookupResult struct {
		hash  string
		value string
		found bool
	}

	// Deduplicate selections by hash first
	hashes := make([]string, len(texts))
	unique := make(map[string]string)
	for i, text := range texts {
		h := HashText(text)
		hashes[i] = h
		if _, exists := unique[h]; !exists {
			unique[h] = text
		}
	}

	results := make(chan lookupResult, len(unique))
	var wg sync.WaitGroup

	for hash := range unique {
		wg.Add(1)
		go func(h string) {
			defer wg.Done()
			if val, ok := cache.Get(CacheKey(h, pair, mode)); ok {
				results <- lookupResult{hash: h, value: val, found: true}
			} else {
				results <- lookupResult{hash: h, found: false}
			}
		}(hash)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	hits := make(map[string]string)
	missedHashes := make(map[string]bool)
	for result := range results {
		if result.found {
			hits[result.hash] = result.value
		} else {
			missedHashes[result.hash] = true
		}
	}

	// Build miss slice preserving original order
	var misses []string
	seen := make(map[string]bool)
	for i, text := range texts {
		h := hashes[i]
		if missedHashes[h] && !seen[h] {
			misses = append(misses, text)
			seen[h] = true
		}
	}

	return hits, misses
}
