package candidate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"taxalign/internal/taxonomy"
)

// Store is a key-value memo store. Get reports whether the key was found.
type Store interface {
	Get(key string, v any) (bool, error)
	Put(key string, v any) error
}

// keyPrefix namespaces candidate entries in a shared store.
const keyPrefix = "candidates/"

// Key derives the memo key for a generation run from the content of both
// taxonomies and the dictionary. It returns "" when the dictionary cannot
// be fingerprinted, which disables memoization.
func Key(source, target taxonomy.Source, dict taxonomy.Dictionary) string {
	if dict == nil {
		dict = taxonomy.Identity{}
	}

	df := taxonomy.DictionaryFingerprint(dict)
	if df == "" {
		return ""
	}

	h := sha256.New()
	for _, part := range []string{taxonomy.Fingerprint(source), taxonomy.Fingerprint(target), df} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}

	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Cached returns the memoized result for key, or calls build and stores its
// result. A nil store or empty key bypasses the memo. The boolean reports a
// cache hit.
func Cached(store Store, key string, build func() *Result) (*Result, bool, error) {
	if store == nil || key == "" {
		return build(), false, nil
	}

	var res Result

	found, err := store.Get(key, &res)
	if err != nil {
		return nil, false, fmt.Errorf("read candidate cache: %w", err)
	}

	if found {
		if res.Set == nil {
			res.Set = Set{}
		}

		return &res, true, nil
	}

	built := build()
	if err := store.Put(key, built); err != nil {
		return nil, false, fmt.Errorf("write candidate cache: %w", err)
	}

	return built, false, nil
}
