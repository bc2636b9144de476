package taxonomy

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"strings"

	"taxalign/internal/common"
)

// Fingerprint returns a content hash of a taxonomy: every synset id with its
// lemmas and direct relations, in id order. Two sources with the same
// fingerprint yield the same lemma index and ancestry.
func Fingerprint(src Source) string {
	h := sha256.New()
	writeField(h, src.Name())

	for _, id := range src.All() {
		writeField(h, "S", id)
		writeField(h, "L", strings.Join(src.Lemmas(id), "\x1f"))
		writeField(h, "H", strings.Join(src.Hypernyms(id), "\x1f"))
		writeField(h, "O", strings.Join(src.Hyponyms(id), "\x1f"))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// DictionaryFingerprint hashes a dictionary's lemma table. Identity and an
// empty table share one fingerprint since they translate identically.
// Dictionaries of other types cannot be hashed and yield "".
func DictionaryFingerprint(d Dictionary) string {
	h := sha256.New()

	var md *MapDictionary

	switch v := d.(type) {
	case Identity, *Identity:
	case *MapDictionary:
		md = v
	default:
		return ""
	}

	if md.Len() == 0 {
		writeField(h, "identity")
		return hex.EncodeToString(h.Sum(nil))
	}

	for _, k := range common.SortedKeys(md.entries) {
		writeField(h, k, strings.Join(md.entries[k], "\x1f"))
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeField(h hash.Hash, parts ...string) {
	for _, p := range parts {
		_, _ = io.WriteString(h, p)
		_, _ = h.Write([]byte{0})
	}

	_, _ = h.Write([]byte{'\n'})
}
