package etag

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"
)

// Deriver produces default entity tags for content that has no natural tag.
//
// Derived tags are strong and formatted as "<length>-<hash>": the decimal
// byte length of the content, a hyphen, and the first 8 bytes of the
// content's keyed BLAKE3 digest as 16 lowercase hex characters. The length
// field cheaply separates inputs of different size even under a hash
// collision.
//
// Contract:
// - Determinism: the same key and the same content always yield the same tag.
// - Concurrency: a Deriver is safe for concurrent use.
type Deriver struct {
	key [32]byte
}

// NewDeriver returns a Deriver with a fixed key. Tags derived with the same
// key are stable across processes and restarts, so they remain valid cache
// validators after a redeploy.
func NewDeriver(key [32]byte) *Deriver {
	return &Deriver{key: key}
}

// NewRandomDeriver returns a Deriver keyed from crypto/rand. Derived tags
// are stable only within the current process; in exchange, the unpredictable
// key resists collision attacks against crafted inputs. Callers whose tags
// must survive a restart use NewDeriver with a fixed key instead.
func NewRandomDeriver() *Deriver {
	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		panic("etag: reading random deriver key: " + err.Error())
	}
	return &Deriver{key: key}
}

// FromData derives a strong entity tag from raw bytes.
func (d *Deriver) FromData(data []byte) EntityTag {
	return Strong(fmt.Sprintf("%d-%s", len(data), d.digest(data)))
}

// FromValue derives a strong entity tag from an arbitrary value. The value
// is serialized to canonical JSON (map keys sorted, recursively) so that
// logically equal values produce identical tags regardless of map iteration
// order; the tag's length field is the length of that canonical form. Fails
// only when the value cannot be serialized.
func (d *Deriver) FromValue(v any) (EntityTag, error) {
	canonical, err := canonicalize(v)
	if err != nil {
		return EntityTag{}, fmt.Errorf("etag: serializing value: %w", err)
	}
	return d.FromData(canonical), nil
}

// digest returns the first 8 bytes of the keyed BLAKE3 digest of data in
// lowercase hex.
func (d *Deriver) digest(data []byte) string {
	hasher, err := blake3.NewKeyed(d.key[:])
	if err != nil {
		// NewKeyed requires exactly 32 bytes, which the array guarantees.
		panic("etag: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	sum := hasher.Sum(nil)
	return hex.EncodeToString(sum[:8])
}

// defaultDeriver backs the package-level derivation functions. Its key is
// drawn once at process start.
var defaultDeriver = NewRandomDeriver()

// FromData derives a strong entity tag from raw bytes using a key drawn at
// process start. Tags are deterministic within one process but not across
// restarts; see NewDeriver for cross-process-stable tags.
func FromData(data []byte) EntityTag {
	return defaultDeriver.FromData(data)
}

// FromValue derives a strong entity tag from an arbitrary value using the
// same process-lifetime key as FromData.
func FromValue(v any) (EntityTag, error) {
	return defaultDeriver.FromValue(v)
}

// canonicalize produces a deterministic JSON representation of v. Maps are
// emitted with sorted keys so the bytes do not depend on iteration order.
func canonicalize(v any) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	switch val := v.(type) {
	case map[string]any:
		return canonicalizeMap(val)
	case []any:
		return canonicalizeSlice(val)
	default:
		// Other types get standard JSON encoding
		return json.Marshal(v)
	}
}

func canonicalizeMap(m map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []byte("{")
	for i, k := range keys {
		if i > 0 {
			result = append(result, ',')
		}

		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		result = append(result, keyBytes...)
		result = append(result, ':')

		valBytes, err := canonicalize(m[k])
		if err != nil {
			return nil, err
		}
		result = append(result, valBytes...)
	}
	result = append(result, '}')

	return result, nil
}

func canonicalizeSlice(s []any) ([]byte, error) {
	result := []byte("[")
	for i, v := range s {
		if i > 0 {
			result = append(result, ',')
		}

		valBytes, err := canonicalize(v)
		if err != nil {
			return nil, err
		}
		result = append(result, valBytes...)
	}
	result = append(result, ']')

	return result, nil
}
