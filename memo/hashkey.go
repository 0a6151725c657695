package memo

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// HashKey derives a deterministic string cache key from arbitrary
// values, for use with a Group keyed by string when the arguments
// themselves are not comparable (slices, maps, structs with slice
// fields).
//
// Each value is reduced to a canonical JSON form — maps are serialized
// with sorted keys so iteration order never changes the key — and the
// concatenation is hashed with SHA-256. Values that cannot be
// serialized (functions, channels, complex numbers) return
// ErrKeyNotSerializable.
func HashKey(vals ...any) (string, error) {
	h := sha256.New()
	for i, v := range vals {
		canonical, err := appendCanonical(nil, v)
		if err != nil {
			return "", fmt.Errorf("%w: argument %d: %v", ErrKeyNotSerializable, i, err)
		}
		h.Write(canonical)
		// Separator keeps argument boundaries unambiguous.
		h.Write([]byte{0})
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8]), nil
}

// appendCanonical appends a deterministic JSON representation of v to
// dst. Maps are sorted by key; nested values are canonicalized
// recursively.
func appendCanonical(dst []byte, v any) ([]byte, error) {
	if v == nil {
		return append(dst, "null"...), nil
	}

	switch val := v.(type) {
	case map[string]any:
		return appendCanonicalMap(dst, val)
	case []any:
		return appendCanonicalSlice(dst, val)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return append(dst, data...), nil
	}
}

func appendCanonicalMap(dst []byte, m map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dst = append(dst, '{')
	for i, k := range keys {
		if i > 0 {
			dst = append(dst, ',')
		}

		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		dst = append(dst, keyBytes...)
		dst = append(dst, ':')

		dst, err = appendCanonical(dst, m[k])
		if err != nil {
			return nil, err
		}
	}
	return append(dst, '}'), nil
}

func appendCanonicalSlice(dst []byte, s []any) ([]byte, error) {
	dst = append(dst, '[')
	for i, v := range s {
		if i > 0 {
			dst = append(dst, ',')
		}

		var err error
		dst, err = appendCanonical(dst, v)
		if err != nil {
			return nil, err
		}
	}
	return append(dst, ']'), nil
}
