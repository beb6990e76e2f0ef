package sortedmap

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/minio/blake2b-simd"
)

// Fingerprint returns a digest of the map's content. The ascending
// (key, value) sequence is encoded canonically (JSON bodies, length
// prefixed) and hashed, so maps holding equal content produce equal
// fingerprints regardless of the order entries were inserted in. Keys
// and values must be JSON-marshalable.
func (m *Map) Fingerprint() (string, error) {
	buf := appendLength(nil, m.Len())
	err := m.Iter(func(key, value any) error {
		body, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("marshal key %v: %w", key, err)
		}
		buf = appendBytes(buf, body)
		body, err = json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal value for key %v: %w", key, err)
		}
		buf = appendBytes(buf, body)
		return nil
	})
	if err != nil {
		return "", err
	}
	hashBytes := blake2b.Sum256(buf)
	return base64.RawURLEncoding.EncodeToString(hashBytes[:]), nil
}
