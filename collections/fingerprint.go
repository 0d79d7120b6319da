package collections

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// digest identifies a value by the BLAKE2b-256 hash of its canonical JSON
// encoding. encoding/json sorts map keys, so equal maps share a digest.
type digest [blake2b.Size256]byte

func fingerprint(values ...any) (digest, error) {
	b, err := json.Marshal(values)
	if err != nil {
		return digest{}, errors.Wrapf(ErrInvalidArgument, "fingerprint: %v", err)
	}
	return blake2b.Sum256(b), nil
}

// bucketKey returns a map key standing for v: v itself when it is
// comparable, its digest otherwise (slices, maps, structs holding them).
func bucketKey(v any) (any, error) {
	if v == nil || reflect.ValueOf(v).Comparable() {
		return v, nil
	}
	return fingerprint(v)
}
