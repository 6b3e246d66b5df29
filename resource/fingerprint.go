package resource

import (
	"encoding/hex"
	"fmt"
	"io/fs"

	"golang.org/x/crypto/blake2b"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 16

// Fingerprint returns a short BLAKE2b-256 content hash of file inside fsys.
// It changes whenever the file content changes and is used for ETags.
func Fingerprint(fsys fs.FS, file string) (string, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", file, err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])[:fingerprintLen], nil
}

// Fingerprints hashes every file of a resource, keyed by file name.
func (r *Resource) Fingerprints() (map[string]string, error) {
	if r.Library == nil || r.Library.Dir == nil {
		return nil, fmt.Errorf("resource %q: library has no directory", r.Name)
	}
	out := make(map[string]string, 2)
	for _, f := range r.Files() {
		fp, err := Fingerprint(r.Library.Dir, f)
		if err != nil {
			return nil, err
		}
		out[f] = fp
	}
	return out, nil
}
