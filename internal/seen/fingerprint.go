// Package seen tracks posting fingerprints across runs so previously
// reported postings are suppressed. The persisted key set only grows.
package seen

import (
	"crypto/sha1"
	"encoding/hex"

	"jobsweep/internal/model"
)

// Fingerprint returns the dedup key for a posting URL: the hex SHA-1 of the
// URL string. A pure function of its input, stable across runs. An empty
// URL hashes to a single well-defined key, so distinct empty-URL postings
// collide; callers accept that as a known degenerate case.
func Fingerprint(url string) string {
	sum := sha1.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}

// Partition walks postings in order and splits off those whose fingerprint
// is not in the loaded seen set. It returns the fresh postings and the
// de-duplicated list of their fingerprints, in first-appearance order.
//
// Membership is tested against the persisted set only: two postings in the
// same batch sharing a URL both survive unless that URL was seen in a prior
// run. Cross-run suppression is the contract; same-run suppression is not.
// Partition never mutates the seen set, so repeated calls with the same
// inputs return the same result.
func Partition(postings []model.Posting, seenKeys map[string]struct{}) ([]model.Posting, []string) {
	var fresh []model.Posting
	var newKeys []string
	emitted := make(map[string]struct{})

	for _, p := range postings {
		key := Fingerprint(p.URL)
		if _, ok := seenKeys[key]; ok {
			continue
		}
		fresh = append(fresh, p)
		if _, ok := emitted[key]; !ok {
			emitted[key] = struct{}{}
			newKeys = append(newKeys, key)
		}
	}

	return fresh, newKeys
}
