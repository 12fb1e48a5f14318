package score

import "sort"

// MissingPolicy selects how a missing observation affects a rate. The four
// tasks deliberately use different policies; callers pick one per metric
// rather than relying on a shared default.
type MissingPolicy int

const (
	// MissingExcluded drops missing observations from both numerator and
	// denominator
	MissingExcluded MissingPolicy = iota

	// MissingAsFail counts a missing observation as a failure: it stays in
	// the denominator and never in the numerator
	MissingAsFail
)

// Rate reduces boolean-or-missing observations to
// count(true) / count(true or false) under the given policy. The result is
// nil when the denominator is empty, which is distinct from a rate of 0.
func Rate(flags []*bool, policy MissingPolicy) *float64 {
	trues, total := 0, 0
	for _, f := range flags {
		if f == nil {
			if policy == MissingAsFail {
				total++
			}
			continue
		}
		total++
		if *f {
			trues++
		}
	}
	if total == 0 {
		return nil
	}
	v := float64(trues) / float64(total)
	return &v
}

// GroupedRate computes Rate per group key. keys and flags are parallel
// slices; every key present in the input appears in the result, even when
// its rate is undefined.
func GroupedRate(keys []string, flags []*bool, policy MissingPolicy) map[string]*float64 {
	grouped := make(map[string][]*bool)
	for i, k := range keys {
		grouped[k] = append(grouped[k], flags[i])
	}

	rates := make(map[string]*float64, len(grouped))
	for k, group := range grouped {
		rates[k] = Rate(group, policy)
	}
	return rates
}

// sortedKeys returns map keys in lexicographic order for a deterministic
// wide layout
func sortedKeys(m map[string]*float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// known lifts a concrete boolean into the boolean-or-missing domain
func known(b bool) *bool {
	return &b
}
