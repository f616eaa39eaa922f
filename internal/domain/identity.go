package domain

import "strings"

// NormalizeIdentity maps a raw item name to the canonical matching key used
// to join the same item across differently formatted source tables. The name
// is trimmed, lower-cased, and runs of internal whitespace collapse to a
// single space. The same policy applies to every source within a request,
// since matching is key-equality based. Idempotent.
//
// A blank result means the row has no usable identity; such rows are dropped
// from aggregation rather than merged into a shared blank bucket.
func NormalizeIdentity(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}
