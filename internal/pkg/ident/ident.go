package ident

import (
	"strings"

	"github.com/google/uuid"
)

const suffixLength = 12

const (
	PrefixUser        = "user"
	PrefixCourt       = "court"
	PrefixBooking     = "booking"
	PrefixTransaction = "txn"
	PrefixReview      = "review"
	PrefixOutbox      = "job"
)

// New returns "<prefix>_<12 hex chars>".
func New(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:suffixLength]
}

// HasPrefix reports whether id was minted for prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"_") && len(id) > len(prefix)+1
}
