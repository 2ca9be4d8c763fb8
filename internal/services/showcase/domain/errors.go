package domain

import (
	perr "showcase/internal/platform/errors"
)

// Operation labels carried by showcase errors
const (
	OpListing    = "listing"
	OpEnrichment = "enrichment"
	OpMalformed  = "malformed"
)

// ListingError marks a failed repository listing; the upstream code is kept
func ListingError(err error) error { return perr.WrapOp(err, OpListing, "list repositories") }

// EnrichmentError marks a failed secondary fetch or parse for one repository
func EnrichmentError(fullName string, err error) error {
	return perr.WrapOp(err, OpEnrichment, "enrich "+fullName)
}

// IsListingError reports whether err came from the repository listing
func IsListingError(err error) bool { return perr.OpOf(err) == OpListing }

// IsMalformed reports whether err somewhere carries a malformed payload
func IsMalformed(err error) bool {
	for err != nil {
		e, ok := perr.As(err)
		if !ok {
			return false
		}
		if e.Op() == OpMalformed {
			return true
		}
		err = e.Unwrap()
	}
	return false
}
