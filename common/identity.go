package common

import (
	"github.com/google/uuid"
)

// ComputeRoot derives a deterministic UUID v5 from a domain and business key.
//
// The UUID is derived from: hash("omotanwa" + domain + business_key)
// using the OID namespace.
func ComputeRoot(domain, businessKey string) uuid.UUID {
	seed := "omotanwa" + domain + businessKey
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}

// CartRoot computes the aggregate root of the cart owned by a session.
func CartRoot(sessionID uuid.UUID) uuid.UUID {
	return ComputeRoot("cart", sessionID.String())
}

// ShortID returns the first 8 hex characters of an id, for log lines.
func ShortID(id uuid.UUID) string {
	return id.String()[:8]
}
