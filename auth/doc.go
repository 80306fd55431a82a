// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token and key generation utilities.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(instanceID, salt)
	err := auth.ValidateAdminKey(instanceID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same instance ID and salt always produce the same key. This allows
validation without storing the key anywhere.

Mutating endpoints require the key in the X-Admin-Key header; read-only
endpoints are open.

# ID Generation

Random hex IDs for draws:

	id, err := auth.GenerateID(8)  // 16 hex characters

IDs come from crypto/rand, the same source the winner sampler uses.
*/
package auth
