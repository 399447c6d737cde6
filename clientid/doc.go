// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package clientid derives stable, non-reversible identifiers from client data.

# IP Hashing

Clients are never logged or rate limited by raw address:

	hash := clientid.HashIP(middleware.GetClientIP(r), cfg.IPHashSalt)

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256.

# Salts

When no IP_HASH_SALT is configured a random one is generated at startup:

	salt, err := clientid.GenerateSalt(16) // 32 hex characters

Hashes are then only stable for the lifetime of the process.

# Digests

Digest keys the blind-analysis cache by request content:

	key := clientid.Digest(string(method), text)
*/
package clientid
