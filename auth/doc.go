// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing and session-token utilities.

# Password Hashing

Credentials are hashed with bcrypt at a fixed work factor:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

PasswordHashCost (12) keeps hashing deliberately slow. The hash is stored in
account.password_hash and never leaves the server.

# Session Tokens

Sessions are stateless HS256 JWTs carrying the account ID and admin flag:

	token, err := auth.IssueToken(secret, auth.Identity{AccountID: id}, 24*time.Hour)
	ident, err := auth.ParseToken(secret, token)

ParseToken rejects non-HMAC algorithms, expired tokens, and tokens signed
with a different secret, returning ErrInvalidToken.

# Identity Extraction

Handlers obtain the caller's identity explicitly, never from ambient state:

	ident, err := auth.IdentityFromRequest(r, secret)

The token travels in the Authorization header as "Bearer <token>".
ErrNoToken distinguishes an absent token from an invalid one.

# ID Generation

Random UUIDs for database records:

	id := auth.NewID()
*/
package auth
