// Package auth issues and verifies bearer tokens and hashes passwords.
//
// Tokens are HS256 JWTs whose subject is the numeric user id; they also carry
// the email and role seen at issue time. The authentication middleware treats
// the database as the source of truth for the role and only uses the token to
// identify the user.
package auth
