package ports

// PasswordHasher provides one-way hashing and verification of agent passwords.
//
// Hash produces a salted digest such that repeated calls on the same plaintext
// yield different digests (the salt is per-call) but all verify equal.
// Verify reports whether the digest was produced from the plaintext; a malformed
// digest yields false, never an error or panic. Both are pure functions over
// their inputs with no observable side effects.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
}
