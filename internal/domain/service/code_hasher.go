package service

// CodeHasher defines the interface for hashing and verifying join PINs.
// This abstracts the underlying hashing algorithm (bcrypt), keeping the domain pure.
type CodeHasher interface {
	// Hash generates a salted hash from a plaintext PIN.
	Hash(pin string) (string, error)

	// Check compares a plaintext PIN with a hash to see if they match.
	Check(pin, hash string) bool
}
