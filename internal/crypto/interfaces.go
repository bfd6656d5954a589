package crypto

// Encryptor is the opaque encrypt/decrypt capability the services depend on.
// It knows nothing about storage or HTTP; the services are its only callers,
// repositories never touch credential plaintext.
//
// Decrypt(Encrypt(x)) == x is the contract the service layer relies on.
type Encryptor interface {
	// Encrypt turns a plaintext credential value into a ciphertext string
	// safe to persist.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Fails if the ciphertext is malformed or was
	// produced under a different key.
	Decrypt(ciphertext string) (string, error)
}
