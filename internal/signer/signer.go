package signer

// Signer interface for signing the generated index
type Signer interface {
	// SignDetached creates an armored detached signature (index.xml.asc)
	SignDetached(data []byte) ([]byte, error)

	// GetPublicKey returns the armored public key
	GetPublicKey() ([]byte, error)
}
