package models

// ConvertConfig contains configuration for a single conversion run
type ConvertConfig struct {
	// Input/Output
	InputPath  string
	OutputPath string

	// Description rendering
	PandocCommand string
	NoPandoc      bool

	// Extra artifacts written next to OutputPath
	Compress []string

	// Signing
	GPGKeyPath    string
	GPGPassphrase string
	PublicKeyPath string // Armored public key export, only used with GPGKeyPath
}
