package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Checksum describes a written artifact
type Checksum struct {
	SHA256 string
	Size   int64
}

// CalculateChecksum returns the SHA-256 digest and size of data
func CalculateChecksum(data []byte) Checksum {
	sum := sha256.Sum256(data)
	return Checksum{
		SHA256: hex.EncodeToString(sum[:]),
		Size:   int64(len(data)),
	}
}
