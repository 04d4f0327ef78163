package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// LegacyDigestLength is the length of a hex-encoded SHA-256 digest.
const LegacyDigestLength = sha256.Size * 2

var digestPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// LegacyDigest returns the hex-encoded unsalted SHA-256 of password, the
// format stored by older deployments of the users file.
func LegacyDigest(password string) string {
	h := digestPool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(password))
	sum := h.Sum(nil)

	h.Reset()
	digestPool.Put(h)

	return hex.EncodeToString(sum)
}

// IsLegacyDigest reports whether stored looks like a [LegacyDigest] value.
func IsLegacyDigest(stored string) bool {
	if len(stored) != LegacyDigestLength {
		return false
	}

	_, err := hex.DecodeString(stored)
	return err == nil
}
