package util

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

func CopyStringStringMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for key, val := range src {
		dst[key] = val
	}
	return dst
}

// GenerateSignature builds a compact sha1 hex signature over the
// given parts. Used to keep history entity values short and stable.
func GenerateSignature(parts ...string) string {
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
