// Package hash provides short fingerprints for recorded invocations.
package hash

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"strings"
)

// ArgsHash generates an 8-character fingerprint of an argv. Arguments are
// joined with NUL so that ["a b"] and ["a", "b"] hash differently.
func ArgsHash(argv []string) string {
	return MD5Sum(strings.Join(argv, "\x00"))[:8]
}

// ReplayFileName returns the file name used to record an invocation.
func ReplayFileName(argv []string) string {
	return "invocation-" + ArgsHash(argv) + ".toml"
}

// MD5Sum returns the full MD5 hash of a string.
func MD5Sum(s string) string {
	hasher := md5.New()
	_, _ = io.WriteString(hasher, s)
	return hex.EncodeToString(hasher.Sum(nil))
}
