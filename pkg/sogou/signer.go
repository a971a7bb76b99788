package sogou

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// SaltLength is the length of every generated salt.
const SaltLength = 19

// Signer holds the service credentials and signs requests with them.
// It is immutable and safe for concurrent use.
type Signer struct {
	pid       string
	secretKey string
}

// NewSigner returns a Signer for the given pid and secret key.
func NewSigner(pid, secretKey string) (*Signer, error) {
	if pid == "" {
		return nil, &ConfigurationError{Field: "pid"}
	}
	if secretKey == "" {
		return nil, &ConfigurationError{Field: "secret key"}
	}
	return &Signer{pid: pid, secretKey: secretKey}, nil
}

// PID returns the service identifier.
func (s *Signer) PID() string {
	return s.pid
}

// Salt returns a fresh random salt: the hex SHA-256 of 256 random bits,
// truncated to SaltLength characters.
func (s *Signer) Salt() string {
	var seed [32]byte
	// crypto/rand.Read never returns an error since Go 1.24.
	_, _ = rand.Read(seed[:])
	sum := sha256.Sum256(seed[:])
	return hex.EncodeToString(sum[:])[:SaltLength]
}

// Sign returns the lowercase hex MD5 of pid + text + salt + secret key.
// The service verifies exactly this digest.
func (s *Signer) Sign(text, salt string) string {
	sum := md5.Sum([]byte(s.pid + text + salt + s.secretKey))
	return hex.EncodeToString(sum[:])
}
