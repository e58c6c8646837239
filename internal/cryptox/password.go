// Package cryptox implements credential hashing. Stored hashes are
// self-describing: bcrypt ("$2a$...") or argon2id in PHC form
// ("$argon2id$v=19$m=...,t=...,p=...$salt$key"), so Verify accepts either
// regardless of the algorithm used for new hashes.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Algorithm names accepted by NewPasswordHasher.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

const argon2idPrefix = "$argon2id$"

// bcrypt only consumes the first 72 bytes of a password.
const bcryptMaxPasswordLen = 72

type argon2Params struct {
	time    uint32
	memory  uint32
	threads uint8
	saltLen int
	keyLen  uint32
}

var defaultArgon2 = argon2Params{time: 1, memory: 64 * 1024, threads: 4, saltLen: 16, keyLen: 32}

// PasswordHasher hashes new passwords with one algorithm and verifies
// hashes produced by any supported one. Safe for concurrent use.
type PasswordHasher struct {
	algorithm  string
	bcryptCost int
	argon      argon2Params
}

// NewPasswordHasher returns a hasher that produces hashes with algorithm.
func NewPasswordHasher(algorithm string) (*PasswordHasher, error) {
	switch algorithm {
	case AlgorithmBcrypt, AlgorithmArgon2id:
	default:
		return nil, fmt.Errorf("unsupported password hash algorithm %q", algorithm)
	}
	return &PasswordHasher{algorithm: algorithm, bcryptCost: bcrypt.DefaultCost, argon: defaultArgon2}, nil
}

// Hash returns a freshly salted hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if h.algorithm == AlgorithmArgon2id {
		return h.hashArgon2id(password)
	}

	b, err := bcrypt.GenerateFromPassword(bcryptInput(password), h.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

// Verify reports whether password matches encoded. A mismatch is (false, nil);
// an error is returned only when encoded cannot be parsed.
func (h *PasswordHasher) Verify(password, encoded string) (bool, error) {
	if strings.HasPrefix(encoded, argon2idPrefix) {
		return verifyArgon2id(password, encoded)
	}

	err := bcrypt.CompareHashAndPassword([]byte(encoded), bcryptInput(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrorMalformedHash, err)
	}
}

// bcryptInput truncates password to the bytes bcrypt reads, the same way
// bcryptjs does, so long passwords hash instead of failing and hashes made
// by bcryptjs keep verifying.
func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxPasswordLen {
		b = b[:bcryptMaxPasswordLen]
	}
	return b
}

func (h *PasswordHasher) hashArgon2id(password string) (string, error) {
	salt, err := common.GenerateRandBytes(h.argon.saltLen)
	if err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	key := argon2.IDKey(pw, salt, h.argon.time, h.argon.memory, h.argon.threads, h.argon.keyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.argon.memory, h.argon.time, h.argon.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func verifyArgon2id(password, encoded string) (bool, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, common.ErrorMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, common.ErrorMalformedHash
	}

	var p argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return false, common.ErrorMalformedHash
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return false, common.ErrorMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, common.ErrorMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return false, common.ErrorMalformedHash
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	candidate := argon2.IDKey(pw, salt, p.time, p.memory, p.threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}
