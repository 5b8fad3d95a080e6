// Package cryptox stores shared secrets as salted Argon2id hashes so a leaked
// store does not reveal credentials, and checks candidates in constant time.
//
// Hashes use the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt b64>$<key b64>
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// ErrInvalidHash is returned for strings that are not a supported PHC hash.
var ErrInvalidHash = errors.New("invalid argon2id hash format")

// maxMemoryKiB bounds the memory cost accepted from a stored hash.
const maxMemoryKiB = 1 << 20

// Params are the Argon2id cost parameters.
type Params struct {
	MemoryKiB uint32
	Time      uint32
	Threads   uint8
	SaltLen   uint32
	KeyLen    uint32
}

// DefaultParams returns the production cost parameters.
func DefaultParams() Params {
	return Params{
		MemoryKiB: 64 * 1024,
		Time:      1,
		Threads:   4,
		SaltLen:   16,
		KeyLen:    32,
	}
}

func (p Params) validate() error {
	if p.MemoryKiB < 8 || p.MemoryKiB > maxMemoryKiB || p.Time == 0 || p.Threads == 0 || p.KeyLen < 16 || p.SaltLen < 8 {
		return fmt.Errorf("argon2id params out of range: %+v", p)
	}
	return nil
}

// HashSecret derives a salted Argon2id hash of secret and encodes it as a
// PHC string. Every call uses a fresh random salt.
func HashSecret(secret string, p Params) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}

	salt := common.GenerateRandByteArray(int(p.SaltLen))
	key := argon2.IDKey([]byte(secret), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.MemoryKiB, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifySecret reports whether candidate matches the encoded hash. The
// comparison is exact (case-sensitive, no normalization) and runs in
// constant time with respect to the derived keys.
func VerifySecret(candidate, encoded string) (bool, error) {
	p, salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(candidate), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)
	defer common.WipeByteArray(got)

	return subtle.ConstantTimeCompare(got, key) == 1, nil
}

func decode(encoded string) (Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Time, &p.Threads); err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))

	if err := p.validate(); err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	return p, salt, key, nil
}
