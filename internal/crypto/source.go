package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math"
	"math/big"

	"golang.org/x/crypto/chacha20"
)

var ErrInvalidBound = errors.New("random bound must be positive")

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// CryptoSource reads from crypto/rand.
type CryptoSource struct{}

// Intn returns a uniform int in [0, n).
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic source driven by a ChaCha20 keystream.
// The same seed always yields the same sequence. Not safe for concurrent use.
type SeededSource struct {
	cipher *chacha20.Cipher
}

// NewSeededSource keys a ChaCha20 stream with the SHA-256 of seed.
func NewSeededSource(seed string) (*SeededSource, error) {
	key := sha256.Sum256([]byte(seed))
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		return nil, err
	}
	return &SeededSource{cipher: c}, nil
}

func (s *SeededSource) next() uint32 {
	var buf [4]byte
	s.cipher.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// Intn returns a uniform int in [0, n), rejecting draws from the biased tail.
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 || uint64(n) > math.MaxUint32 {
		return 0, ErrInvalidBound
	}
	bound := uint32(n)
	limit := math.MaxUint32 - (math.MaxUint32%bound+1)%bound
	for {
		v := s.next()
		if v <= limit {
			return int(v % bound), nil
		}
	}
}
