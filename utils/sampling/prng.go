// Package sampling provides sources of random bytes for samplers and for
// deterministic, reproducible test inputs.
package sampling

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by crypto/rand, safe for concurrent use.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new thread-safe PRNG seeded by the operating system.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with random bytes.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically generates a sequence of pseudo-random bytes
// from a key, using the blake2b extendable output function. Two KeyedPRNG
// instantiated with the same key produce the same stream.
// WARNING: KeyedPRNG is not safe for concurrent use; concurrent reads make
// the produced sequence non-deterministic for a given key.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key. A nil key is
// treated as an empty key; the resulting stream is then predictable by
// anyone and only suitable for reproducibility purposes.
func NewKeyedPRNG(key []byte) (prng *KeyedPRNG, err error) {
	prng = new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return
}

// Key returns a copy of the key used to seed the PRNG. The returned value
// can be passed to NewKeyedPRNG to instantiate a new PRNG producing the
// same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read fills sum with pseudo-random bytes.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
