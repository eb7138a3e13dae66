package protocol

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// Sampler draws the verifier's random challenges. Implementations choose the
// source: cryptographic randomness for real runs, a seeded or replayed
// stream for reproducible ones.
type Sampler interface {
	Sample() (fr.Element, error)
}

// CryptoSampler draws uniform field elements from crypto/rand
type CryptoSampler struct{}

func (CryptoSampler) Sample() (fr.Element, error) {
	var r fr.Element
	if _, err := r.SetRandom(); err != nil {
		return fr.Element{}, err
	}
	return r, nil
}

// ShakeSampler derives challenges from a seed with the SHAKE-256 extendable
// output function. Two samplers built from the same seed produce the same
// stream.
type ShakeSampler struct {
	state sha3.ShakeHash
}

// NewShakeSampler returns a sampler expanding the given seed
func NewShakeSampler(seed []byte) *ShakeSampler {
	state := sha3.NewShake256()
	state.Write(seed)
	return &ShakeSampler{state: state}
}

func (s *ShakeSampler) Sample() (fr.Element, error) {
	// oversampling by 16 bytes keeps the modular bias negligible
	var buf [fr.Bytes + 16]byte
	if _, err := s.state.Read(buf[:]); err != nil {
		return fr.Element{}, err
	}
	var r fr.Element
	r.SetBytes(buf[:])
	return r, nil
}

// FixedSampler replays a predetermined challenge sequence and fails once the
// sequence is exhausted
type FixedSampler struct {
	challenges []fr.Element
	next       int
}

// NewFixedSampler returns a sampler replaying the given challenges in order
func NewFixedSampler(challenges ...fr.Element) *FixedSampler {
	return &FixedSampler{challenges: challenges}
}

func (s *FixedSampler) Sample() (fr.Element, error) {
	if s.next >= len(s.challenges) {
		return fr.Element{}, errors.New("the challenge sequence is exhausted")
	}
	r := s.challenges[s.next]
	s.next++
	return r, nil
}
