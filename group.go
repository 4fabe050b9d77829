package playbp

import (
	"crypto/cipher"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// multiScalarMul returns SUM scalar_i * point_i. It runs in variable time:
// the scalars given to it are always public values.
func multiScalarMul(scalars Vector, points []Commit) Commit {
	if len(scalars) != len(points) {
		panic(fmt.Sprintf("playbp: multiscalar mul with %d scalars and %d points", len(scalars), len(points)))
	}
	acc := NewCommit()
	tmp := Group.Point()
	for i := range scalars {
		acc.Add(acc, tmp.Mul(scalars[i], points[i]))
	}
	return acc
}

// batchInvert returns the inverse of every element of xs as well as the
// product of all the inverses, using a single field inversion: it builds the
// running products x_0, x_0*x_1, ..., inverts the total once and walks back
// down to peel off each individual inverse.
func batchInvert(xs Vector) (Vector, Element) {
	prods := make(Vector, len(xs))
	acc := one.Clone()
	for i, x := range xs {
		prods[i] = acc.Clone()
		acc = acc.Mul(acc, x)
	}
	allinv := NewElement().Inv(acc)
	inv := make(Vector, len(xs))
	acc = allinv.Clone()
	for i := len(xs) - 1; i >= 0; i-- {
		inv[i] = NewElement().Mul(acc, prods[i])
		acc = acc.Mul(acc, xs[i])
	}
	return inv, allinv
}

// compress returns the canonical byte encoding of the point, the form in
// which points are absorbed into the transcript.
func compress(p Commit) []byte {
	buff, err := p.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return buff
}

// oracle returns a deterministic stream seeded by the domain string and the
// given inputs, used to derive public points and test vectors.
func oracle(domain string, args ...[]byte) cipher.Stream {
	var h = sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte(Group.String()))
	for _, a := range args {
		h.Write(a)
	}
	return Suite.XOF(h.Sum(nil))
}

// DeriveGenerators returns n public points derived deterministically from
// the seed, with no known discrete log relationship between them.
func DeriveGenerators(seed string, n int) []Commit {
	gs := make([]Commit, 0, n)
	var idx [4]byte
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(idx[:], uint32(i))
		gs = append(gs, Group.Point().Pick(oracle("playbp-generator-"+seed, idx[:])))
	}
	return gs
}
