package playbp

import "fmt"

// Basis is the public basis of the commitment the argument is about. It is
// normally fixed by the enclosing protocol; NewBasis derives one
// deterministically for standalone use.
type Basis struct {
	G []Commit
	H []Commit
	Q Commit
}

// NewBasis returns a basis of size n derived from the seed.
func NewBasis(seed string, n int) Basis {
	return Basis{
		G: DeriveGenerators(seed+"-G", n),
		H: DeriveGenerators(seed+"-H", n),
		Q: Group.Point().Pick(oracle("playbp-generator-" + seed + "-Q")),
	}
}

// CommitWitness computes P = <a,G> + <b o hFactors, H> + <a,b>*Q, the
// pedersen style commitment that NewProof proves knowledge of an opening
// for. The blinding of the witness comes from the generators themselves, so
// there is no randomness argument.
func CommitWitness(bs Basis, hFactors, a, b Vector) Commit {
	n := len(bs.G)
	if len(bs.H) != n || len(a) != n || len(b) != n || len(hFactors) != n {
		panic(fmt.Sprintf("playbp: mismatched commitment lengths %d %d %d %d %d",
			n, len(bs.H), len(a), len(b), len(hFactors)))
	}
	bp := b.Hadamard(hFactors)
	scalars := make(Vector, 0, 2*n+1)
	scalars = append(scalars, a...)
	scalars = append(scalars, bp...)
	scalars = append(scalars, a.InnerProduct(b))
	points := make([]Commit, 0, 2*n+1)
	points = append(points, bs.G...)
	points = append(points, bs.H...)
	points = append(points, bs.Q)
	return multiScalarMul(scalars, points)
}
