package playbp

// Implements the Inner Product Argument from bulletproof
// paper https://eprint.iacr.org/2017/1066.pdf
//
// Goal is to prove, from public input G,H \in G^n, Q and P \in G, that the
// prover knows a and b \in Z^n such that
//
//	P = <a,G> + <b,H'> + <a,b>*Q
//
// without revealing a or b, where H'_i = H_i * f_i for a public vector of
// rescaling factors f. The proof is logarithmic in n: each round the prover
// halves the vectors after committing to the two cross terms L and R, and
// the verifier redoes the same halving on the exponents only, checking
// everything in one final multiscalar multiplication.

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

// ErrInvalidProof is returned by Verify for any proof that does not check
// out. Verification deliberately does not say why a proof failed.
var ErrInvalidProof = errors.New("playbp: invalid proof")

// Proof is the result of the folding rounds: one pair of cross term
// commitments per round plus the two fully folded scalars. The challenges
// are not part of the proof, the verifier re-derives them from the
// transcript.
type Proof struct {
	L []Commit
	R []Commit
	A Element
	B Element
}

// NewProof proves that P = <a,G> + <b,H'> + <a,b>*Q where H'_i is
// hs_i * hFactors_i. The commitment P itself is not needed to prove, only to
// verify; an enclosing protocol typically computed it before calling here,
// absorbing it into the transcript on the way. All vectors must have the
// same power of two length; anything else is a caller bug and panics. The
// input slices are left untouched, the prover folds its own copies.
//
// The transcript is mutated: each round absorbs the two compressed cross
// commitments and draws one challenge, so the verifier must start from a
// transcript in the exact same state as t was on entry.
func NewProof(t *Transcript, q Commit, hFactors Vector, gs, hs []Commit, a, b Vector) Proof {
	n := len(gs)
	if len(hs) != n || len(a) != n || len(b) != n || len(hFactors) != n {
		panic(fmt.Sprintf("playbp: mismatched input lengths %d %d %d %d %d",
			len(gs), len(hs), len(a), len(b), len(hFactors)))
	}
	if n == 0 || n&(n-1) != 0 {
		panic(fmt.Sprintf("playbp: vector length %d is not a power of two", n))
	}

	// fold the factors into H right away so the loop only sees H'
	hp := make([]Commit, n)
	for i, h := range hs {
		hp[i] = Group.Point().Mul(hFactors[i], h)
	}
	gp := make([]Commit, n)
	for i, g := range gs {
		gp[i] = g.Clone()
	}
	av := a.Clone()
	bv := b.Clone()

	lgn := bits.TrailingZeros(uint(n))
	proof := Proof{
		L: make([]Commit, 0, lgn),
		R: make([]Commit, 0, lgn),
	}

	for n > 1 {
		n = n / 2
		al, ar := av[:n], av[n:]
		bl, br := bv[:n], bv[n:]
		gl, gr := gp[:n], gp[n:]
		hl, hr := hp[:n], hp[n:]

		cl := al.InnerProduct(br)
		cr := ar.InnerProduct(bl)

		// L = <a_L, G_R> + <b_R, H_L> + c_L * Q
		// R = <a_R, G_L> + <b_L, H_R> + c_R * Q
		left := crossCommit(al, br, cl, gr, hl, q)
		right := crossCommit(ar, bl, cr, gl, hr, q)
		proof.L = append(proof.L, left)
		proof.R = append(proof.R, right)

		t.Commit(compress(left))
		t.Commit(compress(right))
		x := t.ChallengeScalar()
		xinv := NewElement().Inv(x)

		// fold the two halves into the low one:
		// a_L[i] = a_L[i]*x + xinv*a_R[i]
		// b_L[i] = b_L[i]*xinv + x*b_R[i]
		// G_L[i] = xinv*G_L[i] + x*G_R[i]
		// H_L[i] = x*H_L[i] + xinv*H_R[i]
		for i := 0; i < n; i++ {
			al[i] = NewElement().Add(NewElement().Mul(al[i], x), NewElement().Mul(xinv, ar[i]))
			bl[i] = NewElement().Add(NewElement().Mul(bl[i], xinv), NewElement().Mul(x, br[i]))
			gl[i] = NewCommit().Add(Group.Point().Mul(xinv, gl[i]), Group.Point().Mul(x, gr[i]))
			hl[i] = NewCommit().Add(Group.Point().Mul(x, hl[i]), Group.Point().Mul(xinv, hr[i]))
		}

		av, bv = al, bl
		gp, hp = gl, hl
	}

	proof.A = av[0]
	proof.B = bv[0]
	return proof
}

// crossCommit computes <as, gps> + <bs, hps> + c * Q as one multiscalar
// multiplication over the concatenated lists.
func crossCommit(as, bs Vector, c Element, gps, hps []Commit, q Commit) Commit {
	scalars := make(Vector, 0, len(as)+len(bs)+1)
	scalars = append(scalars, as...)
	scalars = append(scalars, bs...)
	scalars = append(scalars, c)
	points := make([]Commit, 0, len(gps)+len(hps)+1)
	points = append(points, gps...)
	points = append(points, hps...)
	points = append(points, q)
	return multiScalarMul(scalars, points)
}

// Verify checks the proof against the commitment P, using the same Q, gs, hs
// and hFactors as at proving time and a transcript in the same state the
// prover started from. It returns nil for a valid proof and ErrInvalidProof
// for anything else: a diverging transcript or tampered proof manifests as a
// mismatched commitment, never as a distinct error.
func (p Proof) Verify(t *Transcript, hFactors Vector, P, q Commit, gs, hs []Commit) error {
	lgn := len(p.L)
	if len(p.R) != lgn || lgn >= 32 {
		return ErrInvalidProof
	}
	n := 1 << uint(lgn)
	if len(gs) != n || len(hs) != n || len(hFactors) != n {
		return ErrInvalidProof
	}

	// replay the transcript to recover the challenge of each round
	challenges := make(Vector, 0, lgn)
	for i := range p.L {
		t.Commit(compress(p.L[i]))
		t.Commit(compress(p.R[i]))
		challenges = append(challenges, t.ChallengeScalar())
	}

	inv, allinv := batchInvert(challenges)
	sq := make(Vector, lgn)
	invsq := make(Vector, lgn)
	for i := range challenges {
		sq[i] = NewElement().Mul(challenges[i], challenges[i])
		invsq[i] = NewElement().Mul(inv[i], inv[i])
	}

	s := foldedScalars(sq, allinv, n)

	// one big check: P == <a*s, G> + <b/s o f, H> + a*b*Q - SUM x_j^2 L_j
	// - SUM x_j^-2 R_j. The inverse of s_i is s_(n-1-i) so no extra
	// inversions are needed.
	scalars := make(Vector, 0, 2*n+2*lgn+1)
	points := make([]Commit, 0, 2*n+2*lgn+1)
	scalars = append(scalars, NewElement().Mul(p.A, p.B))
	points = append(points, q)
	for i := 0; i < n; i++ {
		scalars = append(scalars, NewElement().Mul(p.A, s[i]))
		points = append(points, gs[i])
	}
	for i := 0; i < n; i++ {
		bs := NewElement().Mul(p.B, s[n-1-i])
		scalars = append(scalars, bs.Mul(bs, hFactors[i]))
		points = append(points, hs[i])
	}
	for j := 0; j < lgn; j++ {
		scalars = append(scalars, NewElement().Neg(sq[j]))
		points = append(points, p.L[j])
		scalars = append(scalars, NewElement().Neg(invsq[j]))
		points = append(points, p.R[j])
	}

	expected := multiScalarMul(scalars, points)
	if !expected.Equal(P) {
		return ErrInvalidProof
	}
	return nil
}

// foldedScalars expands the squared round challenges into the coefficient
// s_i that each original G_i generator ends up with after all the folding
// rounds:
//
//	s_i = allinv * PROD_(j : bit j of i is set) sq_j
//
// where allinv is the product of all the inverse challenges. The challenges
// live in sq in creation order, and the mapping is reversed: bit 0 of i
// selects the challenge of the *last* round, since the last halving is the
// one that separated neighbouring indices.
func foldedScalars(sq Vector, allinv Element, n int) Vector {
	lgn := len(sq)
	s := make(Vector, 0, n)
	for i := 0; i < n; i++ {
		si := allinv.Clone()
		for j := 0; j < lgn; j++ {
			if (i>>uint(j))&1 == 1 {
				si = si.Mul(si, sq[lgn-1-j])
			}
		}
		s = append(s, si)
	}
	return s
}
