package playbp

import (
	"github.com/drand/kyber"
	bls "github.com/drand/kyber-bls12381"
)

// Element is a scalar of the field of the curve
type Element = kyber.Scalar

// Commit is a point on the group, used as a commitment
type Commit = kyber.Point

var Suite = bls.NewBLS12381Suite()
var Group = Suite.G1()

func NewElement() Element {
	return Group.Scalar().Zero()
}

func NewCommit() Commit {
	return Group.Point().Null()
}

var one = NewElement().SetInt64(1)
