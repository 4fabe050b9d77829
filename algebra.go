package playbp

import (
	"crypto/cipher"
)

// Vector is a vector of scalars of the field
type Vector []Element

// InnerProduct returns SUM v_i * v2_i
func (v Vector) InnerProduct(v2 Vector) Element {
	if len(v) != len(v2) {
		panic("playbp: inner product of vectors of different lengths")
	}
	acc := NewElement()
	tmp := NewElement()
	for i := range v {
		acc.Add(acc, tmp.Mul(v[i], v2[i]))
	}
	return acc
}

// Hadamard returns the vector v_i * v2_i
func (v Vector) Hadamard(v2 Vector) Vector {
	if len(v) != len(v2) {
		panic("playbp: hadamard product of vectors of different lengths")
	}
	out := make(Vector, 0, len(v))
	for i := range v {
		out = append(out, NewElement().Mul(v[i], v2[i]))
	}
	return out
}

func (v Vector) Clone() Vector {
	o := make(Vector, len(v))
	for i := range v {
		o[i] = v[i].Clone()
	}
	return o
}

// Powers returns the vector 1, x, x^2, ... x^(n-1)
func Powers(x Element, n int) Vector {
	out := make(Vector, 0, n)
	acc := one.Clone()
	for i := 0; i < n; i++ {
		out = append(out, acc.Clone())
		acc = acc.Mul(acc, x)
	}
	return out
}

// RandomVector returns a vector of n scalars picked from the given stream
func RandomVector(n int, s cipher.Stream) Vector {
	v := make(Vector, 0, n)
	for i := 0; i < n; i++ {
		v = append(v, Group.Scalar().Pick(s))
	}
	return v
}
