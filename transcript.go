package playbp

import (
	"github.com/gtank/merlin"
)

// Transcript implements the Fiat-Shamir transform over a merlin transcript:
// the prover absorbs its commitments in order and draws each challenge as a
// function of everything absorbed so far, including anything a parent
// protocol absorbed before handing the transcript over. The verifier replays
// the exact same sequence to re-derive the same challenges.
type Transcript struct {
	m *merlin.Transcript
}

// NewTranscript returns a fresh transcript domain separated by the label. A
// proof only verifies against a transcript initialized with the same label
// and fed the same commitments in the same order as at proving time.
func NewTranscript(label string) *Transcript {
	return &Transcript{m: merlin.NewTranscript(label)}
}

// Commit absorbs the given bytes into the transcript state. It is append
// only: there is no way to undo a commitment.
func (t *Transcript) Commit(data []byte) {
	t.m.AppendMessage([]byte("commit"), data)
}

// ChallengeScalar derives a scalar bound to every commitment absorbed so
// far. The merlin output seeds an XOF so the scalar is uniform in the field
// whatever the suite.
func (t *Transcript) ChallengeScalar() Element {
	buff := t.m.ExtractBytes([]byte("challenge"), 32)
	return Group.Scalar().Pick(Suite.XOF(buff))
}
