package playbp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscriptDeterministic(t *testing.T) {
	t1 := NewTranscript("test")
	t2 := NewTranscript("test")
	t1.Commit([]byte("commitment"))
	t2.Commit([]byte("commitment"))
	require.True(t, t1.ChallengeScalar().Equal(t2.ChallengeScalar()))
	// challenges chain: the next one differs from the first but still
	// matches between the two transcripts
	c1 := t1.ChallengeScalar()
	c2 := t2.ChallengeScalar()
	require.True(t, c1.Equal(c2))
}

func TestTranscriptDivergence(t *testing.T) {
	base := NewTranscript("test")
	base.Commit([]byte("commitment"))
	c := base.ChallengeScalar()

	label := NewTranscript("another")
	label.Commit([]byte("commitment"))
	require.False(t, c.Equal(label.ChallengeScalar()))

	extra := NewTranscript("test")
	extra.Commit([]byte("commitment"))
	extra.Commit([]byte("more"))
	require.False(t, c.Equal(extra.ChallengeScalar()))

	data := NewTranscript("test")
	data.Commit([]byte("commitmenu"))
	require.False(t, c.Equal(data.ChallengeScalar()))
}
