package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainTypewriter(t *testing.T, tw *typewriter) {
	t.Helper()
	for i := 0; i < 1000 && !tw.Done(); i++ {
		tw.Update(typewriterTickMsg{id: tw.id})
	}
	require.True(t, tw.Done(), "typewriter never finished")
}

func TestTypewriter_RevealsOneRunePerTick(t *testing.T) {
	tw := newTypewriter("abc")
	require.NotNil(t, tw.Start())

	assert.NotContains(t, tw.View(), "abc")
	tw.Update(typewriterTickMsg{id: tw.id})
	assert.Contains(t, tw.View(), "a")
	tw.Update(typewriterTickMsg{id: tw.id})
	tw.Update(typewriterTickMsg{id: tw.id})

	assert.True(t, tw.Done())
	assert.Equal(t, "abc", tw.View())
}

func TestTypewriter_StaleTickIgnored(t *testing.T) {
	tw := newTypewriter("first")
	tw.Start()
	staleID := tw.id

	tw.SetText("second headline")
	tw.Update(typewriterTickMsg{id: staleID})
	assert.Equal(t, 0, tw.shown, "stale tick must not advance the new text")
}

func TestTypewriter_Skip(t *testing.T) {
	tw := newTypewriter("Your Global Pathway Report")
	tw.Start()
	tw.Skip()

	assert.True(t, tw.Done())
	assert.Equal(t, "Your Global Pathway Report", tw.View())
}

func TestTypewriter_MultibyteRunes(t *testing.T) {
	tw := newTypewriter("🇩🇪 Germany")
	drainTypewriter(t, &tw)
	assert.Equal(t, "🇩🇪 Germany", tw.View())
}

func TestTypewriter_NoTickAfterDone(t *testing.T) {
	tw := newTypewriter("x")
	tw.Start()
	cmd := tw.Update(typewriterTickMsg{id: tw.id})
	assert.Nil(t, cmd)
	assert.Nil(t, tw.Start())
}
