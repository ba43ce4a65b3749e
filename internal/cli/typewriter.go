package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ssamant/pathway/internal/cli/formatter"
)

const typewriterInterval = 35 * time.Millisecond

// typewriterTickMsg advances one typewriter instance. The id guards
// against ticks from a previous headline after the text is swapped.
type typewriterTickMsg struct {
	id int
}

// typewriter reveals a headline one rune at a time, driven by tick
// messages from the event loop. Purely a display effect: Skip() or any
// completed reveal leaves the full text in place.
type typewriter struct {
	id    int
	runes []rune
	shown int
}

func newTypewriter(text string) typewriter {
	return typewriter{runes: []rune(text)}
}

// SetText swaps the headline and restarts the reveal. The id bump makes
// any in-flight tick for the old text a no-op.
func (t *typewriter) SetText(text string) tea.Cmd {
	t.id++
	t.runes = []rune(text)
	t.shown = 0
	return t.tick()
}

// Start begins revealing from the current position.
func (t *typewriter) Start() tea.Cmd {
	if t.Done() {
		return nil
	}
	return t.tick()
}

// Update consumes a tick, revealing one more rune. It returns the next
// tick command while there is more to reveal.
func (t *typewriter) Update(msg typewriterTickMsg) tea.Cmd {
	if msg.id != t.id || t.Done() {
		return nil
	}
	t.shown++
	if t.Done() {
		return nil
	}
	return t.tick()
}

// Skip reveals the full text immediately.
func (t *typewriter) Skip() {
	t.shown = len(t.runes)
}

// Done reports whether the full text is visible.
func (t *typewriter) Done() bool {
	return t.shown >= len(t.runes)
}

// View renders the revealed prefix, with a block cursor while typing.
func (t *typewriter) View() string {
	if t.Done() {
		return string(t.runes)
	}
	return string(t.runes[:t.shown]) + formatter.StyleHeader.Render("▌")
}

func (t *typewriter) tick() tea.Cmd {
	id := t.id
	return tea.Tick(typewriterInterval, func(time.Time) tea.Msg {
		return typewriterTickMsg{id: id}
	})
}
