package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileConversation(t *testing.T) {
	state, effect := Start(ConversationCreateFile, nil)
	require.True(t, state.Active)
	assert.Equal(t, 1, state.Step)
	assert.Equal(t, EffectPrompt, effect.Kind)
	assert.Contains(t, effect.Message, "php, py")

	state, effect = Advance(state, "exe")
	assert.Equal(t, EffectReprompt, effect.Kind)
	assert.Equal(t, 1, state.Step)
	assert.Empty(t, state.Slots)

	state, effect = Advance(state, "txt")
	assert.Equal(t, EffectPrompt, effect.Kind)
	assert.Equal(t, 2, state.Step)

	state, _ = Advance(state, "My File!")
	assert.Equal(t, 3, state.Step)
	assert.Equal(t, "MyFile", state.Slots.Value(SlotName))

	state, effect = Advance(state, "empty")
	assert.Equal(t, 4, state.Step)
	content, ok := state.Slots.Get(SlotContent)
	assert.True(t, ok)
	assert.Equal(t, "", content)
	assert.Contains(t, effect.Message, "Filename: MyFile.txt")
	assert.Contains(t, effect.Message, "Content: (empty)")
	assert.Equal(t, []string{SlotExtension, SlotName, SlotContent}, state.Slots.Names())

	state, effect = Advance(state, "cancel")
	assert.Equal(t, EffectCancelled, effect.Kind)
	assert.Nil(t, effect.Action)
	assert.Equal(t, EmptyState(), state)
}

func TestCreateFileConversation_Confirm(t *testing.T) {
	state, _ := Start(ConversationCreateFile, nil)
	for _, input := range []string{".MD", "todo-list", "buy milk"} {
		state, _ = Advance(state, input)
	}

	state, effect := Advance(state, "haan")
	require.Equal(t, EffectDispatch, effect.Kind)
	require.NotNil(t, effect.Action)
	assert.Equal(t, Action{Kind: ActionCreateFile, Filename: "todo-list.md", Content: "buy milk"}, *effect.Action)
	assert.Equal(t, EmptyState(), state)
}

func TestCreateFileConversation_NameOnlyDisallowedChars(t *testing.T) {
	state, _ := Start(ConversationCreateFile, nil)
	state, _ = Advance(state, "txt")

	state, effect := Advance(state, "!!!")
	assert.Equal(t, EffectReprompt, effect.Kind)
	assert.Equal(t, 2, state.Step)
}

func TestEmailConversation(t *testing.T) {
	state, _ := Start(ConversationEmail, nil)

	state, effect := Advance(state, "not-an-email")
	assert.Equal(t, EffectReprompt, effect.Kind)
	assert.Equal(t, 1, state.Step)

	state, effect = Advance(state, "a@b.com")
	assert.Equal(t, EffectPrompt, effect.Kind)
	assert.Equal(t, 2, state.Step)

	state, effect = Advance(state, "   ")
	assert.Equal(t, EffectReprompt, effect.Kind)
	assert.Equal(t, 2, state.Step)

	state, _ = Advance(state, "Weekly report")
	state, effect = Advance(state, "All good this week.")
	assert.Equal(t, 4, state.Step)
	assert.Contains(t, effect.Message, "To: a@b.com")

	state, effect = Advance(state, "send")
	require.Equal(t, EffectDispatch, effect.Kind)
	assert.Equal(t, Action{
		Kind:    ActionSendEmail,
		To:      "a@b.com",
		Subject: "Weekly report",
		Body:    "All good this week.",
	}, *effect.Action)
	assert.False(t, state.Active)
}

func TestEmailConversation_Aborted(t *testing.T) {
	state, _ := Start(ConversationEmail, nil)
	for _, input := range []string{"a@b.com", "Subject", "Body"} {
		state, _ = Advance(state, input)
	}

	state, effect := Advance(state, "nope")
	assert.Equal(t, EffectAborted, effect.Kind)
	assert.Equal(t, "Email cancelled. How can I help you?", effect.Message)
	assert.Nil(t, effect.Action)
	assert.Equal(t, EmptyState(), state)
}

func TestConfirmStep_SubstringQuirk(t *testing.T) {
	state, _ := Start(ConversationDeleteFile, map[string]string{SlotFilename: "old.txt"})

	// "thanks" contém "han"
	_, effect := Advance(state, "no thanks")
	assert.Equal(t, EffectDispatch, effect.Kind)
}

func TestEditFileConversation(t *testing.T) {
	state, _ := Start(ConversationEditFile, nil)

	state, effect := Advance(state, "notes")
	assert.Equal(t, EffectReprompt, effect.Kind)
	assert.Equal(t, 1, state.Step)

	state, effect = Advance(state, "notes.txt")
	require.Equal(t, EffectDispatch, effect.Kind)
	assert.Equal(t, Action{Kind: ActionOpenEditor, Filename: "notes.txt"}, *effect.Action)
	assert.Equal(t, EmptyState(), state)
}

func TestStart_PrefilledFilename(t *testing.T) {
	state, effect := Start(ConversationEditFile, map[string]string{SlotFilename: "a.txt"})
	require.Equal(t, EffectDispatch, effect.Kind)
	assert.Equal(t, ActionOpenEditor, effect.Action.Kind)
	assert.False(t, state.Active)

	// um nome pré-preenchido não passa pelo vocabulário de cancelamento
	state, effect = Start(ConversationDeleteFile, map[string]string{SlotFilename: "stop.txt"})
	assert.Equal(t, EffectPrompt, effect.Kind)
	assert.Equal(t, 2, state.Step)
	assert.Equal(t, "stop.txt", state.Slots.Value(SlotFilename))
	assert.Contains(t, effect.Message, "Are you sure you want to delete stop.txt?")
}

func TestReadFileConversation(t *testing.T) {
	state, _ := Start(ConversationReadFile, nil)

	state, effect := Advance(state, "  ")
	assert.Equal(t, EffectReprompt, effect.Kind)

	state, effect = Advance(state, "notes.txt")
	require.Equal(t, EffectDispatch, effect.Kind)
	assert.Equal(t, Action{Kind: ActionReadFile, Filename: "notes.txt"}, *effect.Action)
	assert.False(t, state.Active)
}

func TestAdvance_Inactive(t *testing.T) {
	state, effect := Advance(EmptyState(), "yes")
	assert.Equal(t, EffectIdle, effect.Kind)
	assert.Equal(t, EmptyState(), state)
}

func TestAdvance_CancelAtAnyStep(t *testing.T) {
	valid := map[ConversationKind][]string{
		ConversationEmail:      {"a@b.com", "Subject", "Body"},
		ConversationCreateFile: {"txt", "notes", "some content"},
		ConversationEditFile:   {},
		ConversationDeleteFile: {"old.txt"},
		ConversationReadFile:   {},
	}

	for kind, inputs := range valid {
		for step := 1; step <= StepCount(kind); step++ {
			state, _ := Start(kind, nil)
			for _, input := range inputs[:step-1] {
				state, _ = Advance(state, input)
			}
			require.Equal(t, step, state.Step, "%s step %d", kind, step)

			for _, cancel := range []string{"cancel", "band karo", "never mind"} {
				next, effect := Advance(state, cancel)
				assert.Equal(t, EffectCancelled, effect.Kind, "%s step %d", kind, step)
				assert.Equal(t, ConversationState{}, next, "%s step %d", kind, step)
			}
		}
	}
}

func TestSlots_CopyOnWrite(t *testing.T) {
	state, _ := Start(ConversationEmail, nil)
	first, _ := Advance(state, "a@b.com")

	a, _ := Advance(first, "Subject A")
	b, _ := Advance(first, "Subject B")

	assert.Equal(t, "Subject A", a.Slots.Value(SlotSubject))
	assert.Equal(t, "Subject B", b.Slots.Value(SlotSubject))
	assert.Len(t, first.Slots, 1)
}

func TestContentPreview(t *testing.T) {
	long := make([]rune, 120)
	for i := range long {
		long[i] = 'a'
	}
	preview := contentPreview(string(long))
	assert.Len(t, []rune(preview), 103)
	assert.Equal(t, "(empty)", contentPreview(""))
	assert.Equal(t, "short", contentPreview("short"))
}
