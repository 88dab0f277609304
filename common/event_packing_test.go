package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type counterState struct {
	Total  int
	Resets int
}

type incremented struct {
	By int
}

func (*incremented) EventType() string { return "test.Incremented" }

func (e *incremented) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("by", e.By)
	return nil
}

type reset struct{}

func (*reset) EventType() string { return "test.Reset" }

func TestPackEvent_Sequences(t *testing.T) {
	book := NewEventBook("test", uuid.New())
	assert.Equal(t, uint32(0), NextSequence(book))

	first := PackEvent(book, &incremented{By: 1})
	second := PackEvent(book, &incremented{By: 2})

	assert.Equal(t, uint32(0), first.Sequence)
	assert.Equal(t, uint32(1), second.Sequence)
	assert.False(t, first.CreatedAt.IsZero())
	require.Len(t, book.Pages, 2)
	assert.Equal(t, uint32(2), NextSequence(book))
}

func TestPackEvents(t *testing.T) {
	book := NewEventBook("test", uuid.New())
	PackEvent(book, &reset{})

	pages := PackEvents(book, &incremented{By: 1}, &reset{})
	require.Len(t, pages, 2)
	assert.Equal(t, uint32(1), pages[0].Sequence)
	assert.Equal(t, uint32(2), pages[1].Sequence)
	assert.Len(t, book.Pages, 3)
}

func TestNextSequence_NilBook(t *testing.T) {
	assert.Equal(t, uint32(0), NextSequence(nil))
}

func TestComputeRoot_Deterministic(t *testing.T) {
	a := ComputeRoot("cart", "key")
	assert.Equal(t, a, ComputeRoot("cart", "key"))
	assert.NotEqual(t, a, ComputeRoot("session", "key"))
	assert.Equal(t, uuid.Version(5), a.Version())

	session := uuid.New()
	assert.Equal(t, CartRoot(session), CartRoot(session))
	assert.NotEqual(t, CartRoot(session), CartRoot(uuid.New()))
}

func TestShortID(t *testing.T) {
	id := uuid.MustParse("12345678-9abc-def0-1234-56789abcdef0")
	assert.Equal(t, "12345678", ShortID(id))
}
