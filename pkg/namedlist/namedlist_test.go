package namedlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverpoint/coverpoint/pkg/namedlist"
)

type namedInt struct {
	name  string
	value int
}

func (n *namedInt) PlayerName() string { return n.name }

func TestGet_Missing(t *testing.T) {
	t.Parallel()

	list := namedlist.New[*namedInt]()

	item, ok := list.Get("absent")

	assert.False(t, ok)
	assert.Nil(t, item)
}

func TestGetOrAdd_CreatesOnce(t *testing.T) {
	t.Parallel()

	list := namedlist.New[*namedInt]()
	created := 0

	first, existed := list.GetOrAdd("a", func() *namedInt {
		created++

		return &namedInt{name: "a", value: 1}
	})

	require.False(t, existed)

	second, existed := list.GetOrAdd("a", func() *namedInt {
		created++

		return &namedInt{name: "a", value: 2}
	})

	assert.True(t, existed)
	assert.Same(t, first, second)
	assert.Equal(t, 1, created)
}

func TestItems_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	list := namedlist.New[*namedInt]()
	names := []string{"c", "a", "b"}

	for i, name := range names {
		list.Append(&namedInt{name: name, value: i})
	}

	require.Equal(t, len(names), list.Len())

	for i, item := range list.Items() {
		assert.Equal(t, names[i], item.PlayerName())
		assert.Same(t, item, list.At(i))
	}
}
