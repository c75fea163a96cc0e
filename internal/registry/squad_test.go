package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverpoint/coverpoint/internal/registry"
)

const (
	testTeam       = "Alphaland"
	testOpener     = "A Opener"
	testOpenerLong = "Alpha Opener"
	testSubName    = "A Twelfth"
)

func testInfos() map[string]registry.PlayerInfo {
	return map[string]registry.PlayerInfo{
		testOpener: {
			CardLong:     testOpener,
			KnownAs:      testOpenerLong,
			MobileName:   "Opener",
			ObjectID:     101,
			BattingStyle: "rhb",
			Keeper:       true,
		},
		"A Anchor": {
			CardLong:   "A Anchor",
			KnownAs:    "Alpha Anchor",
			MobileName: "Anchor",
			ObjectID:   102,
		},
	}
}

func TestPlaying_AddsNewPlayersInOrder(t *testing.T) {
	t.Parallel()

	squad := registry.NewSquad(testTeam)

	eleven, err := squad.Playing([]string{testOpener, "A Anchor"}, testInfos())

	require.NoError(t, err)
	require.Len(t, eleven, 2)
	assert.Equal(t, testOpener, eleven[0].Name)
	assert.Equal(t, testOpenerLong, eleven[0].LongName)
	assert.Equal(t, testTeam, eleven[0].Team)
	assert.Equal(t, 2, squad.Len())
}

func TestPlaying_UnknownNameFails(t *testing.T) {
	t.Parallel()

	squad := registry.NewSquad(testTeam)

	_, err := squad.Playing([]string{"Nobody"}, testInfos())

	assert.ErrorIs(t, err, registry.ErrUnknownPlayer)
}

func TestSquad_GrowsNeverShrinks(t *testing.T) {
	t.Parallel()

	squad := registry.NewSquad(testTeam)
	_, err := squad.Playing([]string{testOpener}, testInfos())
	require.NoError(t, err)

	sub := squad.Add(registry.PlayerInfo{CardLong: testSubName, KnownAs: "Alpha Twelfth"})

	got, ok := squad.Get(testSubName)
	require.True(t, ok)
	assert.Same(t, sub, got)
	assert.Equal(t, 2, squad.Len())
}

func TestFeed_SubstituteAndKeeper(t *testing.T) {
	t.Parallel()

	feed := &registry.Feed{
		Teams:       map[string]map[string]registry.PlayerInfo{testTeam: testInfos()},
		Substitutes: []registry.PlayerInfo{{CardLong: testSubName}},
	}

	info, err := feed.Substitute(testSubName)
	require.NoError(t, err)
	assert.Equal(t, testSubName, info.CardLong)

	_, err = feed.Substitute("Nobody")
	assert.ErrorIs(t, err, registry.ErrUnknownPlayer)

	assert.Equal(t, testOpener, feed.Keeper(testTeam))
	assert.Empty(t, feed.Keeper("Betastan"))
}

func TestPlayer_Same(t *testing.T) {
	t.Parallel()

	a := &registry.Player{Name: testOpener, Team: testTeam}
	b := &registry.Player{Name: testOpener, Team: "Betastan"}

	assert.True(t, a.Same(b))
	assert.False(t, a.Same(nil))
	assert.False(t, a.Same(&registry.Player{Name: "A Anchor"}))
}
