package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
)

func TestRenderOutcome_Grammar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		delivery cricsheet.Delivery
		want     string
	}{
		{
			name:     "dot ball",
			delivery: testDelivery(0, 0, nil),
			want:     "0",
		},
		{
			name:     "boundary four",
			delivery: testDelivery(4, 4, nil),
			want:     "4",
		},
		{
			name:     "single wide",
			delivery: testDelivery(0, 1, &cricsheet.Extras{Wides: 1}),
			want:     "0wd",
		},
		{
			name:     "five wides",
			delivery: testDelivery(0, 5, &cricsheet.Extras{Wides: 5}),
			want:     "4wd",
		},
		{
			name:     "two leg byes",
			delivery: testDelivery(0, 2, &cricsheet.Extras{LegByes: 2}),
			want:     "2lb",
		},
		{
			name:     "bye",
			delivery: testDelivery(0, 1, &cricsheet.Extras{Byes: 1}),
			want:     "1b",
		},
		{
			name:     "no ball with runs",
			delivery: testDelivery(2, 3, &cricsheet.Extras{NoBalls: 1}),
			want:     "3nb",
		},
		{
			name:     "no ball with leg byes",
			delivery: testDelivery(0, 3, &cricsheet.Extras{NoBalls: 1, LegByes: 2}),
			want:     "2lb+nb",
		},
		{
			name:     "no ball with byes",
			delivery: testDelivery(0, 2, &cricsheet.Extras{NoBalls: 1, Byes: 1}),
			want:     "1b+nb",
		},
		{
			name: "bowled",
			delivery: testDelivery(0, 0, nil,
				cricsheet.WicketData{Kind: "bowled", PlayerOut: "Archer"}),
			want: "W",
		},
		{
			name: "run out going for two",
			delivery: testDelivery(1, 1, nil,
				cricsheet.WicketData{Kind: "run out", PlayerOut: "Archer"}),
			want: "1+W",
		},
		{
			name: "stumped off a wide",
			delivery: testDelivery(0, 1, &cricsheet.Extras{Wides: 1},
				cricsheet.WicketData{Kind: "stumped", PlayerOut: "Archer"}),
			want: "0wd/W",
		},
		{
			name: "retirement leaves no marker",
			delivery: testDelivery(0, 0, nil,
				cricsheet.WicketData{Kind: "retired hurt", PlayerOut: "Archer"}),
			want: "0",
		},
		{
			name:     "penalty suffix",
			delivery: testDelivery(0, 6, &cricsheet.Extras{Wides: 1, Penalty: 5}),
			want:     "0wd5p",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ball, err := newBall(tt.delivery, 0, 0, 0)
			require.NoError(t, err)

			assert.Equal(t, tt.want, ball.Outcome)
		})
	}
}

func TestNewBall_DerivedFields(t *testing.T) {
	t.Parallel()

	delivery := testDelivery(0, 7, &cricsheet.Extras{Wides: 1, LegByes: 1, Penalty: 5},
		cricsheet.WicketData{Kind: "run out", PlayerOut: "Archer"},
		cricsheet.WicketData{Kind: "bowled", PlayerOut: "Bell"},
	)

	ball, err := newBall(delivery, 2, 1, 4)
	require.NoError(t, err)

	assert.Equal(t, 1, ball.BowlingExtras)
	assert.Equal(t, 6, ball.FieldingExtras)
	assert.Equal(t, 7, ball.Extras)
	assert.Equal(t, 1, ball.BowlingRuns)
	assert.Equal(t, 1, ball.BowlingWickets)
	assert.Equal(t, 2, ball.Wickets)
	assert.Equal(t, "4.2", ball.OverBall)
	assert.False(t, ball.Legal())
	assert.False(t, ball.Faced())
}

func TestNewBall_NonBoundaryFour(t *testing.T) {
	t.Parallel()

	delivery := testDelivery(4, 4, nil)
	delivery.Runs.NonBoundary = true

	ball, err := newBall(delivery, 0, 0, 0)
	require.NoError(t, err)

	assert.False(t, ball.Boundary)
	assert.Equal(t, "4", ball.Outcome)
}

func TestNewBall_UnknownDismissalKind(t *testing.T) {
	t.Parallel()

	delivery := testDelivery(0, 0, nil,
		cricsheet.WicketData{Kind: "absconded", PlayerOut: "Archer"})

	_, err := newBall(delivery, 0, 0, 0)
	require.ErrorIs(t, err, cricsheet.ErrUnknownDismissal)
}

// testDelivery builds a delivery between fixture players with the given
// striker runs and total.
func testDelivery(batterRuns, total int, extras *cricsheet.Extras, wickets ...cricsheet.WicketData) cricsheet.Delivery {
	return cricsheet.Delivery{
		Batter:     "Archer",
		Bowler:     "Frost",
		NonStriker: "Bell",
		Runs: cricsheet.Runs{
			Batter: batterRuns,
			Extras: total - batterRuns,
			Total:  total,
		},
		Extras:  extras,
		Wickets: wickets,
	}
}
