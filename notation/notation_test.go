package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/isolation/isolation"
)

func TestSquare(t *testing.T) {
	c := isolation.New(isolation.Config{}).Config()
	cases := []struct {
		in  string
		loc isolation.Location
	}{
		{"a1", 0},
		{"k1", 10},
		{"a2", 13},
		{"f5", 57},
		{"k9", 114},
	}
	for _, tc := range cases {
		l, err := ParseSquare(c, tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.loc, l, tc.in)
		assert.Equal(t, tc.in, FormatSquare(c, l))
	}

	for _, bad := range []string{"", "l1", "a0", "a10", "A1", "a", "11"} {
		_, err := ParseSquare(c, bad)
		assert.ErrorIs(t, err, ErrBadSquare, bad)
	}
	assert.Equal(t, "-", FormatSquare(c, isolation.NoLocation))
}

func TestMoves(t *testing.T) {
	p := isolation.New(isolation.Config{})
	ms, err := ParseMoves(p.Config(), "f5 a1 g7 b3")
	require.NoError(t, err)
	assert.Equal(t, []isolation.Action{57, 0, 84, 27}, ms)
	assert.Equal(t, "f5 a1 g7 b3", FormatMoves(p.Config(), ms))

	end, err := Replay(p, ms)
	require.NoError(t, err)
	assert.Equal(t, 4, end.PlyCount())
	assert.Equal(t, isolation.Location(84), end.Loc(isolation.Player1))
	assert.Equal(t, isolation.Location(27), end.Loc(isolation.Player2))

	_, err = Replay(p, []isolation.Action{57, 57})
	assert.ErrorIs(t, err, isolation.ErrIllegalAction)
}

func TestPosition(t *testing.T) {
	p := isolation.New(isolation.Config{})
	ms, err := ParseMoves(p.Config(), "f5 a1 g7 b3 h9 c5")
	require.NoError(t, err)
	p, err = Replay(p, ms)
	require.NoError(t, err)

	s := FormatPosition(p)
	assert.True(t, strings.HasSuffix(s, " 6"), s)
	rows := strings.Split(strings.Fields(s)[0], "/")
	assert.Len(t, rows, 9)
	assert.Equal(t, ".......1...", rows[0])
	assert.Equal(t, "x..........", rows[8])

	back, err := ParsePosition(s)
	require.NoError(t, err)
	assert.Equal(t, s, FormatPosition(back))
	assert.Equal(t, p.Actions(), back.Actions())
	assert.Equal(t, p.Loc(isolation.Player1), back.Loc(isolation.Player1))
	assert.Equal(t, p.Loc(isolation.Player2), back.Loc(isolation.Player2))
}

func TestParsePositionErrors(t *testing.T) {
	cases := []string{
		"",
		"... 1 2",
		".../.. 0",
		"..?/... 0",
		"1../..1 2",
		"... -1",
		"/ 0",
		"/... 0",
		".../ 0",
		"1../... 5",
		"1../..2 1",
		"... 1",
		"1.. 0",
	}
	for _, tc := range cases {
		_, err := ParsePosition(tc)
		assert.Error(t, err, "%q", tc)
	}
	p, err := ParsePosition("..x/.1./2.. 3")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Width())
	assert.Equal(t, isolation.Player2, p.ToMove())
	assert.False(t, p.IsOpen(p.Config().Square(2, 2)))

	p, err = ParsePosition("1../... 1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Width())
	assert.Equal(t, 2, p.Height())
	assert.Equal(t, isolation.NoLocation, p.Loc(isolation.Player2))
}

func TestRecord(t *testing.T) {
	text := `[Size "11x9"]
[Player1 "agent:4"]
[Player2 "greedy"]

1. f5 a1
2. g7 b3
1-0
`
	rec, err := ParseRecord(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, "agent:4", rec.FindTag("Player1"))
	assert.Equal(t, []string{"f5", "a1", "g7", "b3"}, rec.Moves)
	assert.Equal(t, "1-0", rec.Result)
	assert.Equal(t, text, rec.Render())

	p, err := rec.Position()
	require.NoError(t, err)
	assert.Equal(t, 4, p.PlyCount())

	rec.SetTag("Size", "3x3")
	_, err = rec.Position()
	assert.Error(t, err, "moves off a 3x3 board")

	_, err = ParseRecord(strings.NewReader("1. f5 zz"))
	assert.Error(t, err)
}

func TestParseSize(t *testing.T) {
	c, err := ParseSize("7x5")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Width)
	assert.Equal(t, 5, c.Height)
	for _, bad := range []string{"7", "ax5", "30x30"} {
		_, err := ParseSize(bad)
		assert.Error(t, err, bad)
	}
}
