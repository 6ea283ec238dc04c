package board

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestFromString(t *testing.T) {
	is := is.New(t)
	pos, err := FromString("WBxWBx?.zWxxxxxxxxxxxxB")
	is.NoErr(err)
	is.Equal(pos.Get(0), White)
	is.Equal(pos.Get(1), Black)
	is.Equal(pos.Get(2), Empty)
	is.Equal(pos.Get(6), Empty) // unknown characters are empty
	is.Equal(pos.Get(22), Black)
	is.Equal(pos.Count(White), 3)
	is.Equal(pos.Count(Black), 3)
	is.Equal(pos.Count(Empty), 17)
}

func TestFromStringWrongSize(t *testing.T) {
	is := is.New(t)
	for _, s := range []string{"", "WWB", EmptyBoard + "x", EmptyBoard[:22]} {
		_, err := FromString(s)
		is.True(errors.Is(err, ErrInvalidBoardSize))
	}
}

func TestStringRoundTrip(t *testing.T) {
	is := is.New(t)
	pos := MustFromString(Midgame)
	is.Equal(pos.String(), Midgame)
	again, err := FromString(pos.String())
	is.NoErr(err)
	is.Equal(again, pos)
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	pos := MustFromString(MillThreat)
	cp := pos.Copy()
	cp.Set(2, White)
	is.Equal(pos.Get(2), Empty)
	is.Equal(cp.Get(2), White)
}

func TestColorSwap(t *testing.T) {
	is := is.New(t)
	for _, s := range []string{EmptyBoard, MillThreat, AllBlackMilled, WhiteFlying, Midgame, BlackDown} {
		pos := MustFromString(s)
		swapped := pos.ColorSwap()
		is.Equal(swapped.Count(White), pos.Count(Black))
		is.Equal(swapped.Count(Black), pos.Count(White))
		is.Equal(swapped.Count(Empty), pos.Count(Empty))
		is.Equal(swapped.ColorSwap(), pos)
	}
	is.Equal(MustFromString(BlackDown).ColorSwap(), MustFromString(WhiteDown))
}

func TestNeighborsSymmetric(t *testing.T) {
	is := is.New(t)
	for i := 0; i < NumPoints; i++ {
		ns := Neighbors(i)
		is.True(len(ns) >= 2 && len(ns) <= 4)
		for _, j := range ns {
			is.True(Adjacent(j, i)) // adjacency must be symmetric
		}
	}
}

func TestMillsAreLines(t *testing.T) {
	is := is.New(t)
	membership := make([]int, NumPoints)
	for _, m := range Mills {
		ax, ay := Coords(m[0])
		bx, by := Coords(m[1])
		cx, cy := Coords(m[2])
		// the three points are collinear
		is.Equal((bx-ax)*(cy-ay), (by-ay)*(cx-ax))
		for _, p := range m {
			membership[p]++
		}
	}
	for i, n := range membership {
		is.True(n >= 1 && n <= 3) // every point belongs to one to three mills
		is.Equal(n, len(millPartners[i]))
	}
}

func TestClosesMill(t *testing.T) {
	is := is.New(t)
	pos := MustFromString(MillThreat)
	is.True(!ClosesMill(0, pos))
	is.True(!ClosesMill(2, pos)) // empty point never closes a mill

	pos.Set(2, White)
	is.True(ClosesMill(0, pos))
	is.True(ClosesMill(1, pos))
	is.True(ClosesMill(2, pos))
	is.True(!ClosesMill(10, pos))

	milled := MustFromString(AllBlackMilled)
	for _, p := range []int{14, 15, 16} {
		is.True(ClosesMill(p, milled))
	}
	// mixed colours never form a mill
	mixed := MustFromString("WWBxxxxxxxxxxxxxxxxxxxx")
	is.True(!ClosesMill(0, mixed))
	is.True(!ClosesMill(2, mixed))
}

func TestPotentialMills(t *testing.T) {
	is := is.New(t)
	is.Equal(MustFromString(EmptyBoard).PotentialMills(White), 0)
	is.Equal(MustFromString(MillThreat).PotentialMills(White), 1)
	is.Equal(MustFromString(MillThreat).PotentialMills(Black), 0)
	// 0 and 20 threaten 8; 20 and 22 threaten 21.
	is.Equal(MustFromString("WxxxxxxxxxxxxxxxxxxxWxW").PotentialMills(White), 2)
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	txt := MustFromString(MillThreat).ToDisplayText()
	is.True(strings.Contains(txt, "W: 2  B: 2"))
	is.True(strings.Contains(txt, "0| W     W     . |"))
}

func TestRenderSVG(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	RenderSVG(&buf, MustFromString(MillThreat))
	out := buf.String()
	is.True(strings.HasPrefix(out, "<?xml"))
	is.True(strings.Contains(out, "</svg>"))
	is.Equal(strings.Count(out, "<circle"), NumPoints)
}

func TestID(t *testing.T) {
	is := is.New(t)
	a := MustFromString(MillThreat)
	b := MustFromString(AllBlackMilled)
	is.Equal(len(a.ID()), 16)
	is.Equal(a.ID(), a.Copy().ID())
	is.True(a.ID() != b.ID())
}
