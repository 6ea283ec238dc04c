package board

// This file contains some sample positions, used solely for testing.

const (
	// EmptyBoard has no pieces at all.
	EmptyBoard = "xxxxxxxxxxxxxxxxxxxxxxx"

	// MillThreat: White holds 0 and 1 and completes the bottom mill by
	// playing 2. Black has two free pieces at 10 and 15.
	MillThreat = "WWxxxxxxxxBxxxxBxxxxxxx"

	// AllBlackMilled: same White threat, but every Black piece sits in the
	// 14-15-16 mill.
	AllBlackMilled = "WWxxxxxxxxxxxxBBBxxxxxx"

	// WhiteFlying: White is down to three pieces (0, 4, 21) against four
	// Black pieces.
	WhiteFlying = "WxxxWxxxxxBBBxxBxxxxxWx"

	// Midgame is a crowded position with sliding moves for both sides.
	Midgame = "WWBxWBxWBBxWxBWxBWxBxWx"

	// BlackDown is a midgame position where Black is reduced to two pieces.
	BlackDown = "WWxWxxWxxBxxxxxxxxxxBxx"

	// WhiteDown is BlackDown with the colours swapped.
	WhiteDown = "BBxBxxBxxWxxxxxxxxxxWxx"
)
