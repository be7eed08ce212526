package main

const (
	zero   uint8 = iota << 1
	bishop uint8 = iota << 1
	king   uint8 = iota << 1
	knight uint8 = iota << 1
	queen  uint8 = iota << 1
	rook   uint8 = iota << 1
)

// The low bit of a kind value carries the color.
const blackBit uint8 = 1

var kindToLabel = map[uint8]string{
	bishop: "bishop",
	king:   "king",
	knight: "knight",
	queen:  "queen",
	rook:   "rook",
}
var labelToKind = map[string]uint8{
	"bishop": bishop,
	"king":   king,
	"knight": knight,
	"queen":  queen,
	"rook":   rook,
}
var labelToColor = map[string]uint8{
	"white": 0,
	"black": blackBit,
}

var kindToSymbolWhite = map[uint8]rune{
	bishop: '♗',
	king:   '♔',
	knight: '♘',
	queen:  '♕',
	rook:   '♖',
}
var kindToSymbolBlack = map[uint8]rune{
	bishop: '♝',
	king:   '♚',
	knight: '♞',
	queen:  '♛',
	rook:   '♜',
}

var knightPattern = []offset{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingPattern = []offset{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var kindToRule = map[uint8]moveRule{
	bishop: {kind: slidingRule, diagonal: true},
	king:   {kind: jumpingRule, pattern: kingPattern},
	knight: {kind: jumpingRule, pattern: knightPattern},
	queen:  {kind: slidingRule, horizontal: true, vertical: true, diagonal: true},
	rook:   {kind: slidingRule, horizontal: true, vertical: true},
}
