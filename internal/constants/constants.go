package constants

import "time"

// Embed accent colors.
var Color = struct {
	Primary int
	Error   int
}{
	Primary: 0xccff77,
	Error:   0xff3355,
}

// Hard limits enforced after parsing, regardless of what the command UI
// advertised upstream.
var Limit = struct {
	MaxClow    int
	MaxDice    int
	MaxDiceCmd int64
}{
	MaxClow:    5,
	MaxDice:    100,
	MaxDiceCmd: 30, // range exposed on the slash-command option
}

var WebSocketConfig = struct {
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
}{
	MaxReconnectAttempts: 5,
	ReconnectDelay:       5 * time.Second,
}

var EventPool = struct {
	MaxGoroutines int
}{
	MaxGoroutines: 16,
}

// DiceEmojis are animated die faces: 6 logical faces, 3 visual variants
// each, in face order. Dice rolls pick uniformly from the whole table so
// every face stays equally likely.
var DiceEmojis = []uint64{
	1322123824287711242, // 1
	1322123836774289418, // 1
	1322123899114094652, // 1
	1322123914792538163, // 2
	1322123925227831296, // 2
	1322123940767731812, // 2
	1322123948812537970, // 3
	1322123957859782738, // 3
	1322123970840887399, // 3
	1322123979741331487, // 4
	1322123988956348426, // 4
	1322124002109689927, // 4
	1322124013547425792, // 5
	1322124022925758564, // 5
	1322124031612289055, // 5
	1322124040051232798, // 6
	1322124049245012049, // 6
	1322124059869184021, // 6
}

// MagicBookEmojiID decorates the card-detail buttons.
const MagicBookEmojiID uint64 = 1312304913455517737

// CardImageChannelID is the CDN attachment channel hosting card artwork.
const CardImageChannelID uint64 = 953801841412538368
