package router

// Named keys occupy the range above valid Unicode (0x10FFFF), so a
// zrev key record's `key` field can carry either a codepoint (for
// printable keys, including Space = 0x20) or one of these values,
// without a separate discriminant.
const namedKeyBase uint32 = 0x110000

const (
	KeyEnter uint32 = namedKeyBase + iota
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

const keySpace uint32 = 0x20
