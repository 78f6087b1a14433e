package app_test

import (
	"github.com/zireael-ui/zireael/backend"
	"github.com/zireael-ui/zireael/router"
	"github.com/zireael-ui/zireael/zrwire"
)

var tabKey = router.KeyTab

// pushKeyBatch encodes a single key-down record into a well-formed
// ZREV v1 batch and delivers it through mem's inbound stream.
func pushKeyBatch(mem *backend.Memory, key uint32, mods uint32) {
	const recordSize = 16 + 12 // header + key,mods,action
	const total = 24 + recordSize

	w := zrwire.NewWriter(total)
	w.WriteU32(0x5645525A)
	w.WriteU32(1)
	w.WriteU32(uint32(total))
	w.WriteU32(1)
	w.WriteU32(0)
	w.WriteU32(0)

	w.WriteU32(1) // recordKind = key
	w.WriteU32(uint32(recordSize))
	w.WriteU32(0) // timeMs
	w.WriteU32(0) // reserved
	w.WriteU32(key)
	w.WriteU32(mods)
	w.WriteU32(0) // action = down

	mem.PushBatch(w.Finish())
}

// pushTextBatch encodes a single text record carrying one codepoint.
func pushTextBatch(mem *backend.Memory, codepoint uint32) {
	const recordSize = 16 + 4 // header + codepoint
	const total = 24 + recordSize

	w := zrwire.NewWriter(total)
	w.WriteU32(0x5645525A)
	w.WriteU32(1)
	w.WriteU32(uint32(total))
	w.WriteU32(1)
	w.WriteU32(0)
	w.WriteU32(0)

	w.WriteU32(2) // recordKind = text
	w.WriteU32(uint32(recordSize))
	w.WriteU32(0) // timeMs
	w.WriteU32(0) // reserved
	w.WriteU32(codepoint)

	mem.PushBatch(w.Finish())
}

// pushMouseBatch encodes a single mouse record. mouseKind follows
// ZREV's 1..=5 range (3=down, 4=up, 5=wheel).
func pushMouseBatch(mem *backend.Memory, x, y, mouseKind, mods, buttons uint32, wheelX, wheelY int32) {
	const recordSize = 16 + 28 // header + x,y,mouseKind,mods,buttons,wheelX,wheelY
	const total = 24 + recordSize

	w := zrwire.NewWriter(total)
	w.WriteU32(0x5645525A)
	w.WriteU32(1)
	w.WriteU32(uint32(total))
	w.WriteU32(1)
	w.WriteU32(0)
	w.WriteU32(0)

	w.WriteU32(4) // recordKind = mouse
	w.WriteU32(uint32(recordSize))
	w.WriteU32(0) // timeMs
	w.WriteU32(0) // reserved
	w.WriteU32(x)
	w.WriteU32(y)
	w.WriteU32(mouseKind)
	w.WriteU32(mods)
	w.WriteU32(buttons)
	w.WriteI32(wheelX)
	w.WriteI32(wheelY)

	mem.PushBatch(w.Finish())
}
