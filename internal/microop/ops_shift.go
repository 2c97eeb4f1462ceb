package microop

import "github.com/bdwalton/cdc160a/internal/machine"

// Rotates, arithmetic right shifts, and the shift-replace family,
// grounded on Microinstructions.py's rotate_a_left_*/shift_a_right_*/
// shift_replace_*.

var RotateALeftOne Op = wrap(func(h *machine.Hardware) { h.Storage.RotateALeftOne() })
var RotateALeftTwo Op = wrap(func(h *machine.Hardware) { h.Storage.RotateALeftTwo() })
var RotateALeftThree Op = wrap(func(h *machine.Hardware) { h.Storage.RotateALeftThree() })
var RotateALeftSix Op = wrap(func(h *machine.Hardware) { h.Storage.RotateALeftSix() })

var ShiftARightOne Op = wrap(func(h *machine.Hardware) { h.Storage.ShiftARightOne() })
var ShiftARightTwo Op = wrap(func(h *machine.Hardware) { h.Storage.ShiftARightTwo() })

// ShiftReplace* loads [S](bank) into A, rotates it left one, and
// stores it back, per Microinstructions.py's shift_replace_*.
var ShiftReplaceDirect Op = wrap(func(h *machine.Hardware) {
	h.Storage.SDirectToA()
	h.Storage.RotateALeftOne()
	h.Storage.AToSDirect()
})
var ShiftReplaceIndirect Op = wrap(func(h *machine.Hardware) {
	h.Storage.SIndirectToA()
	h.Storage.RotateALeftOne()
	h.Storage.AToSIndirect()
})
var ShiftReplaceRelative Op = wrap(func(h *machine.Hardware) {
	h.Storage.SRelativeToA()
	h.Storage.RotateALeftOne()
	h.Storage.AToSRelative()
})
var ShiftReplaceSpecific Op = wrap(func(h *machine.Hardware) {
	h.Storage.SpecificToA()
	h.Storage.RotateALeftOne()
	h.Storage.AToSpecific()
})
