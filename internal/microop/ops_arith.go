package microop

import "github.com/bdwalton/cdc160a/internal/machine"

// Arithmetic micro-operations: the add/subtract family addressed via
// E or S in a given bank, the replace-add and replace-add-one
// families, and the shift-and-add multiplies. Grounded on
// Microinstructions.py's add_*_to_a/subtract_*_from_a/replace_add*/
// multiply_a_by_10/100 functions.

var AddEToA Op = wrap(func(h *machine.Hardware) { h.Storage.AddEToA() })
var AddDirectToA Op = wrap(func(h *machine.Hardware) { h.Storage.AddSAddressToA(h.Storage.DirectBank) })
var AddIndirectToA Op = wrap(func(h *machine.Hardware) { h.Storage.AddSAddressToA(h.Storage.IndirectBank) })
var AddRelativeToA Op = wrap(func(h *machine.Hardware) { h.Storage.AddSAddressToA(h.Storage.RelativeBank) })

// AddSpecificToA adds the value at 7777(0) to A. S must already hold
// 0o7777, set by the specific effective address mode.
var AddSpecificToA Op = wrap(func(h *machine.Hardware) { h.Storage.AddSAddressToA(0) })

var SubtractEFromA Op = wrap(func(h *machine.Hardware) { h.Storage.SubtractEFromA() })
var SubtractDirectFromA Op = wrap(func(h *machine.Hardware) { h.Storage.SubtractSAddressFromA(h.Storage.DirectBank) })
var SubtractIndirectFromA Op = wrap(func(h *machine.Hardware) { h.Storage.SubtractSAddressFromA(h.Storage.IndirectBank) })
var SubtractRelativeFromA Op = wrap(func(h *machine.Hardware) { h.Storage.SubtractSAddressFromA(h.Storage.RelativeBank) })
var SubtractSpecificFromA Op = wrap(func(h *machine.Hardware) { h.Storage.SubtractSpecificFromA() })

// replaceAdd adds [S](bank) to A and stores the result back to
// [S](bank), per Microinstructions.py's replace_add.
func replaceAdd(h *machine.Hardware, bank uint8) {
	h.Storage.AddSAddressToA(bank)
	h.Storage.StoreA(bank)
}

var ReplaceAddDirect Op = wrap(func(h *machine.Hardware) { replaceAdd(h, h.Storage.DirectBank) })
var ReplaceAddIndirect Op = wrap(func(h *machine.Hardware) { replaceAdd(h, h.Storage.IndirectBank) })
var ReplaceAddRelative Op = wrap(func(h *machine.Hardware) { replaceAdd(h, h.Storage.RelativeBank) })
var ReplaceAddSpecific Op = wrap(func(h *machine.Hardware) { replaceAdd(h, 0) })

// ReplaceAddOne* compute 1 + [S](bank) -> A and [S](bank).
var ReplaceAddOneDirect Op = wrap(func(h *machine.Hardware) {
	h.Storage.SDirectToA()
	h.Storage.AddToA(1)
	h.Storage.AToSDirect()
})
var ReplaceAddOneIndirect Op = wrap(func(h *machine.Hardware) {
	h.Storage.SIndirectToA()
	h.Storage.AddToA(1)
	h.Storage.AToSIndirect()
})
var ReplaceAddOneRelative Op = wrap(func(h *machine.Hardware) {
	h.Storage.SRelativeToA()
	h.Storage.AddToA(1)
	h.Storage.AToSRelative()
})
var ReplaceAddOneSpecific Op = wrap(func(h *machine.Hardware) {
	h.Storage.SpecificToA()
	h.Storage.AddToA(1)
	h.Storage.AToSpecific()
})

var MultiplyABy10 Op = wrap(func(h *machine.Hardware) { h.Storage.ATimes10() })
var MultiplyABy100 Op = wrap(func(h *machine.Hardware) { h.Storage.ATimes100() })
