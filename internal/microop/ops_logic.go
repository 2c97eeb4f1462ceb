package microop

import "github.com/bdwalton/cdc160a/internal/machine"

// Logical micro-operations: AND-with-A family and the selective
// (XOR) complement family. Grounded on Microinstructions.py's
// and_*_with_a/selective_complement_* functions.

var AndEWithA Op = wrap(func(h *machine.Hardware) { h.Storage.AndEWithA() })
var AndDirectWithA Op = wrap(func(h *machine.Hardware) { h.Storage.AndSAddressWithA(h.Storage.DirectBank) })
var AndIndirectWithA Op = wrap(func(h *machine.Hardware) { h.Storage.AndSAddressWithA(h.Storage.IndirectBank) })
var AndRelativeWithA Op = wrap(func(h *machine.Hardware) { h.Storage.AndSAddressWithA(h.Storage.RelativeBank) })
var AndSpecificWithA Op = wrap(func(h *machine.Hardware) { h.Storage.AndSpecificWithA() })

var SelectiveComplementNoAddress Op = wrap(func(h *machine.Hardware) {
	h.Storage.EToZ()
	h.Storage.XorAWithZ()
})
var SelectiveComplementDirect Op = wrap(func(h *machine.Hardware) {
	h.Storage.SDirectToZ()
	h.Storage.XorAWithZ()
})
var SelectiveComplementIndirect Op = wrap(func(h *machine.Hardware) {
	h.Storage.SIndirectToZ()
	h.Storage.XorAWithZ()
})
var SelectiveComplementRelative Op = wrap(func(h *machine.Hardware) {
	h.Storage.SRelativeToZ()
	h.Storage.XorAWithZ()
})
var SelectiveComplementSpecific Op = wrap(func(h *machine.Hardware) {
	h.Storage.SpecificToZ()
	h.Storage.XorAWithZ()
})
