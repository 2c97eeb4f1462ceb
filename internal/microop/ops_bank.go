package microop

import "github.com/bdwalton/cdc160a/internal/machine"

// Bank-control micro-operations: plain bank-control sets and the
// combinations that also jump to [A] in the newly selected relative
// bank. Grounded on Microinstructions.py's set_*_bank_from_e family.

var SetBufBankFromE Op = wrap(func(h *machine.Hardware) { h.Storage.SetBufferBankFromE() })
var SetDirBankFromE Op = wrap(func(h *machine.Hardware) { h.Storage.SetDirectBankFromE() })
var SetIndBankFromE Op = wrap(func(h *machine.Hardware) { h.Storage.SetIndirectBankFromE() })

var SetIndDirBankFromE Op = wrap(func(h *machine.Hardware) {
	h.Storage.SetDirectBankFromE()
	h.Storage.SetIndirectBankFromE()
})

var SetRelBankFromEAndJump Op = wrap(func(h *machine.Hardware) { h.Storage.SetRelativeBankFromEAndJump() })

var SetDirRelBankFromEAndJump Op = wrap(func(h *machine.Hardware) {
	h.Storage.SetDirectBankFromE()
	h.Storage.SetRelativeBankFromEAndJump()
})

var SetIndRelBankFromEAndJump Op = wrap(func(h *machine.Hardware) {
	h.Storage.SetIndirectBankFromE()
	h.Storage.SetRelativeBankFromEAndJump()
})

var SetDirIndRelBankFromEAndJump Op = wrap(func(h *machine.Hardware) {
	h.Storage.SetDirectBankFromE()
	h.Storage.SetIndirectBankFromE()
	h.Storage.SetRelativeBankFromEAndJump()
})
