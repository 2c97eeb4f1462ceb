package microop

import (
	"testing"

	"github.com/bdwalton/cdc160a/internal/iounit"
	"github.com/bdwalton/cdc160a/internal/machine"
	"github.com/bdwalton/cdc160a/internal/storage"
)

func newHardware() *machine.Hardware {
	return machine.New(storage.New(nil), iounit.New())
}

func TestEToAAndComplement(t *testing.T) {
	h := newHardware()
	h.Storage.FAddress = 0o17
	EToA(h)
	if h.Storage.A != 0o17 {
		t.Fatalf("A = %o, want 017", h.Storage.A)
	}

	h.Storage.FAddress = 0o17
	EComplementToA(h)
	if h.Storage.A != 0o7760 {
		t.Fatalf("A = %o, want 7760 (one's complement of 017)", h.Storage.A)
	}
}

func TestSDirectRoundTrip(t *testing.T) {
	h := newHardware()
	h.Storage.S = 0o100
	h.Storage.A = 0o4321
	AToSDirect(h)
	h.Storage.A = 0
	SDirectToA(h)
	if h.Storage.A != 0o4321 {
		t.Fatalf("A = %o, want 4321 after store/load round trip", h.Storage.A)
	}
}

func TestSDirectComplementToA(t *testing.T) {
	h := newHardware()
	h.Storage.S = 0o100
	h.Storage.WriteDirectBank(0o100, 0o0000)
	SDirectComplementToA(h)
	if h.Storage.A != 0o7777 {
		t.Fatalf("A = %o, want 7777 (complement of +0)", h.Storage.A)
	}
}

func TestAToSIndirectAndSRelativeRoundTrip(t *testing.T) {
	h := newHardware()
	h.Storage.S = 0o200
	h.Storage.A = 0o1111
	AToSIndirect(h)
	h.Storage.A = 0
	SIndirectToA(h)
	if h.Storage.A != 0o1111 {
		t.Fatalf("indirect round trip = %o, want 1111", h.Storage.A)
	}

	h.Storage.S = 0o300
	h.Storage.A = 0o2222
	AToSRelative(h)
	h.Storage.A = 0
	SRelativeToA(h)
	if h.Storage.A != 0o2222 {
		t.Fatalf("relative round trip = %o, want 2222", h.Storage.A)
	}
}

func TestAToSpecificAndSpecificToA(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o3333
	AToSpecific(h)
	h.Storage.A = 0
	SpecificToA(h)
	if h.Storage.A != 0o3333 {
		t.Fatalf("specific round trip = %o, want 3333", h.Storage.A)
	}
}

func TestComplementA(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o5252
	ComplementA(h)
	if h.Storage.A != 0o2525 {
		t.Fatalf("A = %o, want 2525", h.Storage.A)
	}
}

func TestPToA(t *testing.T) {
	h := newHardware()
	h.Storage.P = 0o1234
	PToA(h)
	if h.Storage.A != 0o1234 {
		t.Fatalf("A = %o, want 1234", h.Storage.A)
	}
}

func TestBankControlsToA(t *testing.T) {
	h := newHardware()
	h.Storage.SetBufferStorageBank(1)
	h.Storage.SetDirectStorageBank(2)
	h.Storage.SetIndirectStorageBank(3)
	h.Storage.SetRelativeStorageBank(4)
	BankControlsToA(h)
	want := uint16(1)<<9 | uint16(2)<<6 | uint16(3)<<3 | uint16(4)
	if h.Storage.A != want {
		t.Fatalf("A = %o, want %o", h.Storage.A, want)
	}
}

func TestHalfWriteIndirect(t *testing.T) {
	h := newHardware()
	h.Storage.S = 0o400
	h.Storage.WriteIndirectBank(0o400, 0o7700)
	h.Storage.FAddress = 0o23
	HalfWriteIndirect(h)
	if got := h.Storage.ReadIndirectFromS(); got != 0o7723 {
		t.Fatalf("half-write result = %o, want 7723", got)
	}
}

func TestStoreConstantWritesAAtS(t *testing.T) {
	h := newHardware()
	h.Storage.S = 0o500
	h.Storage.A = 0o6060
	StoreConstant(h)
	if got := h.Storage.ReadRelativeBank(0o500); got != 0o6060 {
		t.Fatalf("StoreConstant wrote %o at S, want 6060", got)
	}
}

// --- Arithmetic ---

func TestAddEToA(t *testing.T) {
	h := newHardware()
	h.Storage.A = 1
	h.Storage.FAddress = 2
	AddEToA(h)
	if h.Storage.A != 3 {
		t.Fatalf("A = %o, want 3", h.Storage.A)
	}
}

func TestAddDirectIndirectRelativeSpecificToA(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o10
	h.Storage.S = 0o100
	h.Storage.WriteDirectBank(0o100, 0o1)
	AddDirectToA(h)
	if h.Storage.A != 0o11 {
		t.Fatalf("AddDirectToA: A = %o, want 011", h.Storage.A)
	}

	h.Storage.A = 0o10
	h.Storage.WriteIndirectBank(0o100, 0o1)
	AddIndirectToA(h)
	if h.Storage.A != 0o11 {
		t.Fatalf("AddIndirectToA: A = %o, want 011", h.Storage.A)
	}

	h.Storage.A = 0o10
	h.Storage.WriteRelativeBank(0o100, 0o1)
	AddRelativeToA(h)
	if h.Storage.A != 0o11 {
		t.Fatalf("AddRelativeToA: A = %o, want 011", h.Storage.A)
	}

	h.Storage.A = 0o10
	h.Storage.S = 0o7777
	h.Storage.WriteAbsolute(0, 0o7777, 0o1)
	AddSpecificToA(h)
	if h.Storage.A != 0o11 {
		t.Fatalf("AddSpecificToA: A = %o, want 011", h.Storage.A)
	}
}

func TestSubtractFamily(t *testing.T) {
	h := newHardware()
	h.Storage.A = 5
	h.Storage.FAddress = 3
	SubtractEFromA(h)
	if h.Storage.A != 2 {
		t.Fatalf("SubtractEFromA: A = %o, want 2", h.Storage.A)
	}

	h.Storage.A = 5
	h.Storage.S = 0o100
	h.Storage.WriteDirectBank(0o100, 3)
	SubtractDirectFromA(h)
	if h.Storage.A != 2 {
		t.Fatalf("SubtractDirectFromA: A = %o, want 2", h.Storage.A)
	}

	h.Storage.A = 5
	h.Storage.WriteIndirectBank(0o100, 3)
	SubtractIndirectFromA(h)
	if h.Storage.A != 2 {
		t.Fatalf("SubtractIndirectFromA: A = %o, want 2", h.Storage.A)
	}

	h.Storage.A = 5
	h.Storage.WriteRelativeBank(0o100, 3)
	SubtractRelativeFromA(h)
	if h.Storage.A != 2 {
		t.Fatalf("SubtractRelativeFromA: A = %o, want 2", h.Storage.A)
	}

	h.Storage.A = 5
	h.Storage.S = 0o7777
	h.Storage.WriteAbsolute(0, 0o7777, 3)
	SubtractSpecificFromA(h)
	if h.Storage.A != 2 {
		t.Fatalf("SubtractSpecificFromA: A = %o, want 2", h.Storage.A)
	}
}

func TestReplaceAddDirectAddsAndStoresBack(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o10
	h.Storage.S = 0o100
	h.Storage.DirectBank = 1
	h.Storage.WriteDirectBank(0o100, 0o5)
	ReplaceAddDirect(h)
	if h.Storage.A != 0o15 {
		t.Fatalf("A = %o, want 015", h.Storage.A)
	}
	if got := h.Storage.ReadDirectBank(0o100); got != 0o15 {
		t.Fatalf("[S] = %o, want 015 (replaced)", got)
	}
}

func TestReplaceAddIndirectRelativeSpecific(t *testing.T) {
	h := newHardware()
	h.Storage.A = 1
	h.Storage.S = 0o200
	h.Storage.IndirectBank = 2
	h.Storage.WriteIndirectBank(0o200, 1)
	ReplaceAddIndirect(h)
	if h.Storage.A != 2 || h.Storage.ReadIndirectBank(0o200) != 2 {
		t.Fatalf("ReplaceAddIndirect: A=%o [S]=%o, want both 2", h.Storage.A, h.Storage.ReadIndirectBank(0o200))
	}

	h.Storage.A = 1
	h.Storage.S = 0o201
	h.Storage.RelativeBank = 3
	h.Storage.WriteRelativeBank(0o201, 1)
	ReplaceAddRelative(h)
	if h.Storage.A != 2 || h.Storage.ReadRelativeBank(0o201) != 2 {
		t.Fatalf("ReplaceAddRelative: A=%o [S]=%o, want both 2", h.Storage.A, h.Storage.ReadRelativeBank(0o201))
	}

	h.Storage.A = 1
	h.Storage.S = 0o7777
	h.Storage.WriteAbsolute(0, 0o7777, 1)
	ReplaceAddSpecific(h)
	if h.Storage.A != 2 {
		t.Fatalf("ReplaceAddSpecific: A=%o, want 2", h.Storage.A)
	}
}

func TestReplaceAddOneFamily(t *testing.T) {
	h := newHardware()
	h.Storage.S = 0o100
	h.Storage.WriteDirectBank(0o100, 5)
	ReplaceAddOneDirect(h)
	if h.Storage.A != 6 || h.Storage.ReadDirectBank(0o100) != 6 {
		t.Fatalf("ReplaceAddOneDirect: A=%o [S]=%o, want both 6", h.Storage.A, h.Storage.ReadDirectBank(0o100))
	}

	h.Storage.WriteIndirectBank(0o100, 5)
	ReplaceAddOneIndirect(h)
	if h.Storage.A != 6 || h.Storage.ReadIndirectBank(0o100) != 6 {
		t.Fatalf("ReplaceAddOneIndirect: A=%o [S]=%o, want both 6", h.Storage.A, h.Storage.ReadIndirectBank(0o100))
	}

	h.Storage.WriteRelativeBank(0o100, 5)
	ReplaceAddOneRelative(h)
	if h.Storage.A != 6 || h.Storage.ReadRelativeBank(0o100) != 6 {
		t.Fatalf("ReplaceAddOneRelative: A=%o [S]=%o, want both 6", h.Storage.A, h.Storage.ReadRelativeBank(0o100))
	}

	h.Storage.S = 0o7777
	h.Storage.WriteAbsolute(0, 0o7777, 5)
	ReplaceAddOneSpecific(h)
	if h.Storage.A != 6 {
		t.Fatalf("ReplaceAddOneSpecific: A=%o, want 6", h.Storage.A)
	}
}

func TestMultiplyABy10And100(t *testing.T) {
	h := newHardware()
	h.Storage.A = 3
	MultiplyABy10(h)
	if h.Storage.A != 30 {
		t.Fatalf("3*10 = %o, want %o", h.Storage.A, uint16(30))
	}

	h.Storage.A = 3
	MultiplyABy100(h)
	if h.Storage.A != 300 {
		t.Fatalf("3*100 = %o, want %o", h.Storage.A, uint16(300))
	}
}

// --- Logic ---

func TestAndFamily(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o7777
	h.Storage.FAddress = 0o52
	AndEWithA(h)
	if h.Storage.A != 0o52 {
		t.Fatalf("AndEWithA: A = %o, want 052", h.Storage.A)
	}

	h.Storage.A = 0o7777
	h.Storage.S = 0o100
	h.Storage.WriteDirectBank(0o100, 0o52)
	AndDirectWithA(h)
	if h.Storage.A != 0o52 {
		t.Fatalf("AndDirectWithA: A = %o, want 052", h.Storage.A)
	}

	h.Storage.A = 0o7777
	h.Storage.WriteIndirectBank(0o100, 0o52)
	AndIndirectWithA(h)
	if h.Storage.A != 0o52 {
		t.Fatalf("AndIndirectWithA: A = %o, want 052", h.Storage.A)
	}

	h.Storage.A = 0o7777
	h.Storage.WriteRelativeBank(0o100, 0o52)
	AndRelativeWithA(h)
	if h.Storage.A != 0o52 {
		t.Fatalf("AndRelativeWithA: A = %o, want 052", h.Storage.A)
	}

	h.Storage.A = 0o7777
	h.Storage.S = 0o7777
	h.Storage.WriteAbsolute(0, 0o7777, 0o52)
	AndSpecificWithA(h)
	if h.Storage.A != 0o52 {
		t.Fatalf("AndSpecificWithA: A = %o, want 052", h.Storage.A)
	}
}

func TestSelectiveComplementFamily(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o0070
	h.Storage.FAddress = 0o0030
	SelectiveComplementNoAddress(h)
	if h.Storage.A != 0o0040 {
		t.Fatalf("SelectiveComplementNoAddress: A = %o, want 0040", h.Storage.A)
	}

	h.Storage.A = 0o0070
	h.Storage.S = 0o100
	h.Storage.WriteDirectBank(0o100, 0o0030)
	SelectiveComplementDirect(h)
	if h.Storage.A != 0o0040 {
		t.Fatalf("SelectiveComplementDirect: A = %o, want 0040", h.Storage.A)
	}

	h.Storage.A = 0o0070
	h.Storage.WriteIndirectBank(0o100, 0o0030)
	SelectiveComplementIndirect(h)
	if h.Storage.A != 0o0040 {
		t.Fatalf("SelectiveComplementIndirect: A = %o, want 0040", h.Storage.A)
	}

	h.Storage.A = 0o0070
	h.Storage.WriteRelativeBank(0o100, 0o0030)
	SelectiveComplementRelative(h)
	if h.Storage.A != 0o0040 {
		t.Fatalf("SelectiveComplementRelative: A = %o, want 0040", h.Storage.A)
	}

	h.Storage.A = 0o0070
	h.Storage.S = 0o7777
	h.Storage.WriteAbsolute(0, 0o7777, 0o0030)
	SelectiveComplementSpecific(h)
	if h.Storage.A != 0o0040 {
		t.Fatalf("SelectiveComplementSpecific: A = %o, want 0040", h.Storage.A)
	}
}

// --- Shift/rotate ---

func TestRotateALeftOneEndAroundCarry(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o4000
	RotateALeftOne(h)
	if h.Storage.A != 1 {
		t.Fatalf("A = %o, want 1 (end-around carry)", h.Storage.A)
	}
}

func TestRotateALeftTwoThreeSix(t *testing.T) {
	h := newHardware()
	h.Storage.A = 1
	RotateALeftTwo(h)
	if h.Storage.A != 4 {
		t.Fatalf("RotateALeftTwo(1) = %o, want 4", h.Storage.A)
	}

	h.Storage.A = 1
	RotateALeftThree(h)
	if h.Storage.A != 010 {
		t.Fatalf("RotateALeftThree(1) = %o, want 010", h.Storage.A)
	}

	h.Storage.A = 1
	RotateALeftSix(h)
	if h.Storage.A != 0o100 {
		t.Fatalf("RotateALeftSix(1) = %o, want 0100", h.Storage.A)
	}
}

func TestShiftARightOnePreservesSign(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o4002
	ShiftARightOne(h)
	if h.Storage.A != 0o6001 {
		t.Fatalf("A = %o, want 6001 (sign-extended)", h.Storage.A)
	}

	h.Storage.A = 0o0002
	ShiftARightOne(h)
	if h.Storage.A != 0o0001 {
		t.Fatalf("A = %o, want 0001 (no sign extension)", h.Storage.A)
	}
}

func TestShiftARightTwoPreservesSign(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o4004
	ShiftARightTwo(h)
	if h.Storage.A != 0o6001 {
		t.Fatalf("A = %o, want 6001 (sign-extended two bits)", h.Storage.A)
	}
}

func TestShiftReplaceDirectRotatesAndStores(t *testing.T) {
	h := newHardware()
	h.Storage.S = 0o100
	h.Storage.WriteDirectBank(0o100, 0o4000)
	ShiftReplaceDirect(h)
	if h.Storage.A != 1 {
		t.Fatalf("A = %o, want 1", h.Storage.A)
	}
	if got := h.Storage.ReadDirectBank(0o100); got != 1 {
		t.Fatalf("[S] = %o, want 1 (replaced)", got)
	}
}

// --- Branch ---

func TestJumpIfANegative(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o4001
	h.Storage.S = 0o200
	h.Storage.P = 0o100
	JumpIfANegative(h)
	if h.Storage.NextAddress() != 0o200 {
		t.Fatalf("next = %o, want 0200 (jump taken)", h.Storage.NextAddress())
	}

	h.Storage.A = 1
	h.Storage.P = 0o100
	JumpIfANegative(h)
	if h.Storage.NextAddress() != 0o101 {
		t.Fatalf("next = %o, want 0101 (jump not taken)", h.Storage.NextAddress())
	}
}

func TestJumpIfAZeroNotZeroPositive(t *testing.T) {
	h := newHardware()
	h.Storage.S = 0o300
	h.Storage.P = 0o100
	h.Storage.A = 0
	JumpIfAZero(h)
	if h.Storage.NextAddress() != 0o300 {
		t.Fatalf("JumpIfAZero: next = %o, want 0300", h.Storage.NextAddress())
	}

	h.Storage.P = 0o100
	h.Storage.A = 1
	JumpIfANotZero(h)
	if h.Storage.NextAddress() != 0o300 {
		t.Fatalf("JumpIfANotZero: next = %o, want 0300", h.Storage.NextAddress())
	}

	h.Storage.P = 0o100
	h.Storage.A = 1
	JumpIfAPositive(h)
	if h.Storage.NextAddress() != 0o300 {
		t.Fatalf("JumpIfAPositive: next = %o, want 0300", h.Storage.NextAddress())
	}
}

func TestJumpForwardIndirect(t *testing.T) {
	h := newHardware()
	h.Storage.S = 0o400
	h.Storage.RelativeBank = 1
	h.Storage.WriteRelativeBank(0o400, 0o500)
	JumpForwardIndirect(h)
	if h.Storage.NextAddress() != 0o500 {
		t.Fatalf("next = %o, want 0500", h.Storage.NextAddress())
	}
}

func TestJumpIndirect(t *testing.T) {
	h := newHardware()
	h.Storage.FAddress = 0o20
	h.Storage.WriteDirectBank(0o20, 0o600)
	JumpIndirect(h)
	if h.Storage.NextAddress() != 0o600 {
		t.Fatalf("next = %o, want 0600", h.Storage.NextAddress())
	}
}

func TestReturnJump(t *testing.T) {
	h := newHardware()
	h.Storage.P = 0o100
	h.Storage.S = 0o200
	h.Storage.RelativeBank = 1
	ReturnJump(h)
	if got := h.Storage.ReadRelativeBank(0o200); got != 0o102 {
		t.Fatalf("stored return address = %o, want 0102 (P+2)", got)
	}
	if h.Storage.NextAddress() != 0o201 {
		t.Fatalf("next = %o, want 0201 (S+1)", h.Storage.NextAddress())
	}
}

// --- Bank control ---

func TestSetBankFromEVariants(t *testing.T) {
	h := newHardware()
	h.Storage.FAddress = 5
	SetBufBankFromE(h)
	if h.Storage.BufferBank != 5 {
		t.Fatalf("BufferBank = %o, want 5", h.Storage.BufferBank)
	}

	h.Storage.FAddress = 3
	SetDirBankFromE(h)
	if h.Storage.DirectBank != 3 {
		t.Fatalf("DirectBank = %o, want 3", h.Storage.DirectBank)
	}

	h.Storage.FAddress = 2
	SetIndBankFromE(h)
	if h.Storage.IndirectBank != 2 {
		t.Fatalf("IndirectBank = %o, want 2", h.Storage.IndirectBank)
	}
}

func TestSetRelBankFromEAndJump(t *testing.T) {
	h := newHardware()
	h.Storage.FAddress = 4
	h.Storage.A = 0o1000
	SetRelBankFromEAndJump(h)
	if h.Storage.RelativeBank != 4 {
		t.Fatalf("RelativeBank = %o, want 4", h.Storage.RelativeBank)
	}
	if h.Storage.NextAddress() != 0o1000 {
		t.Fatalf("next = %o, want 1000 (jump to A)", h.Storage.NextAddress())
	}
}

func TestSetDirIndRelBankFromEAndJumpSetsAllThree(t *testing.T) {
	h := newHardware()
	h.Storage.FAddress = 6
	h.Storage.A = 0o2000
	SetDirIndRelBankFromEAndJump(h)
	if h.Storage.DirectBank != 6 || h.Storage.IndirectBank != 6 || h.Storage.RelativeBank != 6 {
		t.Fatalf("banks = %o %o %o, want all 6", h.Storage.DirectBank, h.Storage.IndirectBank, h.Storage.RelativeBank)
	}
	if h.Storage.NextAddress() != 0o2000 {
		t.Fatalf("next = %o, want 2000", h.Storage.NextAddress())
	}
}

// --- Buffer control ---

func TestATEStoresWhenNotBuffering(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o1234
	cycles := ATE(h)
	if cycles != 1 {
		t.Fatalf("cycles = %d, want 1", cycles)
	}
	if h.Storage.BER != 0o1234 {
		t.Fatalf("BER = %o, want 1234", h.Storage.BER)
	}
}

func TestATEDeferredWhileBuffering(t *testing.T) {
	h := newHardware()
	h.Storage.StartBuffering()
	h.Storage.P = 0o100
	h.Storage.RelativeBank = 1
	h.Storage.WriteRelativeBank(0o101, 0o777)
	cycles := ATE(h)
	if cycles != 2 {
		t.Fatalf("cycles = %d, want 2 (deferred)", cycles)
	}
	if h.Storage.NextAddress() != 0o777 {
		t.Fatalf("next = %o, want 0777 (skip to G-field)", h.Storage.NextAddress())
	}
}

func TestBufferEntranceExitRoundTrip(t *testing.T) {
	h := newHardware()
	h.Storage.BER = 0o111
	BufferEntranceToA(h)
	if h.Storage.A != 0o111 {
		t.Fatalf("A = %o, want 0111", h.Storage.A)
	}

	h.Storage.BXR = 0o222
	BufferExitToA(h)
	if h.Storage.A != 0o222 {
		t.Fatalf("A = %o, want 0222", h.Storage.A)
	}
}

func TestBlockStoreFillsBufferBank(t *testing.T) {
	h := newHardware()
	h.Storage.A = 0o55
	h.Storage.BER = 0o10
	h.Storage.BXR = 0o13
	cycles := BlockStore(h)
	if cycles != 3 {
		t.Fatalf("cycles = %d, want 3 (three words moved)", cycles)
	}
	for addr := uint16(0o10); addr < 0o13; addr++ {
		if got := h.Storage.ReadBufferBank(addr); got != 0o55 {
			t.Fatalf("buffer[%o] = %o, want 055", addr, got)
		}
	}
	if h.Storage.Buffering {
		t.Fatal("Buffering flag should be cleared after BlockStore completes")
	}
}

func TestClearBufferControlsStopsBuffering(t *testing.T) {
	h := newHardware()
	h.Storage.StartBuffering()
	ClearBufferControls(h)
	if h.Storage.Buffering {
		t.Fatal("ClearBufferControls should clear the buffering flag")
	}
}
