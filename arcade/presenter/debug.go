package presenter

import (
	"bytes"
	"fmt"
)

// opInfo names one opcode and its total instruction length in bytes,
// for the debug-overlay disassembly trace.
type opInfo struct {
	mnemonic string
	length   int
}

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// opTable is built once at package init, the way the teacher's
// cpuDisassembler.go walks a fixed addressing-mode table per opcode; here
// the 8080 has no addressing-mode axis; only mnemonic and byte length
// vary per opcode.
var opTable = buildOpTable()

func buildOpTable() [256]opInfo {
	var t [256]opInfo
	for i := range t {
		t[i] = opInfo{"???", 1}
	}

	nops := []byte{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38}
	for _, op := range nops {
		t[op] = opInfo{"NOP", 1}
	}

	lxi := map[byte]string{0x01: "LXI B,", 0x11: "LXI D,", 0x21: "LXI H,", 0x31: "LXI SP,"}
	for op, m := range lxi {
		t[op] = opInfo{m, 3}
	}

	mviOps := []byte{0x06, 0x0e, 0x16, 0x1e, 0x26, 0x2e, 0x36, 0x3e}
	for i, op := range mviOps {
		t[op] = opInfo{"MVI " + regNames[i] + ",", 2}
	}

	for i, op := range []byte{0x04, 0x0c, 0x14, 0x1c, 0x24, 0x2c, 0x34, 0x3c} {
		t[op] = opInfo{"INR " + regNames[i], 1}
	}
	for i, op := range []byte{0x05, 0x0d, 0x15, 0x1d, 0x25, 0x2d, 0x35, 0x3d} {
		t[op] = opInfo{"DCR " + regNames[i], 1}
	}

	inxDcx := map[byte]string{
		0x03: "INX B", 0x13: "INX D", 0x23: "INX H", 0x33: "INX SP",
		0x0b: "DCX B", 0x1b: "DCX D", 0x2b: "DCX H", 0x3b: "DCX SP",
	}
	for op, m := range inxDcx {
		t[op] = opInfo{m, 1}
	}

	dad := map[byte]string{0x09: "DAD B", 0x19: "DAD D", 0x29: "DAD H", 0x39: "DAD SP"}
	for op, m := range dad {
		t[op] = opInfo{m, 1}
	}

	misc := map[byte]string{
		0x02: "STAX B", 0x12: "STAX D", 0x0a: "LDAX B", 0x1a: "LDAX D",
		0x07: "RLC", 0x0f: "RRC", 0x17: "RAL", 0x1f: "RAR",
		0x22: "SHLD", 0x2a: "LHLD", 0x32: "STA", 0x3a: "LDA",
		0x27: "DAA", 0x2f: "CMA", 0x37: "STC", 0x3f: "CMC",
		0x76: "HLT",
		0xc3: "JMP", 0xcb: "JMP", 0xc9: "RET", 0xd9: "RET",
		0xcd: "CALL", 0xdd: "CALL", 0xed: "CALL", 0xfd: "CALL",
		0xe9: "PCHL", 0xf9: "SPHL", 0xeb: "XCHG", 0xe3: "XTHL",
		0xf3: "DI", 0xfb: "EI", 0xd3: "OUT", 0xdb: "IN",
		0xc7: "RST 0", 0xcf: "RST 1", 0xd7: "RST 2", 0xdf: "RST 3",
		0xe7: "RST 4", 0xef: "RST 5", 0xf7: "RST 6", 0xff: "RST 7",
	}
	for op, m := range misc {
		t[op] = opInfo{m, 1}
	}
	for _, op := range []byte{0x22, 0x2a, 0x32, 0x3a, 0xc3, 0xcb} {
		t[op] = opInfo{t[op].mnemonic, 3}
	}
	for _, op := range []byte{0xd3, 0xdb} {
		t[op] = opInfo{t[op].mnemonic, 2}
	}

	condJumps := map[byte]string{
		0xc2: "JNZ", 0xca: "JZ", 0xd2: "JNC", 0xda: "JC",
		0xe2: "JPO", 0xea: "JPE", 0xf2: "JP", 0xfa: "JM",
	}
	for op, m := range condJumps {
		t[op] = opInfo{m + ",", 3}
	}
	condCalls := map[byte]string{
		0xc4: "CNZ", 0xcc: "CZ", 0xd4: "CNC", 0xdc: "CC",
		0xe4: "CPO", 0xec: "CPE", 0xf4: "CP", 0xfc: "CM",
	}
	for op, m := range condCalls {
		t[op] = opInfo{m + ",", 3}
	}
	condRets := map[byte]string{
		0xc0: "RNZ", 0xc8: "RZ", 0xd0: "RNC", 0xd8: "RC",
		0xe0: "RPO", 0xe8: "RPE", 0xf0: "RP", 0xf8: "RM",
	}
	for op, m := range condRets {
		t[op] = opInfo{m, 1}
	}

	pushPop := map[byte]string{
		0xc1: "POP B", 0xd1: "POP D", 0xe1: "POP H", 0xf1: "POP PSW",
		0xc5: "PUSH B", 0xd5: "PUSH D", 0xe5: "PUSH H", 0xf5: "PUSH PSW",
	}
	for op, m := range pushPop {
		t[op] = opInfo{m, 1}
	}

	alu := []struct {
		base byte
		name string
	}{
		{0x80, "ADD"}, {0x88, "ADC"}, {0x90, "SUB"}, {0x98, "SBB"},
		{0xa0, "ANA"}, {0xa8, "XRA"}, {0xb0, "ORA"}, {0xb8, "CMP"},
	}
	for _, a := range alu {
		for i := 0; i < 8; i++ {
			t[a.base+byte(i)] = opInfo{a.name + " " + regNames[i], 1}
		}
	}

	immAlu := map[byte]string{
		0xc6: "ADI", 0xce: "ACI", 0xd6: "SUI", 0xde: "SBI",
		0xe6: "ANI", 0xee: "XRI", 0xf6: "ORI", 0xfe: "CPI",
	}
	for op, m := range immAlu {
		t[op] = opInfo{m + ",", 2}
	}

	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			op := byte(0x40 + dst*8 + src)
			if op == 0x76 {
				continue // HLT, already set above
			}
			t[op] = opInfo{"MOV " + regNames[dst] + "," + regNames[src], 1}
		}
	}

	return t
}

// Disassemble walks read starting at addr for length bytes, producing
// one line per instruction keyed by its address, the way the teacher's
// Disassemble builds an address-to-string map for the debug panel.
func Disassemble(read func(uint16) byte, addr uint16, length int) map[uint16]string {
	lines := make(map[uint16]string)
	end := uint32(addr) + uint32(length)

	a := uint32(addr)
	for a < end {
		lineAddr := uint16(a)
		op := read(uint16(a))
		info := opTable[op]

		var buf bytes.Buffer
		buf.WriteString(fmt.Sprintf("$%04X: %02X  %s", lineAddr, op, info.mnemonic))

		switch info.length {
		case 2:
			operand := read(uint16(a + 1))
			buf.WriteString(fmt.Sprintf("%02X", operand))
		case 3:
			lo := read(uint16(a + 1))
			hi := read(uint16(a + 2))
			buf.WriteString(fmt.Sprintf("%04X", uint16(hi)<<8|uint16(lo)))
		}

		lines[lineAddr] = buf.String()
		a += uint32(info.length)
	}

	return lines
}
