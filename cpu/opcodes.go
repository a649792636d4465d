package cpu

// RST vector addresses, used both by the RST instructions and by the
// frame scheduler delivering vertical-blank interrupts as RST 1 / RST 2.
const (
	rst0 uint16 = 0x0000
	rst1 uint16 = 0x0008
	rst2 uint16 = 0x0010
	rst3 uint16 = 0x0018
	rst4 uint16 = 0x0020
	rst5 uint16 = 0x0028
	rst6 uint16 = 0x0030
	rst7 uint16 = 0x0038
)

func (c *CPU) jmp(bus Bus) {
	c.PC = c.fetchWord(bus)
}

func (c *CPU) call(bus Bus) {
	c.pushWord(bus, c.PC+2)
	c.PC = c.fetchWord(bus)
}

func (c *CPU) ret(bus Bus) {
	c.PC = c.popWord(bus)
}

func (c *CPU) rst(bus Bus, addr uint16) {
	c.pushWord(bus, c.PC)
	c.PC = addr
}

func (c *CPU) xchg() {
	hl := c.HL()
	c.setHL(c.DE())
	c.setDE(hl)
}

func (c *CPU) xthl(bus Bus) {
	tmp := c.readWord(bus, c.SP)
	c.writeWord(bus, c.SP, c.HL())
	c.setHL(tmp)
}

// ExecOpcode executes exactly the given opcode, fetching any operand
// bytes via PC. All 256 values are defined; the undocumented duplicates
// (0x08/0x10/0x18/0x20/0x28/0x30/0x38 as NOP, 0xCB as JMP, 0xDD/0xED/0xFD
// as CALL, 0xD9 as RET) behave exactly like their documented synonyms.
func (c *CPU) ExecOpcode(bus Bus, opcode byte) {
	switch opcode {
	case 0x00: // NOP
		c.Cycles += 4
	case 0x01: // LXI B
		c.setBC(c.fetchWord(bus))
		c.Cycles += 10
	case 0x02: // STAX B
		bus.WriteByte(c.BC(), c.A)
		c.Cycles += 7
	case 0x03: // INX B
		c.setBC(c.BC() + 1)
		c.Cycles += 5
	case 0x04: // INR B
		c.B = c.inr(c.B)
		c.Cycles += 5
	case 0x05: // DCR B
		c.B = c.dcr(c.B)
		c.Cycles += 5
	case 0x06: // MVI B
		c.B = c.fetchByte(bus)
		c.Cycles += 7
	case 0x07: // RLC
		c.rlc()
		c.Cycles += 4
	case 0x08: // NOP (undocumented)
		c.Cycles += 4
	case 0x09: // DAD B
		c.dad(c.BC())
		c.Cycles += 10
	case 0x0a: // LDAX B
		c.A = bus.ReadByte(c.BC())
		c.Cycles += 7
	case 0x0b: // DCX B
		c.setBC(c.BC() - 1)
		c.Cycles += 5
	case 0x0c: // INR C
		c.C = c.inr(c.C)
		c.Cycles += 5
	case 0x0d: // DCR C
		c.C = c.dcr(c.C)
		c.Cycles += 5
	case 0x0e: // MVI C
		c.C = c.fetchByte(bus)
		c.Cycles += 7
	case 0x0f: // RRC
		c.rrc()
		c.Cycles += 4
	case 0x10: // NOP (undocumented)
		c.Cycles += 4
	case 0x11: // LXI D
		c.setDE(c.fetchWord(bus))
		c.Cycles += 10
	case 0x12: // STAX D
		bus.WriteByte(c.DE(), c.A)
		c.Cycles += 7
	case 0x13: // INX D
		c.setDE(c.DE() + 1)
		c.Cycles += 5
	case 0x14: // INR D
		c.D = c.inr(c.D)
		c.Cycles += 5
	case 0x15: // DCR D
		c.D = c.dcr(c.D)
		c.Cycles += 5
	case 0x16: // MVI D
		c.D = c.fetchByte(bus)
		c.Cycles += 7
	case 0x17: // RAL
		c.ral()
		c.Cycles += 4
	case 0x18: // NOP (undocumented)
		c.Cycles += 4
	case 0x19: // DAD D
		c.dad(c.DE())
		c.Cycles += 10
	case 0x1a: // LDAX D
		c.A = bus.ReadByte(c.DE())
		c.Cycles += 7
	case 0x1b: // DCX D
		c.setDE(c.DE() - 1)
		c.Cycles += 5
	case 0x1c: // INR E
		c.E = c.inr(c.E)
		c.Cycles += 5
	case 0x1d: // DCR E
		c.E = c.dcr(c.E)
		c.Cycles += 5
	case 0x1e: // MVI E
		c.E = c.fetchByte(bus)
		c.Cycles += 7
	case 0x1f: // RAR
		c.rar()
		c.Cycles += 4
	case 0x20: // NOP (undocumented)
		c.Cycles += 4
	case 0x21: // LXI H
		c.setHL(c.fetchWord(bus))
		c.Cycles += 10
	case 0x22: // SHLD
		c.writeWord(bus, c.fetchWord(bus), c.HL())
		c.Cycles += 16
	case 0x23: // INX H
		c.setHL(c.HL() + 1)
		c.Cycles += 5
	case 0x24: // INR H
		c.H = c.inr(c.H)
		c.Cycles += 5
	case 0x25: // DCR H
		c.H = c.dcr(c.H)
		c.Cycles += 5
	case 0x26: // MVI H
		c.H = c.fetchByte(bus)
		c.Cycles += 7
	case 0x27: // DAA
		c.daa()
		c.Cycles += 4
	case 0x28: // NOP (undocumented)
		c.Cycles += 4
	case 0x29: // DAD H
		c.dad(c.HL())
		c.Cycles += 10
	case 0x2a: // LHLD
		c.setHL(c.readWord(bus, c.fetchWord(bus)))
		c.Cycles += 16
	case 0x2b: // DCX H
		c.setHL(c.HL() - 1)
		c.Cycles += 5
	case 0x2c: // INR L
		c.L = c.inr(c.L)
		c.Cycles += 5
	case 0x2d: // DCR L
		c.L = c.dcr(c.L)
		c.Cycles += 5
	case 0x2e: // MVI L
		c.L = c.fetchByte(bus)
		c.Cycles += 7
	case 0x2f: // CMA
		c.A = ^c.A
		c.Cycles += 4
	case 0x30: // NOP (undocumented)
		c.Cycles += 4
	case 0x31: // LXI SP
		c.SP = c.fetchWord(bus)
		c.Cycles += 10
	case 0x32: // STA
		bus.WriteByte(c.fetchWord(bus), c.A)
		c.Cycles += 13
	case 0x33: // INX SP
		c.SP++
		c.Cycles += 5
	case 0x34: // INR M
		bus.WriteByte(c.HL(), c.inr(bus.ReadByte(c.HL())))
		c.Cycles += 10
	case 0x35: // DCR M
		bus.WriteByte(c.HL(), c.dcr(bus.ReadByte(c.HL())))
		c.Cycles += 10
	case 0x36: // MVI M
		bus.WriteByte(c.HL(), c.fetchByte(bus))
		c.Cycles += 10
	case 0x37: // STC
		c.setFlag(flagC, true)
		c.Cycles += 4
	case 0x38: // NOP (undocumented)
		c.Cycles += 4
	case 0x39: // DAD SP
		c.dad(c.SP)
		c.Cycles += 10
	case 0x3a: // LDA
		c.A = bus.ReadByte(c.fetchWord(bus))
		c.Cycles += 13
	case 0x3b: // DCX SP
		c.SP--
		c.Cycles += 5
	case 0x3c: // INR A
		c.A = c.inr(c.A)
		c.Cycles += 5
	case 0x3d: // DCR A
		c.A = c.dcr(c.A)
		c.Cycles += 5
	case 0x3e: // MVI A
		c.A = c.fetchByte(bus)
		c.Cycles += 7
	case 0x3f: // CMC
		c.setFlag(flagC, !c.getFlag(flagC))
		c.Cycles += 4

	// MOV r,r' (0x40-0x7F, with 0x76 reserved for HLT)
	case 0x40:
		c.Cycles += 5
	case 0x41:
		c.B = c.C
		c.Cycles += 5
	case 0x42:
		c.B = c.D
		c.Cycles += 5
	case 0x43:
		c.B = c.E
		c.Cycles += 5
	case 0x44:
		c.B = c.H
		c.Cycles += 5
	case 0x45:
		c.B = c.L
		c.Cycles += 5
	case 0x46:
		c.B = bus.ReadByte(c.HL())
		c.Cycles += 7
	case 0x47:
		c.B = c.A
		c.Cycles += 5
	case 0x48:
		c.C = c.B
		c.Cycles += 5
	case 0x49:
		c.Cycles += 5
	case 0x4a:
		c.C = c.D
		c.Cycles += 5
	case 0x4b:
		c.C = c.E
		c.Cycles += 5
	case 0x4c:
		c.C = c.H
		c.Cycles += 5
	case 0x4d:
		c.C = c.L
		c.Cycles += 5
	case 0x4e:
		c.C = bus.ReadByte(c.HL())
		c.Cycles += 7
	case 0x4f:
		c.C = c.A
		c.Cycles += 5
	case 0x50:
		c.D = c.B
		c.Cycles += 5
	case 0x51:
		c.D = c.C
		c.Cycles += 5
	case 0x52:
		c.Cycles += 5
	case 0x53:
		c.D = c.E
		c.Cycles += 5
	case 0x54:
		c.D = c.H
		c.Cycles += 5
	case 0x55:
		c.D = c.L
		c.Cycles += 5
	case 0x56:
		c.D = bus.ReadByte(c.HL())
		c.Cycles += 7
	case 0x57:
		c.D = c.A
		c.Cycles += 5
	case 0x58:
		c.E = c.B
		c.Cycles += 5
	case 0x59:
		c.E = c.C
		c.Cycles += 5
	case 0x5a:
		c.E = c.D
		c.Cycles += 5
	case 0x5b:
		c.Cycles += 5
	case 0x5c:
		c.E = c.H
		c.Cycles += 5
	case 0x5d:
		c.E = c.L
		c.Cycles += 5
	case 0x5e:
		c.E = bus.ReadByte(c.HL())
		c.Cycles += 7
	case 0x5f:
		c.E = c.A
		c.Cycles += 5
	case 0x60:
		c.H = c.B
		c.Cycles += 5
	case 0x61:
		c.H = c.C
		c.Cycles += 5
	case 0x62:
		c.H = c.D
		c.Cycles += 5
	case 0x63:
		c.H = c.E
		c.Cycles += 5
	case 0x64:
		c.Cycles += 5
	case 0x65:
		c.H = c.L
		c.Cycles += 5
	case 0x66:
		c.H = bus.ReadByte(c.HL())
		c.Cycles += 7
	case 0x67:
		c.H = c.A
		c.Cycles += 5
	case 0x68:
		c.L = c.B
		c.Cycles += 5
	case 0x69:
		c.L = c.C
		c.Cycles += 5
	case 0x6a:
		c.L = c.D
		c.Cycles += 5
	case 0x6b:
		c.L = c.E
		c.Cycles += 5
	case 0x6c:
		c.L = c.H
		c.Cycles += 5
	case 0x6d:
		c.Cycles += 5
	case 0x6e:
		c.L = bus.ReadByte(c.HL())
		c.Cycles += 7
	case 0x6f:
		c.L = c.A
		c.Cycles += 5
	case 0x70:
		bus.WriteByte(c.HL(), c.B)
		c.Cycles += 7
	case 0x71:
		bus.WriteByte(c.HL(), c.C)
		c.Cycles += 7
	case 0x72:
		bus.WriteByte(c.HL(), c.D)
		c.Cycles += 7
	case 0x73:
		bus.WriteByte(c.HL(), c.E)
		c.Cycles += 7
	case 0x74:
		bus.WriteByte(c.HL(), c.H)
		c.Cycles += 7
	case 0x75:
		bus.WriteByte(c.HL(), c.L)
		c.Cycles += 7
	case 0x76: // HLT
		c.Halted = true
		c.Cycles += 7
	case 0x77:
		bus.WriteByte(c.HL(), c.A)
		c.Cycles += 7
	case 0x78:
		c.A = c.B
		c.Cycles += 5
	case 0x79:
		c.A = c.C
		c.Cycles += 5
	case 0x7a:
		c.A = c.D
		c.Cycles += 5
	case 0x7b:
		c.A = c.E
		c.Cycles += 5
	case 0x7c:
		c.A = c.H
		c.Cycles += 5
	case 0x7d:
		c.A = c.L
		c.Cycles += 5
	case 0x7e:
		c.A = bus.ReadByte(c.HL())
		c.Cycles += 7
	case 0x7f:
		c.Cycles += 5

	// ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r (0x80-0xBF)
	case 0x80:
		c.add(c.B)
		c.Cycles += 4
	case 0x81:
		c.add(c.C)
		c.Cycles += 4
	case 0x82:
		c.add(c.D)
		c.Cycles += 4
	case 0x83:
		c.add(c.E)
		c.Cycles += 4
	case 0x84:
		c.add(c.H)
		c.Cycles += 4
	case 0x85:
		c.add(c.L)
		c.Cycles += 4
	case 0x86:
		c.add(bus.ReadByte(c.HL()))
		c.Cycles += 7
	case 0x87:
		c.add(c.A)
		c.Cycles += 4
	case 0x88:
		c.adc(c.B)
		c.Cycles += 4
	case 0x89:
		c.adc(c.C)
		c.Cycles += 4
	case 0x8a:
		c.adc(c.D)
		c.Cycles += 4
	case 0x8b:
		c.adc(c.E)
		c.Cycles += 4
	case 0x8c:
		c.adc(c.H)
		c.Cycles += 4
	case 0x8d:
		c.adc(c.L)
		c.Cycles += 4
	case 0x8e:
		c.adc(bus.ReadByte(c.HL()))
		c.Cycles += 7
	case 0x8f:
		c.adc(c.A)
		c.Cycles += 4
	case 0x90:
		c.sub(c.B)
		c.Cycles += 4
	case 0x91:
		c.sub(c.C)
		c.Cycles += 4
	case 0x92:
		c.sub(c.D)
		c.Cycles += 4
	case 0x93:
		c.sub(c.E)
		c.Cycles += 4
	case 0x94:
		c.sub(c.H)
		c.Cycles += 4
	case 0x95:
		c.sub(c.L)
		c.Cycles += 4
	case 0x96:
		c.sub(bus.ReadByte(c.HL()))
		c.Cycles += 7
	case 0x97:
		c.sub(c.A)
		c.Cycles += 4
	case 0x98:
		c.sbb(c.B)
		c.Cycles += 4
	case 0x99:
		c.sbb(c.C)
		c.Cycles += 4
	case 0x9a:
		c.sbb(c.D)
		c.Cycles += 4
	case 0x9b:
		c.sbb(c.E)
		c.Cycles += 4
	case 0x9c:
		c.sbb(c.H)
		c.Cycles += 4
	case 0x9d:
		c.sbb(c.L)
		c.Cycles += 4
	case 0x9e:
		c.sbb(bus.ReadByte(c.HL()))
		c.Cycles += 7
	case 0x9f:
		c.sbb(c.A)
		c.Cycles += 4
	case 0xa0:
		c.ana(c.B)
		c.Cycles += 4
	case 0xa1:
		c.ana(c.C)
		c.Cycles += 4
	case 0xa2:
		c.ana(c.D)
		c.Cycles += 4
	case 0xa3:
		c.ana(c.E)
		c.Cycles += 4
	case 0xa4:
		c.ana(c.H)
		c.Cycles += 4
	case 0xa5:
		c.ana(c.L)
		c.Cycles += 4
	case 0xa6:
		c.ana(bus.ReadByte(c.HL()))
		c.Cycles += 7
	case 0xa7:
		c.ana(c.A)
		c.Cycles += 4
	case 0xa8:
		c.xra(c.B)
		c.Cycles += 4
	case 0xa9:
		c.xra(c.C)
		c.Cycles += 4
	case 0xaa:
		c.xra(c.D)
		c.Cycles += 4
	case 0xab:
		c.xra(c.E)
		c.Cycles += 4
	case 0xac:
		c.xra(c.H)
		c.Cycles += 4
	case 0xad:
		c.xra(c.L)
		c.Cycles += 4
	case 0xae:
		c.xra(bus.ReadByte(c.HL()))
		c.Cycles += 7
	case 0xaf:
		c.xra(c.A)
		c.Cycles += 4
	case 0xb0:
		c.ora(c.B)
		c.Cycles += 4
	case 0xb1:
		c.ora(c.C)
		c.Cycles += 4
	case 0xb2:
		c.ora(c.D)
		c.Cycles += 4
	case 0xb3:
		c.ora(c.E)
		c.Cycles += 4
	case 0xb4:
		c.ora(c.H)
		c.Cycles += 4
	case 0xb5:
		c.ora(c.L)
		c.Cycles += 4
	case 0xb6:
		c.ora(bus.ReadByte(c.HL()))
		c.Cycles += 7
	case 0xb7:
		c.ora(c.A)
		c.Cycles += 4
	case 0xb8:
		c.cmp(c.B)
		c.Cycles += 4
	case 0xb9:
		c.cmp(c.C)
		c.Cycles += 4
	case 0xba:
		c.cmp(c.D)
		c.Cycles += 4
	case 0xbb:
		c.cmp(c.E)
		c.Cycles += 4
	case 0xbc:
		c.cmp(c.H)
		c.Cycles += 4
	case 0xbd:
		c.cmp(c.L)
		c.Cycles += 4
	case 0xbe:
		c.cmp(bus.ReadByte(c.HL()))
		c.Cycles += 7
	case 0xbf:
		c.cmp(c.A)
		c.Cycles += 4

	case 0xc0: // RNZ
		if !c.getFlag(flagZ) {
			c.ret(bus)
			c.Cycles += 11
		} else {
			c.Cycles += 5
		}
	case 0xc1: // POP B
		c.setBC(c.popWord(bus))
		c.Cycles += 10
	case 0xc2: // JNZ
		if !c.getFlag(flagZ) {
			c.jmp(bus)
		} else {
			c.PC += 2
		}
		c.Cycles += 10
	case 0xc3: // JMP
		c.jmp(bus)
		c.Cycles += 10
	case 0xc4: // CNZ
		if !c.getFlag(flagZ) {
			c.call(bus)
			c.Cycles += 17
		} else {
			c.PC += 2
			c.Cycles += 11
		}
	case 0xc5: // PUSH B
		c.pushWord(bus, c.BC())
		c.Cycles += 11
	case 0xc6: // ADI
		c.add(c.fetchByte(bus))
		c.Cycles += 7
	case 0xc7: // RST 0
		c.rst(bus, rst0)
		c.Cycles += 11
	case 0xc8: // RZ
		if c.getFlag(flagZ) {
			c.ret(bus)
			c.Cycles += 11
		} else {
			c.Cycles += 5
		}
	case 0xc9: // RET
		c.ret(bus)
		c.Cycles += 10
	case 0xca: // JZ
		if c.getFlag(flagZ) {
			c.jmp(bus)
		} else {
			c.PC += 2
		}
		c.Cycles += 10
	case 0xcb: // JMP (undocumented)
		c.jmp(bus)
		c.Cycles += 10
	case 0xcc: // CZ
		if c.getFlag(flagZ) {
			c.call(bus)
			c.Cycles += 17
		} else {
			c.PC += 2
			c.Cycles += 11
		}
	case 0xcd: // CALL
		c.call(bus)
		c.Cycles += 17
	case 0xce: // ACI
		c.adc(c.fetchByte(bus))
		c.Cycles += 7
	case 0xcf: // RST 1
		c.rst(bus, rst1)
		c.Cycles += 11
	case 0xd0: // RNC
		if !c.getFlag(flagC) {
			c.ret(bus)
			c.Cycles += 11
		} else {
			c.Cycles += 5
		}
	case 0xd1: // POP D
		c.setDE(c.popWord(bus))
		c.Cycles += 10
	case 0xd2: // JNC
		if !c.getFlag(flagC) {
			c.jmp(bus)
		} else {
			c.PC += 2
		}
		c.Cycles += 10
	case 0xd3: // OUT
		bus.IOOut(c.fetchByte(bus), c.A)
		c.Cycles += 10
	case 0xd4: // CNC
		if !c.getFlag(flagC) {
			c.call(bus)
			c.Cycles += 17
		} else {
			c.PC += 2
			c.Cycles += 11
		}
	case 0xd5: // PUSH D
		c.pushWord(bus, c.DE())
		c.Cycles += 11
	case 0xd6: // SUI
		c.sub(c.fetchByte(bus))
		c.Cycles += 7
	case 0xd7: // RST 2
		c.rst(bus, rst2)
		c.Cycles += 11
	case 0xd8: // RC
		if c.getFlag(flagC) {
			c.ret(bus)
			c.Cycles += 11
		} else {
			c.Cycles += 5
		}
	case 0xd9: // RET (undocumented)
		c.ret(bus)
		c.Cycles += 10
	case 0xda: // JC
		if c.getFlag(flagC) {
			c.jmp(bus)
		} else {
			c.PC += 2
		}
		c.Cycles += 10
	case 0xdb: // IN
		c.A = bus.IOIn(c.fetchByte(bus))
		c.Cycles += 10
	case 0xdc: // CC
		if c.getFlag(flagC) {
			c.call(bus)
			c.Cycles += 17
		} else {
			c.PC += 2
			c.Cycles += 11
		}
	case 0xdd: // CALL (undocumented)
		c.call(bus)
		c.Cycles += 17
	case 0xde: // SBI
		c.sbb(c.fetchByte(bus))
		c.Cycles += 7
	case 0xdf: // RST 3
		c.rst(bus, rst3)
		c.Cycles += 11
	case 0xe0: // RPO
		if !c.getFlag(flagP) {
			c.ret(bus)
			c.Cycles += 11
		} else {
			c.Cycles += 5
		}
	case 0xe1: // POP H
		c.setHL(c.popWord(bus))
		c.Cycles += 10
	case 0xe2: // JPO
		if !c.getFlag(flagP) {
			c.jmp(bus)
		} else {
			c.PC += 2
		}
		c.Cycles += 10
	case 0xe3: // XTHL
		c.xthl(bus)
		c.Cycles += 18
	case 0xe4: // CPO
		if !c.getFlag(flagP) {
			c.call(bus)
			c.Cycles += 17
		} else {
			c.PC += 2
			c.Cycles += 11
		}
	case 0xe5: // PUSH H
		c.pushWord(bus, c.HL())
		c.Cycles += 11
	case 0xe6: // ANI
		c.ana(c.fetchByte(bus))
		c.Cycles += 7
	case 0xe7: // RST 4
		c.rst(bus, rst4)
		c.Cycles += 11
	case 0xe8: // RPE
		if c.getFlag(flagP) {
			c.ret(bus)
			c.Cycles += 11
		} else {
			c.Cycles += 5
		}
	case 0xe9: // PCHL
		c.PC = c.HL()
		c.Cycles += 5
	case 0xea: // JPE
		if c.getFlag(flagP) {
			c.jmp(bus)
		} else {
			c.PC += 2
		}
		c.Cycles += 10
	case 0xeb: // XCHG
		c.xchg()
		c.Cycles += 5
	case 0xec: // CPE
		if c.getFlag(flagP) {
			c.call(bus)
			c.Cycles += 17
		} else {
			c.PC += 2
			c.Cycles += 11
		}
	case 0xed: // CALL (undocumented)
		c.call(bus)
		c.Cycles += 17
	case 0xee: // XRI
		c.xra(c.fetchByte(bus))
		c.Cycles += 7
	case 0xef: // RST 5
		c.rst(bus, rst5)
		c.Cycles += 11
	case 0xf0: // RP
		if !c.getFlag(flagS) {
			c.ret(bus)
			c.Cycles += 11
		} else {
			c.Cycles += 5
		}
	case 0xf1: // POP PSW
		c.setPSW(c.popWord(bus))
		c.Cycles += 10
	case 0xf2: // JP
		if !c.getFlag(flagS) {
			c.jmp(bus)
		} else {
			c.PC += 2
		}
		c.Cycles += 10
	case 0xf3: // DI
		c.IntEnable = false
		c.Cycles += 4
	case 0xf4: // CP
		if !c.getFlag(flagS) {
			c.call(bus)
			c.Cycles += 17
		} else {
			c.PC += 2
			c.Cycles += 11
		}
	case 0xf5: // PUSH PSW
		c.F = normalizeFlags(c.F)
		c.pushWord(bus, c.psw())
		c.Cycles += 11
	case 0xf6: // ORI
		c.ora(c.fetchByte(bus))
		c.Cycles += 7
	case 0xf7: // RST 6
		c.rst(bus, rst6)
		c.Cycles += 11
	case 0xf8: // RM
		if c.getFlag(flagS) {
			c.ret(bus)
			c.Cycles += 11
		} else {
			c.Cycles += 5
		}
	case 0xf9: // SPHL
		c.SP = c.HL()
		c.Cycles += 5
	case 0xfa: // JM
		if c.getFlag(flagS) {
			c.jmp(bus)
		} else {
			c.PC += 2
		}
		c.Cycles += 10
	case 0xfb: // EI
		c.IntEnable = true
		c.Cycles += 4
	case 0xfc: // CM
		if c.getFlag(flagS) {
			c.call(bus)
			c.Cycles += 17
		} else {
			c.PC += 2
			c.Cycles += 11
		}
	case 0xfd: // CALL (undocumented)
		c.call(bus)
		c.Cycles += 17
	case 0xfe: // CPI
		c.cmp(c.fetchByte(bus))
		c.Cycles += 7
	case 0xff: // RST 7
		c.rst(bus, rst7)
		c.Cycles += 11
	}
}
