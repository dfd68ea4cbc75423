package cpu

// Opcode describes everything the fetch/decode/execute loop needs to know
// about a single opcode byte: how to find its operand, how long the base
// instruction takes, and the handler that carries out the work. Cycle
// counts and addressing modes are the standard NMOS 6502 opcode matrix;
// the illegal/undocumented column follows the common unofficial-opcode
// references spec.md §4.3 itself defers to.
type Opcode struct {
	Mnemonic         string
	Mode             AddressingMode
	Cycles           byte
	PageCrossPenalty bool
	Exec             func(c *Cpu, addr uint16, mode AddressingMode) int
}

// Length reports the opcode's total byte length, including the opcode
// byte itself.
func (o Opcode) Length() byte { return modeLength(o.Mode) }

var opcodeTable = map[byte]Opcode{
	// 0x00-0x0F
	0x00: {"BRK", Implied, 7, false, (*Cpu).BRK},
	0x01: {"ORA", IndirectX, 6, false, (*Cpu).ORA},
	0x02: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0x03: {"SLO", IndirectX, 8, false, (*Cpu).SLO},
	0x04: {"NOP", ZeroPage, 3, false, (*Cpu).iNOP},
	0x05: {"ORA", ZeroPage, 3, false, (*Cpu).ORA},
	0x06: {"ASL", ZeroPage, 5, false, (*Cpu).ASL},
	0x07: {"SLO", ZeroPage, 5, false, (*Cpu).SLO},
	0x08: {"PHP", Implied, 3, false, (*Cpu).PHP},
	0x09: {"ORA", Immediate, 2, false, (*Cpu).ORA},
	0x0A: {"ASL", Accumulator, 2, false, (*Cpu).ASL},
	0x0B: {"ANC", Immediate, 2, false, (*Cpu).ANC},
	0x0C: {"NOP", Absolute, 4, false, (*Cpu).iNOP},
	0x0D: {"ORA", Absolute, 4, false, (*Cpu).ORA},
	0x0E: {"ASL", Absolute, 6, false, (*Cpu).ASL},
	0x0F: {"SLO", Absolute, 6, false, (*Cpu).SLO},

	// 0x10-0x1F
	0x10: {"BPL", Relative, 2, false, (*Cpu).BPL},
	0x11: {"ORA", IndirectY, 5, true, (*Cpu).ORA},
	0x12: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0x13: {"SLO", IndirectY, 8, false, (*Cpu).SLO},
	0x14: {"NOP", ZeroPageX, 4, false, (*Cpu).iNOP},
	0x15: {"ORA", ZeroPageX, 4, false, (*Cpu).ORA},
	0x16: {"ASL", ZeroPageX, 6, false, (*Cpu).ASL},
	0x17: {"SLO", ZeroPageX, 6, false, (*Cpu).SLO},
	0x18: {"CLC", Implied, 2, false, (*Cpu).CLC},
	0x19: {"ORA", AbsoluteY, 4, true, (*Cpu).ORA},
	0x1A: {"NOP", Implied, 2, false, (*Cpu).iNOP},
	0x1B: {"SLO", AbsoluteY, 7, false, (*Cpu).SLO},
	0x1C: {"NOP", AbsoluteX, 4, true, (*Cpu).iNOP},
	0x1D: {"ORA", AbsoluteX, 4, true, (*Cpu).ORA},
	0x1E: {"ASL", AbsoluteX, 7, false, (*Cpu).ASL},
	0x1F: {"SLO", AbsoluteX, 7, false, (*Cpu).SLO},

	// 0x20-0x2F
	0x20: {"JSR", Absolute, 6, false, (*Cpu).JSR},
	0x21: {"AND", IndirectX, 6, false, (*Cpu).AND},
	0x22: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0x23: {"RLA", IndirectX, 8, false, (*Cpu).RLA},
	0x24: {"BIT", ZeroPage, 3, false, (*Cpu).BIT},
	0x25: {"AND", ZeroPage, 3, false, (*Cpu).AND},
	0x26: {"ROL", ZeroPage, 5, false, (*Cpu).ROL},
	0x27: {"RLA", ZeroPage, 5, false, (*Cpu).RLA},
	0x28: {"PLP", Implied, 4, false, (*Cpu).PLP},
	0x29: {"AND", Immediate, 2, false, (*Cpu).AND},
	0x2A: {"ROL", Accumulator, 2, false, (*Cpu).ROL},
	0x2B: {"ANC", Immediate, 2, false, (*Cpu).ANC},
	0x2C: {"BIT", Absolute, 4, false, (*Cpu).BIT},
	0x2D: {"AND", Absolute, 4, false, (*Cpu).AND},
	0x2E: {"ROL", Absolute, 6, false, (*Cpu).ROL},
	0x2F: {"RLA", Absolute, 6, false, (*Cpu).RLA},

	// 0x30-0x3F
	0x30: {"BMI", Relative, 2, false, (*Cpu).BMI},
	0x31: {"AND", IndirectY, 5, true, (*Cpu).AND},
	0x32: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0x33: {"RLA", IndirectY, 8, false, (*Cpu).RLA},
	0x34: {"NOP", ZeroPageX, 4, false, (*Cpu).iNOP},
	0x35: {"AND", ZeroPageX, 4, false, (*Cpu).AND},
	0x36: {"ROL", ZeroPageX, 6, false, (*Cpu).ROL},
	0x37: {"RLA", ZeroPageX, 6, false, (*Cpu).RLA},
	0x38: {"SEC", Implied, 2, false, (*Cpu).SEC},
	0x39: {"AND", AbsoluteY, 4, true, (*Cpu).AND},
	0x3A: {"NOP", Implied, 2, false, (*Cpu).iNOP},
	0x3B: {"RLA", AbsoluteY, 7, false, (*Cpu).RLA},
	0x3C: {"NOP", AbsoluteX, 4, true, (*Cpu).iNOP},
	0x3D: {"AND", AbsoluteX, 4, true, (*Cpu).AND},
	0x3E: {"ROL", AbsoluteX, 7, false, (*Cpu).ROL},
	0x3F: {"RLA", AbsoluteX, 7, false, (*Cpu).RLA},

	// 0x40-0x4F
	0x40: {"RTI", Implied, 6, false, (*Cpu).RTI},
	0x41: {"EOR", IndirectX, 6, false, (*Cpu).EOR},
	0x42: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0x43: {"SRE", IndirectX, 8, false, (*Cpu).SRE},
	0x44: {"NOP", ZeroPage, 3, false, (*Cpu).iNOP},
	0x45: {"EOR", ZeroPage, 3, false, (*Cpu).EOR},
	0x46: {"LSR", ZeroPage, 5, false, (*Cpu).LSR},
	0x47: {"SRE", ZeroPage, 5, false, (*Cpu).SRE},
	0x48: {"PHA", Implied, 3, false, (*Cpu).PHA},
	0x49: {"EOR", Immediate, 2, false, (*Cpu).EOR},
	0x4A: {"LSR", Accumulator, 2, false, (*Cpu).LSR},
	0x4B: {"ALR", Immediate, 2, false, (*Cpu).ALR},
	0x4C: {"JMP", Absolute, 3, false, (*Cpu).JMP},
	0x4D: {"EOR", Absolute, 4, false, (*Cpu).EOR},
	0x4E: {"LSR", Absolute, 6, false, (*Cpu).LSR},
	0x4F: {"SRE", Absolute, 6, false, (*Cpu).SRE},

	// 0x50-0x5F
	0x50: {"BVC", Relative, 2, false, (*Cpu).BVC},
	0x51: {"EOR", IndirectY, 5, true, (*Cpu).EOR},
	0x52: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0x53: {"SRE", IndirectY, 8, false, (*Cpu).SRE},
	0x54: {"NOP", ZeroPageX, 4, false, (*Cpu).iNOP},
	0x55: {"EOR", ZeroPageX, 4, false, (*Cpu).EOR},
	0x56: {"LSR", ZeroPageX, 6, false, (*Cpu).LSR},
	0x57: {"SRE", ZeroPageX, 6, false, (*Cpu).SRE},
	0x58: {"CLI", Implied, 2, false, (*Cpu).CLI},
	0x59: {"EOR", AbsoluteY, 4, true, (*Cpu).EOR},
	0x5A: {"NOP", Implied, 2, false, (*Cpu).iNOP},
	0x5B: {"SRE", AbsoluteY, 7, false, (*Cpu).SRE},
	0x5C: {"NOP", AbsoluteX, 4, true, (*Cpu).iNOP},
	0x5D: {"EOR", AbsoluteX, 4, true, (*Cpu).EOR},
	0x5E: {"LSR", AbsoluteX, 7, false, (*Cpu).LSR},
	0x5F: {"SRE", AbsoluteX, 7, false, (*Cpu).SRE},

	// 0x60-0x6F
	0x60: {"RTS", Implied, 6, false, (*Cpu).RTS},
	0x61: {"ADC", IndirectX, 6, false, (*Cpu).ADC},
	0x62: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0x63: {"RRA", IndirectX, 8, false, (*Cpu).RRA},
	0x64: {"NOP", ZeroPage, 3, false, (*Cpu).iNOP},
	0x65: {"ADC", ZeroPage, 3, false, (*Cpu).ADC},
	0x66: {"ROR", ZeroPage, 5, false, (*Cpu).ROR},
	0x67: {"RRA", ZeroPage, 5, false, (*Cpu).RRA},
	0x68: {"PLA", Implied, 4, false, (*Cpu).PLA},
	0x69: {"ADC", Immediate, 2, false, (*Cpu).ADC},
	0x6A: {"ROR", Accumulator, 2, false, (*Cpu).ROR},
	0x6B: {"ARR", Immediate, 2, false, (*Cpu).ARR},
	0x6C: {"JMP", Indirect, 5, false, (*Cpu).JMP},
	0x6D: {"ADC", Absolute, 4, false, (*Cpu).ADC},
	0x6E: {"ROR", Absolute, 6, false, (*Cpu).ROR},
	0x6F: {"RRA", Absolute, 6, false, (*Cpu).RRA},

	// 0x70-0x7F
	0x70: {"BVS", Relative, 2, false, (*Cpu).BVS},
	0x71: {"ADC", IndirectY, 5, true, (*Cpu).ADC},
	0x72: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0x73: {"RRA", IndirectY, 8, false, (*Cpu).RRA},
	0x74: {"NOP", ZeroPageX, 4, false, (*Cpu).iNOP},
	0x75: {"ADC", ZeroPageX, 4, false, (*Cpu).ADC},
	0x76: {"ROR", ZeroPageX, 6, false, (*Cpu).ROR},
	0x77: {"RRA", ZeroPageX, 6, false, (*Cpu).RRA},
	0x78: {"SEI", Implied, 2, false, (*Cpu).SEI},
	0x79: {"ADC", AbsoluteY, 4, true, (*Cpu).ADC},
	0x7A: {"NOP", Implied, 2, false, (*Cpu).iNOP},
	0x7B: {"RRA", AbsoluteY, 7, false, (*Cpu).RRA},
	0x7C: {"NOP", AbsoluteX, 4, true, (*Cpu).iNOP},
	0x7D: {"ADC", AbsoluteX, 4, true, (*Cpu).ADC},
	0x7E: {"ROR", AbsoluteX, 7, false, (*Cpu).ROR},
	0x7F: {"RRA", AbsoluteX, 7, false, (*Cpu).RRA},

	// 0x80-0x8F
	0x80: {"NOP", Immediate, 2, false, (*Cpu).iNOP},
	0x81: {"STA", IndirectX, 6, false, (*Cpu).STA},
	0x82: {"NOP", Immediate, 2, false, (*Cpu).iNOP},
	0x83: {"SAX", IndirectX, 6, false, (*Cpu).SAX},
	0x84: {"STY", ZeroPage, 3, false, (*Cpu).STY},
	0x85: {"STA", ZeroPage, 3, false, (*Cpu).STA},
	0x86: {"STX", ZeroPage, 3, false, (*Cpu).STX},
	0x87: {"SAX", ZeroPage, 3, false, (*Cpu).SAX},
	0x88: {"DEY", Implied, 2, false, (*Cpu).DEY},
	0x89: {"NOP", Immediate, 2, false, (*Cpu).iNOP},
	0x8A: {"TXA", Implied, 2, false, (*Cpu).TXA},
	0x8B: {"ANE", Immediate, 2, false, (*Cpu).LXA}, // highly unstable; approximated like LXA
	0x8C: {"STY", Absolute, 4, false, (*Cpu).STY},
	0x8D: {"STA", Absolute, 4, false, (*Cpu).STA},
	0x8E: {"STX", Absolute, 4, false, (*Cpu).STX},
	0x8F: {"SAX", Absolute, 4, false, (*Cpu).SAX},

	// 0x90-0x9F
	0x90: {"BCC", Relative, 2, false, (*Cpu).BCC},
	0x91: {"STA", IndirectY, 6, false, (*Cpu).STA},
	0x92: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0x93: {"SHA", IndirectY, 6, false, (*Cpu).SHA},
	0x94: {"STY", ZeroPageX, 4, false, (*Cpu).STY},
	0x95: {"STA", ZeroPageX, 4, false, (*Cpu).STA},
	0x96: {"STX", ZeroPageY, 4, false, (*Cpu).STX},
	0x97: {"SAX", ZeroPageY, 4, false, (*Cpu).SAX},
	0x98: {"TYA", Implied, 2, false, (*Cpu).TYA},
	0x99: {"STA", AbsoluteY, 5, false, (*Cpu).STA},
	0x9A: {"TXS", Implied, 2, false, (*Cpu).TXS},
	0x9B: {"SHS", AbsoluteY, 5, false, (*Cpu).SHS},
	0x9C: {"SHY", AbsoluteX, 5, false, (*Cpu).SHY},
	0x9D: {"STA", AbsoluteX, 5, false, (*Cpu).STA},
	0x9E: {"SHX", AbsoluteY, 5, false, (*Cpu).SHX},
	0x9F: {"SHA", AbsoluteY, 5, false, (*Cpu).SHA},

	// 0xA0-0xAF
	0xA0: {"LDY", Immediate, 2, false, (*Cpu).LDY},
	0xA1: {"LDA", IndirectX, 6, false, (*Cpu).LDA},
	0xA2: {"LDX", Immediate, 2, false, (*Cpu).LDX},
	0xA3: {"LAX", IndirectX, 6, false, (*Cpu).LAX},
	0xA4: {"LDY", ZeroPage, 3, false, (*Cpu).LDY},
	0xA5: {"LDA", ZeroPage, 3, false, (*Cpu).LDA},
	0xA6: {"LDX", ZeroPage, 3, false, (*Cpu).LDX},
	0xA7: {"LAX", ZeroPage, 3, false, (*Cpu).LAX},
	0xA8: {"TAY", Implied, 2, false, (*Cpu).TAY},
	0xA9: {"LDA", Immediate, 2, false, (*Cpu).LDA},
	0xAA: {"TAX", Implied, 2, false, (*Cpu).TAX},
	0xAB: {"LXA", Immediate, 2, false, (*Cpu).LXA},
	0xAC: {"LDY", Absolute, 4, false, (*Cpu).LDY},
	0xAD: {"LDA", Absolute, 4, false, (*Cpu).LDA},
	0xAE: {"LDX", Absolute, 4, false, (*Cpu).LDX},
	0xAF: {"LAX", Absolute, 4, false, (*Cpu).LAX},

	// 0xB0-0xBF
	0xB0: {"BCS", Relative, 2, false, (*Cpu).BCS},
	0xB1: {"LDA", IndirectY, 5, true, (*Cpu).LDA},
	0xB2: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0xB3: {"LAX", IndirectY, 5, true, (*Cpu).LAX},
	0xB4: {"LDY", ZeroPageX, 4, false, (*Cpu).LDY},
	0xB5: {"LDA", ZeroPageX, 4, false, (*Cpu).LDA},
	0xB6: {"LDX", ZeroPageY, 4, false, (*Cpu).LDX},
	0xB7: {"LAX", ZeroPageY, 4, false, (*Cpu).LAX},
	0xB8: {"CLV", Implied, 2, false, (*Cpu).CLV},
	0xB9: {"LDA", AbsoluteY, 4, true, (*Cpu).LDA},
	0xBA: {"TSX", Implied, 2, false, (*Cpu).TSX},
	0xBB: {"LAS", AbsoluteY, 4, true, (*Cpu).LAS},
	0xBC: {"LDY", AbsoluteX, 4, true, (*Cpu).LDY},
	0xBD: {"LDA", AbsoluteX, 4, true, (*Cpu).LDA},
	0xBE: {"LDX", AbsoluteY, 4, true, (*Cpu).LDX},
	0xBF: {"LAX", AbsoluteY, 4, true, (*Cpu).LAX},

	// 0xC0-0xCF
	0xC0: {"CPY", Immediate, 2, false, (*Cpu).CPY},
	0xC1: {"CMP", IndirectX, 6, false, (*Cpu).CMP},
	0xC2: {"NOP", Immediate, 2, false, (*Cpu).iNOP},
	0xC3: {"DCP", IndirectX, 8, false, (*Cpu).DCP},
	0xC4: {"CPY", ZeroPage, 3, false, (*Cpu).CPY},
	0xC5: {"CMP", ZeroPage, 3, false, (*Cpu).CMP},
	0xC6: {"DEC", ZeroPage, 5, false, (*Cpu).DEC},
	0xC7: {"DCP", ZeroPage, 5, false, (*Cpu).DCP},
	0xC8: {"INY", Implied, 2, false, (*Cpu).INY},
	0xC9: {"CMP", Immediate, 2, false, (*Cpu).CMP},
	0xCA: {"DEX", Implied, 2, false, (*Cpu).DEX},
	0xCB: {"SBX", Immediate, 2, false, (*Cpu).SBX},
	0xCC: {"CPY", Absolute, 4, false, (*Cpu).CPY},
	0xCD: {"CMP", Absolute, 4, false, (*Cpu).CMP},
	0xCE: {"DEC", Absolute, 6, false, (*Cpu).DEC},
	0xCF: {"DCP", Absolute, 6, false, (*Cpu).DCP},

	// 0xD0-0xDF
	0xD0: {"BNE", Relative, 2, false, (*Cpu).BNE},
	0xD1: {"CMP", IndirectY, 5, true, (*Cpu).CMP},
	0xD2: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0xD3: {"DCP", IndirectY, 8, false, (*Cpu).DCP},
	0xD4: {"NOP", ZeroPageX, 4, false, (*Cpu).iNOP},
	0xD5: {"CMP", ZeroPageX, 4, false, (*Cpu).CMP},
	0xD6: {"DEC", ZeroPageX, 6, false, (*Cpu).DEC},
	0xD7: {"DCP", ZeroPageX, 6, false, (*Cpu).DCP},
	0xD8: {"CLD", Implied, 2, false, (*Cpu).CLD},
	0xD9: {"CMP", AbsoluteY, 4, true, (*Cpu).CMP},
	0xDA: {"NOP", Implied, 2, false, (*Cpu).iNOP},
	0xDB: {"DCP", AbsoluteY, 7, false, (*Cpu).DCP},
	0xDC: {"NOP", AbsoluteX, 4, true, (*Cpu).iNOP},
	0xDD: {"CMP", AbsoluteX, 4, true, (*Cpu).CMP},
	0xDE: {"DEC", AbsoluteX, 7, false, (*Cpu).DEC},
	0xDF: {"DCP", AbsoluteX, 7, false, (*Cpu).DCP},

	// 0xE0-0xEF
	0xE0: {"CPX", Immediate, 2, false, (*Cpu).CPX},
	0xE1: {"SBC", IndirectX, 6, false, (*Cpu).SBC},
	0xE2: {"NOP", Immediate, 2, false, (*Cpu).iNOP},
	0xE3: {"ISC", IndirectX, 8, false, (*Cpu).ISC},
	0xE4: {"CPX", ZeroPage, 3, false, (*Cpu).CPX},
	0xE5: {"SBC", ZeroPage, 3, false, (*Cpu).SBC},
	0xE6: {"INC", ZeroPage, 5, false, (*Cpu).INC},
	0xE7: {"ISC", ZeroPage, 5, false, (*Cpu).ISC},
	0xE8: {"INX", Implied, 2, false, (*Cpu).INX},
	0xE9: {"SBC", Immediate, 2, false, (*Cpu).SBC},
	0xEA: {"NOP", Implied, 2, false, (*Cpu).NOP},
	0xEB: {"SBC", Immediate, 2, false, (*Cpu).SBC},
	0xEC: {"CPX", Absolute, 4, false, (*Cpu).CPX},
	0xED: {"SBC", Absolute, 4, false, (*Cpu).SBC},
	0xEE: {"INC", Absolute, 6, false, (*Cpu).INC},
	0xEF: {"ISC", Absolute, 6, false, (*Cpu).ISC},

	// 0xF0-0xFF
	0xF0: {"BEQ", Relative, 2, false, (*Cpu).BEQ},
	0xF1: {"SBC", IndirectY, 5, true, (*Cpu).SBC},
	0xF2: {"JAM", Implied, 2, false, (*Cpu).JAM},
	0xF3: {"ISC", IndirectY, 8, false, (*Cpu).ISC},
	0xF4: {"NOP", ZeroPageX, 4, false, (*Cpu).iNOP},
	0xF5: {"SBC", ZeroPageX, 4, false, (*Cpu).SBC},
	0xF6: {"INC", ZeroPageX, 6, false, (*Cpu).INC},
	0xF7: {"ISC", ZeroPageX, 6, false, (*Cpu).ISC},
	0xF8: {"SED", Implied, 2, false, (*Cpu).SED},
	0xF9: {"SBC", AbsoluteY, 4, true, (*Cpu).SBC},
	0xFA: {"NOP", Implied, 2, false, (*Cpu).iNOP},
	0xFB: {"ISC", AbsoluteY, 7, false, (*Cpu).ISC},
	0xFC: {"NOP", AbsoluteX, 4, true, (*Cpu).iNOP},
	0xFD: {"SBC", AbsoluteX, 4, true, (*Cpu).SBC},
	0xFE: {"INC", AbsoluteX, 7, false, (*Cpu).INC},
	0xFF: {"ISC", AbsoluteX, 7, false, (*Cpu).ISC},
}
