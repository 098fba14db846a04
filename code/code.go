// Package code defines the bytecode instruction set the compiler emits
// and a disassembler walks: one push/pop opcode pair per primitive type,
// plus jump and return. Operands are written inline in the instruction
// stream rather than indexed into a constant pool — a pushed literal
// carries its own payload at the type's native width, big-endian.
package code

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Instructions is a slice of bytes representing a sequence of instructions.
type Instructions []byte

// Opcode identifies a single bytecode instruction.
type Opcode byte

const (
	// OpPushNull pushes the unit value onto the stack. No operand.
	OpPushNull Opcode = iota

	// OpPushInteger pushes a 32-bit signed integer. Operand: 4 bytes,
	// big-endian two's complement.
	OpPushInteger

	// OpPushFloat pushes an IEEE-754 single. Operand: 4 bytes, the
	// big-endian bit pattern of the float32.
	OpPushFloat

	// OpPushString pushes a UTF-8 string. Operand: the raw bytes of the
	// string followed by a NUL terminator — length is not known from the
	// opcode alone, so the disassembler and compiler scan for the
	// terminator rather than reading a fixed width.
	OpPushString

	// OpPushKey pushes a key-shaped string. Same encoding as OpPushString;
	// the distinct opcode is what preserves the key/string type distinction
	// in the instruction stream.
	OpPushKey

	// OpPushVector pushes a vector. Operand: three big-endian float32
	// values, x then y then z.
	OpPushVector

	// OpPushQuaternion pushes a quaternion. Operand: four big-endian
	// float32 values, x, y, z, then s.
	OpPushQuaternion

	// OpPushList pushes a list built from the top N stack values (pushed
	// element-first, so the Nth-from-top value becomes element 0).
	// Operand: 2-byte element count.
	OpPushList

	// OpPopNull, OpPopInteger, ... discard the top stack value. The
	// per-type distinction carries no extra operand; it exists so a
	// disassembly or a type-checked VM can confirm the popped value's
	// shape matches what produced it.
	OpPopNull
	OpPopInteger
	OpPopFloat
	OpPopString
	OpPopKey
	OpPopVector
	OpPopQuaternion
	OpPopList

	// OpJump transfers control unconditionally. Operand: a signed 32-bit
	// offset, relative to the position immediately after the operand
	// (i.e. target = operand_start + 4 + offset).
	OpJump

	// OpReturn returns from the current function body.
	OpReturn
)

// Definition describes an instruction's mnemonic and, for opcodes with a
// statically known operand width, that width in bytes. OpPushString and
// OpPushKey have no entry here — their payload length depends on the
// string's content, not the opcode — and are encoded/decoded by the
// dedicated MakePushString/ReadPushString helpers below.
type Definition struct {
	Name          string
	OperandWidths []int
}

var definitions = map[Opcode]*Definition{
	OpPushNull:       {"push_null", []int{}},
	OpPushInteger:    {"push_integer", []int{4}},
	OpPushFloat:      {"push_float", []int{4}},
	OpPushVector:     {"push_vector", []int{4, 4, 4}},
	OpPushQuaternion: {"push_quaternion", []int{4, 4, 4, 4}},
	OpPushList:       {"push_list", []int{2}},
	OpPopNull:        {"pop_null", []int{}},
	OpPopInteger:     {"pop_integer", []int{}},
	OpPopFloat:       {"pop_float", []int{}},
	OpPopString:      {"pop_string", []int{}},
	OpPopKey:         {"pop_key", []int{}},
	OpPopVector:      {"pop_vector", []int{}},
	OpPopQuaternion:  {"pop_quaternion", []int{}},
	OpPopList:        {"pop_list", []int{}},
	OpJump:           {"jump", []int{4}},
	OpReturn:         {"return", []int{}},
}

// Lookup returns the Definition for op, or an error if op is unknown.
// OpPushString and OpPushKey have no fixed-width entry in the table, so
// they get a name-only Definition with no operand widths.
func Lookup(op byte) (*Definition, error) {
	if Opcode(op) == OpPushString {
		return &Definition{"push_string", nil}, nil
	}
	if Opcode(op) == OpPushKey {
		return &Definition{"push_key", nil}, nil
	}
	def, ok := definitions[Opcode(op)]
	if !ok {
		return nil, fmt.Errorf("opcode %d undefined", op)
	}
	return def, nil
}

// Make encodes an instruction from a fixed-width opcode and its integer
// operands. It must not be used for OpPushString/OpPushKey — use
// MakePushString instead.
func Make(op Opcode, operands ...int) []byte {
	def, ok := definitions[op]
	if !ok {
		return []byte{}
	}
	length := 1
	for _, w := range def.OperandWidths {
		length += w
	}
	instruction := make([]byte, length)
	instruction[0] = byte(op)
	offset := 1
	for i, operand := range operands {
		width := def.OperandWidths[i]
		switch width {
		case 2:
			binary.BigEndian.PutUint16(instruction[offset:], uint16(operand))
		case 4:
			binary.BigEndian.PutUint32(instruction[offset:], uint32(operand))
		}
		offset += width
	}
	return instruction
}

// MakeJump encodes a jump with its relative offset, the one case where the
// operand is signed — everywhere else in the instruction set, widths and
// counts are unsigned.
func MakeJump(offset int32) []byte {
	instruction := make([]byte, 5)
	instruction[0] = byte(OpJump)
	binary.BigEndian.PutUint32(instruction[1:], uint32(offset))
	return instruction
}

// ReadJumpOffset decodes the signed 32-bit relative offset of a jump
// instruction's operand (ins must start just past the opcode byte).
func ReadJumpOffset(ins Instructions) int32 {
	return int32(binary.BigEndian.Uint32(ins))
}

// MakePushString encodes a push_string or push_key instruction: opcode
// byte, then the string's raw bytes, then a NUL terminator.
func MakePushString(op Opcode, s string) []byte {
	instruction := make([]byte, 1+len(s)+1)
	instruction[0] = byte(op)
	copy(instruction[1:], s)
	instruction[len(instruction)-1] = 0
	return instruction
}

// ReadPushString decodes a NUL-terminated string operand starting at ins
// (just past the opcode byte) and returns the string and the number of
// bytes consumed, including the terminator.
func ReadPushString(ins Instructions) (string, int) {
	for i, b := range ins {
		if b == 0 {
			return string(ins[:i]), i + 1
		}
	}
	return string(ins), len(ins)
}

// ReadOperands decodes the fixed-width operands of a non-string
// instruction given its Definition, returning the decoded operands and
// the number of bytes consumed.
func ReadOperands(def *Definition, ins Instructions) ([]int, int) {
	operands := make([]int, len(def.OperandWidths))
	offset := 0
	for i, width := range def.OperandWidths {
		switch width {
		case 2:
			operands[i] = int(binary.BigEndian.Uint16(ins[offset:]))
		case 4:
			operands[i] = int(binary.BigEndian.Uint32(ins[offset:]))
		}
		offset += width
	}
	return operands, offset
}

// String disassembles ins into a human-readable listing, one instruction
// per line prefixed with its byte offset.
func (ins Instructions) String() string {
	var out strings.Builder
	i := 0
	for i < len(ins) {
		op := Opcode(ins[i])
		if op == OpPushString || op == OpPushKey {
			name := "push_string"
			if op == OpPushKey {
				name = "push_key"
			}
			s, read := ReadPushString(ins[i+1:])
			fmt.Fprintf(&out, "%04d %s %q\n", i, name, s)
			i += read + 1
			continue
		}
		if op == OpJump {
			offset := ReadJumpOffset(ins[i+1:])
			fmt.Fprintf(&out, "%04d jump %d\n", i, offset)
			i += 5
			continue
		}
		def, err := Lookup(ins[i])
		if err != nil {
			fmt.Fprintf(&out, "ERROR: %s\n", err)
			i++
			continue
		}
		operands, read := ReadOperands(def, ins[i+1:])
		fmt.Fprintf(&out, "%04d %s\n", i, fmtInstruction(def, operands))
		i += read + 1
	}
	return out.String()
}

func fmtInstruction(def *Definition, operands []int) string {
	switch len(operands) {
	case 0:
		return def.Name
	case 1:
		return fmt.Sprintf("%s %d", def.Name, operands[0])
	default:
		parts := make([]string, len(operands))
		for i, o := range operands {
			parts[i] = fmt.Sprintf("%d", o)
		}
		return def.Name + " " + strings.Join(parts, " ")
	}
}
