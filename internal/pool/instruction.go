package pool

import (
	"encoding/json"
	"fmt"
)

// Instruction is the decoded matching request attached to a position-change
// notification. It is decoded once at the ingestion boundary; anything other
// than the three known encodings is rejected there rather than silently
// defaulted.
type Instruction uint8

const (
	// InstructionNone requests no matching; the engine reports a zero correction
	InstructionNone Instruction = iota

	// InstructionMatchA sources the position's asset-A requirement from the reservoir
	InstructionMatchA

	// InstructionMatchB sources the position's asset-B requirement from the reservoir
	InstructionMatchB
)

// ParseInstruction decodes the wire encoding of a matching instruction.
// An empty payload means no matching was requested.
func ParseInstruction(s string) (Instruction, error) {
	switch s {
	case "", "none":
		return InstructionNone, nil
	case "match_a":
		return InstructionMatchA, nil
	case "match_b":
		return InstructionMatchB, nil
	default:
		return InstructionNone, fmt.Errorf("%w: %q", ErrInvalidAssetSelection, s)
	}
}

// Slot returns the matched slot for the instruction; ok is false for InstructionNone
func (i Instruction) Slot() (Slot, bool) {
	switch i {
	case InstructionMatchA:
		return SlotA, true
	case InstructionMatchB:
		return SlotB, true
	default:
		return SlotA, false
	}
}

// MarshalJSON writes the wire encoding so persisted payloads stay readable.
func (i Instruction) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

func (i *Instruction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	instr, err := ParseInstruction(s)
	if err != nil {
		return err
	}
	*i = instr
	return nil
}

func (i Instruction) String() string {
	switch i {
	case InstructionNone:
		return "none"
	case InstructionMatchA:
		return "match_a"
	case InstructionMatchB:
		return "match_b"
	default:
		return "unknown"
	}
}
