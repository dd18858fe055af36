package element

import (
	"fmt"
	"strings"
)

// Type is the position of an element type in the type enumeration. The
// numeric value is what the compact encoding writes, so the order of the
// constants must not change.
type Type int

const (
	UnknownType Type = iota - 1
	CellTransmitterType
	ObjectiveCrossedWiresType
	ObjectiveSignalCountType
	ObjectiveTargetValueType
	PlacedSignalType
	RadialTransmitterType
	ReceiverType
	SignalBlockType
	SignalBlockCircleType
	SignalBlockHexagonType
	SignalBoosterType
	SwapperTransmitterType
	TransceiverType
	TransmitterType
)

var typeNames = []string{
	"CellTransmitter",
	"ObjectiveCrossedWires",
	"ObjectiveSignalCount",
	"ObjectiveTargetValue",
	"PlacedSignal",
	"RadialTransmitter",
	"Receiver",
	"SignalBlock",
	"SignalBlockCircle",
	"SignalBlockHexagon",
	"SignalBooster",
	"SwapperTransmitter",
	"Transceiver",
	"Transmitter",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<unknown type>"
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnimplementedType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, err := ParseType(string(d))
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// ParseType maps a type name from the markup to its enumeration value.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return UnknownType, fmt.Errorf("%w: %q", ErrUnimplementedType, s)
}

func Types() []Type {
	res := make([]Type, len(typeNames))
	for i := range typeNames {
		res[i] = Type(i)
	}
	return res
}

// IsUseful reports whether elements of this type are functional circuit
// elements rather than objectives or block shapes.
func (t Type) IsUseful() bool {
	return usefulName(t.String())
}

func usefulName(name string) bool {
	return !strings.Contains(name, "Objective") && !strings.Contains(name, "Block")
}

// Group is the position of an element group in the group enumeration.
type Group int

const (
	NoGroup Group = iota - 1
	CableGroup
	ExchangeGroup
	FibreGroup
	WaveGroup
)

var groupNames = []string{"Cable", "Exchange", "Fibre", "Wave"}

func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return ""
	}
	return groupNames[g]
}

func (g Group) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Group) UnmarshalText(d []byte) error {
	*g = ParseGroup(string(d))
	return nil
}

// ParseGroup returns NoGroup for names outside the enumeration.
func ParseGroup(s string) Group {
	for i, name := range groupNames {
		if name == s {
			return Group(i)
		}
	}
	return NoGroup
}

func Groups() []Group {
	return []Group{CableGroup, ExchangeGroup, FibreGroup, WaveGroup}
}
