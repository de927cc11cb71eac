// Package wire is the on-the-wire codec for the live control-plane
// messages that cross the websocket boundary between a running simulation
// and an observer (cmd/server's controlHub and its clients).
//
// There is no protoc step in this build: instead of protoc-gen-go
// descriptors and reflection, messages are hand-coded directly against the
// protobuf wire format using the low-level google.golang.org/protobuf/
// encoding/protowire primitives (the same primitives protoc-gen-go output
// itself is built on). Field numbers below are chosen as if from a .proto
// source and kept stable for forward compatibility with unknown fields,
// the same discipline a real .proto would buy.
package wire

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers for Snapshot.
const (
	fieldSnapshotTime        protowire.Number = 1
	fieldSnapshotInfected    protowire.Number = 2
	fieldSnapshotNonInfected protowire.Number = 3
	fieldSnapshotRecovered   protowire.Number = 4
	fieldSnapshotDead        protowire.Number = 5
	fieldSnapshotIndividuals protowire.Number = 6
)

// Field numbers for the embedded IndividualView submessage.
const (
	fieldIndividualX      protowire.Number = 1
	fieldIndividualY      protowire.Number = 2
	fieldIndividualHealth protowire.Number = 3
)

// Field numbers for Control.
const (
	fieldControlCommand protowire.Number = 1
	fieldControlSpeed   protowire.Number = 2
)

// Command values carried by Control.
const (
	NoCommand       byte = 0
	StopCommand     byte = 1
	SetSpeedCommand byte = 2
)

// HealthCode mirrors sim.Health without importing the sim package: the
// wire format is a boundary the core simulation engine never depends on.
type HealthCode byte

const (
	HealthSusceptible HealthCode = 0
	HealthInfected    HealthCode = 1
	HealthRecovered   HealthCode = 2
	HealthDead        HealthCode = 3
)

// IndividualView is one particle's position and health at the moment of a
// snapshot.
type IndividualView struct {
	X, Y   float32
	Health HealthCode
}

// Snapshot is the periodic broadcast payload: simulated time, every
// individual's (x, y, health), and the four population-composition
// percentages last recorded into History.
type Snapshot struct {
	Time                                    float64
	Infected, NonInfected, Recovered, Dead float64
	Individuals                            []IndividualView
}

// Control is a command sent from a client to the server over the control
// websocket. Speed is only meaningful alongside SetSpeedCommand.
type Control struct {
	Command byte
	Speed   float64
}

// EncodeSnapshot serializes s using the field layout documented above.
func EncodeSnapshot(s Snapshot) []byte {
	var b []byte
	b = appendDouble(b, fieldSnapshotTime, s.Time)
	b = appendDouble(b, fieldSnapshotInfected, s.Infected)
	b = appendDouble(b, fieldSnapshotNonInfected, s.NonInfected)
	b = appendDouble(b, fieldSnapshotRecovered, s.Recovered)
	b = appendDouble(b, fieldSnapshotDead, s.Dead)

	for _, v := range s.Individuals {
		b = protowire.AppendTag(b, fieldSnapshotIndividuals, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeIndividualView(v))
	}
	return b
}

func encodeIndividualView(v IndividualView) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldIndividualX, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, math.Float32bits(v.X))
	b = protowire.AppendTag(b, fieldIndividualY, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, math.Float32bits(v.Y))
	b = protowire.AppendTag(b, fieldIndividualHealth, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(v.Health))
	return b
}

// DecodeSnapshot parses bytes produced by EncodeSnapshot. Unknown fields
// are skipped, not rejected, matching protobuf's forward-compatibility
// contract.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return Snapshot{}, fmt.Errorf("wire: bad snapshot tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch num {
		case fieldSnapshotTime:
			v, n, err := consumeDouble(data)
			if err != nil {
				return Snapshot{}, err
			}
			s.Time = v
			data = data[n:]
		case fieldSnapshotInfected:
			v, n, err := consumeDouble(data)
			if err != nil {
				return Snapshot{}, err
			}
			s.Infected = v
			data = data[n:]
		case fieldSnapshotNonInfected:
			v, n, err := consumeDouble(data)
			if err != nil {
				return Snapshot{}, err
			}
			s.NonInfected = v
			data = data[n:]
		case fieldSnapshotRecovered:
			v, n, err := consumeDouble(data)
			if err != nil {
				return Snapshot{}, err
			}
			s.Recovered = v
			data = data[n:]
		case fieldSnapshotDead:
			v, n, err := consumeDouble(data)
			if err != nil {
				return Snapshot{}, err
			}
			s.Dead = v
			data = data[n:]
		case fieldSnapshotIndividuals:
			raw, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return Snapshot{}, fmt.Errorf("wire: bad individual bytes: %w", protowire.ParseError(n))
			}
			view, err := decodeIndividualView(raw)
			if err != nil {
				return Snapshot{}, err
			}
			s.Individuals = append(s.Individuals, view)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return Snapshot{}, fmt.Errorf("wire: bad unknown field: %w", protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return s, nil
}

func decodeIndividualView(data []byte) (IndividualView, error) {
	var v IndividualView
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return v, fmt.Errorf("wire: bad individual tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch num {
		case fieldIndividualX:
			bits, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return v, fmt.Errorf("wire: bad individual.x: %w", protowire.ParseError(n))
			}
			v.X = math.Float32frombits(bits)
			data = data[n:]
		case fieldIndividualY:
			bits, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return v, fmt.Errorf("wire: bad individual.y: %w", protowire.ParseError(n))
			}
			v.Y = math.Float32frombits(bits)
			data = data[n:]
		case fieldIndividualHealth:
			h, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return v, fmt.Errorf("wire: bad individual.health: %w", protowire.ParseError(n))
			}
			v.Health = HealthCode(h)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return v, fmt.Errorf("wire: bad unknown field: %w", protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return v, nil
}

// EncodeControl serializes c.
func EncodeControl(c Control) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldControlCommand, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(c.Command))
	b = appendDouble(b, fieldControlSpeed, c.Speed)
	return b
}

// DecodeControl parses bytes produced by EncodeControl.
func DecodeControl(data []byte) (Control, error) {
	var c Control
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return Control{}, fmt.Errorf("wire: bad control tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch num {
		case fieldControlCommand:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return Control{}, fmt.Errorf("wire: bad control.command: %w", protowire.ParseError(n))
			}
			c.Command = byte(v)
			data = data[n:]
		case fieldControlSpeed:
			v, n, err := consumeDouble(data)
			if err != nil {
				return Control{}, err
			}
			c.Speed = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return Control{}, fmt.Errorf("wire: bad unknown field: %w", protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return c, nil
}

func appendDouble(b []byte, field protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, field, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func consumeDouble(data []byte) (float64, int, error) {
	bits, n := protowire.ConsumeFixed64(data)
	if n < 0 {
		return 0, 0, fmt.Errorf("wire: bad double field: %w", protowire.ParseError(n))
	}
	return math.Float64frombits(bits), n, nil
}
