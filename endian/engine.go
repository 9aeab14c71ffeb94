// Package endian provides byte order utilities for the SAC binary codec.
//
// SAC files are written in either byte order depending on the platform of
// the writing tool, so every field codec takes an explicit engine rather
// than assuming one. The EndianEngine interface combines ByteOrder and
// AppendByteOrder from encoding/binary so both read and append style
// operations share a single value.
//
// All functions and returned engines are immutable, stateless, and safe
// for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian and binary.BigEndian both
// satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Little returns the little-endian engine.
func Little() EndianEngine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() EndianEngine {
	return binary.BigEndian
}

// Native returns the host's byte order, probed with a fixed integer.
func Native() EndianEngine {
	// 0x0100 puts the MSB first in memory on a big-endian host.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Opposite returns the engine with the reverse byte order of e.
func Opposite(e EndianEngine) EndianEngine {
	if e == EndianEngine(binary.LittleEndian) {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsLittle reports whether e is the little-endian engine.
func IsLittle(e EndianEngine) bool {
	return e == EndianEngine(binary.LittleEndian)
}
