// Package mmu provides the memory the CPU executes from: a flat 64kB
// address space with an optional boot ROM mapped over the low addresses.
package mmu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// Size is the size of the address space.
	Size = 0x10000
	// ROMSize is the size of the window program images are loaded into.
	ROMSize = 0x8000
	// BDIS is the register that unmaps the boot ROM when written to.
	BDIS uint16 = 0xFF50
)

// ErrProgramLoaded is returned when a program is loaded more than once.
var ErrProgramLoaded = errors.New("mmu: program already loaded")

// AccessError describes an access that runs past the end of the address
// space.
type AccessError struct {
	Address uint16
	Length  int
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("mmu: access of %d bytes at %04X out of bounds", e.Length, e.Address)
}

// MMU is the memory management unit. It owns the whole address space for
// the duration of a run.
type MMU struct {
	// 64kB address space
	raw [Size]uint8

	// 0x0000 - 0x00FF/0x0900 - BOOT ROM (256B/2304B)
	bootROM     *boot.ROM
	bootROMDone bool

	loaded bool

	Log log.Logger
}

// NewMMU returns a new MMU.
func NewMMU(logger log.Logger) *MMU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &MMU{Log: logger}
}

// SetBootROM maps the given boot ROM over the low addresses until BDIS is
// written to. A nil ROM removes any mapped image.
func (m *MMU) SetBootROM(rom *boot.ROM) {
	m.bootROM = rom
	m.bootROMDone = false
	if rom == nil {
		m.Log.Debugf("boot rom removed")
		return
	}
	m.Log.Debugf("boot rom mapped (%d bytes, model %s)", rom.Len(), rom.Model())
}

// BootROMMapped reports whether reads of the low addresses are served by
// the boot ROM.
func (m *MMU) BootROMMapped() bool {
	return m.bootROM != nil && !m.bootROMDone
}

// LoadProgram copies the program image into the ROM window starting at
// 0x0000. It may only be called once.
func (m *MMU) LoadProgram(program []byte) error {
	if m.loaded {
		return ErrProgramLoaded
	}
	if len(program) > ROMSize {
		return fmt.Errorf("mmu: program of %d bytes exceeds the %d byte rom window", len(program), ROMSize)
	}
	copy(m.raw[:], program)
	m.loaded = true
	m.Log.Debugf("loaded program (%d bytes)", len(program))
	return nil
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	if m.BootROMMapped() {
		if address < 0x100 {
			return m.bootROM.Read(address)
		}
		if m.bootROM.Len() == boot.SizeCGB && address >= 0x200 && address < 0x900 {
			return m.bootROM.Read(address)
		}
	}

	return m.raw[address]
}

// Write writes the value to the given address. Any write to BDIS unmaps
// the boot ROM.
func (m *MMU) Write(address uint16, value uint8) {
	if address == BDIS {
		if m.BootROMMapped() {
			m.bootROMDone = true
			m.Log.Debugf("boot rom unmapped")
		} else {
			m.Log.Tracef("write of %02X to BDIS with no boot rom mapped", value)
		}
	}
	m.raw[address] = value
}

// Read16 returns the little-endian word at the given address.
func (m *MMU) Read16(address uint16) uint16 {
	m.checkBounds(address, 2)
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes a little-endian word to the given address.
func (m *MMU) Write16(address uint16, value uint16) {
	m.checkBounds(address, 2)
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// ReadBytes returns n consecutive bytes starting at address.
func (m *MMU) ReadBytes(address uint16, n int) []byte {
	m.checkBounds(address, n)
	b := make([]byte, n)
	for i := range b {
		b[i] = m.Read(address + uint16(i))
	}
	return b
}

// WriteBytes writes b starting at address.
func (m *MMU) WriteBytes(address uint16, b []byte) {
	m.checkBounds(address, len(b))
	for i, v := range b {
		m.Write(address+uint16(i), v)
	}
}

// checkBounds panics with an *AccessError if n bytes starting at address
// do not fit in the address space.
func (m *MMU) checkBounds(address uint16, n int) {
	if n < 0 || int(address)+n > Size {
		panic(&AccessError{Address: address, Length: n})
	}
}
