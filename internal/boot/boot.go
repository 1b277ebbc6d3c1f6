// Package boot wraps a boot ROM image. The image is mapped over the low
// addresses of the memory until the program disables it, see mmu.MMU.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

const (
	// SizeDMG is the size of the DMG/MGB/SGB boot ROM.
	SizeDMG = 256
	// SizeCGB is the size of the CGB boot ROM.
	SizeCGB = 2304
)

// ROM represents a boot ROM image.
type ROM struct {
	raw      []byte
	checksum string // MD5 of raw
}

// LoadBootROM validates b and wraps it in a ROM. Only 256 byte and 2304
// byte images are accepted.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != SizeDMG && len(b) != SizeCGB {
		return nil, fmt.Errorf("boot: invalid boot rom length: %d", len(b))
	}

	sum := md5.Sum(b)
	return &ROM{
		raw:      append([]byte(nil), b...),
		checksum: hex.EncodeToString(sum[:]),
	}, nil
}

// Read returns the byte at the given address. A nil ROM reads as 0xFF.
func (b *ROM) Read(addr uint16) byte {
	if b == nil || int(addr) >= len(b.raw) {
		return 0xFF
	}
	return b.raw[addr]
}

// Len returns the size of the image in bytes.
func (b *ROM) Len() int {
	if b == nil {
		return 0
	}
	return len(b.raw)
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the hardware the boot ROM was dumped from, identified by
// its checksum.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

var knownChecksums = map[string]string{
	"a8f84a0ac44da5d3f0ee19f9cea80a8c": "Game Boy (DMG-0)",
	"32fbbd84168d3482956eb3c5051637f5": "Game Boy (DMG-01)",
	"71a378e71ff30b2d8a1f02bf5c7896aa": "Game Boy Pocket",
	"d574d4f9c12f305074798f54c091a8b4": "Super Game Boy",
	"e0430bca9925fb9882148fd2dc2418c1": "Super Game Boy 2",
	"7c773f3c0b01cb73bca8e83227287b7f": "Game Boy Color (CGB-0)",
	"dbfce9db9deaa2567f6a84fde55f9680": "Game Boy Color (CGB-A/B/C/D/E)",
	"e6cefb5f7d352fab6681989763917c73": "Game Boy Advance (AGB-001)",
}
