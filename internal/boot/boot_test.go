package boot

import "testing"

func TestLoadBootROM(t *testing.T) {
	for _, size := range []int{SizeDMG, SizeCGB} {
		rom, err := LoadBootROM(make([]byte, size))
		if err != nil {
			t.Fatalf("expected %d byte boot rom to load, got %v", size, err)
		}
		if rom.Len() != size {
			t.Errorf("expected length %d, got %d", size, rom.Len())
		}
		if len(rom.Checksum()) != 32 {
			t.Errorf("expected a 32 character checksum, got %q", rom.Checksum())
		}
		if rom.Model() != "unknown" {
			t.Errorf("expected unknown model, got %s", rom.Model())
		}
	}

	if _, err := LoadBootROM(make([]byte, 100)); err == nil {
		t.Errorf("expected an error for a 100 byte boot rom")
	}
}

func TestROM_Read(t *testing.T) {
	b := make([]byte, SizeDMG)
	b[0x00], b[0xFF] = 0x31, 0x50
	rom, err := LoadBootROM(b)
	if err != nil {
		t.Fatal(err)
	}

	// the rom keeps its own copy
	b[0x00] = 0

	if rom.Read(0x00) != 0x31 {
		t.Errorf("expected 0x31 at 0x00, got 0x%02X", rom.Read(0x00))
	}
	if rom.Read(0xFF) != 0x50 {
		t.Errorf("expected 0x50 at 0xFF, got 0x%02X", rom.Read(0xFF))
	}
}

func TestROM_Nil(t *testing.T) {
	var rom *ROM
	if rom.Checksum() != "" {
		t.Errorf("expected empty checksum")
	}
	if rom.Model() != "none" {
		t.Errorf("expected model none, got %s", rom.Model())
	}
	if rom.Len() != 0 {
		t.Errorf("expected length 0, got %d", rom.Len())
	}
	if rom.Read(0x00) != 0xFF {
		t.Errorf("expected 0xFF from a nil rom, got 0x%02X", rom.Read(0x00))
	}
}
