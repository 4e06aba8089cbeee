package cpu

import "testing"

func TestMemoryRead16Wraps(t *testing.T) {
	var m Memory
	m.Write(0xFFFF, 0x34)
	m.Write(0x0000, 0x12)
	if got := m.Read16(0xFFFF); got != 0x1234 {
		t.Errorf("Read16(0xFFFF) = %04X, want 1234", got)
	}
}

func TestMemoryWrite16(t *testing.T) {
	var m Memory
	m.Write16(0x1000, 0xBEEF)
	if m.Read(0x1000) != 0xEF || m.Read(0x1001) != 0xBE {
		t.Errorf("Write16 stored %02X %02X, want EF BE", m.Read(0x1000), m.Read(0x1001))
	}
}

func TestMemoryLoad(t *testing.T) {
	var m Memory
	if err := m.Load([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Read(0) != 1 || m.Read(2) != 3 || m.Read(3) != 0 {
		t.Error("Load did not copy image to offset 0")
	}

	if err := m.Load(make([]byte, MemSize+1)); err == nil {
		t.Error("Load accepted an oversized image")
	}
	if err := m.Load(make([]byte, MemSize)); err != nil {
		t.Errorf("Load rejected a full-size image: %v", err)
	}
}
