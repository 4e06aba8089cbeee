package emu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotString(t *testing.T) {
	_, snap := runROM(t, []byte{0x3E, 0xFF, 0xC6, 0x01, 0x76})
	s := snap.String()
	require.Contains(t, s, "A:00")
	require.Contains(t, s, "PC:0005")
	require.Contains(t, s, "FLAGS: .ZAPC")
	require.Contains(t, s, "halted:true")
}

func TestSnapshotJSON(t *testing.T) {
	_, snap := runROM(t, []byte{0x76})
	var sb strings.Builder
	require.NoError(t, snap.WriteJSON(&sb))
	require.Contains(t, sb.String(), `"halted": true`)
	require.Contains(t, sb.String(), `"pc": 1`)
}
