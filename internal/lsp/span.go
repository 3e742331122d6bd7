package lsp

import (
	"fortio.org/safecast"
	"go.lsp.dev/protocol"

	"riddl/internal/source"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

func toPosition(p source.Position) protocol.Position {
	return protocol.Position{Line: safeUint32(p.Line), Character: safeUint32(p.Col)}
}

func toRange(r source.Range) protocol.Range {
	return protocol.Range{Start: toPosition(r.Start), End: toPosition(r.End)}
}

func fromPosition(p protocol.Position) (line, col int) {
	return int(p.Line), int(p.Character)
}
