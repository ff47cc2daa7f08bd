package types

import (
	"testing"

	"github.com/Goluxas/roguelike-tutorial/internal/core/types/enums"
)

// Sinks keep the compiler from discarding the work.
var (
	sinkID     EntityID
	sinkKind   enums.EntityKind
	sinkSerial uint64
)

func BenchmarkPackEntityID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkID = PackEntityID(enums.EntityKindCreature, uint64(i))
	}
}

func BenchmarkEntityID_Unpack(b *testing.B) {
	id := PackEntityID(enums.EntityKindPlayer, 123456)
	for i := 0; i < b.N; i++ {
		sinkKind = id.Kind()
		sinkSerial = id.Serial()
	}
}

func BenchmarkNextEntityID_Parallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		var local EntityID
		for pb.Next() {
			local = NextEntityID(enums.EntityKindCreature)
		}
		sinkID = local
	})
}
