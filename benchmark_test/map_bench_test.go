package benchmark_test

import (
	"testing"

	"github.com/hupe1980/rangemap"
)

// ============================================================================
// TYPE-PAIR BENCHMARKS
// ============================================================================
//
// Run: go test -bench=. -benchmem -run=^$ ./benchmark_test/...
//
// Every benchmark maps 256 inputs per iteration so ns/op divided by 256 is
// the cost of a single call. All paths must report 0 allocs/op.

const inputsPerOp = 256

var (
	sinkU8  uint8
	sinkU16 uint16
	sinkU32 uint32
	sinkU64 uint64
	sinkI64 int64
	sinkF32 float32
	sinkF64 float64
)

func BenchmarkMapU8ToU8(b *testing.B) {
	src, dst := rangemap.Span[uint8](0, 255), rangemap.Span[uint8](10, 200)
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkU8, _ = rangemap.Map(uint8(x), src, dst)
		}
	}
}

func BenchmarkMapU32ToU16Unchecked(b *testing.B) {
	src, dst := rangemap.Span[uint32](0, 255), rangemap.Span[uint16](0, 2000)
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkU16 = rangemap.MapUnchecked(uint32(x), src, dst)
		}
	}
}

func BenchmarkMapI32ToU32(b *testing.B) {
	src, dst := rangemap.Span[int32](-128, 127), rangemap.Span[uint32](0, 4_000_000_000)
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkU32, _ = rangemap.Map(int32(x-128), src, dst)
		}
	}
}

// The 64-bit pairs exercise the 128-bit intermediate.
func BenchmarkMapU64ToU64(b *testing.B) {
	full := rangemap.Full[uint64]()
	dst := rangemap.Span[uint64](1<<40, 1<<63)
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkU64, _ = rangemap.Map(uint64(x)<<56, full, dst)
		}
	}
}

func BenchmarkMapI64ToI64Descending(b *testing.B) {
	full := rangemap.Full[int64]()
	dst := full.Reverse()
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkI64, _ = rangemap.Map(int64(x)<<55, full, dst)
		}
	}
}

func BenchmarkMapF64ToF64(b *testing.B) {
	src, dst := rangemap.Span(0.0, 255.0), rangemap.Span(-1000.0, 1000.0)
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkF64, _ = rangemap.Map(float64(x), src, dst)
		}
	}
}

func BenchmarkMapF64ToF32(b *testing.B) {
	src, dst := rangemap.Span(0.0, 255.0), rangemap.Span[float32](0, 2000)
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkF32, _ = rangemap.Map(float64(x), src, dst)
		}
	}
}

func BenchmarkMapF64ToU16(b *testing.B) {
	src, dst := rangemap.Span(0.0, 255.0), rangemap.Span[uint16](0, 2000)
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkU16, _ = rangemap.Map(float64(x), src, dst)
		}
	}
}

func BenchmarkMapU16ToF64(b *testing.B) {
	src, dst := rangemap.Span[uint16](0, 255), rangemap.Span(0.0, 2000.0)
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkF64, _ = rangemap.Map(uint16(x), src, dst)
		}
	}
}

func BenchmarkMapperU16ToF32(b *testing.B) {
	m, err := rangemap.NewMapper(rangemap.Span[uint16](0, 4095), rangemap.Span[float32](-1, 1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkF32 = m.MapUnchecked(uint16(x << 4))
		}
	}
}

func BenchmarkAddClamp(b *testing.B) {
	bounds := rangemap.Span[uint8](50, 100)
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkU8 = rangemap.AddClamp(uint8(x), uint64(x), bounds)
		}
	}
}

func BenchmarkSubClampFloat(b *testing.B) {
	bounds := rangemap.Span(-1.0, 1.0)
	b.ReportAllocs()
	for b.Loop() {
		for x := range inputsPerOp {
			sinkF64 = rangemap.SubClampFloat(0.5, float64(x)/256, bounds)
		}
	}
}
