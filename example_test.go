package rangemap_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/rangemap"
)

// ExampleMap demonstrates checked mapping between integer intervals.
func ExampleMap() {
	v, ok := rangemap.Map(uint8(17), rangemap.Span[uint8](10, 20), rangemap.Span[uint8](100, 200))
	fmt.Println(v, ok)

	_, ok = rangemap.Map(uint8(5), rangemap.Span[uint8](10, 20), rangemap.Span[uint8](100, 200))
	fmt.Println(ok)
	// Output:
	// 170 true
	// false
}

// ExampleMap_mixedTypes maps across signedness and between integers and floats.
func ExampleMap_mixedTypes() {
	a, _ := rangemap.Map(int8(-10), rangemap.Span[int8](-100, 100), rangemap.Span[uint8](0, 10))
	b, _ := rangemap.Map(uint8(90), rangemap.Span[uint8](0, 200), rangemap.Span[int8](-100, 100))
	c, _ := rangemap.Map(0.31, rangemap.Span(0.0, 1.0), rangemap.Span[uint8](0, 255))
	d, _ := rangemap.Map(uint8(81), rangemap.Span[uint8](0, 255), rangemap.Span(0.0, 1.0))

	fmt.Println(a, b, c, d)
	// Output: 4 -10 79 0.3176470588235294
}

// ExampleMap_descending maps onto a reversed target interval.
func ExampleMap_descending() {
	for _, x := range []uint8{10, 15, 20} {
		v, _ := rangemap.Map(x, rangemap.Span[uint8](10, 20), rangemap.Span[int16](500, -500))
		fmt.Println(v)
	}
	// Output:
	// 500
	// 0
	// -500
}

// ExampleMapUnchecked shows the wrapping result for a value outside the source interval.
func ExampleMapUnchecked() {
	fmt.Println(rangemap.MapUnchecked(uint8(25), rangemap.Span[uint8](0, 25), rangemap.Span[uint8](0, 250)))
	fmt.Println(rangemap.MapUnchecked(uint8(26), rangemap.Span[uint8](0, 25), rangemap.Span[uint8](0, 250)))
	// Output:
	// 250
	// 4
}

// ExampleNewMapper validates an interval pair once and maps many values.
func ExampleNewMapper() {
	// 12-bit ADC counts to millivolts.
	m, err := rangemap.NewMapper(rangemap.Span[uint16](0, 4095), rangemap.Span[int32](0, 3300), rangemap.WithRequireAscending())
	if err != nil {
		log.Fatal(err)
	}

	for _, raw := range []uint16{0, 2048, 4095, 5000} {
		mv, ok := m.Map(raw)
		fmt.Println(raw, mv, ok)
	}
	// Output:
	// 0 0 true
	// 2048 1650 true
	// 4095 3300 true
	// 5000 0 false
}

// ExampleAddClamp steps a value within bounds.
func ExampleAddClamp() {
	bounds := rangemap.Span[uint8](50, 100)

	fmt.Println(rangemap.AddClamp(uint8(0), 2, bounds))
	fmt.Println(rangemap.AddClamp(uint8(98), 5, bounds))
	fmt.Println(rangemap.SubClamp(uint8(60), 255, bounds))
	fmt.Println(rangemap.AddClampFloat(0.5, 0.25, rangemap.Span(0.0, 1.0)))
	// Output:
	// 50
	// 100
	// 50
	// 0.75
}
