// Package sortable provides wrapper types for primitive types that implement
// the element protocol of the bucketsort and radixsort engines.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and two capability
// sets built on top of it:
//
//   - [Bucketer]: choose a bucket count for a maximum value, and map a value
//     to a bucket given that count and the maximum.
//   - [Digiter]: extract the decimal digit at a place, and report how many
//     places a value occupies.
//
// Ready-to-use implementations exist for the three supported kinds: [Int32],
// [Float64] and [String]. The engines are generic over these interfaces, so
// sorting a type with no implementation is a compile-time error.
//
// # Usage
//
//	data := []sortable.Int32{170, -45, 75, 90, -802, 24, 2, 66}
//
//	sorter := radixsort.New[sortable.Int32]()
//	sorter.Sort(data)
//
//	// data is now -802, -45, 2, 24, 66, 75, 90, 170
//	fmt.Println(sorter.Stats())
//
// # Tuning constants
//
// [NumericStringCeiling], [NumericStringBuckets], [AlphaBuckets] and
// [FixedPointDigits] are fixed choices rather than values derived from the
// input. Changing them changes where out-of-range inputs land, and with it
// the order the engines produce for such inputs.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are safe for
// concurrent reads. The engines that sort them are not.
package sortable
