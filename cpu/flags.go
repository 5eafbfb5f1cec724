// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cpu

// Zero reports whether x equals zero, for the Z flag.
func Zero(x uint8) bool {
	return x == 0
}

// Sign reports whether bit 7 of x is set, for the S flag.
func Sign(x uint8) bool {
	return x&0x80 != 0
}

// parityTable[x] is true iff x has an even number of set bits. Precomputed
// once rather than popcounted on every flag update.
var parityTable [256]bool

func init() {
	for i := 0; i < 256; i++ {
		bits := 0
		for v := uint8(i); v != 0; v &= v - 1 {
			bits++
		}
		parityTable[i] = bits%2 == 0
	}
}

// Parity reports whether x has an even number of set bits, for the P flag.
// The 8080's parity flag covers all eight bits of the result, so this uses
// a precomputed table over the full byte range.
func Parity(x uint8) bool {
	return parityTable[x]
}

// Carry converts an overflow/borrow indication into the CY flag value.
func Carry(overflowed bool) bool {
	return overflowed
}

// halfCarryAdd reports whether adding lhs+rhs+carryIn carries out of bit 3.
func halfCarryAdd(lhs, rhs, carryIn uint8) bool {
	return (lhs&0x0F)+(rhs&0x0F)+carryIn > 0x0F
}

// halfCarrySub reports whether subtracting rhs+borrowIn from lhs borrows
// out of bit 3.
func halfCarrySub(lhs, rhs, borrowIn uint8) bool {
	return int(lhs&0x0F)-int(rhs&0x0F)-int(borrowIn) < 0
}
