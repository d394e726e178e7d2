package corner

// TotalEntries is the number of distinct corner configurations the table
// covers: 8! permutation digits times 3^7 orientation digits.
const TotalEntries = 8 * 7 * 6 * 5 * 4 * 3 * 2 * 2187 // 40320 * 2187 = 88,179,840

// TotalBytes is the packed size of a Table: two 4-bit entries per byte.
const TotalBytes = TotalEntries / 2

// Table is a fixed 44,089,920-byte buffer holding one 4-bit nibble per
// index in [0, TotalEntries). Entry i lives in the low nibble of byte i/2
// when i is even, the high nibble when i is odd.
type Table struct {
	bytes []byte
}

// Allocate produces a zero-filled Table of the fixed packed size.
func Allocate() *Table {
	return &Table{bytes: make([]byte, TotalBytes)}
}

// Bytes exposes the raw packed buffer, e.g. for Write.
func (t *Table) Bytes() []byte { return t.bytes }

// Len returns the number of addressable entries (always TotalEntries).
func (t *Table) Len() int { return TotalEntries }

// Get returns the nibble stored at index i.
func (t *Table) Get(i int) uint8 {
	t.mustInRange(i)
	b := t.bytes[i/2]
	if i%2 == 0 {
		return b & 0x0F
	}
	return b >> 4
}

// Set writes v (0..15) into index i without disturbing the sibling nibble.
func (t *Table) Set(i int, v uint8) {
	t.mustInRange(i)
	if v > 0x0F {
		Fatal(&FaultError{Kind: FaultNibbleOutOfRange, Context: "value exceeds 4 bits"})
	}
	bi := i / 2
	if i%2 == 0 {
		t.bytes[bi] = (t.bytes[bi] & 0xF0) | v
	} else {
		t.bytes[bi] = (t.bytes[bi] & 0x0F) | (v << 4)
	}
}

// Clear zeros every byte of the table.
func (t *Table) Clear() {
	for i := range t.bytes {
		t.bytes[i] = 0
	}
}

func (t *Table) mustInRange(i int) {
	if i < 0 || i >= TotalEntries {
		Fatal(&FaultError{Kind: FaultIndexOutOfRange, Context: "index outside [0, TotalEntries)"})
	}
}

// NewVisited allocates a table used as the visited-at-depth filter (§4.E);
// it shares Table's packed layout exactly, reset at the start of every
// depth iteration via Clear.
func NewVisited() *Table {
	return Allocate()
}
