package model

// Seat is a seat code as declared by the seat source.  The leading
// character of the code is the seat class tag (1-based).
//
// Fields:
//  Code  – seat code, e.g. "1A" or "2C".
//  Class – class tag parsed from the first character of Code.
type Seat struct {
    Code  string // seats.txt line
    Class int    // int(Code[0])
}
