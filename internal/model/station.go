package model

// Station is one stop of a train line as declared by the station source.
// Stations are listed in line order; the first record is the origin
// terminus.
//
// Fields:
//  Name  – unique station name.
//  Fares – cumulative fare from the origin terminus to this station,
//          one entry per seat class (class 1 first).
type Station struct {
    Name  string // stations.txt column 1
    Fares []int  // stations.txt columns 2..K+1
}
