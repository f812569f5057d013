package orchestrator

// Report lists what a Run did, in walk order.
type Report struct {
	Converted []Conversion
	Skipped   []Skipped
}

// Conversion records one written output file.
type Conversion struct {
	Source      string
	Destination string
	Items       int
}

// Skipped records an input file left without output. Err is a
// *loader.ParseError or *loader.ShapeError.
type Skipped struct {
	Source string
	Err    error
}
