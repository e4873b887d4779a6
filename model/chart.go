package model

// ChartObject is one raw timed event from a compiled chart. Fraction is
// the position within the measure, in [0, 1).
type ChartObject struct {
	Channel  string
	Measure  int
	Fraction float64
	Value    string
}

type SongInfo struct {
	Title  string  `json:"title"`
	Artist string  `json:"artist"`
	Genre  string  `json:"genre"`
	BPM    float64 `json:"bpm"`
}

type ChartMetadata struct {
	Title  string
	Artist string
	Genre  string
	Year   uint
}

type FileNumToChartPath = map[uint32]string
