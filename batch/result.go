package batch

import (
	"github.com/go-pixfit/pixfit/image"
)

// Status is the terminal state of one file.
type Status uint8

const (
	StatusSaved Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSaved:
		return "saved"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the outcome of one file.
type Result struct {
	Source string
	Dest   string
	Status Status
	Err    error

	In       image.Size
	Out      image.Size
	BytesIn  int64
	BytesOut int64
}

// Stats totals a run. Total is the discovered count; the three status
// counters sum to the number of files actually attempted.
type Stats struct {
	Total    int
	Saved    int
	Skipped  int
	Failed   int
	BytesIn  int64
	BytesOut int64
}

func (st *Stats) Add(r Result) {
	switch r.Status {
	case StatusSaved:
		st.Saved++
	case StatusSkipped:
		st.Skipped++
	case StatusFailed:
		st.Failed++
	}
	st.BytesIn += r.BytesIn
	st.BytesOut += r.BytesOut
}
