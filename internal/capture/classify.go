package capture

import "sort"

// RegionKind names the structural role of a byte.
type RegionKind int

const (
	RegionUnclassified RegionKind = iota
	RegionFileHeader
	RegionRecordHeader
	RegionRecordPayload
)

func (k RegionKind) String() string {
	switch k {
	case RegionFileHeader:
		return "file-header"
	case RegionRecordHeader:
		return "record-header"
	case RegionRecordPayload:
		return "record-payload"
	default:
		return "unclassified"
	}
}

// Region is the classifier result. Record, RecordStart and PayloadStart are
// meaningful only for the two record kinds.
type Region struct {
	Kind         RegionKind
	Record       int
	RecordStart  int
	PayloadStart int
}

// Classify walks records in order and returns the region owning offset.
func Classify(offset int, records []Record) Region {
	if offset < 0 {
		return Region{Kind: RegionUnclassified}
	}
	if offset < FileHeaderSize {
		return Region{Kind: RegionFileHeader}
	}

	cursor := FileHeaderSize
	for i, rec := range records {
		headerEnd := cursor + RecordHeaderSize
		payloadEnd := headerEnd + int(rec.Header.PayloadLength)
		switch {
		case offset >= cursor && offset < headerEnd:
			return recordRegion(RegionRecordHeader, i, cursor)
		case offset >= headerEnd && offset < payloadEnd:
			return recordRegion(RegionRecordPayload, i, cursor)
		}
		cursor = payloadEnd
	}
	return Region{Kind: RegionUnclassified}
}

func recordRegion(kind RegionKind, idx, start int) Region {
	return Region{
		Kind:         kind,
		Record:       idx,
		RecordStart:  start,
		PayloadStart: start + RecordHeaderSize,
	}
}

// Index answers Classify queries in O(log n) using the record starts.
type Index struct {
	records []Record
	end     int
}

// NewIndex builds an index over records as produced by Parse, which are
// contiguous and ordered by Start.
func NewIndex(records []Record) *Index {
	end := FileHeaderSize
	if len(records) > 0 {
		end = records[len(records)-1].End()
	}
	return &Index{records: records, end: end}
}

func (idx *Index) Records() []Record {
	return idx.records
}

// End is the offset just past the last indexed record.
func (idx *Index) End() int {
	return idx.end
}

func (idx *Index) Classify(offset int) Region {
	switch {
	case offset < 0:
		return Region{Kind: RegionUnclassified}
	case offset < FileHeaderSize:
		return Region{Kind: RegionFileHeader}
	case offset >= idx.end:
		return Region{Kind: RegionUnclassified}
	}

	// Last record whose header starts at or before offset.
	i := sort.Search(len(idx.records), func(i int) bool {
		return idx.records[i].Start > offset
	}) - 1
	if i < 0 {
		return Region{Kind: RegionUnclassified}
	}

	rec := idx.records[i]
	switch {
	case offset < rec.PayloadStart():
		return recordRegion(RegionRecordHeader, i, rec.Start)
	case offset < rec.End():
		return recordRegion(RegionRecordPayload, i, rec.Start)
	}
	return Region{Kind: RegionUnclassified}
}

// RecordsStartingIn returns the indices of records whose header begins in
// [lo, hi).
func (idx *Index) RecordsStartingIn(lo, hi int) []int {
	if hi <= lo {
		return nil
	}
	first := sort.Search(len(idx.records), func(i int) bool {
		return idx.records[i].Start >= lo
	})
	var out []int
	for i := first; i < len(idx.records) && idx.records[i].Start < hi; i++ {
		out = append(out, i)
	}
	return out
}
