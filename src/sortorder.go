package minase

import "strings"

// SortKey selects the primary comparison field for a directory listing.
type SortKey int

const (
	SortByName SortKey = iota
	SortBySize
	SortByDate
)

// SortOrder selects ascending or descending comparison.
type SortOrder int

const (
	OrderAsc SortOrder = iota
	OrderDesc
)

// compareEntries orders two entries by key/order with directories always
// preceding files and name as the universal tiebreaker (spec.md 4.1:
// "entries are partitioned so that every directory precedes every
// non-directory while preserving within-partition order"). Only the
// primary key reverses under OrderDesc; the name tiebreak always stays
// ascending (spec.md 8's scenario 2: "SIZE DESC... name tie-break").
func compareEntries(a, b FileEntry, key SortKey, order SortOrder) bool {
	aDir, bDir := a.IsDir(), b.IsDir()
	if aDir != bDir {
		return aDir
	}
	if primary, tied := primaryLess(a, b, key); !tied {
		if order == OrderDesc {
			return !primary
		}
		return primary
	}
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}

// primaryLess compares a and b on key alone, reporting whether they are
// tied (in which case the caller falls back to the name tiebreak).
func primaryLess(a, b FileEntry, key SortKey) (less bool, tied bool) {
	switch key {
	case SortBySize:
		if a.Size != b.Size {
			return a.Size < b.Size, false
		}
	case SortByDate:
		if a.ModTimeSec != b.ModTimeSec {
			return a.ModTimeSec < b.ModTimeSec, false
		}
		if a.ModTimeNsec != b.ModTimeNsec {
			return a.ModTimeNsec < b.ModTimeNsec, false
		}
	default: // SortByName
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn, false
		}
	}
	return false, true
}
