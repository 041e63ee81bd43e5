package backend

import "sync/atomic"

// current holds the process-wide active function table. Writes from
// SetBackend are published via atomic.Pointer.Store, so an in-flight
// reader always observes a complete table, never a torn one.
var current atomic.Pointer[Table]

func init() {
	current.Store(&scalarTable)
}

// tableByIndex returns the built-in table for index (0 = scalar
// reference, 1 = ISA-accelerated), or nil if index is out of range.
func tableByIndex(index int) *Table {
	switch index {
	case 0:
		return &scalarTable
	case 1:
		return &simdTable
	default:
		return nil
	}
}

// BackendCount returns the number of selectable backends.
func BackendCount() int {
	return 2
}

// BackendName returns the name of the backend at index. Passing -1
// returns the name of whichever backend is presently active. An
// out-of-range positive index returns an empty string.
func BackendName(index int) string {
	if index == -1 {
		return current.Load().Name
	}
	tbl := tableByIndex(index)
	if tbl == nil {
		return ""
	}
	return tbl.Name
}

// SetBackend installs the function table at index as the process-wide
// active backend.
func SetBackend(index int) error {
	tbl := tableByIndex(index)
	if tbl == nil {
		return ErrInvalidBackend
	}
	current.Store(tbl)
	return nil
}

// Current returns the process-wide active function table.
func Current() *Table {
	return current.Load()
}

// Select returns the table at index as an opaque handle, without
// touching the process-wide current table. Callers that need their own
// backend selection can thread this handle through Convert/Aggregate
// calls instead of relying on SetBackend/Current.
func Select(index int) (*Table, error) {
	tbl := tableByIndex(index)
	if tbl == nil {
		return nil, ErrInvalidBackend
	}
	return tbl, nil
}
