package buffer

import (
	"errors"
	"unsafe"
)

// alignedAlloc returns a slice of exactly size bytes whose first byte
// sits at an address that is a multiple of align, by over-allocating
// and slicing to the aligned offset. The standard library has no
// portable posix_memalign equivalent, so SIMD-layout buffers are
// carved out of a larger backing array this way. raw is the unsliced
// backing array; callers that only
// need the aligned view can discard it, but Timeline retains it to keep
// the backing array reachable for as long as Storage is in use.
func alignedAlloc(size, align int) (region, raw []byte, err error) {
	if align <= 0 {
		align = 1
	}
	if size < 0 {
		return nil, nil, errors.New("buffer: negative size")
	}
	if size == 0 {
		return []byte{}, []byte{}, nil
	}
	raw = make([]byte, size+align-1)
	base := uintptr(unsafe.Pointer(&raw[0]))
	misalign := int(base % uintptr(align))
	var offset int
	if misalign != 0 {
		offset = align - misalign
	}
	region = raw[offset : offset+size : offset+size]
	return region, raw, nil
}
