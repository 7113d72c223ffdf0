package op

import "fmt"

// Assign32 writes src into dst under req. dst and src may alias the same
// storage: element i of dst only ever depends on element i of src.
func Assign32(dst, src []float32, req ReqType) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("assign: length mismatch: dst %d, src %d", len(dst), len(src)))
	}
	switch req {
	case NullOp:
	case WriteTo:
		copy(dst, src)
	case AddTo:
		for i := range dst {
			dst[i] += src[i]
		}
	default:
		panic(fmt.Sprintf("assign: unknown req type %d", req))
	}
}

// Assign64 is Assign32 for float64 data.
func Assign64(dst, src []float64, req ReqType) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("assign: length mismatch: dst %d, src %d", len(dst), len(src)))
	}
	switch req {
	case NullOp:
	case WriteTo:
		copy(dst, src)
	case AddTo:
		for i := range dst {
			dst[i] += src[i]
		}
	default:
		panic(fmt.Sprintf("assign: unknown req type %d", req))
	}
}
