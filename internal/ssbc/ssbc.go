// Package ssbc exposes the renderer façade over a stable C ABI: opaque
// handles into a process-wide table, guarded by one mutex since the table
// itself (not a given Renderer) is the only state shared across calls.
// Each exported function is a thin shim translating C arguments to a
// renderer.Renderer call and back.
package ssbc

/*
#include <stdint.h>
#include <string.h>
*/
import "C"

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"nitro-core-dx/internal/renderer"
)

var (
	handlesMu sync.RWMutex
	handles   = make(map[uint64]*renderer.Renderer)
	nextID    uint64
)

func store(r *renderer.Renderer) C.uintptr_t {
	id := atomic.AddUint64(&nextID, 1)
	handlesMu.Lock()
	handles[id] = r
	handlesMu.Unlock()
	return C.uintptr_t(id)
}

func lookup(handle C.uintptr_t) *renderer.Renderer {
	handlesMu.RLock()
	defer handlesMu.RUnlock()
	return handles[uint64(handle)]
}

func formatFromInt(v C.int) renderer.Format {
	switch v {
	case 1:
		return renderer.FormatBGRX
	case 2:
		return renderer.FormatBGRA
	default:
		return renderer.FormatBGR
	}
}

// warningCapacity is warning_out's documented fixed buffer size.
const warningCapacity = 256

// writeWarning copies msg into a caller-owned warningCapacity-byte buffer,
// truncating and always NUL-terminating.
func writeWarning(out *C.char, msg string) {
	if out == nil {
		return
	}
	n := warningCapacity - 1
	if len(msg) < n {
		n = len(msg)
	}
	dst := (*[warningCapacity]byte)(unsafe.Pointer(out))[:]
	copy(dst, msg[:n])
	dst[n] = 0
}

//export create_renderer
func create_renderer(width, height C.int, format C.int, scriptPath *C.char, warningOut *C.char) C.uintptr_t {
	r, err := renderer.New(int(width), int(height), formatFromInt(format), C.GoString(scriptPath), false)
	if err != nil {
		writeWarning(warningOut, err.Error())
		return 0
	}
	if ws := r.Warnings(); len(ws) > 0 {
		writeWarning(warningOut, ws[0])
	}
	return store(r)
}

//export create_renderer_from_memory
func create_renderer_from_memory(width, height C.int, format C.int, data *C.char, dataLen C.int, warningOut *C.char) C.uintptr_t {
	buf := C.GoBytes(unsafe.Pointer(data), dataLen)
	r, err := renderer.NewFromMemory(int(width), int(height), formatFromInt(format), buf, "", false)
	if err != nil {
		writeWarning(warningOut, err.Error())
		return 0
	}
	if ws := r.Warnings(); len(ws) > 0 {
		writeWarning(warningOut, ws[0])
	}
	return store(r)
}

//export set_target
func set_target(handle C.uintptr_t, width, height C.int, format C.int) C.int {
	r := lookup(handle)
	if r == nil {
		return -1
	}
	if err := r.SetTarget(int(width), int(height), formatFromInt(format)); err != nil {
		return -1
	}
	return 0
}

//export render
func render(handle C.uintptr_t, imagePtr *C.char, stride C.int, startMS C.double) {
	r := lookup(handle)
	if r == nil || imagePtr == nil {
		return
	}
	// The destination buffer is owned by the caller for the duration of
	// this call only; height is whatever SetTarget last recorded, so the
	// byte slice is bounded by stride*height exactly as render() promises
	// to touch no more.
	h := r.Height()
	buf := (*[1 << 30]byte)(unsafe.Pointer(imagePtr))[: int(stride)*h : int(stride)*h]
	r.Render(buf, int(stride), float64(startMS))
}

//export free_renderer
func free_renderer(handle C.uintptr_t) {
	handlesMu.Lock()
	delete(handles, uint64(handle))
	handlesMu.Unlock()
}
