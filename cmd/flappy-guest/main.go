// Command flappy-guest is the Flappy game built as a WebAssembly reactor.
//
// Build it with:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o flappy.wasm ./cmd/flappy-guest
//
// The module exports kagura_init, kagura_alloc, kagura_update and
// kagura_draw. Hosts must call _initialize once before anything else.
package main

// main is unused in a reactor; the runtime is started by _initialize.
func main() {}
