//go:build !intrusive_nodebug

package intrusive

// debug enables precondition assertions.
// Build with the intrusive_nodebug tag to compile them out.
const debug = true
