//go:build intrusive_nodebug

package intrusive

const debug = false
