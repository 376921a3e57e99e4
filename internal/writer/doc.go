// Package writer persists fixture datasets to disk.
//
// A dataset is written exactly once per run: one compact JSON document,
// staged through a temp file and renamed into place. There is no partial-write
// recovery and none is needed; a failed run leaves the previous fixture (if
// any) untouched.
package writer
