// SPDX-License-Identifier: MIT

package format

// maxPrealloc caps how many slots a reader reserves from a declared count.
// Counts come from untrusted input; lists grow past the cap by append.
const maxPrealloc = 1 << 16

// Prealloc returns a safe initial capacity for a declared element count.
func Prealloc(declared uint64) int {
	if declared > maxPrealloc {
		return maxPrealloc
	}
	return int(declared)
}
