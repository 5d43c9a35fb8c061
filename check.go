// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

// check panics when an internal consistency invariant is violated, e.g. a
// pending setter observed while the store is not full. A failure indicates
// a coordinator bug, never a caller error. Checks compile out unless the
// awqcheck build tag is set.
func check(cond bool, msg string) {
	if checkEnabled && !cond {
		panic("awq: invariant violation: " + msg)
	}
}
