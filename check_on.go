// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build awqcheck

package awq

// checkEnabled is true when internal invariant checks are compiled in.
// Build with -tags awqcheck during development and debugging.
const checkEnabled = true
