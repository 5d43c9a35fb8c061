// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !awqcheck

package awq

// checkEnabled is false in release builds; invariant checks compile out.
const checkEnabled = false
