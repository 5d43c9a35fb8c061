// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package awq

// RaceEnabled is true when the race detector is active. Used by tests to
// skip scenarios that hammer the waiter-state CAS: atomix operations appear
// as plain memory accesses to the detector and report false positives.
const RaceEnabled = true
