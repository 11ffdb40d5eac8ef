// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !stpdebug

package stp

// debugSTP logs skipped relaxation steps when built with -tags stpdebug
const debugSTP = false
