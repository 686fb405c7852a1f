// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

//go:build avldebug

package avl

// debugChecks runs Check after every mutation and panics on a violation.
const debugChecks = true
