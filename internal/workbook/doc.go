// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package workbook loads drill definitions from YAML or HCL files and turns them
// into runbatch Runnables.
//
// A YAML workbook (*.kata.yaml):
//
//	name: basics
//	parallel: true
//	drills:
//	  - name: good record
//	    type: record
//	    input: "Mark,20"
//	    expect: "Mark,20"
//	  - name: hundred
//	    type: sum
//	    upto: 100
//	    workers: 8
//	    expect_total: 4950
//
// The same workbook in HCL (*.kata.hcl). The variable cpus holds runtime.NumCPU():
//
//	name     = "basics"
//	parallel = true
//
//	drill "record" "good record" {
//	  input  = "Mark,20"
//	  expect = "Mark,20"
//	}
//
//	drill "sum" "hundred" {
//	  upto         = 100
//	  workers      = cpus
//	  expect_total = 4950
//	}
package workbook
