// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package person converts `name,age` strings into Person records.
//
// Parse is strict and reports why an input was rejected. From never fails: any input
// that Parse rejects becomes the fallback record returned by Default (John, 30).
//
// Only the first two comma separated segments are consulted. The name must be
// non-empty and the age must be a base-10 unsigned integer with no surrounding
// whitespace.
package person
