// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import "errors"

var (
	// ErrReadSchemaFile is returned when combined schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema YAML decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrReadFragment is returned when an assembler input fragment cannot be read.
	ErrReadFragment = errors.New("read schema fragment")
	// ErrWriteOutput is returned when a rendered output file write fails.
	ErrWriteOutput = errors.New("write output file")
	// ErrExecuteTemplate is returned when page template execution fails.
	ErrExecuteTemplate = errors.New("execute page template")
	// ErrUnknownElement is returned when a requested schema element is not defined.
	ErrUnknownElement = errors.New("unknown schema element")
	// ErrEncodeSchemaJSON is returned when schema document JSON conversion fails.
	ErrEncodeSchemaJSON = errors.New("encode schema document as json")
	// ErrSchemaInvalid is returned when the schema document violates the metamodel.
	ErrSchemaInvalid = errors.New("schema document is not valid")
)
