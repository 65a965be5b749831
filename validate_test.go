// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

package dictgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedSchema(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate([]byte(testSchemaYAML)))
}

func TestValidateRejectsMissingIdentity(t *testing.T) {
	t.Parallel()

	err := Validate([]byte("title: No identity here\n"))
	require.ErrorIs(t, err, ErrSchemaInvalid)
}

func TestValidateRejectsWrongSectionShape(t *testing.T) {
	t.Parallel()

	err := Validate([]byte("id: urn:x\nname: x\nslots:\n  - not\n  - a\n  - mapping\n"))
	require.ErrorIs(t, err, ErrSchemaInvalid)
}

func TestValidateRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	err := Validate([]byte("slots: [broken"))
	require.ErrorIs(t, err, ErrDecodeSchema)
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "entire_schema.yml")
	require.NoError(t, os.WriteFile(path, []byte(testSchemaYAML), 0o600))
	require.NoError(t, ValidateFile(path))

	err := ValidateFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, ErrReadSchemaFile)
}
