// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workbook

import (
	"context"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	return fs
}

func TestLoadDir(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/work/a.kata.yaml": basicsYAML,
		"/work/b.kata.hcl":  basicsHCL,
		"/work/notes.txt":   "ignored",
		"/other/c.kata.yml": basicsYAML,
	})
	stubs := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	defs, err := LoadDir(context.Background(), "/work")
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "/work/a.kata.yaml", defs[0].Source)
	assert.Equal(t, "/work/b.kata.hcl", defs[1].Source)
}

func TestLoadDir_NoFiles(t *testing.T) {
	fs := memFs(t, map[string]string{"/work/readme.md": "# nothing"})
	stubs := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	_, err := LoadDir(context.Background(), "/work")
	assert.ErrorIs(t, err, ErrNoWorkbooks)
}

func TestLoadDir_CollectsErrors(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/work/good.kata.yaml":  basicsYAML,
		"/work/empty.kata.yaml": "name: empty\n",
		"/work/broken.kata.hcl": "drill {",
	})
	stubs := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	defs, err := LoadDir(context.Background(), "/work")
	require.Error(t, err)
	assert.Nil(t, defs)
	assert.ErrorIs(t, err, ErrLoadWorkbooks)
	assert.ErrorIs(t, err, ErrNoDrills)
	assert.ErrorIs(t, err, ErrInvalidHcl)
	assert.Contains(t, err.Error(), "/work/empty.kata.yaml")
}
