/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/internal/mapfs"
)

func TestWriteIfChanged(t *testing.T) {
	mfs := mapfs.New()

	written, err := fs.WriteIfChanged(mfs, "/out/vars.css", []byte("a"), 0644)
	require.NoError(t, err)
	assert.True(t, written)

	written, err = fs.WriteIfChanged(mfs, "/out/vars.css", []byte("a"), 0644)
	require.NoError(t, err)
	assert.False(t, written, "identical content should not be rewritten")

	written, err = fs.WriteIfChanged(mfs, "/out/vars.css", []byte("b"), 0644)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := mfs.ReadFile("/out/vars.css")
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
	assert.Equal(t, []string{"/out/vars.css"}, mfs.Files(), "temp file should be renamed away")
}

func TestWriteIfChanged_OS(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "theme.js")
	osfs := fs.NewOSFileSystem()

	written, err := fs.WriteIfChanged(osfs, name, []byte("export {};\n"), 0644)
	require.NoError(t, err)
	assert.True(t, written)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "theme.js", entries[0].Name())
}
