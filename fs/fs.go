/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem abstraction builds read sources from
// and write outputs to.
package fs

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
)

// FileSystem is the set of filesystem operations tokenwind uses.
// It embeds fs.FS so sources can be globbed with fs.WalkDir.
type FileSystem interface {
	fs.FS

	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error

	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	Stat(name string) (fs.FileInfo, error)
	Exists(path string) bool
}

// WriteIfChanged writes data to name unless the file already holds exactly
// data. The new content goes to a sibling temp file first and is renamed
// into place, so readers never see a partial output. Reports whether the
// file was written.
func WriteIfChanged(filesystem FileSystem, name string, data []byte, perm fs.FileMode) (bool, error) {
	if current, err := filesystem.ReadFile(name); err == nil && bytes.Equal(current, data) {
		return false, nil
	}

	tmp := name + ".tmp"
	if err := filesystem.WriteFile(tmp, data, perm); err != nil {
		return false, err
	}
	if err := filesystem.Rename(tmp, name); err != nil {
		_ = filesystem.Remove(tmp)
		return false, fmt.Errorf("replacing %s: %w", name, err)
	}
	return true, nil
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (f *OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (f *OSFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (f *OSFileSystem) Remove(name string) error {
	return os.Remove(name)
}

func (f *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
