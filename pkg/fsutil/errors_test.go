package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrnoCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "synthesized", err: newErrnoError(syscall.ENOTDIR, "stat", "/x"), want: "ENOTDIR"},
		{name: "wrapped synthesized", err: fmt.Errorf("ensure: %w", newErrnoError(syscall.ENOTDIR, "stat", "/x")), want: "ENOTDIR"},
		{name: "path error", err: &fs.PathError{Op: "mkdir", Path: "/x", Err: syscall.EACCES}, want: "EACCES"},
		{name: "bare errno", err: syscall.ENOENT, want: "ENOENT"},
		{name: "no errno", err: errors.New("plain"), want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrnoCode(tt.err))
		})
	}
}

func TestErrnoError(t *testing.T) {
	err := newErrnoError(syscall.ENOTDIR, "stat", "/srv/data")

	assert.EqualError(t, err, "ENOTDIR, stat '/srv/data'")
	assert.ErrorIs(t, err, syscall.ENOTDIR)
	assert.NotErrorIs(t, err, syscall.ENOENT)
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "", wantErr: ErrEmptyPath},
		{in: "/a//b/./c/../d/", want: "/a/b/d"},
		{in: "rel/./path", want: "rel/path"},
		{in: ".", want: "."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizePath(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}
