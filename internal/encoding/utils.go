package encoding

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/buildpacks/libbuildpack"
)

// toml

// MarshalTOML encodes v without indenting nested tables, the layout the lifecycle reads back.
func MarshalTOML(v interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := toml.NewEncoder(buf)
	enc.Indent = ""
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTOML replaces the file at path with the encoding of data, creating parent dirs.
// Failures are typed ErrTypeSerialization or ErrTypeIO.
func WriteTOML(path string, data interface{}) error {
	b, err := MarshalTOML(data)
	if err != nil {
		return libbuildpack.NewError(err, libbuildpack.ErrTypeSerialization)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return libbuildpack.NewError(err, libbuildpack.ErrTypeIO)
	}
	if err := WriteFileAtomic(path, b, 0644); err != nil {
		return libbuildpack.NewError(err, libbuildpack.ErrTypeIO)
	}
	return nil
}

// WriteFileAtomic writes data to a sibling temporary file and renames it over path,
// so a failed write leaves either the previous content or the new content.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
