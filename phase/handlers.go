// Package phase implements the bin/detect and bin/build entry points of a buildpack.
package phase

import (
	"github.com/buildpacks/libbuildpack/buildpack"
)

//go:generate mockgen -package testmock -destination testmock/environ.go github.com/buildpacks/libbuildpack/env Environ

// DescriptorReader loads the buildpack.toml of the running buildpack.
//
//go:generate mockgen -package testmock -destination testmock/descriptor_reader.go github.com/buildpacks/libbuildpack/phase DescriptorReader
type DescriptorReader interface {
	ReadDescriptor(path string) (*buildpack.Descriptor, error)
}

type DefaultDescriptorReader struct{}

func NewDescriptorReader() *DefaultDescriptorReader {
	return &DefaultDescriptorReader{}
}

func (r *DefaultDescriptorReader) ReadDescriptor(path string) (*buildpack.Descriptor, error) {
	return buildpack.ReadDescriptor(path)
}
