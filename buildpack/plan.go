// Package buildpack reads and writes the files a buildpack exchanges with the lifecycle:
// the build plan and the buildpack.toml descriptor.
package buildpack

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/buildpacks/libbuildpack"
	"github.com/buildpacks/libbuildpack/internal/encoding"
	"github.com/buildpacks/libbuildpack/metadata"
)

type Dependency struct {
	Version  string
	Metadata *metadata.Metadata
}

func NewDependency(version string) Dependency {
	return Dependency{Version: version, Metadata: metadata.New()}
}

// BuildPlan maps dependency names to the dependency a buildpack requires or provides.
type BuildPlan struct {
	entries map[string]Dependency
}

func NewBuildPlan() *BuildPlan {
	return &BuildPlan{entries: map[string]Dependency{}}
}

// Insert adds dep under name, replacing any existing entry.
func (p *BuildPlan) Insert(name string, dep Dependency) {
	if p.entries == nil {
		p.entries = map[string]Dependency{}
	}
	p.entries[name] = dep
}

func (p *BuildPlan) Get(name string) (Dependency, bool) {
	dep, ok := p.entries[name]
	return dep, ok
}

func (p *BuildPlan) Len() int {
	return len(p.entries)
}

func (p *BuildPlan) Names() []string {
	names := make([]string, 0, len(p.entries))
	for name := range p.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type PlanErrorKind int

const (
	MissingField PlanErrorKind = iota
	InvalidShape
)

// PlanError describes a plan entry that parsed as TOML but does not have the shape of a
// dependency.
type PlanError struct {
	Kind       PlanErrorKind
	Dependency string
	Field      string
}

func (e *PlanError) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("build plan entry '%s': missing field '%s'", e.Dependency, e.Field)
	default:
		if e.Field == "" {
			return fmt.Sprintf("build plan entry '%s': expected a table", e.Dependency)
		}
		return fmt.Sprintf("build plan entry '%s': invalid type for field '%s'", e.Dependency, e.Field)
	}
}

// ParseBuildPlan decodes a build plan document. Empty text is a plan with no entries.
func ParseBuildPlan(text string) (*BuildPlan, error) {
	var raw map[string]interface{}
	if _, err := toml.Decode(text, &raw); err != nil {
		return nil, libbuildpack.NewError(errors.Wrap(err, "decoding build plan"), libbuildpack.ErrTypeDeserialization)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	plan := NewBuildPlan()
	for _, name := range names {
		dep, err := parseDependency(name, raw[name])
		if err != nil {
			return nil, libbuildpack.NewError(err, libbuildpack.ErrTypeDeserialization)
		}
		plan.Insert(name, dep)
	}
	return plan, nil
}

func ReadBuildPlan(r io.Reader) (*BuildPlan, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, libbuildpack.NewError(errors.Wrap(err, "reading build plan"), libbuildpack.ErrTypeIO)
	}
	return ParseBuildPlan(string(b))
}

func parseDependency(name string, value interface{}) (Dependency, error) {
	table, ok := value.(map[string]interface{})
	if !ok {
		return Dependency{}, &PlanError{Kind: InvalidShape, Dependency: name}
	}
	rawVersion, ok := table["version"]
	if !ok {
		return Dependency{}, &PlanError{Kind: MissingField, Dependency: name, Field: "version"}
	}
	version, ok := rawVersion.(string)
	if !ok {
		return Dependency{}, &PlanError{Kind: InvalidShape, Dependency: name, Field: "version"}
	}
	dep := NewDependency(version)
	if rawMetadata, ok := table["metadata"]; ok {
		md, ok := rawMetadata.(map[string]interface{})
		if !ok {
			return Dependency{}, &PlanError{Kind: InvalidShape, Dependency: name, Field: "metadata"}
		}
		dep.Metadata = metadata.FromMap(md)
	}
	return dep, nil
}

type planEntry struct {
	Version  string                 `toml:"version"`
	Metadata map[string]interface{} `toml:"metadata,omitempty"`
}

func (p *BuildPlan) document() map[string]planEntry {
	doc := make(map[string]planEntry, len(p.entries))
	for name, dep := range p.entries {
		doc[name] = planEntry{Version: dep.Version, Metadata: dep.Metadata.Map()}
	}
	return doc
}

// Bytes encodes the plan as one table per dependency. An empty plan encodes to an
// empty document.
func (p *BuildPlan) Bytes() ([]byte, error) {
	b, err := encoding.MarshalTOML(p.document())
	if err != nil {
		return nil, libbuildpack.NewError(errors.Wrap(err, "encoding build plan"), libbuildpack.ErrTypeSerialization)
	}
	return b, nil
}

func (p *BuildPlan) Encode(w io.Writer) error {
	b, err := p.Bytes()
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, bytes.NewReader(b)); err != nil {
		return libbuildpack.NewError(errors.Wrap(err, "writing build plan"), libbuildpack.ErrTypeIO)
	}
	return nil
}

// WriteBuildPlan replaces the file at path with the encoded plan.
func WriteBuildPlan(path string, plan *BuildPlan) error {
	b, err := plan.Bytes()
	if err != nil {
		return err
	}
	if err := encoding.WriteFileAtomic(path, b, 0644); err != nil {
		return libbuildpack.NewError(errors.Wrapf(err, "writing build plan '%s'", path), libbuildpack.ErrTypeIO)
	}
	return nil
}
