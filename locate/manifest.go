package locate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/rsdoc"
	"github.com/pelletier/go-toml/v2"
)

// cargoManifest mirrors the parts of Cargo.toml the tool reports.
type cargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version any    `toml:"version"`
	} `toml:"package"`
	Workspace struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
}

// ReadManifest parses the Cargo.toml in dir.
// Returns ENOTFOUND if the directory has no manifest.
func ReadManifest(dir string) (*rsdoc.Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, rsdoc.Errorf(rsdoc.ENOTFOUND, "no %s in %s", ManifestName, dir)
	} else if err != nil {
		return nil, err
	}

	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, rsdoc.Errorf(rsdoc.EINVALID, "parse %s: %s", path, err)
	}

	// version may be a string or { workspace = true }.
	version, _ := m.Package.Version.(string)

	return &rsdoc.Manifest{
		Name:    m.Package.Name,
		Version: version,
		Members: m.Workspace.Members,
	}, nil
}

// Describe returns a short human-readable label for a manifest.
func Describe(m *rsdoc.Manifest) string {
	switch {
	case m == nil:
		return ""
	case m.Name != "" && m.Version != "":
		return fmt.Sprintf("%s %s", m.Name, m.Version)
	case m.Name != "":
		return m.Name
	case len(m.Members) > 0:
		return fmt.Sprintf("workspace (%d members)", len(m.Members))
	default:
		return ""
	}
}
