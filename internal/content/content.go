// Package content loads the static tables every resolver reads: clothing,
// markings, professions, ideologies, beliefs, religion prevalence and names.
//
// A default set is embedded in the binary. A directory with the same layout
// may be supplied instead.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/cory-johannsen/npcgen/internal/game/clothing"
	"github.com/cory-johannsen/npcgen/internal/game/ideology"
	"github.com/cory-johannsen/npcgen/internal/game/marking"
	"github.com/cory-johannsen/npcgen/internal/game/profession"
	"github.com/cory-johannsen/npcgen/internal/game/religion"
)

//go:embed data/*.yaml data/clothing/*.yaml
var embedded embed.FS

// Layout of a content directory.
const (
	ClothingDir    = "clothing"
	MarkingsFile   = "markings.yaml"
	ProfessionFile = "professions.yaml"
	IdeologyFile   = "ideologies.yaml"
	BeliefFile     = "beliefs.yaml"
	ReligionFile   = "religions.yaml"
	NamesFile      = "names.yaml"
)

// Tables is the read-only content a generator resolves against.
type Tables struct {
	Clothing    *clothing.Catalog
	Markings    *marking.Catalog
	Professions *profession.Catalog
	Ideologies  *ideology.Catalog
	Religions   *religion.Table
	Names       *Names
}

// LoadEmbedded loads the default tables compiled into the binary.
func LoadEmbedded() (*Tables, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("opening embedded content: %w", err)
	}
	return Load(sub)
}

// LoadDir loads tables from a directory on disk. An empty dir selects the
// embedded defaults.
func LoadDir(dir string) (*Tables, error) {
	if dir == "" {
		return LoadEmbedded()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content dir %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %q is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every table from fsys. Every clothing/*.yaml file is merged into
// one catalog; later files override earlier ones at the same coordinate.
//
// Precondition: fsys contains the files named by the layout constants.
// Postcondition: every table is non-nil and validated, or an error is returned.
func Load(fsys fs.FS) (*Tables, error) {
	cloth, err := loadClothing(fsys)
	if err != nil {
		return nil, err
	}

	data, err := readAll(fsys, MarkingsFile, ProfessionFile, IdeologyFile, BeliefFile, ReligionFile, NamesFile)
	if err != nil {
		return nil, err
	}

	marks, err := marking.LoadCatalogFromBytes(data[MarkingsFile])
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", MarkingsFile, err)
	}
	profs, err := profession.LoadCatalogFromBytes(data[ProfessionFile])
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", ProfessionFile, err)
	}
	ideos, err := ideology.LoadCatalogFromBytes(data[IdeologyFile], data[BeliefFile])
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", IdeologyFile, err)
	}
	rels, err := religion.LoadTableFromBytes(data[ReligionFile])
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", ReligionFile, err)
	}
	names, err := LoadNamesFromBytes(data[NamesFile])
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", NamesFile, err)
	}

	return &Tables{
		Clothing:    cloth,
		Markings:    marks,
		Professions: profs,
		Ideologies:  ideos,
		Religions:   rels,
		Names:       names,
	}, nil
}

func readAll(fsys fs.FS, names ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(names))
	for _, name := range names {
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", name, err)
		}
		out[name] = b
	}
	return out, nil
}

func loadClothing(fsys fs.FS) (*clothing.Catalog, error) {
	entries, err := fs.ReadDir(fsys, ClothingDir)
	if err != nil {
		return nil, fmt.Errorf("reading clothing dir: %w", err)
	}

	cat := clothing.NewCatalog()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		p := path.Join(ClothingDir, entry.Name())
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		part, err := clothing.LoadCatalogFromBytes(b)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", p, err)
		}
		cat.Merge(part)
	}
	return cat, nil
}
