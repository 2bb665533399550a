package catalog

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/lineup/internal/domain/model"
)

// heroRecord mirrors one entry of the catalog YAML file:
//
//	heroes:
//	  - id: aldric
//	    name: Aldric
//	    class: frontline
//	    skills:
//	      - {name: Shield Wall, kind: exploration, effects: [damage-reduction]}
type heroRecord struct {
	ID     string        `koanf:"id"`
	Name   string        `koanf:"name"`
	Class  string        `koanf:"class"`
	Skills []skillRecord `koanf:"skills"`
}

type skillRecord struct {
	Name    string   `koanf:"name"`
	Kind    string   `koanf:"kind"`
	Effects []string `koanf:"effects"`
}

// LoadFile reads a catalog YAML file and builds a Catalog from it.
func LoadFile(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadCatalog, path, err)
	}
	var records []heroRecord
	if err := k.UnmarshalWithConf("heroes", &records, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadCatalog, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: no heroes defined", ErrLoadCatalog, path)
	}

	defs := make([]HeroDefinition, 0, len(records))
	for _, r := range records {
		def := HeroDefinition{
			ID:    r.ID,
			Name:  r.Name,
			Class: model.ParseClass(r.Class),
		}
		for _, s := range r.Skills {
			sd := SkillDefinition{Name: s.Name, Kind: SkillKind(s.Kind)}
			for _, e := range s.Effects {
				sd.Effects = append(sd.Effects, Effect(e))
			}
			def.Skills = append(def.Skills, sd)
		}
		defs = append(defs, def)
	}
	return New(defs)
}
