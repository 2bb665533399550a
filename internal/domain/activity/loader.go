package activity

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/lineup/internal/domain/model"
)

// profileRecord mirrors one entry of the activities YAML file:
//
//	activities:
//	  - id: rally-boss
//	    name: Rally boss
//	    rule: {kind: total-skill, skills: expedition}
//	    slots:
//	      - {role: frontline, weight: 2}
type profileRecord struct {
	ID    string       `koanf:"id"`
	Name  string       `koanf:"name"`
	Rule  ruleRecord   `koanf:"rule"`
	Slots []slotRecord `koanf:"slots"`
}

type ruleRecord struct {
	Kind   string `koanf:"kind"`
	Skills string `koanf:"skills"`
	Tag    string `koanf:"tag"`
}

type slotRecord struct {
	Role   string  `koanf:"role"`
	Weight float64 `koanf:"weight"`
	Label  string  `koanf:"label"`
}

// LoadFile reads activity profiles from a YAML file. Profiles whose id is
// already present in base replace it; others are appended.
func LoadFile(path string, base []model.ActivityProfile) (*Registry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadProfiles, path, err)
	}
	var records []profileRecord
	if err := k.UnmarshalWithConf("activities", &records, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadProfiles, path, err)
	}

	merged := append([]model.ActivityProfile(nil), base...)
	index := make(map[string]int, len(merged))
	for i, p := range merged {
		index[p.ID] = i
	}
	for _, rec := range records {
		p := rec.profile()
		if i, ok := index[p.ID]; ok {
			merged[i] = p
			continue
		}
		index[p.ID] = len(merged)
		merged = append(merged, p)
	}
	return NewRegistry(merged)
}

func (r profileRecord) profile() model.ActivityProfile {
	p := model.ActivityProfile{
		ID:   r.ID,
		Name: r.Name,
		Rule: model.ScoringRule{
			Kind:   model.RuleKind(r.Rule.Kind),
			Skills: model.SkillSet(r.Rule.Skills),
			Tag:    model.Tag(r.Rule.Tag),
		},
	}
	if p.Rule.Skills == "" {
		p.Rule.Skills = model.SkillsExpedition
	}
	for _, s := range r.Slots {
		p.Slots = append(p.Slots, model.Slot{Role: model.Role(s.Role), Weight: s.Weight, Label: s.Label})
	}
	return p
}
