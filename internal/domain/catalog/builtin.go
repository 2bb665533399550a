package catalog

import "github.com/okian/lineup/internal/domain/model"

func skill(name string, kind SkillKind, effects ...Effect) SkillDefinition {
	return SkillDefinition{Name: name, Kind: kind, Effects: effects}
}

// builtinHeroes is the catalog shipped with the binary.
var builtinHeroes = []HeroDefinition{
	{ID: "aldric", Name: "Aldric", Class: model.ClassFrontline, Skills: []SkillDefinition{
		skill("Shield Wall", SkillExploration, EffectDamageReduction),
		skill("Rally Cry", SkillExploration, EffectBuff),
		skill("Bulwark", SkillExploration, EffectDamageReduction),
		skill("Iron Line", SkillExpedition, EffectDamageReduction),
		skill("Counter Charge", SkillExpedition, EffectSingleTarget),
		skill("Hold Fast", SkillExpedition, EffectBuff),
	}},
	{ID: "brenna", Name: "Brenna", Class: model.ClassFrontline, Skills: []SkillDefinition{
		skill("Cleave", SkillExploration, EffectAreaDamage),
		skill("Taunt", SkillExploration, EffectControl),
		skill("Second Wind", SkillExploration, EffectHeal),
		skill("Earthsplitter", SkillExpedition, EffectAreaDamage),
		skill("Stand Firm", SkillExpedition, EffectDamageReduction),
		skill("War Drum", SkillExpedition, EffectBuff),
	}},
	{ID: "corvin", Name: "Corvin", Class: model.ClassFrontline, Skills: []SkillDefinition{
		skill("Heavy Blow", SkillExploration, EffectSingleTarget),
		skill("Stagger", SkillExploration, EffectControl),
		skill("Guard", SkillExploration, EffectDamageReduction),
		skill("Breach", SkillExpedition, EffectSingleTarget),
		skill("Shatter", SkillExpedition, EffectControl),
		skill("Vanguard", SkillExpedition, EffectBuff),
	}},
	{ID: "daria", Name: "Daria", Class: model.ClassFlex, Skills: []SkillDefinition{
		skill("Sweep", SkillExploration, EffectAreaDamage),
		skill("Pierce", SkillExploration, EffectSingleTarget),
		skill("Feint", SkillExploration, EffectControl),
		skill("Whirlwind", SkillExpedition, EffectAreaDamage),
		skill("Lance Wall", SkillExpedition, EffectDamageReduction),
		skill("Momentum", SkillExpedition, EffectBuff),
	}},
	{ID: "elric", Name: "Elric", Class: model.ClassFlex, Skills: []SkillDefinition{
		skill("Lunge", SkillExploration, EffectSingleTarget),
		skill("Field Dressing", SkillExploration, EffectHeal),
		skill("Parry", SkillExploration, EffectDamageReduction),
		skill("Skewer", SkillExpedition, EffectSingleTarget),
		skill("Rallying Banner", SkillExpedition, EffectBuff),
		skill("Pin Down", SkillExpedition, EffectControl),
	}},
	{ID: "fenna", Name: "Fenna", Class: model.ClassFlex, Skills: []SkillDefinition{
		skill("Mend", SkillExploration, EffectHeal),
		skill("Blessing", SkillExploration, EffectBuff),
		skill("Ward", SkillExploration, EffectDamageReduction),
		skill("Renewal", SkillExpedition, EffectHeal),
		skill("Sanctuary", SkillExpedition, EffectDamageReduction),
		skill("Inspire", SkillExpedition, EffectBuff),
	}},
	{ID: "gareth", Name: "Gareth", Class: model.ClassRanged, Skills: []SkillDefinition{
		skill("Volley", SkillExploration, EffectAreaDamage),
		skill("Aimed Shot", SkillExploration, EffectSingleTarget),
		skill("Caltrops", SkillExploration, EffectControl),
		skill("Arrow Storm", SkillExpedition, EffectAreaDamage),
		skill("Crippling Shot", SkillExpedition, EffectControl),
		skill("Eagle Eye", SkillExpedition, EffectBuff),
	}},
	{ID: "hilde", Name: "Hilde", Class: model.ClassRanged, Skills: []SkillDefinition{
		skill("Snipe", SkillExploration, EffectSingleTarget),
		skill("Headshot", SkillExploration, EffectSingleTarget),
		skill("Camouflage", SkillExploration, EffectDamageReduction),
		skill("Deadeye", SkillExpedition, EffectSingleTarget),
		skill("Marked Target", SkillExpedition, EffectBuff),
		skill("Long Watch", SkillExpedition, EffectSingleTarget),
	}},
	{ID: "ivo", Name: "Ivo", Class: model.ClassRanged, Skills: []SkillDefinition{
		skill("Firebomb", SkillExploration, EffectAreaDamage),
		skill("Smoke", SkillExploration, EffectControl),
		skill("Flask", SkillExploration, EffectHeal),
		skill("Inferno", SkillExpedition, EffectAreaDamage),
		skill("Scorch", SkillExpedition, EffectAreaDamage),
		skill("Fumes", SkillExpedition, EffectControl),
	}},
	{ID: "juno", Name: "Juno", Class: model.ClassFrontline, Skills: []SkillDefinition{
		skill("Aegis", SkillExploration, EffectDamageReduction),
		skill("Restore", SkillExploration, EffectHeal),
		skill("Bash", SkillExploration, EffectControl),
		skill("Phalanx", SkillExpedition, EffectDamageReduction),
		skill("Triage", SkillExpedition, EffectHeal),
		skill("Shield Slam", SkillExpedition, EffectControl),
	}},
	{ID: "kestrel", Name: "Kestrel", Class: model.ClassRanged, Skills: []SkillDefinition{
		skill("Quick Draw", SkillExploration, EffectSingleTarget),
		skill("Scatter", SkillExploration, EffectAreaDamage),
		skill("Evade", SkillExploration, EffectDamageReduction),
		skill("Rain of Bolts", SkillExpedition, EffectAreaDamage),
		skill("Tracking", SkillExpedition, EffectBuff),
		skill("Net Shot", SkillExpedition, EffectControl),
	}},
	{ID: "lysa", Name: "Lysa", Class: model.ClassFlex, Skills: []SkillDefinition{
		skill("Chain Spear", SkillExploration, EffectAreaDamage),
		skill("Hook", SkillExploration, EffectControl),
		skill("Brace", SkillExploration, EffectDamageReduction),
		skill("Tempest", SkillExpedition, EffectAreaDamage),
		skill("Undertow", SkillExpedition, EffectControl),
		skill("Tidal Guard", SkillExpedition, EffectDamageReduction),
	}},
}

// Default returns the catalog shipped with the binary.
func Default() *Catalog {
	c, err := New(builtinHeroes)
	if err != nil {
		panic("builtin hero catalog is invalid: " + err.Error())
	}
	return c
}
