package lineupcheck

// Check names reported in violations.
const (
	CheckDeterminism    = "determinism"
	CheckStatus         = "status"
	CheckDecode         = "decode"
	CheckCoverage       = "coverage"
	CheckSlotOrder      = "slot_order"
	CheckRole           = "role"
	CheckDoubleAssigned = "double_assigned"
	CheckUnusedOrder    = "unused_order"
	CheckUnusedAssigned = "unused_assigned"
	CheckScore          = "score"
)

// Roster generation constants.
const (
	defaultMaxHeroes  = 30
	strangerRatio     = 5 // one in N records is not in the catalog
	classlessRatio    = 4 // one in N records omits the class
	splitSkillsRatio  = 3 // one in N records uses split skill lists
	percentMultiplier = 100
)
