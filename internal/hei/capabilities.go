// ABOUTME: Schema capability detection for the HEI fat components.
// ABOUTME: Resolves each fallback chain to a tagged source variant once per table.
package hei

// FattyAcidSource identifies where the fatty-acids ratio numerator and
// denominator come from.
type FattyAcidSource int

const (
	// FattyAcidsDefault awards the fixed midpoint score; no usable columns.
	FattyAcidsDefault FattyAcidSource = iota
	// FattyAcidsStandard uses the MUFA, PUFA, and SFA summary columns.
	FattyAcidsStandard
	// FattyAcidsDerived rebuilds the ratio from individual fatty-acid fields.
	FattyAcidsDerived
)

func (s FattyAcidSource) String() string {
	switch s {
	case FattyAcidsStandard:
		return "standard"
	case FattyAcidsDerived:
		return "derived"
	default:
		return "default"
	}
}

// SatFatSource identifies where saturated-fat grams come from.
type SatFatSource int

const (
	// SatFatDefault assumes the fixed default percent of energy.
	SatFatDefault SatFatSource = iota
	// SatFatStandard uses the SFA column.
	SatFatStandard
	// SatFatAliasedSFAT uses the legacy SFAT column name.
	SatFatAliasedSFAT
	// SatFatDerivedFromFattyAcids sums the S040..S180 breakdown fields.
	SatFatDerivedFromFattyAcids
)

func (s SatFatSource) String() string {
	switch s {
	case SatFatStandard:
		return "standard"
	case SatFatAliasedSFAT:
		return "aliased-sfat"
	case SatFatDerivedFromFattyAcids:
		return "derived"
	default:
		return "default"
	}
}

// Capabilities records, per loaded table, which fallback branch each
// sparse-schema component takes. Detection happens once; scoring rows then
// follows the tagged branch instead of probing columns per row.
type Capabilities struct {
	FattyAcids    FattyAcidSource
	SatFat        SatFatSource
	HasFruitJuice bool
	HasLegumes    bool
}

var unsaturatedFieldColumns = []string{"M161", "M181", "P183"}

var saturatedFieldColumns = []string{
	"S040", "S060", "S080", "S100", "S120", "S140", "S160", "S180",
}

// DetectCapabilities inspects a Totals schema and resolves every fallback
// chain.
func DetectCapabilities(t columnSet) Capabilities {
	caps := Capabilities{
		HasFruitJuice: t.HasColumn("F_JUICE"),
		HasLegumes:    t.HasColumn("V_LEGUMES"),
	}

	switch {
	case t.HasColumns("MUFA", "PUFA", "SFA"):
		caps.FattyAcids = FattyAcidsStandard
	case t.HasColumns(unsaturatedFieldColumns...) && anyColumn(t, saturatedFieldColumns):
		caps.FattyAcids = FattyAcidsDerived
	default:
		caps.FattyAcids = FattyAcidsDefault
	}

	switch {
	case t.HasColumn("SFA"):
		caps.SatFat = SatFatStandard
	case t.HasColumn("SFAT"):
		caps.SatFat = SatFatAliasedSFAT
	case anyColumn(t, saturatedFieldColumns):
		caps.SatFat = SatFatDerivedFromFattyAcids
	default:
		caps.SatFat = SatFatDefault
	}

	return caps
}

// columnSet is the slice of the table interface detection needs.
type columnSet interface {
	HasColumn(col string) bool
	HasColumns(cols ...string) bool
}

func anyColumn(t columnSet, cols []string) bool {
	for _, c := range cols {
		if t.HasColumn(c) {
			return true
		}
	}
	return false
}
