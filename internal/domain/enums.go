package domain

// GrowthKind is how an envelope balance grows over time.
type GrowthKind string

const (
	GrowthNone           GrowthKind = "None"
	GrowthAppreciation   GrowthKind = "Appreciation"
	GrowthDailyCompound  GrowthKind = "Daily Compound"
	GrowthYearlyCompound GrowthKind = "Yearly Compound"
)

// ValidGrowthKinds is the canonical set of accepted growth strings.
var ValidGrowthKinds = map[string]bool{
	string(GrowthNone):           true,
	string(GrowthAppreciation):   true,
	string(GrowthDailyCompound):  true,
	string(GrowthYearlyCompound): true,
}

// AccountType distinguishes user envelopes from system-managed ones.
type AccountType string

const (
	AccountRegular AccountType = "regular"
)

// UnitKind is the semantic unit of a parameter, declared by the schema
// catalog rather than stored on the Parameter itself.
type UnitKind string

const (
	UnitCurrency   UnitKind = "currency"
	UnitPercentage UnitKind = "percentage"
	UnitDays       UnitKind = "days"
	UnitDate       UnitKind = "date"
	UnitEnum       UnitKind = "enum"
	UnitEnvelope   UnitKind = "envelope"
	UnitNone       UnitKind = ""
)

// OccurrenceKind is the role of one expanded occurrence on the timeline.
type OccurrenceKind string

const (
	OccurrenceStart     OccurrenceKind = "start"
	OccurrenceEnd       OccurrenceKind = "end"
	OccurrenceRecurring OccurrenceKind = "recurring"
)
