package report

import "fmt"

// Kind classifies how a field is edited and validated.
type Kind int

const (
	KindText Kind = iota
	KindChoice
	KindMulti
	KindScore
	KindNumber
	KindDate
	KindImages
	KindDocuments
	KindDimensions
)

// When is a secondary visibility condition on another field's value,
// independent of certificate-type exclusion. Exactly one of Eq/Neq is set.
type When struct {
	Field string
	Eq    string
	Neq   string
}

// Field is one entry of the report field registry.
type Field struct {
	Name     string
	Section  string
	Kind     Kind
	Options  []string
	Optional bool     // no validation rule even when not excluded
	When     *When    // nil means always visible
	SubPaths []string // required sub-keys of a dimensions field
}

// Section groups the fields one form edits together. Ownership is explicit:
// a field belongs to exactly one section, regardless of name prefixes.
type Section struct {
	Name   string
	Fields []Field
}

// Section identifiers. These double as the `section` value of validation
// errors and as the namespace prefix of the fields they own.
const (
	SectionGeneral         = "general_object"
	SectionCase            = "case"
	SectionCaseBack        = "case_back"
	SectionCaseBezel       = "case_bezel"
	SectionCaseBezelInsert = "case_bezel_insert"
	SectionCaseCrown       = "case_crown"
	SectionCaseGlass       = "case_glass"
	SectionDial            = "dial"
	SectionHands           = "hands"
	SectionBracelet        = "bracelet"
	SectionBraceletClasp   = "bracelet_clasp"
	SectionBraceletLink    = "bracelet_link"
	SectionMovement        = "movement"
	SectionTechWeight      = "technical_weight"
	SectionTechWaterproof  = "technical_waterproofing"
	SectionTechTiming      = "technical_timing"
	SectionValue           = "value"
	SectionAccessories     = "accessories"
)

// IdentityFields are persisted on the object record itself, not in the
// attributes blob. SplitIdentity matches these names literally.
var IdentityFields = []string{
	"general_object_brand",
	"general_object_model",
	"general_object_reference",
	"general_object_serial_number",
	"general_object_year_manufacture",
	"general_object_surname",
	"general_object_type",
	"general_object_status",
}

func text(name string) Field  { return Field{Name: name, Kind: KindText} }
func date(name string) Field  { return Field{Name: name, Kind: KindDate} }
func score(name string) Field { return Field{Name: name, Kind: KindScore} }
func num(name string) Field   { return Field{Name: name, Kind: KindNumber} }

func choice(name string, options []string) Field {
	return Field{Name: name, Kind: KindChoice, Options: options}
}

func multi(name string, options []string) Field {
	return Field{Name: name, Kind: KindMulti, Options: options}
}

func images(name string) Field { return Field{Name: name, Kind: KindImages} }
func docs(name string) Field   { return Field{Name: name, Kind: KindDocuments} }

func dims(name string, required ...string) Field {
	return Field{Name: name, Kind: KindDimensions, SubPaths: required}
}

func (f Field) optional() Field { f.Optional = true; return f }

func (f Field) whenEq(field, value string) Field {
	f.When = &When{Field: field, Eq: value}
	return f
}

func (f Field) whenNeq(field, value string) Field {
	f.When = &When{Field: field, Neq: value}
	return f
}

// Sections is the full report field registry, one entry per form section.
var Sections = []Section{
	{Name: SectionGeneral, Fields: []Field{
		text("general_object_brand"),
		text("general_object_model"),
		text("general_object_reference"),
		text("general_object_serial_number"),
		text("general_object_year_manufacture").optional(),
		text("general_object_surname").optional(),
		text("general_object_type").optional(),
		text("general_object_status").optional(),
	}},

	{Name: SectionCase, Fields: []Field{
		choice("case_material", CaseMaterials),
		choice("case_shape", CaseShapes),
		choice("case_finish", CaseFinishes),
		dims("case_diameter", "diameter"),
		multi("case_hallmarks", Hallmarks),
		text("case_engravings").optional(),
		choice("case_replaced", ChoiceTriad),
		date("case_replacement_date").whenEq("case_replaced", ChoiceYes),
		choice("case_set_with_gems", ChoiceTriad),
		choice("case_gem_setting_type", GemSettingTypes).whenEq("case_set_with_gems", ChoiceYes),
		multi("case_gem_stones", Gemstones).whenEq("case_set_with_gems", ChoiceYes),
		score("case_score"),
		images("case_images"),
	}},

	{Name: SectionCaseBack, Fields: []Field{
		choice("case_back_type", CaseBackTypes),
		choice("case_back_material", CaseMaterials),
		text("case_back_engravings").optional(),
		choice("case_back_replaced", ChoiceTriad),
		date("case_back_replacement_date").whenEq("case_back_replaced", ChoiceYes),
		score("case_back_score"),
		images("case_back_images"),
	}},

	{Name: SectionCaseBezel, Fields: []Field{
		choice("case_bezel_type", BezelTypes),
		choice("case_bezel_material", CaseMaterials).whenNeq("case_bezel_type", SentinelNone),
		choice("case_bezel_set_with_gems", ChoiceTriad).whenNeq("case_bezel_type", SentinelNone),
		choice("case_bezel_gem_setting_type", GemSettingTypes).whenEq("case_bezel_set_with_gems", ChoiceYes),
		multi("case_bezel_gem_stones", Gemstones).whenEq("case_bezel_set_with_gems", ChoiceYes),
		choice("case_bezel_replaced", ChoiceTriad).whenNeq("case_bezel_type", SentinelNone),
		date("case_bezel_replacement_date").whenEq("case_bezel_replaced", ChoiceYes),
		score("case_bezel_score"),
		images("case_bezel_images").whenNeq("case_bezel_type", SentinelNone),
	}},

	{Name: SectionCaseBezelInsert, Fields: []Field{
		choice("case_bezel_insert_material", BezelInsertMaterials).whenNeq("case_bezel_type", SentinelNone),
		choice("case_bezel_insert_color", DialColors).whenNeq("case_bezel_type", SentinelNone),
		score("case_bezel_insert_score"),
		images("case_bezel_insert_images").whenNeq("case_bezel_type", SentinelNone),
	}},

	{Name: SectionCaseCrown, Fields: []Field{
		choice("case_crown_type", CrownTypes),
		choice("case_crown_material", CaseMaterials),
		choice("case_crown_signed", ChoiceTriad),
		choice("case_crown_replaced", ChoiceTriad),
		date("case_crown_replacement_date").whenEq("case_crown_replaced", ChoiceYes),
		score("case_crown_score"),
		images("case_crown_images"),
	}},

	{Name: SectionCaseGlass, Fields: []Field{
		choice("case_glass_material", GlassMaterials),
		choice("case_glass_shape", GlassShapes),
		choice("case_glass_cyclops", ChoiceTriad),
		choice("case_glass_replaced", ChoiceTriad),
		date("case_glass_replacement_date").whenEq("case_glass_replaced", ChoiceYes),
		score("case_glass_score"),
		images("case_glass_images"),
	}},

	{Name: SectionDial, Fields: []Field{
		choice("dial_color", DialColors),
		choice("dial_material", DialMaterials),
		choice("dial_finish", DialFinishes),
		choice("dial_index_type", IndexTypes),
		choice("dial_luminescence", Luminescences),
		text("dial_signature"),
		choice("dial_set_with_gems", ChoiceTriad),
		choice("dial_gem_setting_type", GemSettingTypes).whenEq("dial_set_with_gems", ChoiceYes),
		multi("dial_gem_stones", Gemstones).whenEq("dial_set_with_gems", ChoiceYes),
		choice("dial_replaced", ChoiceTriad),
		date("dial_replacement_date").whenEq("dial_replaced", ChoiceYes),
		score("dial_score"),
		images("dial_images"),
	}},

	{Name: SectionHands, Fields: []Field{
		choice("hands_type", HandTypes),
		choice("hands_material", CaseMaterials),
		choice("hands_luminescence", Luminescences),
		choice("hands_replaced", ChoiceTriad),
		date("hands_replacement_date").whenEq("hands_replaced", ChoiceYes),
		score("hands_score"),
		images("hands_images"),
	}},

	{Name: SectionBracelet, Fields: []Field{
		choice("bracelet_type", BraceletTypes),
		choice("bracelet_material", CaseMaterials).whenNeq("bracelet_type", SentinelNone),
		choice("bracelet_color", DialColors).whenNeq("bracelet_type", SentinelNone),
		text("bracelet_signature").whenNeq("bracelet_type", SentinelNone),
		choice("bracelet_set_with_gems", ChoiceTriad).whenNeq("bracelet_type", SentinelNone),
		choice("bracelet_gem_setting_type", GemSettingTypes).whenEq("bracelet_set_with_gems", ChoiceYes),
		multi("bracelet_gem_stones", Gemstones).whenEq("bracelet_set_with_gems", ChoiceYes),
		text("bracelet_end_links").optional(),
		dims("bracelet_dimensions", "length", "width").whenNeq("bracelet_type", SentinelNone),
		score("bracelet_score"),
		images("bracelet_images").whenNeq("bracelet_type", SentinelNone),
	}},

	{Name: SectionBraceletClasp, Fields: []Field{
		choice("bracelet_clasp_type", ClaspTypes).whenNeq("bracelet_type", SentinelNone),
		choice("bracelet_clasp_material", CaseMaterials).whenNeq("bracelet_type", SentinelNone),
		choice("bracelet_clasp_signed", ChoiceTriad).whenNeq("bracelet_type", SentinelNone),
		text("bracelet_clasp_engravings").optional(),
		choice("bracelet_clasp_replaced", ChoiceTriad).whenNeq("bracelet_type", SentinelNone),
		date("bracelet_clasp_replacement_date").whenEq("bracelet_clasp_replaced", ChoiceYes),
		score("bracelet_clasp_score"),
		images("bracelet_clasp_images").whenNeq("bracelet_type", SentinelNone),
	}},

	{Name: SectionBraceletLink, Fields: []Field{
		num("bracelet_link_count").optional(),
		choice("bracelet_link_material", CaseMaterials).whenNeq("bracelet_type", SentinelNone),
		choice("bracelet_link_removable", ChoiceTriad).whenNeq("bracelet_type", SentinelNone),
		score("bracelet_link_score"),
		images("bracelet_link_images").whenNeq("bracelet_type", SentinelNone),
	}},

	{Name: SectionMovement, Fields: []Field{
		text("movement_caliber"),
		choice("movement_type", MovementTypes),
		choice("movement_winding", WindingTypes),
		num("movement_jewels_count"),
		num("movement_frequency"),
		num("movement_power_reserve"),
		text("movement_decoration").optional(),
		text("movement_signature"),
		text("movement_serial_number").optional(),
		choice("movement_replaced", ChoiceTriad),
		date("movement_replacement_date").whenEq("movement_replaced", ChoiceYes),
		score("movement_score"),
		images("movement_images"),
	}},

	{Name: SectionTechWeight, Fields: []Field{
		num("technical_weight_total"),
		num("technical_weight_head"),
		num("technical_weight_bracelet").whenNeq("bracelet_type", SentinelNone),
	}},

	{Name: SectionTechWaterproof, Fields: []Field{
		choice("technical_waterproofing_tested", ChoiceTriad),
		num("technical_waterproofing_pressure_bar").whenEq("technical_waterproofing_tested", ChoiceYes),
		choice("technical_waterproofing_result", TestResults).whenEq("technical_waterproofing_tested", ChoiceYes),
		date("technical_waterproofing_date").whenEq("technical_waterproofing_tested", ChoiceYes),
	}},

	{Name: SectionTechTiming, Fields: []Field{
		num("technical_timing_rate_deviation"),
		num("technical_timing_amplitude"),
		num("technical_timing_beat_error"),
		num("technical_timing_positions_tested").optional(),
		choice("technical_timing_result", TestResults),
	}},

	{Name: SectionValue, Fields: []Field{
		num("value_estimated"),
		choice("value_currency", Currencies),
		num("value_insurance").optional(),
		num("value_purchase_price").optional(),
		date("value_purchase_date").optional(),
		docs("value_documents").optional(),
	}},

	{Name: SectionAccessories, Fields: []Field{
		choice("accessories_box", ChoiceTriad),
		choice("accessories_papers", ChoiceTriad),
		choice("accessories_warranty_card", ChoiceTriad),
		date("accessories_warranty_date").whenEq("accessories_warranty_card", ChoiceYes),
		choice("accessories_invoices", ChoiceTriad).optional(),
		multi("accessories_additional_items", nil).optional(),
		images("accessories_images").optional(),
	}},
}

var (
	fieldsByName   = map[string]Field{}
	sectionsByName = map[string]Section{}
)

func init() {
	for si, sec := range Sections {
		if _, dup := sectionsByName[sec.Name]; dup {
			panic(fmt.Sprintf("report: duplicate section %q", sec.Name))
		}
		for fi, f := range sec.Fields {
			if _, dup := fieldsByName[f.Name]; dup {
				panic(fmt.Sprintf("report: duplicate field %q", f.Name))
			}
			f.Section = sec.Name
			Sections[si].Fields[fi] = f
			fieldsByName[f.Name] = f
		}
		sectionsByName[sec.Name] = Sections[si]
	}
}

// Lookup returns the registry entry for a field name.
func Lookup(name string) (Field, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

// SectionOf returns the section owning a field name, or "" if unknown.
func SectionOf(name string) string {
	if f, ok := fieldsByName[name]; ok {
		return f.Section
	}
	return ""
}

// SectionFields returns the fields one section owns.
func SectionFields(section string) []Field {
	return sectionsByName[section].Fields
}

// AllFieldNames returns every registered field name, section order.
func AllFieldNames() []string {
	names := make([]string, 0, len(fieldsByName))
	for _, sec := range Sections {
		for _, f := range sec.Fields {
			names = append(names, f.Name)
		}
	}
	return names
}
