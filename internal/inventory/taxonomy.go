package inventory

// Category is a top-level inventory classification.
type Category string

const (
	CategoryElectronicsHardware Category = "Electronics Hardware"
	CategoryModules             Category = "Modules"
	CategoryMechanicalParts     Category = "Mechanical Parts"
	CategoryPCBComponents       Category = "PCB Components"
)

// Subcategory is a second-level classification. Which subcategories are
// valid depends on the category (see Taxonomy).
type Subcategory string

const (
	SubGeneral    Subcategory = "General"
	SubSensors    Subcategory = "Sensors"
	SubConnectors Subcategory = "Connectors"
	SubWires      Subcategory = "Wires"

	SubMicrocontrollers Subcategory = "Microcontrollers"
	SubCommunication    Subcategory = "Communication"
	SubPower            Subcategory = "Power"

	SubFasteners  Subcategory = "Fasteners"
	SubEnclosures Subcategory = "Enclosures"
	SubStructural Subcategory = "Structural"

	SubSMD         Subcategory = "SMD"
	SubThroughHole Subcategory = "Through-Hole"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryElectronicsHardware,
	CategoryModules,
	CategoryMechanicalParts,
	CategoryPCBComponents,
}

// Taxonomy maps each category to its allowed subcategories.
// An item's subcategory must always be a member of Taxonomy[item.Category].
var Taxonomy = map[Category][]Subcategory{
	CategoryElectronicsHardware: {SubGeneral, SubSensors, SubConnectors, SubWires},
	CategoryModules:             {SubMicrocontrollers, SubCommunication, SubPower},
	CategoryMechanicalParts:     {SubFasteners, SubEnclosures, SubStructural},
	CategoryPCBComponents:       {SubSMD, SubThroughHole},
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c Category) bool {
	_, ok := Taxonomy[c]
	return ok
}

// ValidSubcategory reports whether sub is allowed under cat.
// Always false for an unknown category.
func ValidSubcategory(cat Category, sub Subcategory) bool {
	for _, s := range Taxonomy[cat] {
		if s == sub {
			return true
		}
	}
	return false
}

// Subcategories returns the allowed subcategories for cat, or nil for an
// unknown category.
func Subcategories(cat Category) []Subcategory {
	return Taxonomy[cat]
}
