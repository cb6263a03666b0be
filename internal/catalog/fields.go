package catalog

// FieldDefinitions maps each custom field type to the field names it
// offers. A run samples 8 to 13 of these per organization.
var FieldDefinitions = map[string][]string{
	"Text":         {"Status", "Component", "Release Version"},
	"SingleSelect": {"Priority", "Effort Level", "Risk Level", "Phase"},
	"MultiSelect":  {"Labels", "Skills Required", "Dependencies"},
	"Number":       {"Story Points", "Estimated Hours", "Complexity Score"},
	"Dropdown":     {"Team", "Quarter"},
}

// FieldValues enumerates the value space for fields that have one. Fields
// absent here either take numeric values or echo their name.
var FieldValues = map[string][]string{
	"Status":       {"Not Started", "In Progress", "Blocked", "Complete"},
	"Priority":     {"Low", "Medium", "High", "Critical"},
	"Effort Level": {"XS", "S", "M", "L", "XL"},
	"Risk Level":   {"Low", "Medium", "High"},
	"Phase":        {"Phase 1", "Phase 2", "Phase 3", "Phase 4"},
	"Quarter":      {"Q1", "Q2", "Q3", "Q4"},
}

// FieldNames returns every field name across all types, in a stable order
// for deterministic sampling.
func FieldNames() []string {
	types := []string{"Text", "SingleSelect", "MultiSelect", "Number", "Dropdown"}
	var names []string
	for _, t := range types {
		names = append(names, FieldDefinitions[t]...)
	}
	return names
}

// FieldTypeOf returns the type a field name belongs to, defaulting to Text.
func FieldTypeOf(name string) string {
	for fieldType, names := range FieldDefinitions {
		for _, n := range names {
			if n == name {
				return fieldType
			}
		}
	}
	return "Text"
}
