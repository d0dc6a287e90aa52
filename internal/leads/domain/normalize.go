// Package domain holds the leads bounded context's core types: the
// normalized lead record and the field normalizer that produces it from
// raw ad-platform payloads.
package domain

// FieldKey identifies a lead attribute recognized by the normalizer.
// The set is closed: payload fields outside it are ignored.
type FieldKey string

const (
	FieldEmail         FieldKey = "email"
	FieldPhone         FieldKey = "phone"
	FieldFullName      FieldKey = "full_name"
	FieldFirstName     FieldKey = "first_name"
	FieldLastName      FieldKey = "last_name"
	FieldCompanyName   FieldKey = "company_name"
	FieldJobTitle      FieldKey = "job_title"
	FieldCompanySize   FieldKey = "company_size"
	FieldIndustry      FieldKey = "industry"
	FieldAnnualRevenue FieldKey = "annual_revenue"
)

// recognizedFields is the closed enumeration the normalizer accepts.
var recognizedFields = map[FieldKey]struct{}{
	FieldEmail:         {},
	FieldPhone:         {},
	FieldFullName:      {},
	FieldFirstName:     {},
	FieldLastName:      {},
	FieldCompanyName:   {},
	FieldJobTitle:      {},
	FieldCompanySize:   {},
	FieldIndustry:      {},
	FieldAnnualRevenue: {},
}

// Field is one raw name/value-list pair from a lead-detail response.
type Field struct {
	Name   string
	Values []string
}

// NormalizedLead is a flat record of recognized lead attributes. Absence is
// tracked explicitly: a field that was not present in the payload is not the
// same as a field whose value is the empty string.
type NormalizedLead struct {
	fields map[FieldKey]string
}

// Normalize maps raw provider fields into a NormalizedLead. For each
// recognized field name the first value wins; fields with empty value lists
// and unrecognized field names are skipped. Values are taken as-is, no shape
// validation happens here.
func Normalize(raw []Field) NormalizedLead {
	lead := NormalizedLead{fields: make(map[FieldKey]string)}
	for _, f := range raw {
		key := FieldKey(f.Name)
		if _, ok := recognizedFields[key]; !ok {
			continue
		}
		if len(f.Values) == 0 {
			continue
		}
		if _, seen := lead.fields[key]; seen {
			continue
		}
		lead.fields[key] = f.Values[0]
	}
	return lead
}

// Get returns the value for key and whether it was present in the payload.
func (n NormalizedLead) Get(key FieldKey) (string, bool) {
	v, ok := n.fields[key]
	return v, ok
}

// Value returns the value for key, or the empty string when absent.
func (n NormalizedLead) Value(key FieldKey) string {
	return n.fields[key]
}

// Ptr returns a pointer to the value for key, or nil when absent. Used by
// the repository layer to map absent fields to NULL columns.
func (n NormalizedLead) Ptr(key FieldKey) *string {
	if v, ok := n.fields[key]; ok {
		return &v
	}
	return nil
}

// Len reports how many recognized fields were present.
func (n NormalizedLead) Len() int {
	return len(n.fields)
}
