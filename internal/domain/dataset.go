package domain

// Dataset is an ordered, append-only sequence of records in insertion order.
// Duplicate (subject, day, condition) entries are kept.
type Dataset []Record

// BySubject returns the subject's records in insertion order.
func (d Dataset) BySubject(id SubjectID) []Record {
	var out []Record
	for _, r := range d {
		if r.SubjectID == id {
			out = append(out, r)
		}
	}
	return out
}

// BySubjectAndCondition returns the subject's records under c in insertion order.
func (d Dataset) BySubjectAndCondition(id SubjectID, c Condition) []Record {
	var out []Record
	for _, r := range d {
		if r.SubjectID == id && r.Condition == c {
			out = append(out, r)
		}
	}
	return out
}

// HasSubject reports whether any record exists for id.
func (d Dataset) HasSubject(id SubjectID) bool {
	for _, r := range d {
		if r.SubjectID == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no optional-field storage with d.
func (d Dataset) Clone() Dataset {
	out := make(Dataset, len(d))
	for i, r := range d {
		out[i] = r.clone()
	}
	return out
}

func (r Record) clone() Record {
	if r.WaterCollectedML != nil {
		r.WaterCollectedML = Float(*r.WaterCollectedML)
	}
	if r.SuggestedWaterML != nil {
		r.SuggestedWaterML = Float(*r.SuggestedWaterML)
	}
	return r
}

// Equal reports whether d and o hold equal records in the same order.
func (d Dataset) Equal(o Dataset) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if !d[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
