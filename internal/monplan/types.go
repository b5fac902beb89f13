package monplan

import "regexp"

// Unit mirrors the unit records served by basic/units and units/{unitCode}.
// Values are treated as immutable once decoded; use Clone before handing a
// Unit to code that may modify it.
type Unit struct {
	UnitCode        string   `json:"unitCode"`
	UnitName        string   `json:"unitName"`
	Faculty         string   `json:"faculty"`
	LocationAndTime []string `json:"locationAndTime"`
	Description     string   `json:"description"`
	LearnScore      float64  `json:"learnScore"`
	EnjoyScore      float64  `json:"enjoyScore"`
	Preqs           *string  `json:"preqs,omitempty"`
	Proh            *string  `json:"proh,omitempty"`
}

// Clone returns a deep copy of u.
func (u Unit) Clone() Unit {
	dup := u
	if u.LocationAndTime != nil {
		dup.LocationAndTime = make([]string, len(u.LocationAndTime))
		copy(dup.LocationAndTime, u.LocationAndTime)
	}
	if u.Preqs != nil {
		v := *u.Preqs
		dup.Preqs = &v
	}
	if u.Proh != nil {
		v := *u.Proh
		dup.Proh = &v
	}
	return dup
}

var unitCodePattern = regexp.MustCompile(`\b[A-Z]{3,4}[0-9]{4}\b`)

// RequisiteCodes returns the unit codes mentioned in the prerequisite and
// prohibition text, prerequisites first, without duplicates.
func (u Unit) RequisiteCodes() []string {
	var codes []string
	seen := make(map[string]struct{})
	for _, text := range []*string{u.Preqs, u.Proh} {
		if text == nil {
			continue
		}
		for _, code := range unitCodePattern.FindAllString(*text, -1) {
			if code == u.UnitCode {
				continue
			}
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}
	return codes
}

// CloneUnits copies a unit slice element by element.
func CloneUnits(units []Unit) []Unit {
	if units == nil {
		return nil
	}
	dup := make([]Unit, len(units))
	for i, u := range units {
		dup[i] = u.Clone()
	}
	return dup
}
