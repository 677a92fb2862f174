// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package identity

// Reconcile merges the partial records read from every source into one
// canonical Record.
//
// The office-suite partial, if present and available, is the baseline.
// The name block (first name, last name, initials) is then taken as a
// unit from the first source in [Precedence] with a non-empty first
// name, so name parts from different sources are never mixed. Each of
// home phone, office phone, email and fax is filled independently:
// a field still empty after the baseline takes the first non-empty
// value in precedence order. Finally, non-empty initials, email and fax
// from override replace whatever the merge produced.
//
// Unavailable partials are skipped. For merging this is equivalent to
// an available partial with every field empty.
func Reconcile(sources []Partial, override Partial) Record {
	var record Record
	ordered := make([]Partial, 0, len(Precedence))

	for _, kind := range Precedence {
		for _, partial := range sources {
			if partial.Source == kind && partial.Available {
				ordered = append(ordered, partial.Normalize())
				break
			}
		}
	}
	for _, partial := range sources {
		if partial.Source == SourceOfficeSuite && partial.Available {
			record = partial.Normalize().Record
			break
		}
	}

	for _, partial := range ordered {
		if partial.FirstName != "" {
			record.FirstName = partial.FirstName
			record.LastName = partial.LastName
			record.Initials = partial.Initials
			break
		}
	}

	for _, partial := range ordered {
		fillEmpty(&record.HomePhone, partial.HomePhone)
		fillEmpty(&record.OfficePhone, partial.OfficePhone)
		fillEmpty(&record.Email, partial.Email)
		fillEmpty(&record.Fax, partial.Fax)
	}

	if override.Available {
		local := override.Record.Normalize()
		replaceNonEmpty(&record.Initials, local.Initials)
		replaceNonEmpty(&record.Email, local.Email)
		replaceNonEmpty(&record.Fax, local.Fax)
	}

	return record
}

func fillEmpty(field *string, value string) {
	if *field == "" && value != "" {
		*field = value
	}
}

func replaceNonEmpty(field *string, value string) {
	if value != "" {
		*field = value
	}
}
