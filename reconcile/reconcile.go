package reconcile

// Result is the merged view of declared and observed responses. Added keeps
// the codes that were observed but never declared, in the order their first
// return site appeared, so regeneration appends deterministically.
type Result struct {
	Entries map[Code]Entry
	Added   []Code
	Changed bool
}

// Reconcile folds the observed sites onto the declared entries. Existing
// descriptions are never touched; an observed payload type overwrites the
// declared one only when the site actually constructs a payload. Entries
// declared but never observed are kept as they are.
func (p *Pipeline) Reconcile(declared map[Code]Entry, sites []Site) Result {
	entries := make(map[Code]Entry, len(declared))

	for code, entry := range declared {
		entries[code] = entry
	}

	var added []Code

	for _, site := range sites {
		current, ok := entries[site.Code]

		if !ok {
			entries[site.Code] = Entry{
				Code:        site.Code,
				Description: p.placeholder,
				PayloadType: site.PayloadType,
			}
			added = append(added, site.Code)
			continue
		}

		if site.PayloadType != "" {
			current.PayloadType = site.PayloadType
			entries[site.Code] = current
		}
	}

	changed := len(entries) != len(declared)

	if !changed {
		for code, entry := range entries {
			if declared[code].PayloadType != entry.PayloadType {
				changed = true
				break
			}
		}
	}

	return Result{
		Entries: entries,
		Added:   added,
		Changed: changed,
	}
}
