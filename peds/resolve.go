package peds

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/engraft/frame"
)

// resolved is the state the validation pipeline hands to the engine: the
// cumulatively filtered metadata, the usable donor assignment, and the
// timepoint count fixed before any filtering.
type resolved struct {
	md            *frame.Metadata
	series        *frame.Series
	numTimepoints int
}

// resolve runs the validation pipeline described in the package doc.
//
// The order of checks is normative. Each check sees the metadata state
// left by the previous one; only numTimepoints is derived from the
// unfiltered (table-restricted) metadata. checkComplete toggles step 6,
// which only the per-sample computation performs.
func resolve(t *frame.FeatureTable, md *frame.Metadata, opts Options, checkComplete bool) (*resolved, error) {
	// Step 0: restrict metadata to samples that have table rows.
	md = md.FilterIDs(t.Samples())

	// Step 1: time column, and the required timepoint count.
	timeCol, err := CheckColumn(md, opts.TimeColumn, RoleTime, frame.Numeric)
	if err != nil {
		return nil, err
	}
	times, err := timeCol.Floats()
	if err != nil {
		return nil, err
	}
	numTimepoints := countDistinctFinite(times)

	// Step 2: reference column and the timestamped reference series.
	if _, err = CheckColumn(md, opts.ReferenceColumn, RoleReference, frame.Categorical); err != nil {
		return nil, err
	}
	series, err := md.Series(opts.ReferenceColumn)
	if err != nil {
		return nil, err
	}
	stamped := make(map[string]bool, md.Len())
	for i, id := range md.IDs() {
		stamped[id] = !math.IsNaN(times[i])
	}
	series = series.Where(func(id, _ string) bool { return stamped[id] })

	// Step 3: every timestamped sample needs a reference.
	if missing := series.Where(func(_, v string) bool { return v == "" }); missing.Len() > 0 {
		if !opts.FilterMissingReferences {
			return nil, fmt.Errorf(
				"%w: every sample with a timepoint needs a value in column %q; offending sample ids: %s",
				ErrMissingReferences, opts.ReferenceColumn, strings.Join(missing.IDs(), ", "))
		}
		md = dropMissingReferences(md, opts.ReferenceColumn)
		series = series.Where(func(_, v string) bool { return v != "" })
	}

	// Step 4: subject column, on the state left by step 3.
	subjCol, err := CheckColumn(md, opts.SubjectColumn, RoleSubject, frame.Categorical)
	if err != nil {
		return nil, err
	}
	subjects, err := subjCol.Strings()
	if err != nil {
		return nil, err
	}
	timeCol, _ = md.Column(opts.TimeColumn)
	times, err = timeCol.Floats()
	if err != nil {
		return nil, err
	}

	// Step 5: a subject may occur at most once per timepoint.
	if err = checkDuplicateTimepoints(subjects, times); err != nil {
		return nil, err
	}

	// Step 6: every subject must cover every timepoint.
	if checkComplete {
		md, series, err = checkSubjectCompleteness(md, series, subjects, numTimepoints, opts)
		if err != nil {
			return nil, err
		}
	}

	return &resolved{md: md, series: series, numTimepoints: numTimepoints}, nil
}

// dropMissingReferences removes every metadata row, donor rows included,
// whose reference value is missing.
func dropMissingReferences(md *frame.Metadata, referenceColumn string) *frame.Metadata {
	col, _ := md.Column(referenceColumn)
	vals, _ := col.Strings()
	keep := make([]string, 0, md.Len())
	for i, id := range md.IDs() {
		if vals[i] != "" {
			keep = append(keep, id)
		}
	}

	return md.FilterIDs(keep)
}

// checkDuplicateTimepoints fails when any subject carries a repeated time
// value. Missing subjects are skipped; two missing times count as a
// duplicate pair, matching NaN-insensitive distinctness.
func checkDuplicateTimepoints(subjects []string, times []float64) error {
	order := make([]string, 0, len(subjects))
	bySubject := make(map[string][]float64, len(subjects))
	for i, s := range subjects {
		if s == "" {
			continue
		}
		if _, ok := bySubject[s]; !ok {
			order = append(order, s)
		}
		bySubject[s] = append(bySubject[s], times[i])
	}
	for _, s := range order {
		ts := bySubject[s]
		if countDistinctAll(ts) != len(ts) {
			return fmt.Errorf(
				"%w: all subjects must occur only once per timepoint; subject %q appears in timepoints %v",
				ErrDuplicateTimepoint, s, ts)
		}
	}

	return nil
}

// checkSubjectCompleteness enforces that every subject appears
// numTimepoints times, either dropping short subjects or failing with the
// full list of subjects whose count deviates.
func checkSubjectCompleteness(md *frame.Metadata, series *frame.Series, subjects []string,
	numTimepoints int, opts Options) (*frame.Metadata, *frame.Series, error) {
	order := make([]string, 0, len(subjects))
	counts := make(map[string]int, len(subjects))
	for _, s := range subjects {
		if s == "" {
			continue
		}
		if _, ok := counts[s]; !ok {
			order = append(order, s)
		}
		counts[s]++
	}
	short := false
	for _, s := range order {
		if counts[s] < numTimepoints {
			short = true
			break
		}
	}
	if !short {
		return md, series, nil
	}
	if !opts.DropIncompleteSubjects {
		var bad []string
		for _, s := range order {
			if counts[s] != numTimepoints {
				bad = append(bad, s)
			}
		}

		return nil, nil, fmt.Errorf(
			"%w: all subjects must have all timepoints or DropIncompleteSubjects must be set; incomplete subjects: %s",
			ErrIncompleteSubjects, strings.Join(bad, ", "))
	}
	keep := make([]string, 0, md.Len())
	for i, id := range md.IDs() {
		if s := subjects[i]; s != "" && counts[s] == numTimepoints {
			keep = append(keep, id)
		}
	}
	md = md.FilterIDs(keep)
	series = series.Restrict(md.IDs())

	return md, series, nil
}

// countDistinctFinite counts distinct non-NaN values.
func countDistinctFinite(vals []float64) int {
	seen := make(map[float64]struct{}, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		seen[v] = struct{}{}
	}

	return len(seen)
}

// countDistinctAll counts distinct values with all NaNs collapsed into
// one, the distinctness rule the duplicate-timepoint check relies on.
func countDistinctAll(vals []float64) int {
	n := countDistinctFinite(vals)
	for _, v := range vals {
		if math.IsNaN(v) {
			n++
			break
		}
	}

	return n
}
