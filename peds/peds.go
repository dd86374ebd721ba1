package peds

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/engraft/frame"
)

// Kind selects which axis the engine reduces along.
type Kind int

const (
	// Sample yields one PEDS ratio per recipient sample.
	Sample Kind = iota
	// Feature yields one PEDS ratio per feature per time group.
	Feature
)

// String returns the capitalized kind name.
func (k Kind) String() string {
	switch k {
	case Sample:
		return "Sample"
	case Feature:
		return "Feature"
	default:
		return "Unknown"
	}
}

// SamplePEDS computes the per-sample Proportional Engraftment of Donor
// Strains: for each recipient, the fraction of its assigned donor's
// detected features also detected in the recipient.
//
// The full validation pipeline runs first (see the package doc), including
// the subject-completeness check. Recipient rows whose donor detected no
// features at all yield a NaN measure and are kept in the output.
//
// Complexity: O(samples · features) beyond validation.
func SamplePEDS(t *frame.FeatureTable, md *frame.Metadata, opts Options) (*ResultTable, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if md == nil {
		return nil, ErrNilMetadata
	}
	res, err := resolve(t, md, opts, true)
	if err != nil {
		return nil, err
	}
	rt := &ResultTable{Kind: Sample, Columns: sampleSchema(md.IDHeader(), opts)}
	if err = computePEDS(rt, Sample, math.NaN(), res.series, t, res.md, opts); err != nil {
		return nil, err
	}

	return rt, nil
}

// FeaturePEDS computes the per-feature Proportional Engraftment of Donor
// Strains, one time group at a time: for each feature and timepoint, the
// number of recipients carrying the feature over the number of recipients
// whose donor carries it.
//
// The validation pipeline skips the subject-completeness check (recipients
// are counted per time group, so a short timeline cannot skew a ratio the
// way it can per sample). Feature rows whose denominator is zero are
// dropped from the output. Time groups are emitted in ascending order.
func FeaturePEDS(t *frame.FeatureTable, md *frame.Metadata, opts Options) (*ResultTable, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if md == nil {
		return nil, ErrNilMetadata
	}
	res, err := resolve(t, md, opts, false)
	if err != nil {
		return nil, err
	}
	rt := &ResultTable{Kind: Feature, Columns: featureSchema(opts)}

	timeCol, _ := res.md.Column(opts.TimeColumn)
	times, err := timeCol.Floats()
	if err != nil {
		return nil, err
	}
	ids := res.md.IDs()
	for _, tp := range distinctSortedFinite(times) {
		keep := make([]string, 0, len(ids))
		for i, id := range ids {
			if times[i] == tp {
				keep = append(keep, id)
			}
		}
		if err = computePEDS(rt, Feature, tp, res.series, t, res.md.FilterIDs(keep), opts); err != nil {
			return nil, err
		}
	}

	return rt, nil
}

// computePEDS is the shared engine. It binarizes the table, verifies
// referential integrity of the donor assignment, gathers each recipient's
// donor presence row via an explicit index mapping, intersects it with
// the recipient's own presence row, and reduces along the axis the kind
// dictates, appending rows to rt.
func computePEDS(rt *ResultTable, kind Kind, pedsTime float64, series *frame.Series,
	t *frame.FeatureTable, md *frame.Metadata, opts Options) error {
	pres := t.Presence()

	// Referential integrity: every assigned donor needs a table row.
	var missing []string
	seen := make(map[string]struct{}, series.Len())
	for _, donor := range series.Values() {
		if _, dup := seen[donor]; dup {
			continue
		}
		seen[donor] = struct{}{}
		if !t.HasSample(donor) {
			missing = append(missing, donor)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf(
			"%w: confirm that all values in column %q are present in the feature table; missing: %s",
			ErrUnknownReferences, series.Name(), strings.Join(missing, ", "))
	}

	// Recipients: current metadata order, restricted to assigned samples.
	recips := make([]string, 0, md.Len())
	for _, id := range md.IDs() {
		if series.Has(id) {
			recips = append(recips, id)
		}
	}

	// Donor mask: explicit recipient→donor row mapping, then gather.
	donorMask := make([][]bool, len(recips))
	recipRows := make([][]bool, len(recips))
	for i, id := range recips {
		donor, _ := series.Get(id)
		donorMask[i], _ = pres.Row(donor)
		recipRows[i], _ = pres.Row(id)
	}

	switch kind {
	case Sample:
		return reduceSamples(rt, recips, donorMask, recipRows, md, opts)
	case Feature:
		reduceFeatures(rt, pres.Features(), pedsTime, donorMask, recipRows)
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrInternal, int(kind))
	}
}

// reduceSamples sums mask and intersection along the feature axis and
// emits one row per recipient. A zero denominator yields NaN (0/0),
// deliberately propagated rather than treated as an error.
func reduceSamples(rt *ResultTable, recips []string, donorMask, recipRows [][]bool,
	md *frame.Metadata, opts Options) error {
	timeCol, _ := md.Column(opts.TimeColumn)
	times, err := timeCol.Floats()
	if err != nil {
		return err
	}
	refCol, _ := md.Column(opts.ReferenceColumn)
	refs, err := refCol.Strings()
	if err != nil {
		return err
	}
	subjCol, _ := md.Column(opts.SubjectColumn)
	subjects, err := subjCol.Strings()
	if err != nil {
		return err
	}
	rowOf := make(map[string]int, md.Len())
	for i, id := range md.IDs() {
		rowOf[id] = i
	}

	for i, id := range recips {
		var num, den int
		for j, present := range donorMask[i] {
			if !present {
				continue
			}
			den++
			if recipRows[i][j] {
				num++
			}
		}
		r := rowOf[id]
		rt.Rows = append(rt.Rows, Row{
			ID:          id,
			Measure:     float64(num) / float64(den),
			Numerator:   num,
			Denominator: den,
			Donor:       refs[r],
			Subject:     subjects[r],
			Group:       times[r],
		})
	}

	return nil
}

// reduceFeatures sums mask and intersection along the sample axis and
// emits one row per feature, skipping NaN measures entirely.
func reduceFeatures(rt *ResultTable, features []string, pedsTime float64,
	donorMask, recipRows [][]bool) {
	nums := make([]int, len(features))
	dens := make([]int, len(features))
	for i := range donorMask {
		for j, present := range donorMask[i] {
			if !present {
				continue
			}
			dens[j]++
			if recipRows[i][j] {
				nums[j]++
			}
		}
	}
	for j, f := range features {
		if dens[j] == 0 {
			continue
		}
		rt.Rows = append(rt.Rows, Row{
			ID:          f,
			Measure:     float64(nums[j]) / float64(dens[j]),
			Numerator:   nums[j],
			Denominator: dens[j],
			Subject:     f,
			Group:       pedsTime,
		})
	}
}

// distinctSortedFinite returns the distinct non-NaN values in ascending
// order, the grouping key order FeaturePEDS iterates in.
func distinctSortedFinite(vals []float64) []float64 {
	seen := make(map[float64]struct{}, len(vals))
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Float64s(out)

	return out
}
