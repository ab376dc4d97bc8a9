package view

import (
	"cmp"

	"golang.org/x/text/collate"

	"github.com/mesh-intelligence/tabview/pkg/types"
)

// compareValues orders two field values. nil and missing values sort before
// every present value. Numbers compare numerically and sort before strings;
// everything else compares by its display string using the collator, or by
// custom when the column declares one.
func compareValues(coll *collate.Collator, custom types.Comparator, a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if custom != nil {
		return custom(a, b)
	}

	af, aNum := types.ToFloat(a)
	bf, bNum := types.ToFloat(b)
	switch {
	case aNum && bNum:
		return cmp.Compare(af, bf)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return coll.CompareString(types.FormatValue(a), types.FormatValue(b))
}

// valuesEqual reports whether a record value satisfies a facet selection.
// Numbers compare numerically; other values by display string. A nil
// selection matches only nil or missing values.
func valuesEqual(v, want any) bool {
	if want == nil || v == nil {
		return want == nil && v == nil
	}
	wf, wNum := types.ToFloat(want)
	vf, vNum := types.ToFloat(v)
	if wNum && vNum {
		return wf == vf
	}
	return types.FormatValue(v) == types.FormatValue(want)
}
