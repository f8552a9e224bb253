package higgsplot

import (
	"fmt"
	"strconv"
)

// FloatArrayFlags collects the values of a repeatable float flag, e.g.
// one scale factor per simulation input file. Setting the flag for the
// first time discards any default values.
type FloatArrayFlags struct {
	Array   []float64
	beenSet bool
}

func (f *FloatArrayFlags) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return err
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *FloatArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}

// Get returns the i-th value, or def when fewer than i+1 values were
// given.
func (f *FloatArrayFlags) Get(i int, def float64) float64 {
	if i >= len(f.Array) {
		return def
	}
	return f.Array[i]
}

// StringArrayFlags collects the values of a repeatable string flag,
// e.g. a list of simulation input files.
type StringArrayFlags struct {
	Array []string
}

func (f *StringArrayFlags) Set(value string) error {
	f.Array = append(f.Array, value)
	return nil
}

func (f *StringArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}
