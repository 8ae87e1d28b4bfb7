package device

// Constraint limits the legal values of an option. A nil Constraint means
// the option is unconstrained.
type Constraint interface {
	isConstraint()
}

// Range restricts a numeric option to min..max in steps of Step. For
// fixed-point options all three bounds are raw fixed-point words.
type Range struct {
	Min  int
	Max  int
	Step int
}

// WordList restricts a numeric option to a discrete list of values, raw
// fixed-point words for fixed-point options.
type WordList []int

// StringList restricts a string option to a discrete list of values.
type StringList []string

func (Range) isConstraint()      {}
func (WordList) isConstraint()   {}
func (StringList) isConstraint() {}
