package boolexpr

// Variable is a named truth value. Two variables are the same entity when
// their names match, whatever their values.
type Variable struct {
	Name  byte
	Value uint8
}

func NewVariable(name byte) Variable {
	return Variable{Name: name}
}

// NewAssignment builds an assignment with every named variable set to 0, in
// the order given.
func NewAssignment(names []byte) []Variable {
	assignment := make([]Variable, len(names))
	for i, name := range names {
		assignment[i] = NewVariable(name)
	}
	return assignment
}

// Char returns '1' or '0' depending on the value.
func (v Variable) Char() byte {
	if v.Value != 0 {
		return '1'
	}
	return '0'
}

func (v Variable) String() string {
	return string(v.Name) + "=" + string(v.Char())
}

func lookup(assignment []Variable, name byte) (Variable, bool) {
	for _, v := range assignment {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}
