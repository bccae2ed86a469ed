package conformance

// Suite is a table of expressions and their expected outcomes, read from a
// YAML or CUE file
type Suite struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Options     SuiteOptions `yaml:"options,omitempty" json:"options,omitempty"`
	Cases       []Case       `yaml:"cases" json:"cases"`
}

// SuiteOptions switch on compiler features for every case in a suite
type SuiteOptions struct {
	Division bool `yaml:"division,omitempty" json:"division,omitempty"`
	Lenient  bool `yaml:"lenient,omitempty" json:"lenient,omitempty"`
}

// Case is a single expression with either an expected value or an expected
// error kind (lex, parse, unsupported, resource or runtime)
type Case struct {
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Expr   string `yaml:"expr" json:"expr"`
	Expect *int64 `yaml:"expect,omitempty" json:"expect,omitempty"`
	Error  string `yaml:"error,omitempty" json:"error,omitempty"`
	Skip   string `yaml:"skip,omitempty" json:"skip,omitempty"` // Reason to skip
}

// Title returns the case name, or the expression when the case is unnamed
func (c Case) Title() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Expr
}

// cueSchema constrains CUE suites before they are decoded
const cueSchema = `
#Case: close({
	name?:   string
	expr:    string
	expect?: int & >=-9223372036854775808 & <=9223372036854775807
	error?:  "lex" | "parse" | "unsupported" | "resource" | "runtime"
	skip?:   string
})

close({
	name:         string
	description?: string
	options?: close({
		division?: bool
		lenient?:  bool
	})
	cases: [...#Case]
})
`
