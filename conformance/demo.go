package conformance

func expect(v int64) *int64 {
	return &v
}

// Demo returns the built-in demonstration table
func Demo() *Suite {
	return &Suite{
		Name:        "demo",
		Description: "The demonstration expressions",
		Cases: []Case{
			{Name: "addition", Expr: "5 + 10", Expect: expect(15)},
			{Name: "subtraction", Expr: "20 - 5", Expect: expect(15)},
			{Name: "multiplication", Expr: "5 * 3", Expect: expect(15)},
			{Name: "parentheses", Expr: "(5 + 10) * 2", Expect: expect(30)},
			{Name: "precedence", Expr: "10 + 5 * 2", Expect: expect(20)},
			{Name: "left associativity", Expr: "100 - 50 - 25", Expect: expect(25)},
		},
	}
}
