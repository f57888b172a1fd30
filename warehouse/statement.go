package warehouse

// Statement is one named SQL statement destined for the warehouse connection.
// Statements are value types so plans can be exported for dry runs without a connection.
type Statement struct {
	Name  string `json:"name"`
	Table string `json:"table"`
	SQL   string `json:"sql"`
}

// Plan is the ordered list of statements a run will execute.
type Plan struct {
	Statements []Statement `json:"statements"`
}

// NewPlan combines statement groups in execution order.
func NewPlan(groups ...[]Statement) Plan {
	p := Plan{Statements: make([]Statement, 0)}
	for _, g := range groups {
		p.Statements = append(p.Statements, g...)
	}
	return p
}
