package compare

// Badges are the boolean change flags derived from one DiffResult.
type Badges struct {
	Status       bool `json:"status"`
	Time         bool `json:"time"`
	Headers      bool `json:"headers"`
	GQLQuery     bool `json:"gql_query"`
	GQLVariables bool `json:"gql_variables"`

	// AnyChanged is the OR of all other badges.
	AnyChanged bool `json:"any_changed"`
}

// Classify derives change badges from a diff result. Headers is true when
// any of the header-delta categories, request or response side, is
// non-empty. Purely derived; no state beyond this transformation.
func Classify(d DiffResult) Badges {
	b := Badges{
		Status:       d.StatusChanged,
		Time:         d.TimeChanged,
		Headers:      !d.RequestHeaders.Empty() || !d.ResponseHeaders.Empty(),
		GQLQuery:     d.QueryChanged,
		GQLVariables: d.VariablesChanged,
	}
	b.AnyChanged = b.Status || b.Time || b.Headers || b.GQLQuery || b.GQLVariables
	return b
}
