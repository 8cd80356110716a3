package nanogit

// Status is a contract stub: a placeholder shape with working- and
// staging-area entry slots, both always empty. Callers only need to know
// it's callable; diffing isn't implemented here.
type Status struct {
	WorkingAreaEntries []string
	StagingAreaEntries []string
}

// Status returns an empty Status.
func (r *Repo) Status() *Status {
	return &Status{}
}
