package schemacache

// nullStrategy is the disabled variant: stateless, every operation a no-op
// returning the absent result.
type nullStrategy struct{}

func (nullStrategy) Get(string) (any, bool) { return nil, false }
func (nullStrategy) Set(string, any)        {}
func (nullStrategy) Contains(string) bool   { return false }
func (nullStrategy) Remove(string) bool     { return false }
func (nullStrategy) Len() int               { return 0 }
func (nullStrategy) Clear()                 {}
func (nullStrategy) Stats() Stats           { return Stats{} }
