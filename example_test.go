package schemacache_test

import (
	"fmt"

	"github.com/tstromberg/schemacache"
)

func ExampleRegistry() {
	reg := schemacache.NewRegistry(schemacache.DefaultConfig())

	c := reg.Strategy(schemacache.KindSchema, "openapi")
	c.Set("User", map[string]any{"type": "object"})

	if v, ok := c.Get("User"); ok {
		fmt.Println(v.(map[string]any)["type"])
	}

	st := c.Stats()
	fmt.Println(st.Hits, st.Misses)
	// Output:
	// object
	// 1 0
}

func ExampleMemoize() {
	reg := schemacache.NewRegistry(schemacache.DefaultConfig())
	c := reg.Strategy(schemacache.KindModel, "field-names")

	resolve := schemacache.Memoize(c, func(name string) string {
		// Stand-in for an expensive reflection walk.
		return "model:" + name
	})

	fmt.Println(resolve.Call("User"))
	fmt.Println(resolve.Call("User"))
	// Output:
	// model:User
	// model:User
}
