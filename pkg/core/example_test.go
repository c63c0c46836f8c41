package core_test

import (
	"fmt"

	"github.com/glimpse/glimpse/pkg/core"
)

func ExampleScan() {
	inputs := []core.Input{
		{Path: "app.env", Content: []byte("password = hunter22222\n"), Readable: true},
	}
	rep, err := core.Scan(inputs, core.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range rep.Findings {
		fmt.Printf("%s:%d %s\n", f.Path, f.Line, f.Category)
	}
	// Output: app.env:1 Generic Secret
}
