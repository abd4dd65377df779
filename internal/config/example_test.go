package config_test

import (
	"fmt"

	"xeyes/internal/config"
)

func ExampleApplyGeometry() {
	g := config.DefaultGeometry()
	config.ApplyGeometry(&g, "300x200+50+50")
	fmt.Println(g.Size, g.Offset)

	config.ApplyGeometry(&g, "+10+20")
	fmt.Println(g.Size, g.Offset)
	// Output:
	// (300,200) (50,50)
	// (300,200) (10,20)
}

func ExampleNormalizeArgs() {
	fmt.Println(config.NormalizeArgs([]string{"-geometry", "200x100", "-monitor", "2"}))
	// Output:
	// [--geometry=200x100 --monitor=2]
}
