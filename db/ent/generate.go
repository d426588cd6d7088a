package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target: "gen/ent",
			// Full import path so generated sub-packages resolve.
			Package: "github.com/nutriscan/nutrition-scanner/gen/ent",
			Schema:  "github.com/nutriscan/nutrition-scanner/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
