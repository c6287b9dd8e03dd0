package browserkit

import (
	"embed"
	"fmt"
)

//go:embed schemas/*.json
var schemaFS embed.FS

func schemaOf(name string) []byte {
	return mustRead("schemas/" + name + ".json")
}

func exampleOf(name string) []byte {
	return mustRead("schemas/" + name + ".example.json")
}

func mustRead(path string) []byte {
	b, err := schemaFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("browserkit: missing embedded %s: %v", path, err))
	}
	return b
}
