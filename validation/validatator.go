package validation

import (
	_ "embed"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaBytes []byte

var schema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)

	var object any

	if err := json.Unmarshal(schemaBytes, &object); err != nil {
		panic(err)
	}

	if err := compiler.AddResource("respsync-schema.json", object); err != nil {
		panic(err)
	}

	schema = compiler.MustCompile("respsync-schema.json")
}

// ValidateConfig checks a decoded config document against the embedded
// schema before it is bound to the typed Config.
func ValidateConfig(object any) error {
	return schema.Validate(object)
}
