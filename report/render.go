package report

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

func (r *Report) JSON() []byte {
	bytes, err := json.Marshal(r)

	if err != nil {
		panic(err) // should be ok
	}

	return bytes
}

func (r *Report) YAML() []byte {
	bytes, err := yaml.Marshal(r)

	if err != nil {
		panic(err)
	}

	return bytes
}
