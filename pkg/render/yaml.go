package render

import (
	"bytes"
	"encoding/json"

	"github.com/alecthomas/chroma/quick"
	"github.com/ghodss/yaml"

	"github.com/jzelinskie/verinfo/pkg/report"
)

var _ Renderer = yamlRenderer{}

type yamlRenderer struct{}

func (yamlRenderer) Render(r report.Report) ([]byte, error) {
	jsonBytes, err := json.Marshal(r.JSONObject())
	if err != nil {
		return nil, err
	}
	yamlBytes, err := yaml.JSONToYAML(jsonBytes)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(yamlBytes, []byte("\n")), nil
}

func (yamlRenderer) Pretty(yamlBytes []byte) ([]byte, error) { return yamlBytes, nil }

func (yamlRenderer) Color(yamlBytes []byte) ([]byte, error) {
	var b bytes.Buffer
	if err := quick.Highlight(&b, string(yamlBytes), "yaml", ChromaFormatter(), ChromaStyle()); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func init() {
	Register("yaml", yamlRenderer{})
	Register("yml", yamlRenderer{})
}
