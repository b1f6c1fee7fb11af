package render

import (
	"bytes"
	"encoding/json"

	"github.com/alecthomas/chroma/quick"

	"github.com/jzelinskie/verinfo/pkg/report"
)

var _ Renderer = jsonRenderer{}

type jsonRenderer struct{}

func (jsonRenderer) Render(r report.Report) ([]byte, error) {
	// No timestamp in the JSON representation; record order carries over
	// into the array. HTML escaping is off so version values pass through
	// byte for byte.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.JSONObject()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (jsonRenderer) Pretty(jsonBytes []byte) ([]byte, error) {
	var i interface{}
	err := json.Unmarshal(jsonBytes, &i)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err = enc.Encode(i)
	if err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (jsonRenderer) Color(jsonBytes []byte) ([]byte, error) {
	var b bytes.Buffer
	if err := quick.Highlight(&b, string(jsonBytes), "json", ChromaFormatter(), ChromaStyle()); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func init() {
	Register("json", jsonRenderer{})
	Register("js", jsonRenderer{})
}
