package render

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/chroma/quick"

	"github.com/jzelinskie/verinfo/pkg/report"
)

var _ Renderer = tomlRenderer{}

type tomlRenderer struct{}

func (tomlRenderer) Render(r report.Report) ([]byte, error) {
	var b bytes.Buffer
	if err := toml.NewEncoder(&b).Encode(r.JSONObject()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

func (tomlRenderer) Pretty(tomlBytes []byte) ([]byte, error) { return tomlBytes, nil }

func (tomlRenderer) Color(tomlBytes []byte) ([]byte, error) {
	var b bytes.Buffer
	if err := quick.Highlight(&b, string(tomlBytes), "toml", ChromaFormatter(), ChromaStyle()); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func init() {
	Register("toml", tomlRenderer{})
}
