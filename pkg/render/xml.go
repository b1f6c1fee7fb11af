package render

import (
	"bytes"

	"github.com/alecthomas/chroma/quick"
	"github.com/clbanning/mxj"

	"github.com/jzelinskie/verinfo/pkg/report"
)

var _ Renderer = xmlRenderer{}

type xmlRenderer struct{}

func (xmlRenderer) Render(r report.Report) ([]byte, error) {
	// XML element names can't carry the space in "Software versions", so the
	// document element is softwareversions with one software child per
	// record.
	software := make([]interface{}, 0, len(r.Records))
	for _, rec := range r.Records {
		software = append(software, map[string]interface{}{
			"module":  rec.Name,
			"version": rec.Version,
		})
	}
	xmap := mxj.Map(map[string]interface{}{
		"softwareversions": map[string]interface{}{"software": software},
	})
	return xmap.Xml()
}

func (xmlRenderer) Pretty(xmlBytes []byte) ([]byte, error) {
	xmap, err := mxj.NewMapXml(xmlBytes, true)
	if err != nil {
		return nil, err
	}

	return xmap.XmlIndent("", "  ")
}

func (xmlRenderer) Color(xmlBytes []byte) ([]byte, error) {
	var b bytes.Buffer
	if err := quick.Highlight(&b, string(xmlBytes), "xml", ChromaFormatter(), ChromaStyle()); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func init() {
	Register("xml", xmlRenderer{})
}
