package render

import (
	"github.com/zeebo/bencode"

	"github.com/jzelinskie/verinfo/pkg/report"
)

var _ Renderer = bencodeRenderer{}

type bencodeRenderer struct{}

func (bencodeRenderer) Render(r report.Report) ([]byte, error) {
	return bencode.EncodeBytes(r.JSONObject())
}

func (bencodeRenderer) Pretty(bencodeBytes []byte) ([]byte, error) { return bencodeBytes, nil }
func (bencodeRenderer) Color(bencodeBytes []byte) ([]byte, error)  { return bencodeBytes, nil }

func init() {
	Register("bencode", bencodeRenderer{})
	Register("torrent", bencodeRenderer{})
}
