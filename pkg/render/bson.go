package render

import (
	"github.com/globalsign/mgo/bson"

	"github.com/jzelinskie/verinfo/pkg/report"
)

var _ Renderer = bsonRenderer{}

type bsonRenderer struct{}

func (bsonRenderer) Render(r report.Report) ([]byte, error) {
	return bson.Marshal(r.JSONObject())
}

func (bsonRenderer) Pretty(bsonBytes []byte) ([]byte, error) { return bsonBytes, nil }
func (bsonRenderer) Color(bsonBytes []byte) ([]byte, error)  { return bsonBytes, nil }

func init() {
	Register("bson", bsonRenderer{})
}
