package browserkit

import (
	"net/url"
	"strconv"

	"github.com/tailbits/browserkit/rawjson"
)

// URLQuery encodes the properties of p as query parameters, including
// properties SessionListParams does not declare.
func (p SessionListParams) URLQuery() url.Values {
	return queryValues(p.Raw())
}

// queryValues converts the scalar properties of o into query values.
// Arrays add one value per scalar element; objects and nulls are skipped.
func queryValues(o *rawjson.Object) url.Values {
	q := make(url.Values)
	for k, v := range o.Entries() {
		if v.Kind() == rawjson.KindArray {
			for _, item := range v.Items() {
				if s, ok := queryScalar(item); ok {
					q.Add(k, s)
				}
			}
			continue
		}
		if s, ok := queryScalar(v); ok {
			q.Set(k, s)
		}
	}
	return q
}

func queryScalar(v rawjson.Value) (string, bool) {
	switch v.Kind() {
	case rawjson.KindString:
		return v.Str()
	case rawjson.KindNumber:
		return v.NumberText()
	case rawjson.KindBool:
		b, _ := v.Bool()
		return strconv.FormatBool(b), true
	}
	return "", false
}
