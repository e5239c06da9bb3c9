package tibber

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var errInvalidJson = errors.New("response is not valid json")

// FieldError tells which field of a response is missing or of the wrong type.
type FieldError struct {
	Path string
	Want string
	Got  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: expected %s, got %s", e.Path, e.Want, e.Got)
}

type field struct {
	name string
	typ  gjson.Type
}

var priceFields = []field{
	{name: "total", typ: gjson.Number},
	{name: "energy", typ: gjson.Number},
	{name: "startsAt", typ: gjson.String},
}

// encoding/json leaves missing fields at their zero value, so the required
// fields are checked here before unmarshalling.
func requirePriceViewer(body []byte) error {
	if !gjson.ValidBytes(body) {
		return errInvalidJson
	}

	homes := gjson.GetBytes(body, "data.viewer.homes")
	if !homes.IsArray() {
		return newFieldError("data.viewer.homes", "array", homes)
	}

	for i, home := range homes.Array() {
		path := fmt.Sprintf("data.viewer.homes.%d.currentSubscription.priceInfo", i)
		info := home.Get("currentSubscription.priceInfo")
		if !info.IsObject() {
			return newFieldError(path, "object", info)
		}

		if err := requirePrice(info.Get("current"), path+".current"); err != nil {
			return err
		}

		for _, day := range []string{"today", "tomorrow"} {
			series := info.Get(day)
			if !series.IsArray() {
				return newFieldError(path+"."+day, "array", series)
			}
			for j, price := range series.Array() {
				if err := requirePrice(price, fmt.Sprintf("%s.%s.%d", path, day, j)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func requirePrice(price gjson.Result, path string) error {
	if !price.IsObject() {
		return newFieldError(path, "object", price)
	}
	for _, f := range priceFields {
		v := price.Get(f.name)
		if v.Type != f.typ {
			return newFieldError(path+"."+f.name, f.typ.String(), v)
		}
	}
	return nil
}

func requireViewerName(body []byte) error {
	if !gjson.ValidBytes(body) {
		return errInvalidJson
	}
	name := gjson.GetBytes(body, "data.viewer.name")
	if name.Type != gjson.String {
		return newFieldError("data.viewer.name", gjson.String.String(), name)
	}
	return nil
}

func newFieldError(path, want string, got gjson.Result) *FieldError {
	return &FieldError{Path: path, Want: want, Got: describe(got)}
}

func describe(r gjson.Result) string {
	switch {
	case !r.Exists():
		return "nothing"
	case r.IsArray():
		return "array"
	case r.IsObject():
		return "object"
	default:
		return r.Type.String()
	}
}

// graphqlErrors returns the messages of a GraphQL "errors" array, if any.
func graphqlErrors(body []byte) []string {
	if !gjson.ValidBytes(body) {
		return nil
	}
	var messages []string
	for _, m := range gjson.GetBytes(body, "errors.#.message").Array() {
		messages = append(messages, m.String())
	}
	return messages
}
