package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/mgo.v2/bson"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeCBOR = "application/cbor"
	ContentTypeBSON = "application/bson"
)

// Write encodes v in the format the client accepts, JSON by default.
// CBOR and BSON are encoded from the JSON form of v, so every value
// with a JSON representation (decimals for example) can be sent.
func Write(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	contentType := negotiate(r.Header.Get("Accept"))

	var data []byte
	var err error
	switch contentType {
	case ContentTypeJSON:
		data, err = json.Marshal(v)
	case ContentTypeCBOR:
		var generic interface{}
		generic, err = normalize(v)
		if err == nil {
			data, err = cbor.Marshal(generic)
		}
	case ContentTypeBSON:
		var generic interface{}
		generic, err = normalize(v)
		if err == nil {
			data, err = bson.Marshal(generic)
		}
	}
	if err != nil {
		log.Error().Err(err).Str("content_type", contentType).Msg("failed to encode response")
		contentType = ContentTypeJSON
		status = http.StatusInternalServerError
		data, _ = json.Marshal(ErrorResponse{Error: "internal_server_error", Reason: err.Error()})
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	w.Write(data) // nolint: errcheck
}

func negotiate(accept string) string {
	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch mediaType {
		case ContentTypeCBOR, ContentTypeBSON, ContentTypeJSON:
			return mediaType
		}
	}
	return ContentTypeJSON
}

// normalize turns v into maps, slices and scalars the way
// encoding/json sees it. Integers become int64 and floats float64, so
// a float stays a float even if it is integral. Values with their own
// JSON encoding (decimals, times) are taken from that encoding.
func normalize(v interface{}) (interface{}, error) {
	return normalizeValue(reflect.ValueOf(v))
}

var jsonMarshaler = reflect.TypeOf((*json.Marshaler)(nil)).Elem()

func normalizeValue(v reflect.Value) (interface{}, error) {
	if !v.IsValid() {
		return nil, nil
	}
	if v.Type().Implements(jsonMarshaler) {
		if v.Kind() == reflect.Ptr && v.IsNil() {
			return nil, nil
		}
		return fromJSON(v.Interface().(json.Marshaler))
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
		return normalizeValue(v.Elem())
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil, nil
		}
		list := make([]interface{}, v.Len())
		for i := range list {
			e, err := normalizeValue(v.Index(i))
			if err != nil {
				return nil, err
			}
			list[i] = e
		}
		return list, nil
	case reflect.Map:
		if v.IsNil() {
			return nil, nil
		}
		m := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			e, err := normalizeValue(iter.Value())
			if err != nil {
				return nil, err
			}
			m[fmt.Sprint(iter.Key().Interface())] = e
		}
		return m, nil
	case reflect.Struct:
		m := make(map[string]interface{}, v.NumField())
		err := normalizeFields(v, m)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unable to encode %s", v.Type())
	}
}

// normalizeFields adds the fields of a struct by their json names,
// fields of embedded structs are promoted.
func normalizeFields(v reflect.Value, m map[string]interface{}) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}
		fv := v.Field(i)

		if f.Anonymous && name == "" {
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				err := normalizeFields(fv, m)
				if err != nil {
					return err
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if strings.Contains(opts, "omitempty") && isEmpty(fv) {
			continue
		}

		e, err := normalizeValue(fv)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		m[name] = e
	}
	return nil
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Struct:
		return false
	default:
		return v.IsZero()
	}
}

func fromJSON(m json.Marshaler) (interface{}, error) {
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic interface{}
	err = dec.Decode(&generic)
	if err != nil {
		return nil, err
	}
	return numbers(generic), nil
}

// numbers converts decoded json numbers, numbers written with a
// fraction or exponent become float64.
func numbers(v interface{}) interface{} {
	switch x := v.(type) {
	case json.Number:
		if !strings.ContainsAny(x.String(), ".eE") {
			if i, err := x.Int64(); err == nil {
				return i
			}
		}
		f, _ := x.Float64()
		return f
	case map[string]interface{}:
		for k, e := range x {
			x[k] = numbers(e)
		}
		return x
	case []interface{}:
		for i, e := range x {
			x[i] = numbers(e)
		}
		return x
	default:
		return v
	}
}
