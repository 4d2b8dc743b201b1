package reseller

import (
	"strconv"

	"github.com/go-faster/jx"
)

// scalar читает строку, число или bool как текст. Вложенные значения и null
// пропускаются, ok=false.
func scalar(d *jx.Decoder) (value string, ok bool, err error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		return s, err == nil, err
	case jx.Number:
		raw, err := d.Raw()
		if err != nil {
			return "", false, err
		}
		return string(raw), true, nil
	case jx.Bool:
		b, err := d.Bool()
		return strconv.FormatBool(b), err == nil, err
	case jx.Null:
		return "", false, d.Null()
	default:
		return "", false, d.Skip()
	}
}

// decodeFields разбирает JSON-объект верхнего уровня в плоскую карту скалярных
// полей. Не-объект считается некорректным ответом.
func decodeFields(body []byte) (map[string]string, error) {
	if !jx.Valid(body) {
		return nil, malformed("not a json document")
	}

	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return nil, malformed("expected json object, got %s", d.Next())
	}

	fields := make(map[string]string)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		v, ok, err := scalar(d)
		if err != nil {
			return err
		}
		if ok {
			fields[key] = v
		}
		return nil
	})
	if err != nil {
		return nil, malformed("decode object: %v", err)
	}

	return fields, nil
}

// apiError возвращает *APIError, если ответ - объект с полем "error".
func apiError(body []byte) error {
	if !jx.Valid(body) {
		return nil
	}
	if jx.DecodeBytes(body).Next() != jx.Object {
		return nil
	}
	fields, err := decodeFields(body)
	if err != nil {
		return nil
	}
	if msg, ok := fields["error"]; ok {
		return &APIError{Message: msg}
	}
	return nil
}

func decodeServices(body []byte) ([]Service, error) {
	if err := apiError(body); err != nil {
		return nil, err
	}
	if !jx.Valid(body) {
		return nil, malformed("services: not a json document")
	}

	d := jx.DecodeBytes(body)
	if d.Next() != jx.Array {
		return nil, malformed("services: expected list, got %s", d.Next())
	}

	var services []Service
	err := d.Arr(func(d *jx.Decoder) error {
		if d.Next() != jx.Object {
			return d.Skip()
		}

		s := Service{RatePer: defaultRatePer}
		var altID string
		err := d.Obj(func(d *jx.Decoder, key string) error {
			v, ok, err := scalar(d)
			if err != nil {
				return err
			}
			switch key {
			case "service":
				s.ID = v
			case "id":
				altID = v
			case "name":
				s.Name = v
			case "category":
				s.Category, s.HasCategory = v, ok
			case "rate":
				s.Rate = v
			case "rate_per":
				if ok {
					s.RatePer = v
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		if s.ID == "" {
			s.ID = altID
		}
		services = append(services, s)
		return nil
	})
	if err != nil {
		return nil, malformed("services: %v", err)
	}

	return services, nil
}

func decodeCancel(body []byte) ([]CancelResult, error) {
	if !jx.Valid(body) {
		return nil, malformed("cancel: not a json document")
	}

	d := jx.DecodeBytes(body)
	switch d.Next() {
	case jx.Object:
		if err := apiError(body); err != nil {
			return nil, err
		}
		return nil, nil
	case jx.Array:
	default:
		// Любой другой корректный JSON API считает успехом без подробностей.
		return nil, nil
	}

	var results []CancelResult
	err := d.Arr(func(d *jx.Decoder) error {
		if d.Next() != jx.Object {
			return d.Skip()
		}

		var r CancelResult
		err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "order":
				v, _, err := scalar(d)
				r.OrderID = v
				return err
			case "cancel":
				if d.Next() != jx.Object {
					return d.Skip()
				}
				return d.Obj(func(d *jx.Decoder, key string) error {
					if key != "error" {
						return d.Skip()
					}
					v, _, err := scalar(d)
					r.Error = v
					return err
				})
			default:
				return d.Skip()
			}
		})
		if err != nil {
			return err
		}

		results = append(results, r)
		return nil
	})
	if err != nil {
		return nil, malformed("cancel: %v", err)
	}

	return results, nil
}
