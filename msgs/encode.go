package msgs

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/ault-network/ault-go/aulterrors"
	"github.com/ault-network/ault-go/wire"
)

// WireKind selects how a field value is written to the proto wire.
type WireKind int

const (
	// WireString is a length-delimited UTF-8 string.
	WireString WireKind = iota
	// WireBytes is a length-delimited byte field; values may be []byte
	// or base64 strings.
	WireBytes
	// WireUint is a varint; values may be *big.Int, safe-range numbers
	// or decimal strings.
	WireUint
	// WireBool is a varint boolean.
	WireBool
	// WireNested is an embedded message described by Fields.
	WireNested
	// WireDuration is a google.protobuf.Duration encoded from a
	// nanosecond count.
	WireDuration
)

// WireField maps one named value field onto a proto field number. The
// descriptor tables are interpreted by Encode; field numbers are part
// of the wire contract and must match the chain's proto schema.
type WireField struct {
	Name     string
	Number   uint64
	Kind     WireKind
	Repeated bool
	// Fields describes the embedded message for WireNested.
	Fields []WireField
}

// Encode produces the message's canonical proto bytes wrapped in its
// Any envelope, by interpreting the registered wire descriptor table.
func Encode(m Message) (wire.Any, error) {
	cfg, err := Lookup(m.TypeURL)
	if err != nil {
		return wire.Any{}, err
	}
	w := wire.NewWriter()
	if err := encodeFields(w, cfg.WireFields, m.Value); err != nil {
		return wire.Any{}, errors.Wrapf(err, "encode %s", m.TypeURL)
	}
	return wire.Any{TypeURL: m.TypeURL, Value: w.Bytes()}, nil
}

func encodeFields(w *wire.Writer, fields []WireField, value map[string]any) error {
	for _, f := range fields {
		raw, ok := value[f.Name]
		if !ok || raw == nil {
			continue
		}
		if f.Repeated {
			elems, err := toSlice(f.Name, raw)
			if err != nil {
				return err
			}
			for _, elem := range elems {
				if err := encodeOne(w, f, elem, true); err != nil {
					return err
				}
			}
			continue
		}
		if err := encodeOne(w, f, raw, false); err != nil {
			return err
		}
	}
	return nil
}

// encodeOne writes a single value. Non-repeated fields follow proto3
// default omission; repeated elements are always written, default or
// not, since element count is significant.
func encodeOne(w *wire.Writer, f WireField, raw any, repeated bool) error {
	switch f.Kind {
	case WireString:
		s, err := coerceString(f.Name, raw)
		if err != nil {
			return err
		}
		if repeated {
			w.WriteTag(f.Number, wire.TypeLengthDelim)
			w.WriteUvarint(uint64(len(s)))
			w.WriteRaw([]byte(s))
			return nil
		}
		w.WriteString(f.Number, s)
	case WireBytes:
		b, err := coerceBytes(f.Name, raw)
		if err != nil {
			return err
		}
		if repeated {
			w.WriteTag(f.Number, wire.TypeLengthDelim)
			w.WriteUvarint(uint64(len(b)))
			w.WriteRaw(b)
			return nil
		}
		w.WriteBytes(f.Number, b)
	case WireUint:
		n, err := coerceUint(f.Name, raw)
		if err != nil {
			return err
		}
		if repeated {
			w.WriteTag(f.Number, wire.TypeVarint)
			return w.WriteBigUvarint(n)
		}
		return w.WriteBigUint(f.Number, n)
	case WireBool:
		b, err := coerceBool(f.Name, raw)
		if err != nil {
			return err
		}
		if repeated {
			w.WriteTag(f.Number, wire.TypeVarint)
			if b {
				w.WriteUvarint(1)
			} else {
				w.WriteUvarint(0)
			}
			return nil
		}
		w.WriteBool(f.Number, b)
	case WireDuration:
		n, err := coerceUint(f.Name, raw)
		if err != nil {
			return err
		}
		payload, err := wire.EncodeDuration(n)
		if err != nil {
			return aulterrors.Validationf("field %q: %v", f.Name, err)
		}
		if len(payload) == 0 && !repeated {
			return nil
		}
		w.WriteTag(f.Number, wire.TypeLengthDelim)
		w.WriteUvarint(uint64(len(payload)))
		w.WriteRaw(payload)
		return nil
	case WireNested:
		sub, ok := raw.(map[string]any)
		if !ok {
			return aulterrors.Validationf("field %q: expected a nested record, got %T", f.Name, raw)
		}
		child := wire.NewWriter()
		if err := encodeFields(child, f.Fields, sub); err != nil {
			return err
		}
		if child.Len() == 0 && !repeated {
			return nil
		}
		w.WriteTag(f.Number, wire.TypeLengthDelim)
		w.WriteUvarint(uint64(child.Len()))
		w.WriteRaw(child.Bytes())
		return nil
	default:
		return errors.Errorf("field %q: unhandled wire kind %d", f.Name, f.Kind)
	}
	return nil
}

func toSlice(name string, raw any) ([]any, error) {
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, aulterrors.Validationf("field %q: expected an array, got %T", name, raw)
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, nil
}
