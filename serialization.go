package bigdec

import (
	"math/big"

	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// BSON element kinds accepted by SetBSON.
const (
	bsonString     = 0x02
	bsonInt32      = 0x10
	bsonInt64      = 0x12
	bsonDecimal128 = 0x13
)

// GetBSON stores d as a BSON string. Decimal128 only holds 34 digits.
func (d *BigDecimal) GetBSON() (interface{}, error) {
	return d.String(), nil
}

// SetBSON parses d from a BSON string, a non-negative integer, or a
// Decimal128 holding a non-negative integer.
func (d *BigDecimal) SetBSON(raw bson.Raw) error {
	switch raw.Kind {
	case bsonString:
		var s string
		if err := raw.Unmarshal(&s); err != nil {
			return err
		}
		_, err := d.SetString(s)
		return err
	case bsonInt32, bsonInt64:
		var i int64
		if err := raw.Unmarshal(&i); err != nil {
			return err
		}
		if i < 0 {
			return errors.Wrapf(ErrInvalidInput, "negative value %d", i)
		}
		d.SetUint64(uint64(i))
		return nil
	case bsonDecimal128:
		var w bson.Decimal128
		if err := raw.Unmarshal(&w); err != nil {
			return err
		}
		// Integer values may carry an exponent or trailing fraction
		// zeros, as in 1.2E+3 or 5.0.
		r, ok := new(big.Rat).SetString(w.String())
		if !ok || !r.IsInt() || r.Sign() < 0 {
			return errors.Wrapf(ErrInvalidInput, "decimal128 %s is not a non-negative integer", w)
		}
		_, err := d.SetBig(r.Num())
		return err
	default:
		return errors.Wrapf(ErrInvalidInput, "bson kind %#x", raw.Kind)
	}
}
