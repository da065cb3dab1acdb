// Copyright 2024 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bigdec

import (
	"database/sql"
	"database/sql/driver"

	"github.com/pkg/errors"
)

var (
	_ sql.Scanner   = (*BigDecimal)(nil)
	_ driver.Valuer = (*BigDecimal)(nil)
)

// MarshalText implements the encoding.TextMarshaler interface. It returns an
// error for a nil d.
func (d *BigDecimal) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, errors.Wrap(ErrInvalidInput, "marshal nil BigDecimal")
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *BigDecimal) UnmarshalText(text []byte) error {
	_, err := d.SetString(string(text))
	return errors.Wrap(err, "unmarshal text")
}

// Value implements the database/sql/driver.Valuer interface. The value is
// sent as its decimal string, which numeric columns accept at any length.
func (d *BigDecimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the database/sql.Scanner interface.
func (d *BigDecimal) Scan(src interface{}) error {
	switch src := src.(type) {
	case string:
		_, err := d.SetString(src)
		return errors.Wrap(err, "scan")
	case []byte:
		_, err := d.SetString(string(src))
		return errors.Wrap(err, "scan")
	case int64:
		if src < 0 {
			return errors.Wrapf(ErrInvalidInput, "scan negative value %d", src)
		}
		d.SetUint64(uint64(src))
		return nil
	default:
		return errors.Wrapf(ErrInvalidInput, "scan value of type %T", src)
	}
}
