// Copyright 2016 The Cockroach Authors.
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

//go:build postgres
// +build postgres

// Run a test against Postgres (or CockroachDB) servers:
// go test -run Postgres -tags postgres -postgres 'user=postgres sslmode=disable;postgresql://root@localhost:26257?sslmode=disable'

package bigdec

import (
	crand "crypto/rand"
	"database/sql"
	"encoding/binary"
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

var (
	flagPostgres = flag.String("postgres", "postgres://postgres@localhost?sslmode=disable", "Postgres connection strings; specify multiple with semicolons")
	flagIters    = flag.Int("postgres-iters", 1000, "number of random queries per connection")
)

func TestPostgres(t *testing.T) {
	var seed int64
	err := binary.Read(crand.Reader, binary.LittleEndian, &seed)
	if err != nil {
		t.Fatal(err)
	}
	rnd := rand.New(rand.NewSource(seed))
	t.Logf("seed: %d", seed)

	cs := strings.Split(*flagPostgres, ";")
	conns := make([]*sql.DB, len(cs))
	for i, s := range cs {
		conn, err := sql.Open("postgres", s)
		if err != nil {
			t.Fatalf("%s: %s", s, err)
		}
		defer conn.Close()
		conns[i] = conn
	}

	for i := 0; i < *flagIters; i++ {
		x, y := randomDecimal(rnd), randomDecimal(rnd)
		if x.Cmp(y) < 0 {
			x, y = y, x
		}
		n := uint64(rnd.Intn(200))
		checks := []struct {
			q    string
			args []interface{}
			want *BigDecimal
		}{
			{"SELECT ($1::numeric + $2::numeric)::text", []interface{}{x, y}, Add(x, y)},
			{"SELECT ($1::numeric - $2::numeric)::text", []interface{}{x, y}, MustSub(x, y)},
			{"SELECT ($1::numeric * $2::numeric)::text", []interface{}{x, y}, Mul(x, y)},
			{"SELECT factorial($1::bigint)::text", []interface{}{int64(n)}, Factorial(n)},
			{"SELECT (2::numeric ^ $1::numeric)::numeric(1000, 0)::text", []interface{}{int64(n)}, PowerUint64(2, n)},
		}
		for j, db := range conns {
			for _, c := range checks {
				var got BigDecimal
				if err := db.QueryRow(c.q, c.args...).Scan(&got); err != nil {
					t.Fatalf("%+v", errors.Wrapf(err, "%s: %s %v", cs[j], c.q, c.args))
				}
				if !got.Equal(c.want) {
					t.Fatalf("%s: %s %v\n\t%s (bigdec)\n\t%s (%s)", cs[j], c.q, c.args, c.want, &got, cs[j])
				}
			}
		}
	}
}

// randomDecimal returns a value of up to 80 digits.
func randomDecimal(rnd *rand.Rand) *BigDecimal {
	n := rnd.Intn(80) + 1
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d", rnd.Intn(10))
	}
	return MustNewFromString(b.String())
}
