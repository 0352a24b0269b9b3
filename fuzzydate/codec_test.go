// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate_test

import (
	"testing"

	"cloudeng.io/pedigree/fuzzydate"
	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONEncoding(t *testing.T) {
	for _, tc := range []struct {
		date fuzzydate.Date
		json string
	}{
		{fuzzydate.Date{}, `{}`},
		{fuzzydate.Parse("1990s"), `{"decade":"1990s"}`},
		{fuzzydate.Parse("1994"), `{"decade":"1990s","year":1994}`},
		{fuzzydate.Parse("Jun 1994"), `{"decade":"1990s","year":1994,"month":6}`},
		{fuzzydate.Parse("1994-06-14"), `{"decade":"1990s","year":1994,"month":6,"day":14}`},
	} {
		buf, err := json.Marshal(tc.date)
		require.NoError(t, err)
		require.Equal(t, tc.json, string(buf))

		var d fuzzydate.Date
		require.NoError(t, json.Unmarshal(buf, &d))
		require.Equal(t, tc.date, d)
	}
}

func TestJSONDecoding(t *testing.T) {
	for _, tc := range []struct {
		json string
		want fuzzydate.Date
	}{
		{`{"year":"1994","month":6,"day":"14"}`, fuzzydate.Parse("1994-06-14")},
		{`{"year":1994.0,"month":"6th"}`, fuzzydate.Parse("Jun 1994")},
		{`{"year":1.994e3,"month":6}`, fuzzydate.Parse("Jun 1994")},
		{`{"year":19940E-1,"month":6.9,"day":1.4E1}`, fuzzydate.Parse("1994-06-14")},
		{`{"year":1e400}`, fuzzydate.Date{}},
		{`{"decade":"1990s","year":null}`, fuzzydate.Parse("1990s")},
		{`{"year":"unknown","month":6}`, fuzzydate.Date{}},
		{`{"year":true}`, fuzzydate.Date{}},
		{`{"year":[1994]}`, fuzzydate.Date{}},
		{`{"place":"London","year":1850}`, fuzzydate.Parse("1850")},
		{`{}`, fuzzydate.Date{}},
		{`null`, fuzzydate.Date{}},
		{`""`, fuzzydate.Date{}},
		{`"1990s"`, fuzzydate.Parse("1990s")},
		{`"Tue Jun 14 1994"`, fuzzydate.Parse("1994-06-14")},
		{`"gibberish"`, fuzzydate.Date{}},
		{`1994`, fuzzydate.Parse("1994")},
		{`false`, fuzzydate.Date{}},
	} {
		var d fuzzydate.Date
		require.NoError(t, json.Unmarshal([]byte(tc.json), &d), tc.json)
		require.Equal(t, tc.want, d, tc.json)
	}

	var d fuzzydate.Date
	require.Error(t, json.Unmarshal([]byte(`{"year":`), &d))
}

func TestJSONEmbedded(t *testing.T) {
	type person struct {
		Name  string         `json:"name"`
		Birth fuzzydate.Date `json:"birth"`
		Death fuzzydate.Date `json:"death"`
	}
	in := `{"name":"Ada","birth":{"year":"1815","month":12,"day":10},"death":"1850s"}`
	var p person
	require.NoError(t, json.Unmarshal([]byte(in), &p))
	require.Equal(t, "Sun Dec 10 1815", p.Birth.String())
	require.True(t, p.Death.OnlyDecadeAvailable())

	buf, err := json.Marshal(p)
	require.NoError(t, err)
	require.Equal(t, `{"name":"Ada","birth":{"decade":"1810s","year":1815,"month":12,"day":10},"death":{"decade":"1850s"}}`, string(buf))
}

func TestRecordJSON(t *testing.T) {
	r := fuzzydate.Record{Year: fuzzydate.String("1994"), Month: fuzzydate.Int(6), Day: fuzzydate.Null()}
	buf, err := json.Marshal(r)
	require.NoError(t, err)
	require.Equal(t, `{"year":"1994","month":6,"day":null}`, string(buf))

	var rt fuzzydate.Record
	require.NoError(t, json.Unmarshal(buf, &rt))
	require.Equal(t, fuzzydate.FromRecord(r), fuzzydate.FromRecord(rt))
}

func TestYAML(t *testing.T) {
	type person struct {
		Name  string         `yaml:"name"`
		Birth fuzzydate.Date `yaml:"birth"`
		Death fuzzydate.Date `yaml:"death"`
	}
	in := `
name: Ada
birth:
  year: "1815"
  month: 12
  day: 10
death: 1850s
`
	var p person
	require.NoError(t, yaml.Unmarshal([]byte(in), &p))
	require.Equal(t, fuzzydate.Parse("1815-12-10"), p.Birth)
	require.Equal(t, fuzzydate.Parse("1850s"), p.Death)

	out, err := yaml.Marshal(p)
	require.NoError(t, err)
	var rt person
	require.NoError(t, yaml.Unmarshal(out, &rt))
	require.Equal(t, p, rt)

	for _, tc := range []struct {
		yaml string
		want fuzzydate.Date
	}{
		{"1994", fuzzydate.Parse("1994")},
		{"1994-06-14", fuzzydate.Parse("1994-06-14")},
		{"Jun 1994", fuzzydate.Parse("Jun 1994")},
		{"{year: abc}", fuzzydate.Date{}},
		{"{decade: 1960s, month: 3}", fuzzydate.Parse("1960s")},
		{"[1994]", fuzzydate.Date{}},
		{"{year: 1.994e+3, month: 6}", fuzzydate.Parse("Jun 1994")},
		{"{year: 19940e-1, month: 6.5}", fuzzydate.Parse("Jun 1994")},
	} {
		var d fuzzydate.Date
		require.NoError(t, yaml.Unmarshal([]byte(tc.yaml), &d), tc.yaml)
		require.Equal(t, tc.want, d, tc.yaml)
	}

	out, err = yaml.Marshal(fuzzydate.Parse("Jun 1994"))
	require.NoError(t, err)
	require.Equal(t, "decade: 1990s\nyear: 1994\nmonth: 6\n", string(out))
}
