package service

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msb-dashboard/backend/internal/constant"
)

func TestDatasetLoad(t *testing.T) {
	f := newFixture(t)
	f.write(f.conf.LTAPStatisticsFile, "{\n  \"z\": 1,\n  \"a\": [1, 2]\n}\n")

	env := f.dataset().Load(context.Background(), constant.DatasetLTAP)
	require.True(t, env.Success, env.Error)
	assert.Equal(t, json.RawMessage(`{"z":1,"a":[1,2]}`), env.Data)
	assert.Equal(t, "2024-05-01 08:30:00", env.LastModified)
	assert.Empty(t, env.Error)
}

func TestDatasetLoadNotFound(t *testing.T) {
	f := newFixture(t)
	s := f.dataset()

	for _, kind := range constant.DatasetKinds {
		t.Run(string(kind), func(t *testing.T) {
			env := s.Load(context.Background(), kind)
			assert.False(t, env.Success)
			assert.Nil(t, env.Data)
			assert.Empty(t, env.LastModified)
			assert.Equal(t, constant.DatasetNotFoundMessages[kind], env.Error)
			assert.Contains(t, env.Error, "not found")
		})
	}
}

func TestDatasetLoadMalformed(t *testing.T) {
	f := newFixture(t)
	s := f.dataset()

	f.write(f.conf.CDHDRStatisticsFile, `{"a":`)
	env := s.Load(context.Background(), constant.DatasetCDHDR)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)

	f.write(f.conf.CDHDRStatisticsFile, "  \n")
	env = s.Load(context.Background(), constant.DatasetCDHDR)
	assert.False(t, env.Success)
	assert.Equal(t, ErrEmptyDocument.Error(), env.Error)
}

func TestDatasetLoadNonFinite(t *testing.T) {
	f := newFixture(t)
	f.write(f.conf.PGIDLinesStatisticsFile, `{"avg": NaN, "max": Infinity, "min": -Infinity, "note": "NaN stays", "q": "a\"NaN"}`)

	env := f.dataset().Load(context.Background(), constant.DatasetPGIDLines)
	require.True(t, env.Success, env.Error)
	assert.Equal(t, json.RawMessage(`{"avg":null,"max":null,"min":null,"note":"NaN stays","q":"a\"NaN"}`), env.Data)
}

func TestDatasetLoadInvalidUTF8(t *testing.T) {
	f := newFixture(t)
	f.write(f.conf.PGIDLinesStatisticsFile, "{\"a\":\"\xff\"}")

	env := f.dataset().Load(context.Background(), constant.DatasetPGIDLines)
	assert.False(t, env.Success)
	assert.Equal(t, ErrInvalidEncoding.Error(), env.Error)
}

func TestStatisticsToday(t *testing.T) {
	f := newFixture(t)
	f.write(f.conf.StatisticsFile, `{"total":3,"by_date":[{"date":"2024-04-30","n":1},{"date":"2024-05-01","n":2}]}`)

	s := NewStatistics(f.dataset())
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local) }

	env := s.Combined(context.Background())
	require.True(t, env.Success, env.Error)
	assert.JSONEq(t, `{"date":"2024-05-01","n":2}`, string(env.Extra("today_data")))
	assert.Equal(t, `"2024-05-01"`, string(env.Extra("today")))

	b, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"data":{"total":3,"by_date":[{"date":"2024-04-30","n":1},{"date":"2024-05-01","n":2}]},"last_modified":"2024-05-01 08:30:00","today_data":{"date":"2024-05-01","n":2},"today":"2024-05-01"}`, string(b))
}

func TestStatisticsNoToday(t *testing.T) {
	f := newFixture(t)
	s := NewStatistics(f.dataset())
	s.now = func() time.Time { return time.Date(2024, 5, 2, 12, 0, 0, 0, time.Local) }

	f.write(f.conf.StatisticsFile, `{"by_date":[{"date":"2024-05-01"}]}`)
	env := s.Combined(context.Background())
	require.True(t, env.Success)
	assert.Equal(t, "null", string(env.Extra("today_data")))

	// absent by_date is an empty sequence
	f.write(f.conf.StatisticsFile, `{"total":0}`)
	env = s.Combined(context.Background())
	require.True(t, env.Success)
	assert.Equal(t, "null", string(env.Extra("today_data")))
}

func TestStatisticsMalformedByDate(t *testing.T) {
	f := newFixture(t)
	s := NewStatistics(f.dataset())
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local) }

	for _, doc := range []string{
		`{"by_date":{"date":"2024-05-01"}}`,
		`{"by_date":"2024-05-01"}`,
		`{"by_date":[1,"2024-05-01",null]}`,
	} {
		f.write(f.conf.StatisticsFile, doc)
		env := s.Combined(context.Background())
		require.True(t, env.Success, doc)
		assert.Equal(t, "null", string(env.Extra("today_data")), doc)
	}
}

func TestStatisticsFailureKeepsToday(t *testing.T) {
	f := newFixture(t)
	s := NewStatistics(f.dataset())
	s.now = func() time.Time { return time.Date(2024, 5, 2, 12, 0, 0, 0, time.Local) }

	env := s.Combined(context.Background())
	assert.False(t, env.Success)
	assert.Equal(t, "Statistics file not found", env.Error)
	assert.Equal(t, `"2024-05-02"`, string(env.Extra("today")))
	assert.Nil(t, env.Extra("today_data"))

	f.write(f.conf.StatisticsFile, `[1,2]`)
	env = s.Combined(context.Background())
	assert.False(t, env.Success)
	assert.Equal(t, ErrNotObject.Error(), env.Error)
	assert.Equal(t, `"2024-05-02"`, string(env.Extra("today")))
}

func TestLayout(t *testing.T) {
	f := newFixture(t)
	s := NewLayout(f.dataset())

	f.write(f.conf.BinLocationsFile, `{"layout":{"rows":[["A0001","A0002"]]},"meta":{"v":1}}`)
	env := s.BinLocations(context.Background())
	require.True(t, env.Success, env.Error)

	b, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"last_modified":"2024-05-01 08:30:00","layout":{"rows":[["A0001","A0002"]]}}`, string(b))
}

func TestLayoutMissingKey(t *testing.T) {
	f := newFixture(t)
	s := NewLayout(f.dataset())

	f.write(f.conf.BinLocationsFile, `{"rows":[]}`)
	env := s.BinLocations(context.Background())
	assert.False(t, env.Success)
	assert.Equal(t, ErrLayoutNotFound.Error(), env.Error)
	assert.Nil(t, env.Extra("layout"))

	f.write(f.conf.BinLocationsFile, `{"layout":null}`)
	env = s.BinLocations(context.Background())
	require.True(t, env.Success)
	assert.Equal(t, "null", string(env.Extra("layout")))
}
