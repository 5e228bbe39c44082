package form

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type status int

const statusActive status = 2

func (s status) String() string {
	if s == statusActive {
		return "active"
	}
	return "unknown"
}

type level int

type userQuery struct {
	ID    int
	Name  *string
	Email string
	Since time.Time
}

func (q userQuery) QueryParams() (*Data, error) {
	d := NewData().Set("id", q.ID).Set("name", q.Name).Set("email", q.Email)
	if !q.Since.IsZero() {
		d.Set("since", q.Since)
	}
	return d, nil
}

func TestData_OrderAndReplace(t *testing.T) {
	d := NewData().Set("b", 1).Set("a", 2).Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, d.Keys())
	v, ok := d.Get("b")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	d.Del("b")
	assert.Equal(t, []string{"a"}, d.Keys())
	assert.Equal(t, 1, d.Len())

	d.Del("missing")
	assert.Equal(t, 1, d.Len())
}

func TestData_NilSafe(t *testing.T) {
	var d *Data
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.Keys())
	_, ok := d.Get("x")
	assert.False(t, ok)
	d.Range(func(string, any) bool {
		t.Fatal("range over nil data must not call fn")
		return true
	})
	assert.NotPanics(t, func() { d.Del("x") })
}

func TestFromMap_SortsKeys(t *testing.T) {
	d := FromMap(map[string]any{"z": 1, "a": 2, "m": 3})
	assert.Equal(t, []string{"a", "m", "z"}, d.Keys())
}

func TestFromPairs_KeepsOrder(t *testing.T) {
	d := FromPairs(Pair{"z", 1}, Pair{"a", 2}, Pair{"z", 9})
	q, err := EncodeFromMap(d, Options{})
	require.NoError(t, err)
	assert.Equal(t, "z=9&a=2", q)
}

func TestEncodeFromMap(t *testing.T) {
	tests := []struct {
		name string
		data *Data
		opts Options
		want string
	}{
		{"nil data", nil, DefaultOptions(), ""},
		{"empty data", NewData(), DefaultOptions(), ""},
		{"skip null", NewData().Set("id", 5).Set("name", nil), DefaultOptions(), "id=5"},
		{"keep null as empty", NewData().Set("id", 5).Set("name", nil), Options{}, "id=5&name="},
		{"skip empty", NewData().Set("a", "").Set("b", "x"), DefaultOptions(), "b=x"},
		{"keep empty", NewData().Set("a", "").Set("b", "x"), Options{SkipNull: true}, "a=&b=x"},
		{"typed nil pointer", NewData().Set("p", (*int)(nil)).Set("q", 1), DefaultOptions(), "q=1"},
		{"reserved characters", NewData().Set("q", "a b&c=d"), DefaultOptions(), "q=a%20b%26c%3Dd"},
		{"insertion order", NewData().Set("z", 1).Set("a", true).Set("m", 1.5), DefaultOptions(), "z=1&a=true&m=1.5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeFromMap(tc.data, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeFromModel(t *testing.T) {
	name := "Ann Lee"
	since := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	got, err := EncodeFromModel(userQuery{ID: 7, Name: &name, Since: since}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "id=7&name=Ann%20Lee&since=2024-03-01T10%3A00%3A00Z", got)

	got, err = EncodeFromModel(userQuery{ID: 7}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "id=7", got)
}

func TestEncodeFromModel_Nil(t *testing.T) {
	got, err := EncodeFromModel(nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, got)

	var d *Data
	got, err = EncodeFromModel(d, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEncodeFromModel_ProjectionError(t *testing.T) {
	boom := errors.New("boom")
	_, err := EncodeFromModel(ModelFunc(func() (*Data, error) { return nil, boom }), DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestEncode_ConversionErrorPropagates(t *testing.T) {
	d := NewData().Set("ok", 1).Set("ch", make(chan int))
	_, err := EncodeFromMap(d, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ch"`)
}

func TestEncode_RoundTrip(t *testing.T) {
	values := map[string]string{
		"amp":        "a&b",
		"eq":         "x=y",
		"space":      "hello world",
		"unicode":    "zürich 東京",
		"plus":       "1+1",
		"slash":      "a/b?c#d",
		"percent":    "100%",
		"a&b":        "1",
		"k=v":        "2",
		"first name": "x",
	}
	d := NewData()
	for k, v := range values {
		d.Set(k, v)
	}

	q, err := EncodeFromMap(d, DefaultOptions())
	require.NoError(t, err)

	parsed, err := url.ParseQuery(q)
	require.NoError(t, err)
	for k, v := range values {
		assert.Equal(t, v, parsed.Get(k), "key %s", k)
	}
}

func TestEncode_EscapesKeys(t *testing.T) {
	d := NewData().Set("a&b", "1").Set("first name", "x").Set("k=v", "2")
	q, err := EncodeFromMap(d, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "a%26b=1&first%20name=x&k%3Dv=2", q)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "AZaz09-_.~", Escape("AZaz09-_.~"))
	assert.Equal(t, "a%20b", Escape("a b"))
	assert.Equal(t, "%2B%26%3D%2F%3F", Escape("+&=/?"))
	assert.Equal(t, "%C3%BC", Escape("ü"))
}

func TestAppendQuery(t *testing.T) {
	assert.Equal(t, "http://x/api", AppendQuery("http://x/api", ""))
	assert.Equal(t, "http://x/api?id=5", AppendQuery("http://x/api", "id=5"))
	assert.Equal(t, "http://x/api?v=1&id=5", AppendQuery("http://x/api?v=1", "id=5"))
}

func TestToText(t *testing.T) {
	n := 42
	np := &n
	ts := time.Date(2024, 1, 2, 3, 4, 5, 600, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"bytes", []byte("raw"), "raw"},
		{"int", 5, "5"},
		{"int64", int64(-9), "-9"},
		{"uint8", uint8(200), "200"},
		{"float", 2.5, "2.5"},
		{"float32", float32(0.25), "0.25"},
		{"bool", false, "false"},
		{"pointer", np, "42"},
		{"double pointer", &np, "42"},
		{"time", ts, "2024-01-02T03:04:05.0000006Z"},
		{"stringer enum", statusActive, "active"},
		{"named int", level(3), "3"},
		{"error", errors.New("bad"), "bad"},
		{"struct", struct {
			A int `json:"a"`
		}{1}, `{"a":1}`},
		{"slice", []int{1, 2}, "[1,2]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToText(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToText_Unsupported(t *testing.T) {
	_, err := ToText(func() {})
	assert.Error(t, err)
}
