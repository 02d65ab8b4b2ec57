package hexcons

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

func TestBytes_Value(t *testing.T) {
	tests := []struct {
		name  string
		input Bytes
		want  interface{}
	}{
		{"nil", nil, nil},
		{"empty", Bytes{}, ""},
		{"data", Bytes{0x00, 0xff, 0x10}, "00ff10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Value()
			if err != nil {
				t.Fatalf("Value() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Value() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestBytes_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    Bytes
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"string", "00ff10", Bytes{0x00, 0xff, 0x10}, false},
		{"upper string", "00FF10", Bytes{0x00, 0xff, 0x10}, false},
		{"bytes", []byte("beef"), Bytes{0xbe, 0xef}, false},
		{"odd", "abc", nil, true},
		{"invalid char", "zz", nil, true},
		{"prefixed", "0xbeef", nil, true},
		{"int", 42, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Bytes
			err := b.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !cmp.Equal(tt.want, b) {
				t.Errorf("Scan() = %x, want %x", b, tt.want)
			}
		})
	}

	var b Bytes
	err := b.Scan(3.5)
	assert.EqualError(t, err, "cannot scan type float64 into Bytes")

	err = b.Scan("0f0")
	assert.ErrorIs(t, err, ErrOddLength)
	assert.EqualError(t, err, "failed to parse hex string: hex length must be even, got 3")
}

func TestBytes_ScanReusesBuffer(t *testing.T) {
	b := make(Bytes, 0, 8)
	require.NoError(t, b.Scan("0102"))
	require.NoError(t, b.Scan("03"))
	assert.Equal(t, Bytes{0x03}, b)
	assert.Equal(t, 8, cap(b))
}

func TestBytes_FailedDecodeKeepsContents(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid after valid pair", "11zz"},
		{"invalid in the middle", "0102zz03"},
		{"odd", "112"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bytes{0xaa, 0xbb}
			err := b.UnmarshalText([]byte(tt.input))
			require.Error(t, err)
			assert.Equal(t, Bytes{0xaa, 0xbb}, b)

			s := make(Bytes, 2, 8)
			s[0], s[1] = 0xcc, 0xdd
			require.Error(t, s.Scan(tt.input))
			assert.Equal(t, Bytes{0xcc, 0xdd}, s)
			assert.Equal(t, []byte{0xcc, 0xdd, 0, 0}, []byte(s[:4]), "spare capacity is untouched")
		})
	}
}

func TestBytesUpper(t *testing.T) {
	b := BytesUpper{0xde, 0xad}
	assert.Equal(t, "DEAD", b.String())
	assert.Equal(t, "DEAD", fmt.Sprintf("%v", b))
	assert.Equal(t, "0XDEAD", fmt.Sprintf("%#s", b))
	assert.Equal(t, "dead", fmt.Sprintf("%x", b))

	data, err := json.Marshal(struct {
		Key BytesUpper `json:"key"`
	}{b})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"DEAD"}`, string(data))

	var back BytesUpper
	require.NoError(t, back.UnmarshalText([]byte("dEaD")))
	assert.Equal(t, b, back)

	v, err := b.Value()
	require.NoError(t, err)
	assert.Equal(t, "DEAD", v)
	v, err = BytesUpper(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, back.Scan([]byte("BEEF")))
	assert.Equal(t, BytesUpper{0xbe, 0xef}, back)
	require.NoError(t, back.Scan(nil))
	assert.Nil(t, back)
	assert.EqualError(t, back.Scan(7), "cannot scan type int into BytesUpper")
}

func TestBytes_JSON(t *testing.T) {
	type record struct {
		Key  Bytes   `json:"key"`
		Hash Bytes32 `json:"hash"`
		Tag  *Bytes  `json:"tag"`
	}

	in := record{
		Key:  Bytes{0xde, 0xad},
		Hash: Bytes32{31: 0x01},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"dead","hash":"`+strings.Repeat("0", 62)+`01","tag":null}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}

	err = json.Unmarshal([]byte(`{"hash":"abcd"}`), &out)
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Equal(t, in.Hash, out.Hash, "failed decode leaves the array unchanged")
}

func TestBytes_YAML(t *testing.T) {
	type config struct {
		Seed   Bytes   `yaml:"seed"`
		Digest Bytes20 `yaml:"digest"`
		Salt   Bytes   `yaml:"salt"`
	}

	in := config{
		Seed:   Bytes{0x12, 0x34},
		Digest: Bytes20{0: 0xab, 19: 0xcd},
		Salt:   Bytes{0xca, 0xfe},
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `seed: "1234"`, "numeric looking hex must be quoted")
	assert.Contains(t, string(data), "salt: cafe")

	var out config
	require.NoError(t, yaml.Unmarshal(data, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}

	err = yaml.Unmarshal([]byte("seed: xyz1\n"), &out)
	assert.ErrorIs(t, err, ErrInvalidChar)
}

func TestFixedBytes_Scan(t *testing.T) {
	digest := strings.Repeat("ab", 32)
	tests := []struct {
		name    string
		input   interface{}
		want    Bytes32
		wantErr error
	}{
		{"string", digest, Bytes32(MustDecodeString(digest)), nil},
		{"bytes", []byte(strings.ToUpper(digest)), Bytes32(MustDecodeString(digest)), nil},
		{"nil", nil, Bytes32{}, nil},
		{"short", digest[:62], Bytes32{0: 0x77}, ErrInvalidLength},
		{"invalid", digest[:63] + "g", Bytes32{0: 0x77}, ErrInvalidChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bytes32{0: 0x77}
			err := b.Scan(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, b)
		})
	}

	var b Bytes16
	assert.EqualError(t, b.Scan(int64(1)), "cannot scan type int64 into Bytes16")
}

func TestFromHex(t *testing.T) {
	_, err := FromHex32(strings.Repeat("ab", 31))
	var lenErr *InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 32, lenErr.Expected())
	assert.Equal(t, 31, lenErr.Actual())
	assert.True(t, strings.HasPrefix(err.Error(), "failed to parse Bytes32: "))

	b16, err := FromHex16("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	assert.Equal(t, byte(0x0f), b16[15])

	b20, err := FromHex20(strings.Repeat("F", 40))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("f", 40), b20.String())

	b64, err := FromHex64(strings.Repeat("01", 64))
	require.NoError(t, err)
	assert.Len(t, b64.Bytes(), 64)

	_, err = FromHex64(strings.Repeat("01", 64) + "0")
	assert.ErrorIs(t, err, ErrOddLength)
}

func TestBytes_Format(t *testing.T) {
	b32 := Bytes32{0: 0xde, 1: 0xad}
	assert.Equal(t, "0XDEAD", fmt.Sprintf("%#.4X", b32))
	assert.Equal(t, "dead", fmt.Sprintf("%v", Bytes{0xde, 0xad}))
	assert.Equal(t, "[0xdead]", fmt.Sprintf("[%#x]", Bytes{0xde, 0xad}))
	assert.Equal(t, "%!d(hexcons.Bytes=dead)", fmt.Sprintf("%d", Bytes{0xde, 0xad}))
	assert.Equal(t, "%!d(hexcons.Bytes16=000102030405060708090a0b0c0d0e0f)",
		fmt.Sprintf("%d", Bytes16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}))
}

func TestBytes_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE blobs (id INTEGER PRIMARY KEY, data TEXT, digest TEXT)`)
	require.NoError(t, err)

	digest, err := FromHex32(strings.Repeat("5a", 32))
	require.NoError(t, err)

	rows := []struct {
		data   Bytes
		digest Bytes32
	}{
		{Bytes{0x00, 0xff, 0x10}, digest},
		{nil, Bytes32{}},
		{Bytes{}, Bytes32{31: 1}},
	}
	for i, r := range rows {
		_, err := db.Exec(`INSERT INTO blobs (id, data, digest) VALUES (?, ?, ?)`, i, r.data, r.digest)
		require.NoError(t, err)
	}

	var stored string
	require.NoError(t, db.QueryRow(`SELECT data FROM blobs WHERE id = 0`).Scan(&stored))
	assert.Equal(t, "00ff10", stored, "the column holds readable hex")

	var isNull bool
	require.NoError(t, db.QueryRow(`SELECT data IS NULL FROM blobs WHERE id = 1`).Scan(&isNull))
	assert.True(t, isNull)

	for i, want := range rows {
		var got struct {
			data   Bytes
			digest Bytes32
		}
		err := db.QueryRow(`SELECT data, digest FROM blobs WHERE id = ?`, i).Scan(&got.data, &got.digest)
		require.NoError(t, err)
		assert.Equal(t, len(want.data), len(got.data), "row %d", i)
		assert.Equal(t, want.data == nil, got.data == nil, "row %d", i)
		assert.Equal(t, want.digest, got.digest, "row %d", i)
	}

	_, err = db.Exec(`INSERT INTO blobs (id, data, digest) VALUES (9, 'nothex', 'ab')`)
	require.NoError(t, err)
	var bad Bytes32
	err = db.QueryRow(`SELECT digest FROM blobs WHERE id = 9`).Scan(&bad)
	assert.ErrorIs(t, err, ErrInvalidLength)
}
