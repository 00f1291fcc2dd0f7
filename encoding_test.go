package mouuid

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

func TestID_MarshalUnmarshalText(t *testing.T) {
	id := MustParse[entityKind](sample)

	text, err := id.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != sample {
		t.Errorf("MarshalText() = %s, want %s", text, sample)
	}

	var id2 EntityId
	if err := id2.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if id != id2 {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", id2, id)
	}

	if err := id2.UnmarshalText([]byte("not-a-uuid")); err == nil {
		t.Error("UnmarshalText() expected error for invalid input")
	}
}

func TestID_MarshalUnmarshalBinary(t *testing.T) {
	id := MustParse[entityKind](sample)

	data, err := id.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	raw, _ := id.UUID.MarshalBinary()
	if !bytes.Equal(data, raw) {
		t.Errorf("MarshalBinary() = %x, want %x", data, raw)
	}

	var id2 EntityId
	if err := id2.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if id != id2 {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", id2, id)
	}

	for _, short := range [][]byte{nil, data[:8], append(data, 0)} {
		var bare uuid.UUID
		wantErr := bare.UnmarshalBinary(short)
		err := id2.UnmarshalBinary(short)
		if err == nil || wantErr == nil || err.Error() != wantErr.Error() {
			t.Errorf("UnmarshalBinary(%d bytes) error = %v, want %v", len(short), err, wantErr)
		}
		if id2 != id {
			t.Errorf("UnmarshalBinary(%d bytes) modified the ID: %v", len(short), id2)
		}
	}
}

func TestID_JSON(t *testing.T) {
	id := MustParse[entityKind](sample)

	type wrapped struct {
		ID EntityId `json:"id"`
	}
	type bare struct {
		ID uuid.UUID `json:"id"`
	}

	got, err := json.Marshal(wrapped{ID: id})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want, err := json.Marshal(bare{ID: id.UUID})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	// A document written with a bare UUID decodes into the wrapper.
	var decoded wrapped
	if err := json.Unmarshal(want, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded.ID != id {
		t.Errorf("json.Unmarshal() = %v, want %v", decoded.ID, id)
	}
}

func TestID_YAML(t *testing.T) {
	id := MustParse[assetKind](sample)

	type wrapped struct {
		ID AssetId `yaml:"id"`
	}
	type bare struct {
		ID uuid.UUID `yaml:"id"`
	}

	got, err := yaml.Marshal(wrapped{ID: id})
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	want, err := yaml.Marshal(bare{ID: id.UUID})
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("yaml.Marshal() = %s, want %s", got, want)
	}

	var decoded wrapped
	if err := yaml.Unmarshal(want, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if decoded.ID != id {
		t.Errorf("yaml.Unmarshal() = %v, want %v", decoded.ID, id)
	}
}

func TestID_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    string
		wantErr bool
	}{
		{
			name:  "string input",
			input: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			want:  "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		},
		{
			name:  "byte slice input - 16 bytes",
			input: []byte{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79},
			want:  "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		},
		{
			name:  "byte slice input - string format",
			input: []byte("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
			want:  "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		},
		{
			name:  "nil input",
			input: nil,
			want:  "00000000-0000-0000-0000-000000000000",
		},
		{
			name:    "invalid type",
			input:   123,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id EntityId
			err := id.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && id.UUID.String() != tt.want {
				t.Errorf("Scan() = %v, want %s", id.UUID, tt.want)
			}
		})
	}
}

func TestID_Value(t *testing.T) {
	id := MustParse[entityKind](sample)
	val, err := id.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	str, ok := val.(string)
	if !ok {
		t.Fatalf("Value() returned non-string type: %T", val)
	}
	if str != sample {
		t.Errorf("Value() = %v, want %v", str, sample)
	}
}

func TestID_EncodeToHex(t *testing.T) {
	id := MustParse[entityKind]("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	expected := "f47ac10b58cc4372a5670e02b2c3d479"

	if got := id.EncodeToHex(); got != expected {
		t.Errorf("EncodeToHex() = %v, want %v", got, expected)
	}

	decoded, err := DecodeFromHex[entityKind](expected)
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}
	if decoded != id {
		t.Errorf("DecodeFromHex() = %v, want %v", decoded, id)
	}
}

func TestDecodeFromHex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "f47ac10b58cc4372"},
		{"too long", "f47ac10b58cc4372a5670e02b2c3d479ff"},
		{"invalid hex", "g47ac10b58cc4372a5670e02b2c3d479"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFromHex[entityKind](tt.input)
			if err != ErrInvalidFormat {
				t.Errorf("DecodeFromHex() error = %v, want %v", err, ErrInvalidFormat)
			}
		})
	}
}

func TestID_EncodeDecodeBase64(t *testing.T) {
	id := New[assetKind]()

	b64 := id.EncodeToBase64()
	if len(b64) != 22 {
		t.Errorf("EncodeToBase64() length = %d, want 22", len(b64))
	}

	decoded, err := DecodeFromBase64[assetKind](b64)
	if err != nil {
		t.Fatalf("DecodeFromBase64() error = %v", err)
	}
	if decoded != id {
		t.Errorf("DecodeFromBase64() = %v, want %v", decoded, id)
	}
}

func TestDecodeFromBase64_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"invalid base64", "!!!invalid!!!", ErrInvalidFormat},
		{"wrong length", "YWJj", ErrInvalidLength}, // "abc" in base64, only 3 bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFromBase64[assetKind](tt.input)
			if err != tt.want {
				t.Errorf("DecodeFromBase64() error = %v, want %v", err, tt.want)
			}
		})
	}
}
