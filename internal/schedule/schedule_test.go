package schedule

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleBody = `{
  "data": [
    {
      "id": "a1",
      "start_datetime": "2099-01-01T10:00:00Z",
      "end_datetime": "2099-01-01T12:00:00Z",
      "schedule_members": [
        {"person": {"full_name": "Ana Silva ", "photo": null}, "responsibility": {"name": "Vocal"}}
      ],
      "schedule_lists": [
        {"title": "Avisos", "schedule_list_items": [{"content": "Ensaio às 18h"}]},
        {"title": "Hinos", "schedule_list_items": [{"content": "Grandioso És Tu"}, {"content": "Castelo Forte"}]},
        {"title": "Hinos", "schedule_list_items": [{"content": "Ignorado"}]}
      ]
    }
  ],
  "meta": {"page": 1}
}`

func TestDecodeResponse(t *testing.T) {
	resp, err := DecodeResponse([]byte(sampleBody))
	if err != nil {
		t.Fatalf("DecodeResponse() unexpected error: %v", err)
	}

	if len(resp.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(resp.Data))
	}

	item := resp.Data[0]
	if item.StartDatetime != "2099-01-01T10:00:00Z" {
		t.Errorf("StartDatetime = %q", item.StartDatetime)
	}
	if got := item.ScheduleMembers[0].Person.FullName; got != "Ana Silva " {
		t.Errorf("FullName = %q, want untrimmed %q", got, "Ana Silva ")
	}
	if got := item.ScheduleMembers[0].Responsibility.Name; got != "Vocal" {
		t.Errorf("Responsibility = %q, want %q", got, "Vocal")
	}
}

func TestDecodeResponse_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Not JSON", "<html>502 Bad Gateway</html>"},
		{"Truncated", `{"data": [`},
		{"Empty body", ""},
		{"Data is not a list", `{"data": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeResponse([]byte(tt.body))
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Errorf("DecodeResponse(%q) error = %v, want *DecodeError", tt.body, err)
			}
		})
	}
}

func TestDecodeResponse_MissingData(t *testing.T) {
	for _, body := range []string{`{}`, `{"data": null}`, `null`} {
		resp, err := DecodeResponse([]byte(body))
		if err != nil {
			t.Fatalf("DecodeResponse(%q) unexpected error: %v", body, err)
		}
		if len(resp.Data) != 0 {
			t.Errorf("DecodeResponse(%q) Data = %v, want empty", body, resp.Data)
		}
	}
}

func TestItem_MarshalJSONKeepsOriginalObject(t *testing.T) {
	resp, err := DecodeResponse([]byte(sampleBody))
	if err != nil {
		t.Fatalf("DecodeResponse() unexpected error: %v", err)
	}

	out, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var original struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal([]byte(sampleBody), &original); err != nil {
		t.Fatal(err)
	}
	var roundTrip []map[string]interface{}
	if err := json.Unmarshal(out, &roundTrip); err != nil {
		t.Fatalf("Unmarshal(output) error = %v", err)
	}

	if diff := cmp.Diff(original.Data, roundTrip); diff != "" {
		t.Errorf("re-encoded items differ (-want +got):\n%s", diff)
	}

	// key order of the source object survives
	if !strings.HasPrefix(string(out), `[{"id":"a1","start_datetime"`) {
		t.Errorf("Marshal() = %s, want original key order", out)
	}
}

func TestItem_MarshalJSONBuiltInCode(t *testing.T) {
	item := Item{StartDatetime: "2099-01-01T10:00:00Z"}

	out, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"start_datetime":"2099-01-01T10:00:00Z","schedule_members":null,"schedule_lists":null}`
	if string(out) != want {
		t.Errorf("Marshal() = %s, want %s", out, want)
	}
}

func TestLiteralStrings(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"No escapes untouched", `{"b": 1.50, "a": "x"}`, `{"b": 1.50, "a": "x"}`, false},
		{"Unicode escapes decoded", `{"t":"\u00c9s"}`, `{"t":"És"}`, false},
		{"HTML escapes decoded", `{"t":"\u003cb\u003e \u0026"}`, `{"t":"<b> &"}`, false},
		{"Quotes stay escaped", `{"t":"\"oi\"\u00e9"}`, `{"t":"\"oi\"é"}`, false},
		{"Escaped key", `{"\u00e9":"\n"}`, `{"é":"\n"}`, false},
		{"Unterminated string", `{"t":"\u00e9}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := literalStrings([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("literalStrings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("literalStrings(%s) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestItem_Hymns(t *testing.T) {
	tests := []struct {
		name  string
		lists []List
		want  []string
	}{
		{
			name: "First Hinos list wins",
			lists: []List{
				{Title: "Avisos", ScheduleListItems: []ListItem{{Content: "x"}}},
				{Title: "Hinos", ScheduleListItems: []ListItem{{Content: "A"}, {Content: "B"}}},
				{Title: "Hinos", ScheduleListItems: []ListItem{{Content: "C"}}},
			},
			want: []string{"A", "B"},
		},
		{
			name:  "Case-sensitive title",
			lists: []List{{Title: "hinos", ScheduleListItems: []ListItem{{Content: "A"}}}},
			want:  nil,
		},
		{
			name:  "Whitespace is not trimmed",
			lists: []List{{Title: "Hinos ", ScheduleListItems: []ListItem{{Content: "A"}}}},
			want:  nil,
		},
		{
			name:  "No lists",
			lists: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{ScheduleLists: tt.lists}
			var got []string
			for _, h := range item.Hymns() {
				got = append(got, h.Content)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hymns() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
