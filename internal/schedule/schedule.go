package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// HymnsTitle is the schedule list title holding the hymns for an event.
// Matching is exact and case-sensitive.
const HymnsTitle = "Hinos"

// Response is the top-level body of the schedules endpoint
type Response struct {
	Data []Item `json:"data"`
}

// Item represents one scheduled event
type Item struct {
	StartDatetime   string   `json:"start_datetime"`
	ScheduleMembers []Member `json:"schedule_members"`
	ScheduleLists   []List   `json:"schedule_lists"`

	raw json.RawMessage
}

// Member is a person assigned to an event with a responsibility
type Member struct {
	Person         Person         `json:"person"`
	Responsibility Responsibility `json:"responsibility"`
}

// Person identifies a team member
type Person struct {
	FullName string `json:"full_name"`
}

// Responsibility is the role a member plays in an event
type Responsibility struct {
	Name string `json:"name"`
}

// List is a titled list attached to an event (e.g. the hymns)
type List struct {
	Title             string     `json:"title"`
	ScheduleListItems []ListItem `json:"schedule_list_items"`
}

// ListItem is a single entry of a List
type ListItem struct {
	Content string `json:"content"`
}

// itemFields has Item's fields without its JSON methods
type itemFields Item

// UnmarshalJSON decodes the modeled fields and keeps a copy of the raw object.
func (it *Item) UnmarshalJSON(data []byte) error {
	var fields itemFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*it = Item(fields)
	it.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the object the item was decoded from, with its string
// escapes (\u00c9, \u003c, ...) written as literal UTF-8. Items built in code
// are encoded from their modeled fields.
func (it Item) MarshalJSON() ([]byte, error) {
	if len(it.raw) > 0 {
		return literalStrings(it.raw)
	}
	return json.Marshal(itemFields(it))
}

// literalStrings rewrites every string literal of a JSON document with the
// minimal escaping, leaving keys, numbers and their order untouched.
func literalStrings(raw []byte) ([]byte, error) {
	if bytes.IndexByte(raw, '\\') < 0 {
		return raw, nil
	}

	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		if raw[i] != '"' {
			out = append(out, raw[i])
			i++
			continue
		}

		end := i + 1
		for end < len(raw) && raw[end] != '"' {
			if raw[end] == '\\' {
				end++
			}
			end++
		}
		if end >= len(raw) {
			return nil, fmt.Errorf("unterminated string at offset %d", i)
		}

		var s string
		if err := json.Unmarshal(raw[i:end+1], &s); err != nil {
			return nil, err
		}
		lit, err := encodeString(s)
		if err != nil {
			return nil, err
		}
		out = append(out, lit...)
		i = end + 1
	}
	return out, nil
}

// encodeString encodes s without HTML escaping
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Start parses StartDatetime into an instant.
func (it Item) Start() (time.Time, error) {
	return ParseStart(it.StartDatetime)
}

// Hymns returns the items of the first list titled HymnsTitle, or nil if the
// event has no such list.
func (it Item) Hymns() []ListItem {
	for _, list := range it.ScheduleLists {
		if list.Title == HymnsTitle {
			return list.ScheduleListItems
		}
	}
	return nil
}

// DecodeResponse parses a schedules response body.
// Returns a *DecodeError if the body is not valid JSON or does not have the
// expected shape.
func DecodeResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &resp, nil
}
