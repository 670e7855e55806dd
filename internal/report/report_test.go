// ABOUTME: Tests encode and probe reports and their easyjson encoding
// ABOUTME: Checks exact JSON output, omitempty fields, and decoding back

package report

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/mailru/easyjson"
	"github.com/mauromedda/kbdproto/internal/probe"
	"github.com/mauromedda/kbdproto/pkg/kbd"
	"github.com/mauromedda/kbdproto/pkg/key"
)

func TestNewEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   key.Event
		seq  string
		want Entry
	}{
		{
			name: "encoded",
			ev:   key.Event{Key: key.New(key.KeyEnter), Mods: key.Control},
			seq:  "\x1b[13;5u",
			want: Entry{Input: "in", Key: "enter", Modifiers: "ctrl", Kind: "down", Sequence: "\x1b[13;5u"},
		},
		{
			name: "deferred",
			ev:   key.Event{Key: key.New(key.KeySpace), Mods: key.Control},
			want: Entry{Input: "in", Key: "space", Modifiers: "ctrl", Kind: "down", Deferred: true},
		},
		{
			name: "unmapped",
			ev:   key.Event{Key: key.FromRune('é'), Kind: key.KindUp},
			want: Entry{Input: "in", Key: "é", Kind: "up", Unmapped: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NewEntry("in", tt.ev, tt.seq); got != tt.want {
				t.Errorf("NewEntry = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReport_MarshalJSON(t *testing.T) {
	t.Parallel()

	r := New(kbd.Config{})
	r.Add(kbd.NewEncoder(kbd.Config{}), "shift+tab", key.Event{Key: key.New(key.KeyTab), Mods: key.Shift})

	data, err := Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"config":"legacy","flags":0,"entries":[{"input":"shift+tab","key":"tab","modifiers":"shift","kind":"down","sequence":"\u001b[9;2u"}]}`
	if string(data) != want {
		t.Errorf("Marshal =\n%s\nwant\n%s", data, want)
	}
}

func TestReport_EmptyEntriesIsArray(t *testing.T) {
	t.Parallel()

	data, err := Marshal(New(kbd.ConfigFromFlags(1)))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"config":"event-types","flags":1,"entries":[]}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestReport_Unmarshal(t *testing.T) {
	t.Parallel()

	r := New(kbd.Config{ReportEventTypes: true, DeferOnComplexInput: true})
	enc := kbd.NewEncoder(kbd.Config{ReportEventTypes: true, DeferOnComplexInput: true})
	r.Add(enc, "up:repeat", key.Event{Key: key.New(key.KeyUp), Kind: key.KindRepeat})
	r.Add(enc, "ctrl+space", key.Event{Key: key.New(key.KeySpace), Mods: key.Control})

	data, err := Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Report
	if err := Unmarshal(append([]byte(`{"extra":{"nested":[1,2]},`), data[1:]...), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Config != r.Config || got.Flags != 1 || len(got.Entries) != 2 {
		t.Fatalf("got %+v", got)
	}
	if got.Entries[0] != r.Entries[0] || got.Entries[1] != r.Entries[1] {
		t.Errorf("entries = %+v, want %+v", got.Entries, r.Entries)
	}
	if !got.Entries[1].Deferred {
		t.Error("deferred flag lost")
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	t.Parallel()

	var r Report
	if err := Unmarshal([]byte(`{"flags":"many"}`), &r); err == nil {
		t.Error("expected error for string flags")
	}
}

func TestProbe_FromResult(t *testing.T) {
	t.Parallel()

	res := probe.Result{
		Config:    kbd.ConfigFromFlags(5),
		State:     kbd.Extended,
		Replies:   []string{"\x1b[>5u"},
		Answered:  true,
		Supported: true,
	}

	var buf bytes.Buffer
	if err := Write(&buf, FromProbe(res)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{"state":"extended","config":"event-types+all-keys","flags":5,"supported":true,"replies":["\u001b[>5u"]}` + "\n"
	if buf.String() != want {
		t.Errorf("Write =\n%s\nwant\n%s", buf.String(), want)
	}

	var back Probe
	if err := Unmarshal(bytes.TrimSpace(buf.Bytes()), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.State != "extended" || back.Flags != 5 || len(back.Replies) != 1 || back.Replies[0] != "\x1b[>5u" {
		t.Errorf("decoded %+v", back)
	}
}

func TestProbe_NoRepliesIsEmptyArray(t *testing.T) {
	t.Parallel()

	data, err := Marshal(FromProbe(probe.Result{}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"state":"legacy","config":"legacy","flags":0,"supported":false,"replies":[]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestMarshal_KeepsAngleBracketsLiteral(t *testing.T) {
	t.Parallel()

	res := probe.Result{Replies: []string{"\x1b[>1u", "\x1b[<u"}}
	data, err := Marshal(FromProbe(res))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if bytes.Contains(data, []byte(`\u003e`)) || bytes.Contains(data, []byte(`\u003c`)) {
		t.Errorf("angle brackets escaped: %s", data)
	}
	if !bytes.Contains(data, []byte(`"\u001b[>1u","\u001b[<u"`)) {
		t.Errorf("Marshal = %s", data)
	}
}

func TestMarshalers_FollowStructTags(t *testing.T) {
	t.Parallel()

	entry := Entry{
		Input: "a", Key: "a", Modifiers: "ctrl", Kind: "down",
		Sequence: "\x1b[97;5u", Deferred: true, Unmapped: true,
	}
	tests := []struct {
		name string
		v    easyjson.Marshaler
	}{
		{"entry", entry},
		{"report", Report{Config: "extended", Flags: 1, Entries: []Entry{entry}}},
		{"probe", Probe{State: "supported", Config: "extended", Flags: 1, Supported: true, Replies: []string{"x"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := Marshal(tc.v)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}

			typ := reflect.TypeOf(tc.v)
			last := -1
			for i := range typ.NumField() {
				name, _, _ := strings.Cut(typ.Field(i).Tag.Get("json"), ",")
				at := bytes.Index(out, []byte(`"`+name+`":`))
				if at < 0 {
					t.Fatalf("field %s: key %q missing from %s", typ.Field(i).Name, name, out)
				}
				if at < last {
					t.Errorf("key %q out of struct order in %s", name, out)
				}
				last = at
			}
		})
	}
}
