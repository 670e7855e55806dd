// ABOUTME: Tests for the modifier codec, offset rule, event classifier, envelope helper, and Codec holder.
// ABOUTME: Includes the offset-domain invariant and a concurrent Install/Encode race test.

package kbd

import (
	"sync"
	"testing"

	"github.com/mauromedda/kbdproto/pkg/key"
)

func TestWireModifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mods key.Modifiers
		want int
	}{
		{0, 1},
		{key.Shift, 2},
		{key.Alt, 3},
		{key.Control, 5},
		{key.Meta, 9},
		{key.Control | key.Shift, 6},
		{key.Shift | key.Alt | key.Control | key.Meta, 16},
	}
	for _, tt := range tests {
		if got := WireModifier(RawBits(tt.mods)); got != tt.want {
			t.Errorf("WireModifier(%v) = %d, want %d", tt.mods, got, tt.want)
		}
	}
}

func TestModifiersFromWire(t *testing.T) {
	t.Parallel()

	for bits := 0; bits <= maxModifierBits; bits++ {
		got, ok := ModifiersFromWire(WireModifier(bits))
		if !ok || int(got) != bits {
			t.Errorf("ModifiersFromWire(%d) = %v, %v", WireModifier(bits), got, ok)
		}
	}
	for _, w := range []int{0, -1, 17, 100} {
		if _, ok := ModifiersFromWire(w); ok {
			t.Errorf("ModifiersFromWire(%d) should fail", w)
		}
	}
}

func TestOffset_Priority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mods key.Modifiers
		want int
	}{
		{"none", 0, 100},
		{"meta only", key.Meta, 100},
		{"control", key.Control, 85},
		{"shift", key.Shift, 80},
		{"alt", key.Alt, 90},
		{"control+shift", key.Control | key.Shift, 85},
		{"control+alt", key.Control | key.Alt, 85},
		{"shift+alt", key.Shift | key.Alt, 80},
		{"all", key.Control | key.Shift | key.Alt | key.Meta, 85},
	}
	for _, tt := range tests {
		if got := Offset(100, RawBits(tt.mods)); got != tt.want {
			t.Errorf("%s: Offset(100) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestOffset_StaysInWireDomain(t *testing.T) {
	t.Parallel()

	for _, k := range key.TableKeys() {
		code, _ := key.Lookup(k)
		for bits := 0; bits <= maxModifierBits; bits++ {
			got := Offset(code, bits)
			if got < key.MinWireCode || got > key.MaxCode {
				t.Errorf("Offset(%v=%d, %d) = %d outside [%d,%d]",
					k, code, bits, got, key.MinWireCode, key.MaxCode)
			}
			if back := Unoffset(got, bits); back != code {
				t.Errorf("Unoffset(Offset(%d, %d)) = %d", code, bits, back)
			}
		}
	}
}

func TestEventType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind key.Kind
		want int
	}{
		{key.KindDown, 1},
		{key.KindRepeat, 2},
		{key.KindUp, 3},
	}
	for _, tt := range tests {
		if got := EventType(tt.kind); got != tt.want {
			t.Errorf("EventType(%v) = %d, want %d", tt.kind, got, tt.want)
		}
		if back, ok := KindFromEventType(tt.want); !ok || back != tt.kind {
			t.Errorf("KindFromEventType(%d) = %v, %v", tt.want, back, ok)
		}
	}
	if _, ok := KindFromEventType(4); ok {
		t.Error("KindFromEventType(4) should fail")
	}
}

func TestEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		intro  string
		final  byte
		fields []int
		want   string
	}{
		{"\x1b[", 'u', []int{13, 5}, "\x1b[13;5u"},
		{"\x1b[>", 'u', []int{1, 2, 30, 1}, "\x1b[>1;2;30;1u"},
		{"\x1b[>", 'c', nil, "\x1b[>c"},
		{"\x1b[", 'q', []int{2}, "\x1b[2q"},
	}
	for _, tt := range tests {
		if got := Envelope(tt.intro, tt.final, tt.fields...); got != tt.want {
			t.Errorf("Envelope(%q, %q, %v) = %q, want %q", tt.intro, tt.final, tt.fields, got, tt.want)
		}
	}
}

func TestConfig_Derived(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cfg      Config
		csi      int
		extended bool
	}{
		{Config{}, 0, false},
		{Config{DeferOnComplexInput: true, MarkReleases: true}, 0, false},
		{Config{ReportEventTypes: true}, 1, true},
		{Config{ReportAlternateKeys: true}, 2, true},
		{Config{ReportAllKeysAsEscape: true, DeferOnComplexInput: true}, 4, true},
		{Config{ReportEventTypes: true, ReportAlternateKeys: true, ReportAllKeysAsEscape: true}, 7, true},
	}
	for _, tt := range tests {
		if got := tt.cfg.CSIValue(); got != tt.csi {
			t.Errorf("%v CSIValue = %d, want %d", tt.cfg, got, tt.csi)
		}
		if got := tt.cfg.Extended(); got != tt.extended {
			t.Errorf("%v Extended = %v, want %v", tt.cfg, got, tt.extended)
		}
		if back := ConfigFromFlags(tt.csi).WithLocalPolicy(tt.cfg); back != tt.cfg {
			t.Errorf("ConfigFromFlags(%d) = %+v, want %+v", tt.csi, back, tt.cfg)
		}
	}
}

func TestConfig_String(t *testing.T) {
	t.Parallel()

	if got := (Config{}).String(); got != "legacy" {
		t.Errorf("String = %q, want legacy", got)
	}
	got := Config{ReportEventTypes: true, ReportAllKeysAsEscape: true, DeferOnComplexInput: true}.String()
	if got != "event-types+all-keys defer" {
		t.Errorf("String = %q", got)
	}
}

func TestCodec_ZeroValueIsLegacy(t *testing.T) {
	t.Parallel()

	var c Codec
	if c.Config() != (Config{}) {
		t.Errorf("zero Codec config = %+v", c.Config())
	}
	if got := c.Encode(ev(key.KeyEnter, key.Control, key.KindDown)); got != "\x1b[13;5u" {
		t.Errorf("zero Codec Encode = %q", got)
	}
}

func TestCodec_InstallReplacesWholeValue(t *testing.T) {
	t.Parallel()

	c := NewCodec(Config{DeferOnComplexInput: true})
	c.Install(Config{ReportEventTypes: true})

	if got := c.Config(); got != (Config{ReportEventTypes: true}) {
		t.Errorf("Config = %+v", got)
	}
}

func TestCodec_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	c := NewCodec(Config{})
	enc := c.Encoder()
	c.Install(Config{ReportEventTypes: true})

	if enc.Config() != (Config{}) {
		t.Error("Encoder snapshot changed after Install")
	}
}

func TestCodec_ConcurrentInstallAndEncode(t *testing.T) {
	t.Parallel()

	legacyCfg := Config{}
	extendedCfg := Config{ReportEventTypes: true, ReportAllKeysAsEscape: true}
	e := ev(key.KeyUp, key.Shift, key.KindRepeat)
	allowed := map[string]bool{
		NewEncoder(legacyCfg).Encode(e):   true,
		NewEncoder(extendedCfg).Encode(e): true,
	}

	c := NewCodec(legacyCfg)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				c.Install(extendedCfg)
			} else {
				c.Install(legacyCfg)
			}
		}
	}()

	errs := make(chan string, 4)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if got := c.Encode(e); !allowed[got] {
					errs <- got
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("observed torn output %q", got)
	}
}

func TestCodec_Update(t *testing.T) {
	t.Parallel()

	c := NewCodec(Config{MarkReleases: true})
	got := c.Update(func(cur Config) Config {
		cur.ReportAlternateKeys = true
		return cur
	})
	want := Config{MarkReleases: true, ReportAlternateKeys: true}
	if got != want || c.Config() != want {
		t.Errorf("Update = %+v, installed %+v, want %+v", got, c.Config(), want)
	}
}
