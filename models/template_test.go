package models

import (
	"encoding/json"
	"testing"
)

func TestParamMapOrderAndOverwrite(t *testing.T) {
	m := NewParamMap()
	m.Set("Name", "Foo")
	m.Set("anon_1", "bar")
	m.Set("Population", "100")
	m.Set("Name", "Bar") // overwrite keeps position

	wantKeys := []string{"Name", "anon_1", "Population"}
	gotKeys := m.Keys()
	if len(gotKeys) != len(wantKeys) {
		t.Fatalf("Keys() = %v, want %v", gotKeys, wantKeys)
	}
	for i, k := range wantKeys {
		if gotKeys[i] != k {
			t.Errorf("Keys()[%d] = %q, want %q", i, gotKeys[i], k)
		}
	}

	if v := m.Lookup("Name"); v != "Bar" {
		t.Errorf("Lookup(Name) = %q, want %q after overwrite", v, "Bar")
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestParamMapDelete(t *testing.T) {
	m := NewParamMap()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")
	m.Delete("b")
	m.Delete("missing") // no-op

	if _, ok := m.Get("b"); ok {
		t.Error("Get(b) found deleted key")
	}
	got := m.Keys()
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("Keys() after delete = %v, want [a c]", got)
	}
}

func TestParamMapJSONRoundTrip(t *testing.T) {
	m := NewParamMap()
	m.Set("z", "last letter")
	m.Set("a", "first letter")
	m.Set("anon_1", "")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"z":"last letter","a":"first letter","anon_1":""}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back ParamMap
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	got := back.Keys()
	if len(got) != 3 || got[0] != "z" || got[1] != "a" || got[2] != "anon_1" {
		t.Errorf("Keys() after round trip = %v, want [z a anon_1]", got)
	}
}

func TestCoordinatesParams(t *testing.T) {
	p := Coordinates{Lat: "45.5", Lon: "9.2"}.Params()
	if v := p.Lookup("lat"); v != "45.5" {
		t.Errorf("lat = %q, want 45.5", v)
	}
	if v := p.Lookup("lon"); v != "9.2" {
		t.Errorf("lon = %q, want 9.2", v)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}
