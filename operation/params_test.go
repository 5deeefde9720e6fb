package operation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type sampleModel struct {
	Name string `json:"name"`
}

type sampleOptions struct {
	WID          string       `param:"wID"`
	RefreshToken string       `param:"refreshToken"`
	Limit        *int64       `param:"limit"`
	Force        *bool        `param:"force"`
	Tags         []string     `param:"tags"`
	Model        *sampleModel `param:"model"`
	Untagged     string
	hidden       string `param:"hidden"`
	Headers      map[string]string
}

func TestParamsOf(t *testing.T) {
	limit := int64(0)
	force := false
	opts := &sampleOptions{
		WID:      "w1",
		Limit:    &limit,
		Force:    &force,
		Tags:     []string{},
		Model:    &sampleModel{Name: "m"},
		Untagged: "ignored",
		hidden:   "ignored",
		Headers:  map[string]string{"X-A": "1"},
	}

	got := ParamsOf(opts)
	want := Params{
		"wID":      "w1",
		"limit":    int64(0),
		"force":    false,
		"tags":     []string{},
		"model":    sampleModel{Name: "m"},
		HeadersKey: map[string]string{"X-A": "1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParamsOf() mismatch (-want +got):\n%s", diff)
	}
	if got.Has("refreshToken") {
		t.Error("empty required string reported present")
	}
	if h := got.Headers(); h["X-A"] != "1" {
		t.Errorf("Headers() = %v", h)
	}
}

func TestParamsOf_Absent(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"nil pointer", (*sampleOptions)(nil)},
		{"zero struct", sampleOptions{}},
		{"not a struct", "wID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParamsOf(tt.in); len(got) != 0 {
				t.Errorf("ParamsOf() = %v, want empty", got)
			}
		})
	}
}
