package memory

import (
	"reflect"
	"testing"
)

func TestExtractEntities_NameAndPhone(t *testing.T) {
	e := ExtractEntities("Hi Gail, please call me back on 07123456789", "")

	if e.Name != "Gail" {
		t.Errorf("expected name Gail, got %q", e.Name)
	}
	if e.Phone != "07123456789" {
		t.Errorf("expected phone 07123456789, got %q", e.Phone)
	}
}

func TestExtractEntities_AttributionName(t *testing.T) {
	e := ExtractEntities("Message from Gail Ward about her gutters", "")
	if e.Name != "Gail Ward" {
		t.Errorf("expected name Gail Ward, got %q", e.Name)
	}
}

func TestExtractEntities_FirstPatternWins(t *testing.T) {
	e := ExtractEntities("Hi Dan, this is from Gail Ward", "")
	if e.Name != "Dan" {
		t.Errorf("expected greeting pattern to win, got %q", e.Name)
	}
}

func TestExtractEntities_Areas(t *testing.T) {
	e := ExtractEntities("I live in Weston-super-Mare, postcode BS23", "near Bristol")

	want := []string{"Bristol", "Weston-super-Mare", "BS23"}
	if !reflect.DeepEqual(e.Areas, want) {
		t.Errorf("expected areas %v in gazetteer order, got %v", want, e.Areas)
	}
}

func TestExtractEntities_NothingFound(t *testing.T) {
	e := ExtractEntities("no personal details here", "")

	if e.Name != "" || e.Phone != "" || len(e.Areas) != 0 {
		t.Errorf("expected empty entities, got %+v", e)
	}
}

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "review message",
			content: "I have left you a 5 star review",
			want:    []string{"review"},
		},
		{
			name:    "pricing and windows",
			content: "how much does a window clean cost?",
			want:    []string{"pricing", "window"},
		},
		{
			name:    "sms history with payment link",
			content: "SMSReply with delivery details, payment via sqgee.com",
			want:    []string{"sms_history", "payment"},
		},
		{
			name:    "discount offer",
			content: "we can offer £3 off as a loyalty discount",
			want:    []string{"discount"},
		},
		{
			name:    "nothing matches",
			content: "zzz",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTags(tt.content, "")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTags(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
