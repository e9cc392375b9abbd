package entities

import "testing"

func TestParseComplaintStatus(t *testing.T) {
	cases := []struct {
		in   string
		want ComplaintStatus
		ok   bool
	}{
		{"Pending", ComplaintStatusPending, true},
		{"In Progress", ComplaintStatusInProgress, true},
		{"Completed", ComplaintStatusCompleted, true},
		{"  Completed  ", ComplaintStatusCompleted, true},
		{"completed", "", false},
		{"Archived", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseComplaintStatus(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseComplaintStatus(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestClassificationInvalid(t *testing.T) {
	if !(Classification{PredictedClass: "invalid"}).Invalid() {
		t.Fatal("lowercase invalid not detected")
	}
	if !(Classification{PredictedClass: " INVALID "}).Invalid() {
		t.Fatal("case-insensitive match failed")
	}
	if (Classification{PredictedClass: "High"}).Invalid() {
		t.Fatal("valid class flagged invalid")
	}
	if (Classification{}).Invalid() {
		t.Fatal("empty class flagged invalid")
	}
}
