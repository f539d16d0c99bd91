package domain

import "testing"

func TestParticipantValue(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "default scheme stripped",
			id:   "iso6523-actorid-upis::0106:12345678",
			want: "0106:12345678",
		},
		{
			name: "other scheme kept",
			id:   "iso6523-actorid-arbis::0106:12345678",
			want: "iso6523-actorid-arbis::0106:12345678",
		},
		{
			name: "no scheme",
			id:   "0106:12345678",
			want: "0106:12345678",
		},
		{
			name: "empty",
			id:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParticipantValue(tt.id); got != tt.want {
				t.Errorf("ParticipantValue(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestSplitParticipant(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantScheme string
		wantValue  string
	}{
		{
			name:       "scheme and value",
			id:         "iso6523-actorid-upis::0192:991825827",
			wantScheme: "iso6523-actorid-upis",
			wantValue:  "0192:991825827",
		},
		{
			name:       "value only",
			id:         "0192:991825827",
			wantScheme: "",
			wantValue:  "0192:991825827",
		},
		{
			name:       "double separator splits once",
			id:         "a::b::c",
			wantScheme: "a",
			wantValue:  "b::c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme, value := SplitParticipant(tt.id)
			if scheme != tt.wantScheme || value != tt.wantValue {
				t.Errorf("SplitParticipant(%q) = (%q, %q), want (%q, %q)",
					tt.id, scheme, value, tt.wantScheme, tt.wantValue)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	// Неизвестные серверные статусы проходят без изменений.
	if got := Status("forwarded").String(); got != "forwarded" {
		t.Errorf("Status.String() = %q, want %q", got, "forwarded")
	}
	if got := StatusSent.String(); got != "sent" {
		t.Errorf("Status.String() = %q, want %q", got, "sent")
	}
}
