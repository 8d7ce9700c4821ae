package client

import "testing"

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name        string
		override    string
		origin      string
		backendPort string
		want        string
	}{
		{
			name:     "override wins",
			override: "https://api.example.com/api/",
			origin:   "http://localhost:3000",
			want:     "https://api.example.com/api",
		},
		{
			name:        "derived from localhost origin",
			origin:      "http://localhost:3000",
			backendPort: "5000",
			want:        "http://localhost:5000/api",
		},
		{
			name:        "derived from deployed origin",
			origin:      "https://dash.example.com",
			backendPort: "8443",
			want:        "https://dash.example.com:8443/api",
		},
		{
			name: "no origin falls back",
			want: fallbackBaseURL,
		},
		{
			name:        "unparseable origin falls back",
			origin:      "not a url",
			backendPort: "5000",
			want:        fallbackBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBaseURL(tt.override, tt.origin, tt.backendPort)
			if got != tt.want {
				t.Fatalf("ResolveBaseURL(%q, %q, %q) = %q, want %q",
					tt.override, tt.origin, tt.backendPort, got, tt.want)
			}
		})
	}
}
