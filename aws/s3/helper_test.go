package s3

import "testing"

func TestParseDSN(t *testing.T) {
	tests := []struct {
		dsn        string
		region     string
		wantName   string
		wantPrefix string
		wantErr    bool
	}{
		{"s3://udacity-dend/log_data", "us-west-2", "udacity-dend", "log_data", false},
		{"s3://udacity-dend/song_data/", "us-west-2", "udacity-dend", "song_data", false},
		{"s3://udacity-dend", "us-west-2", "udacity-dend", "", false},
		{"s3://udacity-dend/log_data", "", "", "", true},   // missing region.
		{"http://udacity-dend/log_data", "us-west-2", "", "", true}, // wrong scheme.
		{"s3:///log_data", "us-west-2", "", "", true},      // missing bucket.
	}
	for _, tt := range tests {
		got, err := ParseDSN(tt.dsn, tt.region)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%v: expected an error", tt.dsn)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.dsn, err)
		}
		if got.Name != tt.wantName || got.Prefix != tt.wantPrefix || got.Region != tt.region {
			t.Fatalf("%v: unexpected result: %+v", tt.dsn, got)
		}
	}
}
