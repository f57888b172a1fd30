package actions

import (
	"strings"
	"testing"

	s3client "github.com/richimp95/Project-Sparkify-AWS/aws/s3"
	"github.com/sirupsen/logrus"
)

// fakeS3 implements s3.BasicClient for the pre-flight check.
type fakeS3 struct {
	keysByBucket map[string][]string
	objects      map[string][]byte
}

type fakeS3Bucket struct {
	parent *fakeS3
	bucket string
	prefix string
}

func (f *fakeS3Bucket) List(key string) ([]string, error) {
	return f.parent.keysByBucket[f.bucket+"/"+f.prefix], nil
}

func (f *fakeS3Bucket) Get(key string) ([]byte, error) {
	if b, ok := f.parent.objects[f.bucket+"/"+key]; ok {
		return b, nil
	}
	return nil, s3client.ErrKeyNotFound
}

func TestCheckS3Locations(t *testing.T) {
	fake := &fakeS3{
		keysByBucket: map[string][]string{
			"udacity-dend/log_data":  {"log_data/2018/11/events.json"},
			"udacity-dend/song_data": {"song_data/A/A/A/song.json"},
		},
		objects: map[string][]byte{
			"udacity-dend/log_json_path.json": []byte("{}"),
		},
	}
	orig := newS3Client
	newS3Client = func(bucket, region, prefix string) s3client.BasicClient {
		return &fakeS3Bucket{parent: fake, bucket: bucket, prefix: prefix}
	}
	defer func() { newS3Client = orig }()

	cfg := validFakeSettings().copyCfg
	if err := checkS3Locations(logrus.New(), cfg); err != nil {
		t.Fatal("unexpected error: ", err)
	}

	// An empty prefix fails fast.
	delete(fake.keysByBucket, "udacity-dend/song_data")
	err := checkS3Locations(logrus.New(), cfg)
	if err == nil || !strings.Contains(err.Error(), "song-catalog") {
		t.Fatal("expected an error naming the empty song-catalog location; got ", err)
	}
	fake.keysByBucket["udacity-dend/song_data"] = []string{"song_data/A/A/A/song.json"}

	// A missing jsonpaths object fails fast.
	delete(fake.objects, "udacity-dend/log_json_path.json")
	err = checkS3Locations(logrus.New(), cfg)
	if err == nil || !strings.Contains(err.Error(), "jsonpaths") {
		t.Fatal("expected an error naming the missing jsonpaths object; got ", err)
	}
}

func TestRunLoadRejectsConflictingFlags(t *testing.T) {
	cfg := &LoadConfig{
		Settings:      validFakeSettings(),
		StageOnly:     true,
		TransformOnly: true,
		LogLevel:      "error",
	}
	if err := RunLoad(cfg); err == nil {
		t.Fatal("expected an error for stage-only combined with transform-only")
	}
}

func TestRunLoadExportsPlanWithoutConnecting(t *testing.T) {
	// Export mode must return before any S3 or warehouse access happens; the
	// fake settings point at hosts that don't exist so reaching them would fail.
	cfg := &LoadConfig{
		Settings:         validFakeSettings(),
		ExportConfigType: "yaml",
		LogLevel:         "info",
	}
	if err := RunLoad(cfg); err != nil {
		t.Fatal("unexpected error: ", err)
	}
	// An unknown format is rejected.
	cfg.ExportConfigType = "toml"
	if err := RunLoad(cfg); err == nil {
		t.Fatal("expected an error for an unsupported export format")
	}
}
