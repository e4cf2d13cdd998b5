//go:build !tinygo

package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fxray/rt/trace"
)

func testSnap() snapConfig {
	return snapConfig{Scene: "cornell", Width: 32, Height: 18, Scale: 1, Workers: 2, Options: trace.DefaultOptions()}
}

func TestRenderPNGScales(t *testing.T) {
	for _, scale := range []int{1, 3} {
		cfg := testSnap()
		cfg.Scale = scale
		data, st, err := renderPNG(context.Background(), cfg)
		if err != nil {
			t.Fatalf("scale %d: %v", scale, err)
		}
		if st.Pixels != 32*18 {
			t.Fatalf("scale %d: traced %d pixels", scale, st.Pixels)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 32*scale || b.Dy() != 18*scale {
			t.Fatalf("scale %d: image is %v", scale, b)
		}
	}
}

func TestRenderPNGUnknownScene(t *testing.T) {
	cfg := testSnap()
	cfg.Scene = "teapot"
	if _, _, err := renderPNG(context.Background(), cfg); err == nil || !strings.Contains(err.Error(), "unknown scene") {
		t.Fatalf("err = %v", err)
	}
}

func TestRunWritesFile(t *testing.T) {
	cfg := testSnap()
	cfg.Out = filepath.Join(t.TempDir(), "out.png")
	var stderr bytes.Buffer
	if err := run(context.Background(), cfg, bucketConfig{}, &bytes.Buffer{}, &stderr); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(cfg.Out)
	if err != nil || len(data) == 0 {
		t.Fatalf("read output: %v (%d bytes)", err, len(data))
	}
	if !strings.Contains(stderr.String(), "cornell: 576 px") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunStdout(t *testing.T) {
	cfg := testSnap()
	cfg.Out = "-"
	var stdout bytes.Buffer
	if err := run(context.Background(), cfg, bucketConfig{}, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&stdout); err != nil {
		t.Fatalf("stdout is not a PNG: %v", err)
	}
}

func TestUploadNeedsBucketConfig(t *testing.T) {
	tests := []struct {
		name string
		bc   bucketConfig
		want string
	}{
		{"no bucket", bucketConfig{AccessKey: "a", SecretKey: "b"}, "S3_BUCKET"},
		{"no keys", bucketConfig{Bucket: "renders"}, "S3_ACCESS_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testSnap()
			cfg.Key = "cornell.png"
			err := run(context.Background(), cfg, tt.bc, &bytes.Buffer{}, &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestNewS3Client(t *testing.T) {
	c, err := newS3Client(bucketConfig{AccessKey: "a", SecretKey: "b", Bucket: "renders", Region: "us-east-1", Endpoint: "http://127.0.0.1:9000"})
	if err != nil || c == nil {
		t.Fatalf("newS3Client = %v, %v", c, err)
	}
	if got := c.Endpoint; got != "http://127.0.0.1:9000" {
		t.Fatalf("endpoint = %q", got)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FXSNAP_TEST_REGION", "eu-west-1")
	if got := getEnv("FXSNAP_TEST_REGION", "x"); got != "eu-west-1" {
		t.Fatalf("getEnv = %q", got)
	}
	if got := getEnv("FXSNAP_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("getEnv = %q", got)
	}
}
