//go:build !tinygo

// Command fxsnap renders one scene offline and writes it as a PNG, optionally
// uploading the result to an S3-compatible bucket.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
	"github.com/nfnt/resize"

	"fxray/rt/fixed"
	"fxray/rt/frame"
	"fxray/rt/scenes"
	"fxray/rt/trace"
)

type snapConfig struct {
	Scene   string
	Width   int
	Height  int
	Scale   int
	Workers int
	Options trace.Options
	Out     string
	Key     string
	Timeout time.Duration
}

// bucketConfig is read from the environment (or an .env file).
type bucketConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

func bucketFromEnv() bucketConfig {
	return bucketConfig{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	cfg := snapConfig{Options: trace.DefaultOptions()}
	var (
		fov     float64
		envFile string
	)
	flag.StringVar(&cfg.Scene, "scene", "cornell", "Scene: "+strings.Join(scenes.Names(), ", ")+".")
	flag.IntVar(&cfg.Width, "width", 320, "Render width.")
	flag.IntVar(&cfg.Height, "height", 180, "Render height.")
	flag.IntVar(&cfg.Scale, "scale", 1, "Nearest-neighbor upscale factor for the PNG.")
	flag.IntVar(&cfg.Workers, "workers", 4, "Render goroutines (1 = serial).")
	flag.IntVar(&cfg.Options.MaxBounce, "bounces", cfg.Options.MaxBounce, "Maximum bounces per primary ray.")
	flag.Float64Var(&fov, "fov", cfg.Options.FOVDeg.Float64(), "Vertical field of view in degrees.")
	flag.BoolVar(&cfg.Options.FaceNormals, "faces", false, "Shade slabs with the normal of the struck face.")
	flag.StringVar(&cfg.Out, "o", "fxray.png", "Output PNG path (\"-\" for stdout, empty to skip).")
	flag.StringVar(&cfg.Key, "s3-key", "", "Upload the PNG under this object key (S3_* environment).")
	flag.StringVar(&envFile, "env", "", "Load environment variables from this file first.")
	flag.DurationVar(&cfg.Timeout, "timeout", 2*time.Minute, "Overall deadline.")
	flag.Parse()
	cfg.Options.FOVDeg = fixed.FromFloat(fov)

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "fxsnap: load %s: %v\n", envFile, err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg, bucketFromEnv(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fxsnap: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg snapConfig, bc bucketConfig, stdout, stderr io.Writer) error {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	data, st, err := renderPNG(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "%s: %s\n", cfg.Scene, st)

	switch cfg.Out {
	case "":
	case "-":
		if _, err := stdout.Write(data); err != nil {
			return err
		}
	default:
		if err := os.WriteFile(cfg.Out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Out, err)
		}
		fmt.Fprintf(stderr, "wrote %s (%d bytes)\n", cfg.Out, len(data))
	}

	if cfg.Key == "" {
		return nil
	}
	client, err := newS3Client(bc)
	if err != nil {
		return err
	}
	if err := upload(ctx, client, bc.Bucket, cfg.Key, data); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "uploaded %s to %s (%d bytes)\n", cfg.Key, bc.Bucket, len(data))
	return nil
}

// renderPNG traces the configured scene and encodes it, upscaled by
// cfg.Scale when that is above one.
func renderPNG(ctx context.Context, cfg snapConfig) ([]byte, frame.Stats, error) {
	scene, ok := scenes.ByName(cfg.Scene)
	if !ok {
		return nil, frame.Stats{}, fmt.Errorf("unknown scene %q (have %s)", cfg.Scene, strings.Join(scenes.Names(), ", "))
	}
	tr, err := trace.NewTracer(scene, cfg.Options, cfg.Width, cfg.Height)
	if err != nil {
		return nil, frame.Stats{}, err
	}

	target := frame.NewImageTarget(cfg.Width, cfg.Height)
	st, err := (&frame.Renderer{Tracer: tr, Workers: cfg.Workers}).Render(ctx, target)
	if err != nil {
		return nil, st, err
	}

	var img image.Image = target.Img
	if cfg.Scale > 1 {
		img = resize.Resize(uint(cfg.Width*cfg.Scale), uint(cfg.Height*cfg.Scale), target.Img, resize.NearestNeighbor)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, st, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), st, nil
}

func newS3Client(bc bucketConfig) (*s3.S3, error) {
	if bc.Bucket == "" {
		return nil, errors.New("S3_BUCKET is not set")
	}
	if bc.AccessKey == "" || bc.SecretKey == "" {
		return nil, errors.New("S3_ACCESS_KEY and S3_SECRET_KEY must be set")
	}
	conf := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(bc.AccessKey, bc.SecretKey, ""),
		Region:           aws.String(bc.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if bc.Endpoint != "" {
		conf.Endpoint = aws.String(bc.Endpoint)
	}
	sess, err := session.NewSession(conf)
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}
	return s3.New(sess), nil
}

func upload(ctx context.Context, client *s3.S3, bucket, key string, data []byte) error {
	_, err := client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}
