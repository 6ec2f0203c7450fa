package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/nfnt/resize"
	"github.com/yaarastore/backend/app/helpers"
)

// Product images are normalized to a 500x500 JPEG before upload.
const (
	uploadSize    = 500
	uploadQuality = 80
)

type StorageConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
}

// UploaderService resizes uploaded images and stores them in an
// S3-compatible bucket, returning the public URL of the blob.
type UploaderService struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewUploaderService(cfg StorageConfig) (*UploaderService, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &UploaderService{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Upload validates, resizes and stores one image. Existing blobs with the
// same name are overwritten.
func (u *UploaderService) Upload(ctx context.Context, filename, contentType string, file io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", helpers.NewHTTPError(http.StatusBadRequest, "Only image files are allowed")
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return "", helpers.NewHTTPError(http.StatusBadRequest, "Failed to decode image")
	}

	resized := coverTop(img, uploadSize)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: uploadQuality}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	key := "products/" + filepath.Base(filename)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return u.publicURL + "/" + key, nil
}

// coverTop scales the image so the square fully covers it, then crops to
// the square anchored at the top edge.
func coverTop(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var scaled image.Image
	if w < h {
		scaled = resize.Resize(uint(size), 0, img, resize.Lanczos3)
	} else {
		scaled = resize.Resize(0, uint(size), img, resize.Lanczos3)
	}

	sb := scaled.Bounds()
	x0 := sb.Min.X + (sb.Dx()-size)/2
	crop := image.Rect(x0, sb.Min.Y, x0+size, sb.Min.Y+size)

	cropped := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cropped.Set(x, y, scaled.At(crop.Min.X+x, crop.Min.Y+y))
		}
	}
	return cropped
}
