package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/shashiranjanraj/laziz/config"
)

// s3Disk stores files in an S3-compatible bucket. Works with AWS S3 and
// any endpoint that speaks the S3 API (MinIO, R2, Spaces) via S3_ENDPOINT.
type s3Disk struct {
	client *s3.Client
	bucket string
	url    string
}

func newS3Disk() (*s3Disk, error) {
	bucket := config.StorageS3Bucket()
	if bucket == "" {
		return nil, errors.New("S3_BUCKET is not set")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.StorageS3Region()),
	}
	if key := config.StorageS3Key(); key != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, config.StorageS3Secret(), ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := config.StorageS3Endpoint(); endpoint != "" {
			o.BaseEndpoint = &endpoint
			o.UsePathStyle = true
		}
	})

	url := config.StorageS3URL()
	if url == "" {
		url = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, config.StorageS3Region())
	}

	return &s3Disk{client: client, bucket: bucket, url: strings.TrimRight(url, "/")}, nil
}

func (d *s3Disk) key(path string) string { return strings.TrimLeft(path, "/") }

func (d *s3Disk) Put(path string, content []byte) error {
	return d.PutStream(path, bytes.NewReader(content))
}

func (d *s3Disk) PutStream(path string, r io.Reader) error {
	key := d.key(path)
	_, err := d.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: &d.bucket,
		Key:    &key,
		Body:   r,
	})
	return err
}

func (d *s3Disk) Get(path string) ([]byte, error) {
	rc, err := d.GetStream(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (d *s3Disk) GetStream(path string) (io.ReadCloser, error) {
	key := d.key(path)
	out, err := d.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: &d.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

func (d *s3Disk) head(path string) (*s3.HeadObjectOutput, error) {
	key := d.key(path)
	return d.client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: &d.bucket,
		Key:    &key,
	})
}

func (d *s3Disk) Exists(path string) bool {
	_, err := d.head(path)
	return err == nil
}

func (d *s3Disk) Missing(path string) bool { return !d.Exists(path) }

func (d *s3Disk) Size(path string) (int64, error) {
	out, err := d.head(path)
	if err != nil {
		return 0, err
	}
	if out.ContentLength == nil {
		return 0, nil
	}
	return *out.ContentLength, nil
}

func (d *s3Disk) LastModified(path string) (time.Time, error) {
	out, err := d.head(path)
	if err != nil {
		return time.Time{}, err
	}
	if out.LastModified == nil {
		return time.Time{}, nil
	}
	return *out.LastModified, nil
}

func (d *s3Disk) URL(path string) string {
	return d.url + "/" + d.key(path)
}

func (d *s3Disk) Delete(path string) error {
	key := d.key(path)
	_, err := d.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: &d.bucket,
		Key:    &key,
	})
	return err
}

func (d *s3Disk) Files(directory string) ([]string, error) {
	prefix := strings.TrimLeft(strings.TrimRight(directory, "/")+"/", "/")
	delim := "/"

	files := []string{}
	paginator := s3.NewListObjectsV2Paginator(d.client, &s3.ListObjectsV2Input{
		Bucket:    &d.bucket,
		Prefix:    &prefix,
		Delimiter: &delim,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.Background())
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			if obj.Key == nil || *obj.Key == prefix {
				continue
			}
			files = append(files, strings.TrimPrefix(*obj.Key, prefix))
		}
	}
	return files, nil
}
