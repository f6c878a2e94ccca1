package bedrock

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jaehyun-dev/novareel"
)

// ParseS3URI splits an s3://bucket/key URI into bucket and key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an S3 URI: %s", uri)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("malformed S3 URI: %s", uri)
	}
	return bucket, key, nil
}

// Download fetches an S3 object to a local file.
func (c *Client) Download(ctx context.Context, s3URI, localPath string) error {
	bucket, key, err := ParseS3URI(s3URI)
	if err != nil {
		return err
	}

	out, err := c.objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return mapError(err)
	}
	defer out.Body.Close()

	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", localPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, out.Body); err != nil {
		return fmt.Errorf("writing %s: %w", localPath, err)
	}
	return nil
}

// SaveVideo downloads a succeeded result's video into outputDir as
// video_<job-id>.mp4 and records the local path on the result.
func (c *Client) SaveVideo(ctx context.Context, res *novareel.GenerationResult, outputDir string) (string, error) {
	if res.VideoURI == "" {
		return "", fmt.Errorf("result has no video URI")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("video_%s.mp4", res.JobID))
	c.logger.Info("downloading video", "uri", res.VideoURI, "path", path)
	if err := c.Download(ctx, res.VideoURI, path); err != nil {
		return "", err
	}
	res.LocalPath = path
	return path, nil
}
