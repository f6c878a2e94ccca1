package bedrock

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/jaehyun-dev/novareel"
	"github.com/jaehyun-dev/novareel/slogger"
)

type mockObjects struct {
	GetObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

func (m *mockObjects) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, params, optFns...)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("video bytes"))}, nil
}

func TestParseS3URI(t *testing.T) {
	bucket, key, err := ParseS3URI("s3://my-videos/jobs/abc123/output.mp4")
	require.NoError(t, err)
	require.Equal(t, "my-videos", bucket)
	require.Equal(t, "jobs/abc123/output.mp4", key)

	for _, uri := range []string{
		"https://example.com/video.mp4",
		"s3://bucket-only",
		"s3://",
		"",
	} {
		_, _, err := ParseS3URI(uri)
		require.Error(t, err, uri)
	}
}

func TestDownload(t *testing.T) {
	var requested *s3.GetObjectInput
	c := &Client{
		objects: &mockObjects{
			GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
				requested = params
				return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("video bytes"))}, nil
			},
		},
		settings: testSettings(),
		logger:   slogger.DevNull{},
	}

	path := filepath.Join(t.TempDir(), "out.mp4")
	err := c.Download(context.Background(), "s3://test-videos/abc123/output.mp4", path)
	require.NoError(t, err)
	require.Equal(t, "test-videos", aws.ToString(requested.Bucket))
	require.Equal(t, "abc123/output.mp4", aws.ToString(requested.Key))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "video bytes", string(data))
}

func TestDownloadRejectsBadURI(t *testing.T) {
	c := &Client{objects: &mockObjects{}, settings: testSettings(), logger: slogger.DevNull{}}
	err := c.Download(context.Background(), "ftp://nope", filepath.Join(t.TempDir(), "out.mp4"))
	require.Error(t, err)
}

func TestSaveVideo(t *testing.T) {
	c := &Client{objects: &mockObjects{}, settings: testSettings(), logger: slogger.DevNull{}}
	outputDir := filepath.Join(t.TempDir(), "output")

	res := &novareel.GenerationResult{
		Status:   novareel.StatusSucceeded,
		JobID:    "abc123",
		VideoURI: "s3://test-videos/abc123/output.mp4",
	}
	path, err := c.SaveVideo(context.Background(), res, outputDir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outputDir, "video_abc123.mp4"), path)
	require.Equal(t, path, res.LocalPath)
	require.FileExists(t, path)
}

func TestSaveVideoRequiresURI(t *testing.T) {
	c := &Client{objects: &mockObjects{}, settings: testSettings(), logger: slogger.DevNull{}}
	_, err := c.SaveVideo(context.Background(), &novareel.GenerationResult{JobID: "abc123"}, t.TempDir())
	require.Error(t, err)
}
