//go:build integration

package storage

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"

	"github.com/DrSkyle/qstr/pkg/sys/intern"
)

// TestS3Store_Integration runs the snapshot round trip against LocalStack.
// Requires Docker.
func TestS3Store_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := localstack.Run(ctx, "localstack/localstack:3.0",
		testcontainers.WithEnv(map[string]string{"SERVICES": "s3"}),
	)
	if err != nil {
		t.Fatalf("Failed to start LocalStack: %v", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	}()

	endpoint, err := container.PortEndpoint(ctx, "4566/tcp", "http")
	require.NoError(t, err)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{AccessKeyID: "test", SecretAccessKey: "test", SessionToken: "test"}, nil
		})),
	)
	require.NoError(t, err)

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String("qstr-snapshots")})
	require.NoError(t, err)

	store := &S3Store{Client: client, Bucket: "qstr-snapshots", Prefix: "ci"}
	src := intern.MustNew([]string{"self"})
	h := src.MustIntern("integration")
	require.NoError(t, SaveSnapshot(ctx, store, "it", src))

	names, err := ListSnapshots(ctx, store)
	require.NoError(t, err)
	require.Equal(t, []string{"it"}, names)

	dst := intern.MustNew([]string{"self"})
	require.NoError(t, LoadSnapshot(ctx, store, "it", dst))
	require.Equal(t, h, dst.FindString("integration"))

	_, err = store.Get(ctx, SnapshotKey("absent"))
	require.ErrorIs(t, err, ErrNotFound)
}
