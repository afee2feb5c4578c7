// Package archive uploads swept conversations to S3 before they are
// dropped from memory.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/swcleaning/ai-responder/internal/memory"
	"github.com/swcleaning/ai-responder/pkg/logging"
)

// S3Client is the subset of the S3 API the archiver uses.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archiver writes retention-swept conversations to S3 as JSONL, one
// conversation per line, so stale records stay reviewable after removal.
type Archiver struct {
	s3     S3Client
	bucket string
	log    *logging.Logger
	now    func() time.Time
}

// Config holds archiver wiring.
type Config struct {
	S3     S3Client
	Bucket string
	Logger *logging.Logger
}

// New creates an Archiver. An archiver with no client or bucket is valid
// and skips uploads.
func New(cfg Config) *Archiver {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &Archiver{
		s3:     cfg.S3,
		bucket: cfg.Bucket,
		log:    cfg.Logger,
		now:    time.Now,
	}
}

// Enabled reports whether uploads are configured.
func (a *Archiver) Enabled() bool {
	return a != nil && a.s3 != nil && a.bucket != ""
}

// Result summarizes one archive upload.
type Result struct {
	ConversationsArchived int
	MessagesArchived      int
	S3Key                 string
	BytesWritten          int64
}

type archivedConversation struct {
	memory.Conversation
	ArchivedAt    time.Time `json:"archivedAt"`
	ArchiveReason string    `json:"archiveReason"`
}

// Archive uploads the given conversations as one JSONL object. A nil or
// unconfigured archiver, or an empty batch, is a no-op.
func (a *Archiver) Archive(ctx context.Context, conversations []memory.Conversation) (*Result, error) {
	if !a.Enabled() {
		return &Result{}, nil
	}
	if len(conversations) == 0 {
		return &Result{}, nil
	}

	now := a.now().UTC()

	var buf bytes.Buffer
	totalMessages := 0
	for _, conv := range conversations {
		line, err := json.Marshal(archivedConversation{
			Conversation:  scrubConversation(conv),
			ArchivedAt:    now,
			ArchiveReason: "retention_sweep",
		})
		if err != nil {
			a.log.Warn("failed to marshal conversation", "conversation_id", conv.ID, "error", err)
			continue
		}
		buf.Write(line)
		buf.WriteByte('\n')
		totalMessages += len(conv.Messages)
	}

	key := fmt.Sprintf("conversations/archive/%d/%02d/%02d/sweep_%s.jsonl",
		now.Year(), now.Month(), now.Day(), now.Format("20060102T150405Z"))

	_, err := a.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/jsonl"),
	})
	if err != nil {
		return nil, fmt.Errorf("archive: upload to s3: %w", err)
	}

	a.log.Info("conversations archived",
		"count", len(conversations),
		"messages", totalMessages,
		"s3_key", key,
		"bytes", buf.Len(),
	)

	return &Result{
		ConversationsArchived: len(conversations),
		MessagesArchived:      totalMessages,
		S3Key:                 key,
		BytesWritten:          int64(buf.Len()),
	}, nil
}
