package archive

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/swcleaning/ai-responder/internal/memory"
)

type fakeS3 struct {
	puts []s3.PutObjectInput
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, *params)
	return &s3.PutObjectOutput{}, nil
}

func sweptConversations() []memory.Conversation {
	return []memory.Conversation{
		{
			ID:     "conv_gail",
			Status: memory.StatusResolved,
			Type:   memory.ConversationExistingCustomer,
			Messages: []memory.Message{
				{ID: "msg_1", Content: "Hi Gail, all done for today"},
				{ID: "msg_2", Content: "Thanks!"},
			},
			Tags: []string{"regular_customer"},
		},
		{
			ID:       "conv_phone_07111222333",
			Status:   memory.StatusResolved,
			Type:     memory.ConversationCustomerInquiry,
			Messages: []memory.Message{{ID: "msg_3", Content: "quote please"}},
			Tags:     []string{"pricing"},
		},
	}
}

func TestArchive(t *testing.T) {
	client := &fakeS3{}
	a := New(Config{S3: client, Bucket: "swc-archive"})
	a.now = func() time.Time { return time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC) }

	res, err := a.Archive(context.Background(), sweptConversations())
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	if res.ConversationsArchived != 2 || res.MessagesArchived != 3 {
		t.Errorf("unexpected result %+v", res)
	}
	if !strings.HasPrefix(res.S3Key, "conversations/archive/2025/08/31/") {
		t.Errorf("unexpected key %s", res.S3Key)
	}

	if len(client.puts) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(client.puts))
	}
	body, err := io.ReadAll(client.puts[0].Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSONL lines, got %d", len(lines))
	}
	var first struct {
		ID            string `json:"id"`
		ArchiveReason string `json:"archiveReason"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 not valid JSON: %v", err)
	}
	if first.ID != "conv_gail" || first.ArchiveReason != "retention_sweep" {
		t.Errorf("unexpected first line %+v", first)
	}
}

func TestArchive_EmptyBatch(t *testing.T) {
	client := &fakeS3{}
	a := New(Config{S3: client, Bucket: "swc-archive"})

	res, err := a.Archive(context.Background(), nil)
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if res.ConversationsArchived != 0 || len(client.puts) != 0 {
		t.Error("expected no upload for empty batch")
	}
}

func TestArchive_Unconfigured(t *testing.T) {
	a := New(Config{})

	if a.Enabled() {
		t.Error("expected unconfigured archiver to be disabled")
	}
	res, err := a.Archive(context.Background(), sweptConversations())
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if res.ConversationsArchived != 0 {
		t.Error("expected no-op result when disabled")
	}
}
