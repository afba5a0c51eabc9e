package messaging

import (
	"testing"

	"github.com/bytedance/sonic"

	"github.com/virtscope/vm-inventory/pkg/index"
	"github.com/virtscope/vm-inventory/pkg/types"
)

func TestUpsertMessage_RoundTripFeedsIndex(t *testing.T) {
	idx := index.NewIndex()
	idx.SetItems([]types.VM{{Id: "vm-1", Name: "one"}})

	msg := NewUpsertMessage([]types.VM{
		{Id: "vm-1", Name: "one-renamed"},
		{Id: "vm-2", Name: "two"},
	})
	if msg.MessageId == "" {
		t.Errorf("expected a correlation id on the message")
	}
	body, err := sonic.Marshal(msg)
	if err != nil {
		t.Fatalf("encoding upsert message: %v", err)
	}

	if err := applyUpsert(idx, body); err != nil {
		t.Fatalf("applying upsert message: %v", err)
	}
	items := idx.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 records after upsert, got %d", len(items))
	}
	if items[0].Name != "one-renamed" || items[1].Id != "vm-2" {
		t.Errorf("unexpected collection after upsert: %+v", items)
	}
}

func TestDeleteMessage_RoundTripFeedsIndex(t *testing.T) {
	idx := index.NewIndex()
	idx.SetItems([]types.VM{{Id: "vm-1"}, {Id: "vm-2"}})

	msg := NewDeleteMessage([]string{"vm-1", "vm-missing"})
	if msg.MessageId == "" {
		t.Errorf("expected a correlation id on the message")
	}
	body, err := sonic.Marshal(msg)
	if err != nil {
		t.Fatalf("encoding delete message: %v", err)
	}

	if err := applyDelete(idx, body); err != nil {
		t.Fatalf("applying delete message: %v", err)
	}
	if idx.Len() != 1 {
		t.Errorf("expected 1 record after delete, got %d", idx.Len())
	}
}

func TestMessageIds_AreUnique(t *testing.T) {
	a := NewUpsertMessage(nil)
	b := NewUpsertMessage(nil)
	if a.MessageId == b.MessageId {
		t.Errorf("expected distinct correlation ids, got %q twice", a.MessageId)
	}
}

func TestMalformedBody_IsAnError(t *testing.T) {
	idx := index.NewIndex()
	if err := applyUpsert(idx, []byte("not json")); err == nil {
		t.Errorf("expected an error for a malformed upsert body")
	}
	if err := applyDelete(idx, []byte("not json")); err == nil {
		t.Errorf("expected an error for a malformed delete body")
	}
}
